package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"gopkg.in/yaml.v3"
)

// member is one key of a top-level JSON object, in document order.
type member struct {
	Key   string
	Value json.RawMessage
}

// readSource returns the bytes at path, or the embedded default when path is empty.
// YAML documents are converted to JSON with key order preserved.
func readSource(path string, embedded []byte) ([]byte, error) {
	if path == "" {
		return embedded, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if !isYAML(path) {
		return content, nil
	}
	converted, err := yamlToJSON(content)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse YAML", Cause: err}
	}
	return converted, nil
}

// loadMembers reads, validates and splits a document whose root is an object.
func loadMembers(path string, embedded, schema []byte) ([]member, error) {
	data, err := readSource(path, embedded)
	if err != nil {
		return nil, err
	}

	name := displayPath(path)
	if err := schemas.ValidateJSONBytes(schema, data); err != nil {
		return nil, &LoadError{Path: name, Message: "schema validation failed", Cause: err}
	}

	members, err := objectMembers(data)
	if err != nil {
		return nil, &LoadError{Path: name, Message: "failed to decode JSON", Cause: err}
	}
	return members, nil
}

// objectMembers decodes the keys of a JSON object in document order. A
// repeated key keeps its first position and takes the last value.
func objectMembers(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var members []member
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", key, err)
		}

		if idx, seen := index[key]; seen {
			members[idx].Value = value
			continue
		}
		index[key] = len(members)
		members = append(members, member{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func displayPath(path string) string {
	if path == "" {
		return embeddedPath
	}
	return path
}

// yamlToJSON re-encodes a YAML document as JSON without losing mapping order.
// An empty document becomes an empty object.
func yamlToJSON(content []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, doc.Content[0]); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0])

	case yaml.AliasNode:
		return writeNodeJSON(buf, n.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return err
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		buf.Write(encoded)
		return nil
	}
}
