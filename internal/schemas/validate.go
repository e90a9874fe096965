// Package schemas validates data artifacts (taxonomies, role catalogs, models,
// knowledge bases) against JSON Schemas.
package schemas

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError is a single violation at a JSON field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d validation error(s):\n", e.Schema, len(e.Errors))
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError is returned when a schema cannot be compiled or a document
// cannot be parsed at all.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Schema is a compiled JSON Schema, safe for concurrent use.
type Schema struct {
	name     string
	compiled *gojsonschema.Schema
}

// Compile parses schema once so documents can be validated repeatedly.
func Compile(name string, schema []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schema))
	if err != nil {
		return nil, &SchemaLoadError{Schema: name, Message: "invalid schema", Cause: err}
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// Name returns the name given at compile time.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks a raw JSON document.
func (s *Schema) Validate(document []byte) error {
	return s.check(gojsonschema.NewBytesLoader(document))
}

// ValidateValue checks an already decoded document: maps, slices, scalars or
// structs, as produced by a YAML or JSON decoder.
func (s *Schema) ValidateValue(document any) error {
	return s.check(gojsonschema.NewGoLoader(document))
}

// ValidateFile reads and checks the JSON document at path.
func (s *Schema) ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("document not found: %s", path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return s.Validate(data)
}

func (s *Schema) check(document gojsonschema.JSONLoader) error {
	result, err := s.compiled.Validate(document)
	if err != nil {
		return &SchemaLoadError{Schema: s.name, Message: "unreadable document", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: s.name, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*Schema)
)

// cached compiles schema on first use. Schemas are keyed by content, so the
// embedded artifacts are compiled once per process.
func cached(schema []byte) (*Schema, error) {
	key := string(schema)

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if s, ok := cache[key]; ok {
		return s, nil
	}
	s, err := Compile(schemaTitle(schema), schema)
	if err != nil {
		return nil, err
	}
	cache[key] = s
	return s, nil
}

// schemaTitle names a schema after its "title" keyword when present.
func schemaTitle(schema []byte) string {
	loaded, err := gojsonschema.NewBytesLoader(schema).LoadJSON()
	if err == nil {
		if m, ok := loaded.(map[string]any); ok {
			if title, ok := m["title"].(string); ok && title != "" {
				return title
			}
		}
	}
	return "(embedded schema)"
}

// ValidateJSONBytes validates a JSON document against an in-memory schema.
func ValidateJSONBytes(schema, document []byte) error {
	s, err := cached(schema)
	if err != nil {
		return err
	}
	return s.Validate(document)
}

// ValidateDocument validates a decoded document against an in-memory schema.
func ValidateDocument(schema []byte, document any) error {
	s, err := cached(schema)
	if err != nil {
		return err
	}
	return s.ValidateValue(document)
}
