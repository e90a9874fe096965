package catalog

import (
	"encoding/json"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	schemadata "github.com/jonathan/resume-analyzer/schemas"
)

// LoadKnowledge loads the career coach knowledge base. An empty path selects
// the built-in one.
func LoadKnowledge(path string) (*types.KnowledgeBase, error) {
	data, err := readSource(path, DefaultKnowledge)
	if err != nil {
		return nil, err
	}

	name := displayPath(path)
	if err := schemas.ValidateJSONBytes(schemadata.CareerKnowledge, data); err != nil {
		return nil, &LoadError{Path: name, Message: "schema validation failed", Cause: err}
	}

	var kb types.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, &LoadError{Path: name, Message: "failed to decode JSON", Cause: err}
	}

	var doc struct {
		Roles json.RawMessage `json:"roles"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: name, Message: "failed to decode JSON", Cause: err}
	}
	roles, err := objectMembers(doc.Roles)
	if err != nil {
		return nil, &LoadError{Path: name, Message: "failed to decode roles", Cause: err}
	}

	kb.Roles = make([]types.RoleGuide, 0, len(roles))
	for _, m := range roles {
		var guide types.RoleGuide
		if err := json.Unmarshal(m.Value, &guide); err != nil {
			return nil, &LoadError{Path: name, Message: "failed to decode role " + m.Key, Cause: err}
		}
		guide.Name = m.Key
		kb.Roles = append(kb.Roles, guide)
	}
	return &kb, nil
}
