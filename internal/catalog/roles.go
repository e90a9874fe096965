package catalog

import (
	"encoding/json"

	"github.com/jonathan/resume-analyzer/internal/types"
	schemadata "github.com/jonathan/resume-analyzer/schemas"
)

type roleDocument struct {
	RequiredSkills []string           `json:"required_skills"`
	Weights        map[string]float64 `json:"weights"`
	Description    string             `json:"description"`
}

// LoadRoleCatalog loads the job-role catalog. An empty path selects the
// built-in catalog. Role order follows the document.
func LoadRoleCatalog(path string) (*types.RoleCatalog, error) {
	members, err := loadMembers(path, DefaultRoleCatalog, schemadata.RoleCatalog)
	if err != nil {
		return nil, err
	}

	roles := make([]types.RoleDefinition, 0, len(members))
	for _, m := range members {
		var doc roleDocument
		if err := json.Unmarshal(m.Value, &doc); err != nil {
			return nil, &LoadError{
				Path:    displayPath(path),
				Message: "failed to decode role " + m.Key,
				Cause:   err,
			}
		}
		roles = append(roles, types.RoleDefinition{
			Name:           m.Key,
			RequiredSkills: doc.RequiredSkills,
			Weights:        doc.Weights,
			Description:    doc.Description,
		})
	}
	return types.NewRoleCatalog(roles), nil
}
