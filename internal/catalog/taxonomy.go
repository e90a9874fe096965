package catalog

import (
	"encoding/json"

	"github.com/jonathan/resume-analyzer/internal/types"
	schemadata "github.com/jonathan/resume-analyzer/schemas"
)

// LoadTaxonomy loads a skill taxonomy mapping category names to skill phrases.
// An empty path selects the built-in taxonomy. Category order follows the document.
func LoadTaxonomy(path string) (*types.Taxonomy, error) {
	members, err := loadMembers(path, DefaultTaxonomy, schemadata.Taxonomy)
	if err != nil {
		return nil, err
	}

	tax := &types.Taxonomy{Categories: make([]types.Category, 0, len(members))}
	for _, m := range members {
		var skills []string
		if err := json.Unmarshal(m.Value, &skills); err != nil {
			return nil, &LoadError{
				Path:    displayPath(path),
				Message: "failed to decode category " + m.Key,
				Cause:   err,
			}
		}
		tax.Categories = append(tax.Categories, types.Category{Name: m.Key, Skills: skills})
	}
	return tax, nil
}
