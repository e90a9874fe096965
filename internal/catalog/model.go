package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/ranking"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	schemadata "github.com/jonathan/resume-analyzer/schemas"
)

// LoadModel loads a TF-IDF model artifact. An empty path means no model is
// configured and returns (nil, nil).
func LoadModel(path string) (*ranking.VectorModel, error) {
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if err := schemas.ValidateJSONBytes(schemadata.VectorModel, content); err != nil {
		return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var model ranking.VectorModel
	if err := json.Unmarshal(content, &model); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	if err := model.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "inconsistent model", Cause: err}
	}
	return &model, nil
}

// SaveModel validates model and writes it as indented JSON.
func SaveModel(path string, model *ranking.VectorModel) error {
	if model == nil {
		return &LoadError{Path: path, Message: "no model to write"}
	}
	if err := model.Validate(); err != nil {
		return &LoadError{Path: path, Message: "inconsistent model", Cause: err}
	}
	if err := schemas.ValidateDocument(schemadata.VectorModel, model); err != nil {
		return &LoadError{Path: path, Message: "schema validation failed", Cause: err}
	}

	content, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return &LoadError{Path: path, Message: "failed to write file", Cause: err}
	}
	return nil
}
