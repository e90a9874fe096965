package schemas

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roleSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "Role",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"weight": {"type": "number", "minimum": 0}
	}
}`

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", []byte(`{"type": 12}`))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken", loadErr.Schema)
}

func TestSchema_Validate(t *testing.T) {
	s, err := Compile("role", []byte(roleSchema))
	require.NoError(t, err)
	assert.Equal(t, "role", s.Name())

	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{name: "valid", content: `{"name": "Data Scientist", "weight": 1.5}`},
		{name: "missing required field", content: `{"weight": 1}`, wantField: "(root)"},
		{name: "wrong type", content: `{"name": 42}`, wantField: "name"},
		{name: "below minimum", content: `{"name": "x", "weight": -1}`, wantField: "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate([]byte(tt.content))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.wantField, validationErr.Errors[0].Field)
			assert.Equal(t, "role", validationErr.Schema)
		})
	}
}

func TestSchema_ValidateMalformedDocument(t *testing.T) {
	s, err := Compile("role", []byte(roleSchema))
	require.NoError(t, err)

	err = s.Validate([]byte("{ invalid json }"))
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestSchema_ValidateValue(t *testing.T) {
	s, err := Compile("role", []byte(roleSchema))
	require.NoError(t, err)

	assert.NoError(t, s.ValidateValue(map[string]any{"name": "Ada", "weight": 2}))

	err = s.ValidateValue(map[string]any{"weight": "heavy"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
}

func TestSchema_ValidateFile(t *testing.T) {
	s, err := Compile("role", []byte(roleSchema))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "role.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "QA"}`), 0644))
	assert.NoError(t, s.ValidateFile(path))

	err = s.ValidateFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONBytes_UsesTitle(t *testing.T) {
	err := ValidateJSONBytes([]byte(roleSchema), []byte(`[]`))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Role", validationErr.Schema)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)

	untitled := `{"type": "object"}`
	err = ValidateJSONBytes([]byte(untitled), []byte(`"text"`))
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "(embedded schema)", validationErr.Schema)
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument([]byte(roleSchema), map[string]any{"name": "Ada"}))
	assert.Error(t, ValidateDocument([]byte(roleSchema), map[string]any{"name": 1}))
}

func TestValidateJSONBytes_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, ValidateJSONBytes([]byte(roleSchema), []byte(`{"name": "x"}`)))
		}()
	}
	wg.Wait()
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: "Skill taxonomy",
		Errors: []FieldError{
			{Field: "Cloud", Message: "Invalid type"},
			{Field: "Cloud.0", Message: "String length must be greater than or equal to 1"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "Skill taxonomy: 2 validation error(s)")
	assert.Contains(t, msg, "1. Cloud: Invalid type")
	assert.Contains(t, msg, "2. Cloud.0:")
}
