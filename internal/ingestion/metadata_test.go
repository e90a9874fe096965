package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	// SHA256 hex
	assert.Len(t, hash1, 64)
	assert.Len(t, hash2, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	content := "Résumé content"

	metadata := NewMetadata(content, "cv.pdf", FormatPDF)

	assert.Equal(t, "cv.pdf", metadata.Source)
	assert.Equal(t, FormatPDF, metadata.Format)
	assert.Equal(t, computeHash(content), metadata.Hash)
	assert.Equal(t, 14, metadata.Characters)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestMetadata_ToJSON(t *testing.T) {
	metadata := &Metadata{
		Source:     "cv.txt",
		Format:     FormatText,
		Timestamp:  "2024-01-01T00:00:00Z",
		Hash:       "abcd1234",
		Characters: 42,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &fields))
	assert.Equal(t, "cv.txt", fields["source"])
	assert.Equal(t, "txt", fields["format"])
	assert.Equal(t, float64(42), fields["characters"])
	assert.Contains(t, string(jsonBytes), "\n  ")
}
