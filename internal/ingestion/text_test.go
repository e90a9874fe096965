package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	result := CleanText("  # Title\n## Subtitle\nContent here")

	assert.Equal(t, "# Title\n## Subtitle\nContent here", result)
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3\n• Built   an API"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "* Item 3")
	assert.Contains(t, result, "• Built   an API")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	result := CleanText("Line    with \t multiple    spaces")

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2\n   \n\t\nLine 3")

	assert.Equal(t, "Line 1\n\nLine 2\n\nLine 3", result)
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	result := CleanText("Line 1\r\nLine 2\rLine 3\fLine 4")

	assert.Equal(t, "Line 1\nLine 2\nLine 3\nLine 4", result)
}

func TestCleanText_NonBreakingSpaces(t *testing.T) {
	result := CleanText("Skills:\u00a0\u00a0Go,\u00a0SQL")

	assert.Equal(t, "Skills: Go, SQL", result)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n  \n  "))
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	result := CleanText("Test with émojis 🚀 and spéciàl chàracters")

	assert.Equal(t, "Test with émojis 🚀 and spéciàl chàracters", result)
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	result := CleanText("Header\n    Indented   line\n  Less indented")

	assert.Equal(t, "Header\n    Indented line\n  Less indented", result)
}

func TestCleanText_Idempotent(t *testing.T) {
	input := "PROJECTS\r\n\r\n\r\n1.  Chat   App\n   - Built with React\n\n\n\nEDUCATION"
	once := CleanText(input)

	assert.Equal(t, once, CleanText(once))
}

func TestIngestFromFile_Success(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("Jane Doe\r\n\r\n\r\nSKILLS\r\nGo,   SQL"), 0644))

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\n\nSKILLS\nGo, SQL", cleanedText)
	require.NotNil(t, metadata)
	assert.Equal(t, "resume.txt", metadata.Source)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, computeHash(cleanedText), metadata.Hash)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	cleanedText, metadata, err := IngestFromFile("/nonexistent/file.txt")

	require.Error(t, err)
	assert.Empty(t, cleanedText)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_UnsupportedFormat(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(testFile, []byte("content"), 0644))

	_, _, err := IngestFromFile(testFile)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestIngestFromFile_HashUniqueness(t *testing.T) {
	tmpDir := t.TempDir()
	testFile1 := filepath.Join(tmpDir, "test1.txt")
	testFile2 := filepath.Join(tmpDir, "test2.txt")
	require.NoError(t, os.WriteFile(testFile1, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(testFile2, []byte("Content 2"), 0644))

	_, metadata1, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	_, metadata2, err := IngestFromFile(testFile2)
	require.NoError(t, err)

	assert.NotEqual(t, metadata1.Hash, metadata2.Hash)
}

func TestWriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	metadata := NewMetadata("cleaned", "cv.pdf", FormatPDF)

	require.NoError(t, WriteOutput(outDir, "cv.pdf", "cleaned", metadata))

	text, err := os.ReadFile(filepath.Join(outDir, "cv.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cleaned", string(text))

	meta, err := os.ReadFile(filepath.Join(outDir, "cv.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"format": "pdf"`)
}

func TestIngestBytes(t *testing.T) {
	text, meta, err := IngestBytes("cv.html", FormatHTML, []byte("<html><body><h1>Jane Doe</h1><p>Python developer</p></body></html>"))
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Python developer")
	assert.Equal(t, "cv.html", meta.Source)
	assert.Equal(t, FormatHTML, meta.Format)
}
