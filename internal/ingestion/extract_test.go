package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
		wantErr  bool
	}{
		{filename: "cv.txt", want: FormatText},
		{filename: "CV.PDF", want: FormatPDF},
		{filename: "resume.final.docx", want: FormatDOCX},
		{filename: "page.htm", want: FormatHTML},
		{filename: "page.html", want: FormatHTML},
		{filename: "notes.md", want: FormatText},
		{filename: "resume.doc", wantErr: true},
		{filename: "noextension", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := FormatFromFilename(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractText_UTF8(t *testing.T) {
	text, err := ExtractText("cv.txt", []byte("\xef\xbb\xbfJosé Núñez\nGo developer"))
	require.NoError(t, err)
	assert.Equal(t, "José Núñez\nGo developer", text)
}

func TestExtractText_Latin1Fallback(t *testing.T) {
	text, err := ExtractText("cv.txt", []byte{'C', 'a', 'f', 0xe9, ' ', 'O', 'w', 'n', 'e', 'r'})
	require.NoError(t, err)
	assert.Equal(t, "Café Owner", text)
}

func TestExtractText_HTML(t *testing.T) {
	page := `<html><head><title>CV</title><style>p{color:red}</style></head>
<body><h1>Jane Doe</h1><script>var secret = 1;</script>
<ul><li>Go</li><li>SQL</li></ul><p>Built <b>APIs</b></p></body></html>`

	text, err := ExtractText("cv.html", []byte(page))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe\n")
	assert.Contains(t, text, "• Go")
	assert.Contains(t, text, "• SQL")
	assert.Contains(t, text, "Built APIs")
	assert.NotContains(t, text, "secret")
	assert.NotContains(t, text, "color")
}

func TestDocumentXMLText(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>PROJECTS</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Chat App </w:t></w:r><w:r><w:t>&amp; API</w:t></w:r></w:p>
<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>SQL</w:t></w:r></w:p>
</w:body>
</w:document>`

	text, err := documentXMLText(content)
	require.NoError(t, err)
	assert.Equal(t, "PROJECTS\nChat App & API\nGo\tSQL", text)
}

func TestExtractText_DOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Go developer</w:t></w:r></w:p>` +
			`</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	text, err := ExtractText("cv.docx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestExtractText_InvalidBinary(t *testing.T) {
	for _, name := range []string{"cv.pdf", "cv.docx"} {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractText(name, []byte("definitely not a binary document"))
			var extractionErr *ExtractionError
			require.ErrorAs(t, err, &extractionErr)
		})
	}
}

func TestExtractText_Unsupported(t *testing.T) {
	_, err := ExtractText("cv.rtf", []byte("{\\rtf1}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		name        string
		want        Format
		wantErr     bool
	}{
		{contentType: "application/pdf", name: "/download", want: FormatPDF},
		{contentType: "text/html; charset=utf-8", name: "/cv", want: FormatHTML},
		{contentType: "TEXT/PLAIN", name: "", want: FormatText},
		{contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", name: "x", want: FormatDOCX},
		{contentType: "application/octet-stream", name: "/files/cv.docx", want: FormatDOCX},
		{contentType: "", name: "cv.pdf", want: FormatPDF},
		{contentType: "application/octet-stream", name: "/files/cv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.contentType+" "+tt.name, func(t *testing.T) {
			got, err := FormatFromContentType(tt.contentType, tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
