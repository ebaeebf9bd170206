package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestTextExtractor_Extract_NeverFails(t *testing.T) {
	extractor := NewTextExtractor()

	t.Run("corrupt pdf yields empty string", func(t *testing.T) {
		path := writeTempFile(t, "corrupt.pdf", []byte("this is not a pdf at all"))
		assert.Equal(t, "", extractor.Extract(FormatPDF, path))
	})

	t.Run("zero-byte pdf yields empty string", func(t *testing.T) {
		path := writeTempFile(t, "empty.pdf", nil)
		assert.Equal(t, "", extractor.Extract(FormatPDF, path))
	})

	t.Run("missing file yields empty string", func(t *testing.T) {
		assert.Equal(t, "", extractor.Extract(FormatPDF, filepath.Join(t.TempDir(), "missing.pdf")))
	})

	t.Run("corrupt word document yields empty string", func(t *testing.T) {
		path := writeTempFile(t, "corrupt.docx", []byte{0x00, 0x01, 0x02, 0x03})
		assert.Equal(t, "", extractor.Extract(FormatWord, path))
	})
}

func TestParseDocxParagraphs(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

	paragraphs := parseDocxParagraphs(content)

	require.Len(t, paragraphs, 3)
	assert.Equal(t, "First paragraph", paragraphs[0])
	assert.Equal(t, "Second paragraph", paragraphs[1])
	assert.Equal(t, "", paragraphs[2])
}
