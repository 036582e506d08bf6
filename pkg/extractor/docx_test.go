package extractor_test

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textra/pkg/extractor"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`

// writeDocx assembles a minimal wordprocessing package around documentXML.
func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	parts := map[string]string{
		"[Content_Types].xml":          contentTypesXML,
		"_rels/.rels":                  packageRelsXML,
		"word/document.xml":            documentXML,
		"word/_rels/document.xml.rels": documentRelsXML,
	}
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func wordDoc(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
}

func TestDocxExtractParagraphs(t *testing.T) {
	path := writeDocx(t, wordDoc(
		`<w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Second</w:t></w:r><w:r><w:t> run</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t> </w:t></w:r></w:p>`))

	res, err := extractor.Docx{}.Extract(path)
	require.NoError(t, err)

	assert.Equal(t, "docx", res.FileType)
	assert.False(t, res.OCRUsed)
	require.Len(t, res.Pages, 1)
	assert.Equal(t, "First paragraph\nSecond run", res.Pages[0].Text)
}

func TestDocxExtractTablesAfterParagraphs(t *testing.T) {
	path := writeDocx(t, wordDoc(
		`<w:p><w:r><w:t>Intro</w:t></w:r></w:p>`+
			`<w:tbl>`+
			`<w:tr><w:tc><w:p><w:r><w:t>A1</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>B1</w:t></w:r></w:p></w:tc></w:tr>`+
			`<w:tr><w:tc><w:p><w:r><w:t>A2</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t></w:t></w:r></w:p></w:tc></w:tr>`+
			`</w:tbl>`+
			`<w:p><w:r><w:t>Outro</w:t></w:r></w:p>`))

	res, err := extractor.Docx{}.Extract(path)
	require.NoError(t, err)

	// Rows joined with " | ", empty cells dropped, tables after paragraphs.
	assert.Equal(t, "Intro\nOutro\nA1 | B1\nA2", res.Pages[0].Text)
}

func TestDocxExtractMissingFile(t *testing.T) {
	_, err := extractor.Docx{}.Extract(filepath.Join(t.TempDir(), "missing.docx"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDocxExtractCorruptPackage(t *testing.T) {
	path := writeFile(t, "broken.docx", []byte("this is not a zip archive"))

	_, err := extractor.Docx{}.Extract(path)
	// A file that is not a readable package is the not-found class.
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
