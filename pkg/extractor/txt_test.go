package extractor_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textra/pkg/extractor"
	"textra/pkg/textenc"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestTextExtract(t *testing.T) {
	path := writeFile(t, "hello.txt", []byte("Hello, World!\nThis is a test file."))

	res, err := (&extractor.Text{}).Extract(path)
	require.NoError(t, err)

	assert.Equal(t, "txt", res.FileType)
	assert.False(t, res.OCRUsed)
	require.Len(t, res.Pages, 1)
	assert.Equal(t, 1, res.Pages[0].Number)
	assert.Equal(t, "Hello, World!\nThis is a test file.", res.Pages[0].Text)
	assert.False(t, res.Pages[0].OCR)
	assert.Equal(t, "Hello, World!\nThis is a test file.", res.Text)
}

func TestTextExtractEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	res, err := (&extractor.Text{}).Extract(path)
	require.NoError(t, err)
	require.Len(t, res.Pages, 1)
	assert.Equal(t, "", res.Pages[0].Text)
}

func TestTextExtractMissingFile(t *testing.T) {
	_, err := (&extractor.Text{}).Extract(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestTextExtractDecodeUnavailable(t *testing.T) {
	path := writeFile(t, "latin1.txt", []byte{'b', 0xe9, 'b', 0xe9})

	ext := &extractor.Text{Reader: &textenc.Reader{Sniffer: nil}}
	_, err := ext.Extract(path)
	assert.ErrorIs(t, err, textenc.ErrDetectorUnavailable)
}
