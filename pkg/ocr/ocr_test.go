package ocr_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textra/pkg/ocr"
)

// fakeBinary writes an executable shell script standing in for tesseract.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake not portable to windows")
	}
	path := filepath.Join(t.TempDir(), "tesseract-fake")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestTesseractRecognize(t *testing.T) {
	eng := &ocr.Tesseract{Binary: fakeBinary(t, `echo "recognized text"`)}

	text, err := eng.Recognize("page.png")
	require.NoError(t, err)
	assert.Equal(t, "recognized text\n", text)
}

func TestTesseractPassesLanguage(t *testing.T) {
	eng := &ocr.Tesseract{
		Binary:   fakeBinary(t, `echo "$@"`),
		Language: "eng",
	}

	text, err := eng.Recognize("page.png")
	require.NoError(t, err)
	assert.Equal(t, "page.png stdout -l eng\n", text)
}

func TestTesseractFailure(t *testing.T) {
	eng := &ocr.Tesseract{Binary: fakeBinary(t, `echo "boom" >&2; exit 1`)}

	_, err := eng.Recognize("page.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestTesseractMissingBinary(t *testing.T) {
	eng := &ocr.Tesseract{Binary: filepath.Join(t.TempDir(), "no-such-binary")}

	_, err := eng.Recognize("page.png")
	assert.Error(t, err)
}

func TestPageImagesMissingPDF(t *testing.T) {
	var r ocr.PageImages

	_, err := r.Rasterize(filepath.Join(t.TempDir(), "missing.pdf"), t.TempDir())
	assert.Error(t, err)
}

func TestPageImagesRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "bogus.pdf")
	require.NoError(t, os.WriteFile(bogus, []byte("not a pdf"), 0o644))

	var r ocr.PageImages
	_, err := r.Rasterize(bogus, t.TempDir())
	assert.Error(t, err)
}
