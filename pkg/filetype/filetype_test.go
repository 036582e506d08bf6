package filetype_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textra/pkg/filetype"
	"textra/pkg/model"
	"textra/pkg/registry"
)

func TestResolveBuiltinExtensions(t *testing.T) {
	cases := map[string]string{
		"report.pdf":   "pdf",
		"letter.docx":  "docx",
		"table.csv":    "csv",
		"notes.txt":    "txt",
		"shot.png":     "png",
		"photo.jpg":    "jpg",
		"photo.jpeg":   "jpg",
		"sticker.webp": "webp",
	}
	for path, want := range cases {
		tag, err := filetype.Resolve(path, "", nil)
		require.NoError(t, err, path)
		assert.Equal(t, want, tag, path)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	for _, path := range []string{"REPORT.PDF", "report.Pdf", "x.JPEG"} {
		tag, err := filetype.Resolve(path, "", nil)
		require.NoError(t, err, path)
		if strings.Contains(strings.ToLower(path), "pdf") {
			assert.Equal(t, "pdf", tag)
		} else {
			assert.Equal(t, "jpg", tag)
		}
	}
}

func TestResolveUnknownExtension(t *testing.T) {
	_, err := filetype.Resolve("doc.xyz", "", nil)

	var unsupported *filetype.UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".xyz", unsupported.Ext)
	// The error names the extension, never the caller's path.
	assert.NotContains(t, err.Error(), "doc.xyz")
}

func TestResolveMimeHints(t *testing.T) {
	cases := map[string]string{
		"application/pdf": "pdf",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
		"text/csv":   "csv",
		"text/plain": "txt",
		"image/png":  "png",
		"image/jpeg": "jpg",
		"image/webp": "webp",
	}
	for mime, want := range cases {
		tag, err := filetype.Resolve("whatever.bin", mime, nil)
		require.NoError(t, err, mime)
		assert.Equal(t, want, tag, mime)
	}
}

func TestMimeHintTakesPrecedenceOverExtension(t *testing.T) {
	tag, err := filetype.Resolve("table.csv", "application/pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "pdf", tag)
}

func TestResolveUnknownMime(t *testing.T) {
	_, err := filetype.Resolve("file.pdf", "application/x-unknown", nil)

	var unsupported *filetype.UnsupportedMimeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "application/x-unknown", unsupported.Mime)
}

type stubExtractor struct{}

func (stubExtractor) Extract(string) (model.Result, error) { return model.Result{}, nil }

func TestResolveConsultsRegistryForExtensions(t *testing.T) {
	reg := registry.New()
	reg.RegisterSync("rtf", stubExtractor{}, []string{".rtf"}, []string{"application/rtf"})

	tag, err := filetype.Resolve("memo.rtf", "", reg)
	require.NoError(t, err)
	assert.Equal(t, "rtf", tag)
}

func TestResolveMimeDoesNotConsultRegistry(t *testing.T) {
	reg := registry.New()
	reg.RegisterSync("rtf", stubExtractor{}, []string{".rtf"}, []string{"application/rtf"})

	// MIME resolution stays table-driven even when a plugin claims the type.
	_, err := filetype.Resolve("memo.rtf", "application/rtf", reg)
	var unsupported *filetype.UnsupportedMimeError
	assert.True(t, errors.As(err, &unsupported))
}

func TestBuiltin(t *testing.T) {
	for _, tag := range []string{"pdf", "docx", "csv", "txt", "png", "jpg", "webp"} {
		assert.True(t, filetype.Builtin(tag), tag)
	}
	assert.False(t, filetype.Builtin("rtf"))
}
