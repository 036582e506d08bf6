// Package filetype resolves file paths and MIME hints to canonical format tags.
package filetype

import (
	"fmt"
	"path/filepath"
	"strings"

	"textra/pkg/registry"
)

// Built-in extension and MIME tables. Both .jpg and .jpeg resolve to the
// single tag "jpg".
var (
	extensionTags = map[string]string{
		".pdf":  "pdf",
		".docx": "docx",
		".csv":  "csv",
		".txt":  "txt",
		".png":  "png",
		".jpg":  "jpg",
		".jpeg": "jpg",
		".webp": "webp",
	}

	mimeTags = map[string]string{
		"application/pdf": "pdf",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
		"text/csv":   "csv",
		"text/plain": "txt",
		"image/png":  "png",
		"image/jpeg": "jpg",
		"image/webp": "webp",
	}
)

// UnsupportedTypeError reports a file extension no built-in or plugin
// registration claims. It carries only the extension, never the full path.
type UnsupportedTypeError struct {
	Ext string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Ext)
}

// UnsupportedMimeError reports a MIME hint absent from the built-in table.
type UnsupportedMimeError struct {
	Mime string
}

func (e *UnsupportedMimeError) Error() string {
	return fmt.Sprintf("unsupported MIME type: %s", e.Mime)
}

// Resolve maps a path (and optional MIME hint) to a format tag.
//
// A non-empty mimeType takes precedence and is looked up in the built-in MIME
// table only; plugin registrations are not consulted for MIME hints.
// Otherwise the lower-cased extension is looked up in the built-in table and
// then, if reg is non-nil, in the plugin registry's extension map.
func Resolve(path, mimeType string, reg *registry.Registry) (string, error) {
	if mimeType != "" {
		if tag, ok := mimeTags[mimeType]; ok {
			return tag, nil
		}
		return "", &UnsupportedMimeError{Mime: mimeType}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if tag, ok := extensionTags[ext]; ok {
		return tag, nil
	}
	if reg != nil {
		if tag, ok := reg.ResolveExtension(ext); ok {
			return tag, nil
		}
	}
	return "", &UnsupportedTypeError{Ext: ext}
}

// Builtin reports whether tag is one of the compiled-in format tags.
func Builtin(tag string) bool {
	for _, t := range extensionTags {
		if t == tag {
			return true
		}
	}
	return false
}
