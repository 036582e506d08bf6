package extractor

import (
	"textra/pkg/filetype"
	"textra/pkg/model"
	"textra/pkg/ocr"
	"textra/pkg/registry"
	"textra/pkg/textenc"
)

// Factory composes the type resolver, the built-in extractors, and the
// plugin registry into one extract(path) entry point. Built-in tags always
// win over plugin registrations of the same name; plugins can only add new
// tags.
type Factory struct {
	reg      *registry.Registry
	builtins map[string]Extractor

	textReader *textenc.Reader
	engine     ocr.Engine
	raster     ocr.Rasterizer
}

// Option configures a Factory.
type Option func(*Factory)

// WithTextReader substitutes the encoding fallback chain used by the txt
// and csv extractors.
func WithTextReader(r *textenc.Reader) Option {
	return func(f *Factory) { f.textReader = r }
}

// WithOCR substitutes the OCR engine used by the image and pdf extractors.
func WithOCR(e ocr.Engine) Option {
	return func(f *Factory) { f.engine = e }
}

// WithRasterizer substitutes the PDF page rasterizer.
func WithRasterizer(r ocr.Rasterizer) Option {
	return func(f *Factory) { f.raster = r }
}

// New builds a Factory over the given registry; nil means the shared
// process-wide registry.
func New(reg *registry.Registry, opts ...Option) *Factory {
	if reg == nil {
		reg = registry.Default()
	}
	f := &Factory{reg: reg}
	for _, opt := range opts {
		opt(f)
	}

	img := &Image{Engine: f.engine}
	f.builtins = map[string]Extractor{
		"txt":  &Text{Reader: f.textReader},
		"csv":  &CSV{Reader: f.textReader},
		"docx": Docx{},
		"pdf":  &PDF{Raster: f.raster, Engine: f.engine},
		"png":  img,
		"jpg":  img,
		"webp": img,
	}
	return f
}

// Select resolves path (or the MIME hint, which takes precedence) to a
// format tag and returns the extractor for it: the built-in one when the
// tag is compiled in, otherwise the registry's sync extractor.
func (f *Factory) Select(path, mimeType string) (Extractor, error) {
	tag, err := filetype.Resolve(path, mimeType, f.reg)
	if err != nil {
		return nil, err
	}
	if ext, ok := f.builtins[tag]; ok {
		return ext, nil
	}
	if ext, ok := f.reg.Sync(tag); ok {
		return ext, nil
	}
	return nil, &NoExtractorError{Tag: tag}
}

// Extract is the blocking one-call entry point.
func (f *Factory) Extract(path string) (model.Result, error) {
	ext, err := f.Select(path, "")
	if err != nil {
		return model.Result{}, err
	}
	return ext.Extract(path)
}
