package extractor

import (
	"fmt"

	"textra/pkg/filetype"
	"textra/pkg/model"
)

// Pending is the handle for an in-flight extraction. The worker runs to
// completion or failure; there is no mid-extraction cancellation.
type Pending struct {
	done chan struct{}
	res  model.Result
	err  error
}

// Wait blocks until the extraction finishes and returns its outcome.
// Wait may be called any number of times.
func (p *Pending) Wait() (model.Result, error) {
	<-p.done
	return p.res, p.err
}

// Done is closed when the extraction has finished.
func (p *Pending) Done() <-chan struct{} { return p.done }

// SelectAsync performs the same selection as Select but consults the
// registry's async table for non-built-in tags.
func (f *Factory) SelectAsync(path, mimeType string) (Extractor, error) {
	tag, err := filetype.Resolve(path, mimeType, f.reg)
	if err != nil {
		return nil, err
	}
	if ext, ok := f.builtins[tag]; ok {
		return ext, nil
	}
	if ext, ok := f.reg.Async(tag); ok {
		return ext, nil
	}
	return nil, &NoExtractorError{Tag: tag}
}

// ExtractAsync offloads extraction onto its own goroutine and returns a
// handle to wait on. Concurrent calls are independent of each other.
func (f *Factory) ExtractAsync(path string) *Pending {
	p := &Pending{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.err = fmt.Errorf("extraction panicked: %v", r)
			}
		}()
		ext, err := f.SelectAsync(path, "")
		if err != nil {
			p.err = err
			return
		}
		p.res, p.err = ext.Extract(path)
	}()
	return p
}
