// Package registry implements the process-wide catalog of plugin-supplied
// extractors. Extractors register under a format tag together with the file
// extensions and MIME types they claim; later registrations silently replace
// earlier ones (last write wins), which is also how tests override entries.
package registry

import (
	"os"
	"path/filepath"
	"plugin"
	"sort"
	"strings"
	"sync"

	"textra/pkg/model"
)

// EntryPoint is the well-known symbol a plugin shared object must export:
//
//	func RegisterExtractors(r *registry.Registry)
const EntryPoint = "RegisterExtractors"

// Extractor is the contract a plugin extractor fulfills. It is structurally
// identical to the built-in extractor interface so plugin implementations
// slot into the same dispatch table.
type Extractor interface {
	Extract(path string) (model.Result, error)
}

// Registry maps format tags to extractors and extensions/MIME types to
// format tags. All methods are safe for concurrent use; a single coarse
// lock is enough since registration is rare next to lookups.
type Registry struct {
	mu         sync.RWMutex
	syncTab    map[string]Extractor
	asyncTab   map[string]Extractor
	extensions map[string]string
	mimeTypes  map[string]string
}

// New returns an empty registry. Construct one per test; production code
// usually shares Default().
func New() *Registry {
	return &Registry{
		syncTab:    make(map[string]Extractor),
		asyncTab:   make(map[string]Extractor),
		extensions: make(map[string]string),
		mimeTypes:  make(map[string]string),
	}
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared process-wide registry, created on first use.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = New() })
	return defaultReg
}

// RegisterSync registers an extractor for tag and claims the given
// extensions and MIME types. An existing registration for the tag, or for
// any of the extensions/MIME types, is overwritten.
func (r *Registry) RegisterSync(tag string, ext Extractor, extensions, mimeTypes []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncTab[tag] = ext
	r.claim(tag, extensions, mimeTypes)
}

// RegisterAsync registers an extractor for tag in the async table, used by
// the non-blocking dispatch variant. Extension and MIME claims are shared
// with sync registrations.
func (r *Registry) RegisterAsync(tag string, ext Extractor, extensions, mimeTypes []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.asyncTab[tag] = ext
	r.claim(tag, extensions, mimeTypes)
}

func (r *Registry) claim(tag string, extensions, mimeTypes []string) {
	for _, e := range extensions {
		r.extensions[strings.ToLower(e)] = tag
	}
	for _, m := range mimeTypes {
		r.mimeTypes[m] = tag
	}
}

// Sync returns the sync extractor registered for tag, if any.
func (r *Registry) Sync(tag string) (Extractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ext, ok := r.syncTab[tag]
	return ext, ok
}

// Async returns the async extractor registered for tag, if any.
func (r *Registry) Async(tag string) (Extractor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ext, ok := r.asyncTab[tag]
	return ext, ok
}

// ResolveExtension maps a lower-cased file extension (with leading dot) to
// the format tag that claimed it.
func (r *Registry) ResolveExtension(ext string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag, ok := r.extensions[strings.ToLower(ext)]
	return tag, ok
}

// ResolveMime maps a MIME type to the format tag that claimed it.
func (r *Registry) ResolveMime(mime string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag, ok := r.mimeTypes[mime]
	return tag, ok
}

// Registrations lists every registered tag with the extensions and MIME
// types currently mapped to it, for introspection.
func (r *Registry) Registrations() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string)
	for tag := range r.syncTab {
		out[tag] = nil
	}
	for tag := range r.asyncTab {
		out[tag] = nil
	}
	for tag := range out {
		var claims []string
		for ext, t := range r.extensions {
			if t == tag {
				claims = append(claims, ext)
			}
		}
		for mime, t := range r.mimeTypes {
			if t == tag {
				claims = append(claims, mime)
			}
		}
		sort.Strings(claims)
		out[tag] = claims
	}
	return out
}

// LoadFromFile loads a plugin shared object and invokes its RegisterExtractors
// entry point with this registry. Loading is best effort: a missing file, a
// missing or mistyped symbol, or a panic inside the entry point all yield
// false and never propagate, so one bad plugin cannot abort a batch load.
func (r *Registry) LoadFromFile(path string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	p, err := plugin.Open(path)
	if err != nil {
		return false
	}
	sym, err := p.Lookup(EntryPoint)
	if err != nil {
		return false
	}
	register, valid := sym.(func(*Registry))
	if !valid {
		return false
	}
	register(r)
	return true
}

// LoadFromDirectory loads every plugin object directly inside dir
// (non-recursive), skipping names with the reserved "__" prefix, and returns
// how many loaded successfully. A missing or non-directory path counts as
// zero plugins, not an error.
func (r *Registry) LoadFromDirectory(dir string) int {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return 0
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	loaded := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "__") {
			continue
		}
		if filepath.Ext(name) != ".so" {
			continue
		}
		if r.LoadFromFile(filepath.Join(dir, name)) {
			loaded++
		}
	}
	return loaded
}
