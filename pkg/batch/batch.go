// Package batch walks a directory tree and extracts every supported file.
package batch

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"textra/pkg/extractor"
	"textra/pkg/filetype"
	"textra/pkg/model"
	"textra/pkg/registry"
	"textra/pkg/utils"
)

// Config controls a batch run.
type Config struct {
	// Workers bounds concurrent extractions; minimum 1.
	Workers int
	// Extensions, when non-empty, restricts the run to these extensions
	// (lower-cased, with leading dot).
	Extensions []string
	// SkipDuplicates drops files whose content hash was already extracted.
	SkipDuplicates bool
}

// Entry is the outcome for one file.
type Entry struct {
	Path   string
	Result model.Result
	Err    error
}

// Report aggregates a batch run. Entries are ordered by path.
type Report struct {
	Entries   []Entry
	Skipped   int
	Succeeded int
	Failed    int
}

// Runner extracts all supported files under a root directory with a bounded
// worker pool. Per-file failures land in the report and never abort the walk.
type Runner struct {
	Config  Config
	Factory *extractor.Factory
	Reg     *registry.Registry
	Dedup   *utils.Deduplicator
}

func NewRunner(cfg Config, f *extractor.Factory, reg *registry.Registry) *Runner {
	if reg == nil {
		reg = registry.Default()
	}
	if f == nil {
		f = extractor.New(reg)
	}
	return &Runner{
		Config:  cfg,
		Factory: f,
		Reg:     reg,
		Dedup:   utils.NewDeduplicator(),
	}
}

// Run walks root and extracts every file whose extension resolves to a
// format tag, built-in or plugin-registered.
func (r *Runner) Run(root string) (Report, error) {
	workers := r.Config.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		report Report
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			utils.LogWarning("cannot access %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !r.wanted(path) {
			return nil
		}
		if _, err := filetype.Resolve(path, "", r.Reg); err != nil {
			utils.LogDebug("skipping %s: %v", path, err)
			return nil
		}
		if r.Config.SkipDuplicates {
			seen, _, err := r.Dedup.SeenFile(path)
			if err == nil && seen {
				utils.LogDebug("duplicate content, skipping %s", path)
				mu.Lock()
				report.Skipped++
				mu.Unlock()
				return nil
			}
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := r.Factory.Extract(path)
			mu.Lock()
			defer mu.Unlock()
			report.Entries = append(report.Entries, Entry{Path: path, Result: res, Err: err})
			if err != nil {
				report.Failed++
			} else {
				report.Succeeded++
			}
		}()
		return nil
	})

	wg.Wait()
	sort.Slice(report.Entries, func(i, j int) bool {
		return report.Entries[i].Path < report.Entries[j].Path
	})
	return report, err
}

func (r *Runner) wanted(path string) bool {
	if len(r.Config.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range r.Config.Extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
