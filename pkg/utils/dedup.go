package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"sync"
)

// Deduplicator tracks content hashes so a batch run extracts identical
// documents only once, whatever their paths.
type Deduplicator struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// Seen records hash and reports whether it was already known.
func (d *Deduplicator) Seen(hash string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[hash]; ok {
		return true
	}
	d.seen[hash] = struct{}{}
	return false
}

// SeenFile hashes the file content and reports whether an identical file
// was processed before, recording it if not.
func (d *Deduplicator) SeenFile(path string) (bool, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return false, "", err
	}
	hash := hex.EncodeToString(hasher.Sum(nil))
	return d.Seen(hash), hash, nil
}
