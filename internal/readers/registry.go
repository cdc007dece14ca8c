// Package readers provides a logbook file reader registry for dispatching
// input files to the appropriate format reader.
package readers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Table is the raw tabular content of a logbook export: a header row plus
// data rows, before column resolution.
type Table struct {
	Headers []string
	Rows    [][]string

	// Source and Format identify where the table came from, for reporting.
	Source string
	Format string
}

// Reader is implemented by each file format reader.
type Reader interface {
	// Name returns the reader's unique identifier.
	Name() string

	// Extensions returns the file extensions this reader claims
	// (lowercase, with dot). Used as a fallback when sniffing is
	// inconclusive.
	Extensions() []string

	// Sniff performs a fast content check on the head of the file.
	// Returns true if the file MIGHT be this format (false = skip).
	Sniff(head []byte) bool

	// Priority determines order when multiple readers match.
	// Lower number = checked first.
	Priority() int

	// Read parses the full file content into a Table.
	Read(data []byte) (*Table, error)
}

// Registry holds registered readers ordered for dispatch.
type Registry struct {
	mu      sync.RWMutex
	readers []Reader
	sorted  bool
}

// Global default registry.
var defaultRegistry = &Registry{}

// Default returns the global registry instance.
func Default() *Registry { return defaultRegistry }

// Register adds a reader to the default registry.
// Called during init() in each reader package.
func Register(r Reader) { defaultRegistry.Register(r) }

// Register adds a reader to the registry.
func (reg *Registry) Register(r Reader) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.readers = append(reg.readers, r)
	reg.sorted = false
}

func (reg *Registry) sortLocked() {
	if reg.sorted {
		return
	}
	sort.SliceStable(reg.readers, func(i, j int) bool {
		return reg.readers[i].Priority() < reg.readers[j].Priority()
	})
	reg.sorted = true
}

// Detect picks the reader for a file: content sniffing first, extension
// match as fallback. Returns nil when no reader claims the file.
func (reg *Registry) Detect(path string, head []byte) Reader {
	reg.mu.Lock()
	reg.sortLocked()
	reg.mu.Unlock()

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	for _, r := range reg.readers {
		if r.Sniff(head) {
			return r
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, r := range reg.readers {
		for _, e := range r.Extensions() {
			if e == ext {
				return r
			}
		}
	}
	return nil
}

// Open reads a logbook file from disk and parses it with the detected
// reader.
func (reg *Registry) Open(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading logbook file: %w", err)
	}

	head := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 && i < 4096 {
		head = data[:i]
	} else if len(head) > 4096 {
		head = head[:4096]
	}

	r := reg.Detect(path, head)
	if r == nil {
		return nil, fmt.Errorf("no reader recognises %s", filepath.Base(path))
	}

	table, err := r.Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s reader: %w", r.Name(), err)
	}
	table.Source = path
	table.Format = r.Name()
	return table, nil
}

// Open parses a logbook file using the default registry.
func Open(path string) (*Table, error) { return defaultRegistry.Open(path) }
