// Package registry holds the kernel registry for the lanes package.
//
// Backend packages (generic, SSE, ...) register themselves via init()
// functions. The lanes front end looks up the highest-priority entry
// compatible with the detected CPU features, once, at first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered 4-lane kernel backend.
//
// Every field must be populated; the lanes front end selects a single
// entry and routes all operations through it, so partial backends are
// not allowed (unlike block-kernel registries where per-op fallback is
// cheap, a per-op indirection here would dominate 4-lane work).
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// Componentwise binary ops: dst[i] = op(a[i], b[i]).
	Add func(dst, a, b *[4]float32)
	Sub func(dst, a, b *[4]float32)
	Mul func(dst, a, b *[4]float32)
	Div func(dst, a, b *[4]float32)
	Min func(dst, a, b *[4]float32)
	Max func(dst, a, b *[4]float32)

	// Componentwise unary ops.
	Neg func(dst, a *[4]float32)
	Abs func(dst, a *[4]float32)

	// Scale computes dst[i] = a[i] * s.
	Scale func(dst, a *[4]float32, s float32)

	// AddScaled computes dst[i] = a[i] + b[i]*s.
	AddScaled func(dst, a, b *[4]float32, s float32)

	// Dot returns the 4-lane dot product.
	Dot func(a, b *[4]float32) float32

	// Rsqrt returns 1/sqrt(x) within 1e-6 relative error of the exact
	// value. Both backends must honor the same budget; normalization
	// built on top is reproducible across paths only because of this.
	Rsqrt func(x float32) float32
}

// OpRegistry stores available backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds a backend entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features.
// Returns nil only if no compatible backend is registered, which cannot
// happen as long as the generic fallback is linked in.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds two or three entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by
// priority. Intended for tests and the geominfo tool.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
