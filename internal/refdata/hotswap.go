package refdata

import (
	"sync"

	"github.com/paulmach/orb"

	"github.com/glennballman/Community-Canvas-sub001/internal/cascade"
	"github.com/glennballman/Community-Canvas-sub001/internal/proximity"
)

// HotSwap serves queries from a snapshot that can be replaced atomically
// when configuration or datasets are reloaded. The whole snapshot swaps as
// one reference; an in-flight read always sees either the old structure or
// the new one, never a partial update.
type HotSwap struct {
	mu      sync.RWMutex
	current *Snapshot
}

func NewHotSwap(initial *Snapshot) *HotSwap {
	return &HotSwap{current: initial}
}

// Swap replaces the served snapshot.
func (h *HotSwap) Swap(next *Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = next
}

// Snapshot returns the currently served snapshot.
func (h *HotSwap) Snapshot() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// ResolveSources delegates to the current snapshot.
func (h *HotSwap) ResolveSources(municipalityName string) cascade.Result {
	return h.Snapshot().ResolveSources(municipalityName)
}

// Nearest delegates to the current snapshot.
func (h *HotSwap) Nearest(dataset string, origin orb.Point, opts proximity.Options) ([]proximity.Hit[proximity.Locatable], error) {
	return h.Snapshot().Nearest(dataset, origin, opts)
}
