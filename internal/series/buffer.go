// Package series keeps a bounded rolling history of bars per symbol.
package series

import (
	"sort"
	"sync"

	"github.com/rxtech-lab/argo-signal/internal/types"
)

// DefaultMaxBars is the history kept per symbol when no capacity is configured.
const DefaultMaxBars = 1000

// Buffer stores the most recent bars of each symbol, oldest first.
// Once a symbol holds maxSize bars the oldest bar is evicted on every append.
//
// Snapshot hands out copies, so a series given to a strategy never changes
// while the buffer keeps receiving bars.
type Buffer struct {
	maxSize int
	data    map[string][]types.PriceBar
	mu      sync.RWMutex
}

// NewBuffer creates a Buffer holding up to maxSize bars per symbol.
// A non-positive maxSize falls back to DefaultMaxBars.
func NewBuffer(maxSize int) *Buffer {
	if maxSize <= 0 {
		maxSize = DefaultMaxBars
	}

	return &Buffer{
		maxSize: maxSize,
		data:    make(map[string][]types.PriceBar),
		mu:      sync.RWMutex{},
	}
}

// Capacity returns the per-symbol capacity.
func (b *Buffer) Capacity() int {
	return b.maxSize
}

// Append adds a bar to its symbol's history.
// A bar with the same time as a stored bar replaces it.
func (b *Buffer) Append(bar types.PriceBar) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bars := b.data[bar.Symbol]

	// chronological append is the common case
	if len(bars) == 0 || bar.Time.After(bars[len(bars)-1].Time) {
		b.data[bar.Symbol] = b.evict(append(bars, bar))

		return
	}

	idx := sort.Search(len(bars), func(i int) bool {
		return !bars[i].Time.Before(bar.Time)
	})

	if idx < len(bars) && bars[idx].Time.Equal(bar.Time) {
		bars[idx] = bar

		return
	}

	bars = append(bars, types.PriceBar{}) //nolint:exhaustruct // placeholder for slice expansion
	copy(bars[idx+1:], bars[idx:])
	bars[idx] = bar

	b.data[bar.Symbol] = b.evict(bars)
}

// AppendAll appends bars in order.
func (b *Buffer) AppendAll(bars []types.PriceBar) {
	for _, bar := range bars {
		b.Append(bar)
	}
}

// Snapshot returns a copy of symbol's history, oldest first.
func (b *Buffer) Snapshot(symbol string) []types.PriceBar {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bars := b.data[symbol]
	out := make([]types.PriceBar, len(bars))
	copy(out, bars)

	return out
}

// Len returns the number of bars held for symbol.
func (b *Buffer) Len(symbol string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.data[symbol])
}

// Symbols returns the buffered symbols in sorted order.
func (b *Buffer) Symbols() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	symbols := make([]string, 0, len(b.data))
	for symbol := range b.data {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	return symbols
}

func (b *Buffer) evict(bars []types.PriceBar) []types.PriceBar {
	if len(bars) <= b.maxSize {
		return bars
	}

	// copy down so the dropped prefix does not pin the backing array forever
	kept := make([]types.PriceBar, b.maxSize, b.maxSize+1)
	copy(kept, bars[len(bars)-b.maxSize:])

	return kept
}
