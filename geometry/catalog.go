// Package geometry builds the Geometry Catalog: the per-distance-d
// adjacency and data-qubit index tables every stage kernel indexes
// into. A Catalog is pure data, computed once per d and safe to share
// read-only across goroutines.
package geometry

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidDistance is returned for a code distance that isn't an odd
// integer ≥ 3 — the rotated surface code's only shape constraint on d.
var ErrInvalidDistance = errors.New("geometry: code distance must be an odd integer >= 3")

// Pair is one (center, neighbor) adjacency entry together with the
// data-qubit position a firing leaf flips.
type Pair struct {
	CenterRow, CenterCol     int
	NeighborRow, NeighborCol int
	DQRow, DQCol             int
}

// HookSite is a stage-8 candidate: two ancilla rows, two rows apart,
// sharing the same column, with the two intermediate data qubits a
// firing leaf flips simultaneously.
type HookSite struct {
	Row, Col             int // the larger of the two rows; the other is Row-2
	DQRow1, DQCol1       int
	DQRow2, DQCol2       int
}

// BoundarySite is a stage-9 candidate: an ancilla at a genuine lattice
// boundary, paired against the artificial always-1 boundary ancilla.
type BoundarySite struct {
	Row, Col     int
	DQRow, DQCol int
}

// Catalog holds every adjacency table for one code distance d.
type Catalog struct {
	D, R, C int

	Stage2 []Pair // bulk top-right, same round
	Stage3 []Pair // bulk bottom-right, same round
	Stage4 []Pair // bulk bottom-left, same round
	Stage5 []Pair // bulk top-left, same round
	Stage6 []Pair // spacetime top-right, curr/prev cross-round
	Stage7 []Pair // spacetime top-left, curr/prev cross-round
	Stage8 []HookSite

	Boundary []BoundarySite
}

var (
	cacheMu sync.RWMutex
	cache   = map[int]*Catalog{}
)

// ForDistance returns the memoized Catalog for code distance d, building
// and caching it on first use.
func ForDistance(d int) (*Catalog, error) {
	if d < 3 || d%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDistance, d)
	}

	cacheMu.RLock()
	if c, ok := cache[d]; ok {
		cacheMu.RUnlock()
		return c, nil
	}
	cacheMu.RUnlock()

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if c, ok := cache[d]; ok {
		return c, nil
	}
	c := build(d)
	cache[d] = c
	return c, nil
}
