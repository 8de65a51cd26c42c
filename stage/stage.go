// Package stage implements the nine pipeline stage kernels as pure
// functions over a geometry.Catalog and one or two syndrome.Round
// arrays (the bulk stages 2-5 and the edge stage 9 take a single
// round), each producing the updated round(s) plus the data-qubit mask
// it flipped.
package stage

import "github.com/aknapen/pinball/syndrome"

// claimTracker enforces I2 (no data qubit written twice by the same
// stage invocation) defensively: a candidate correction is only applied
// if none of its target cells have already been claimed this stage.
// A conflicting candidate is left unconsumed rather than double-written —
// always sound (P4), since the unconsumed ancilla simply falls through
// to a later stage or to residual.
type claimTracker struct {
	d       int
	claimed []bool
}

func newClaimTracker(d int) *claimTracker {
	return &claimTracker{d: d, claimed: make([]bool, d*d)}
}

func (t *claimTracker) tryClaim(cells ...[2]int) bool {
	for _, c := range cells {
		if t.claimed[c[0]*t.d+c[1]] {
			return false
		}
	}
	for _, c := range cells {
		t.claimed[c[0]*t.d+c[1]] = true
	}
	return true
}

// Result is the output of a single stage application.
type Result struct {
	Curr, Prev *syndrome.Round
	Mask       *syndrome.DataMask
}
