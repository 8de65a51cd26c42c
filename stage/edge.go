package stage

import (
	"github.com/aknapen/pinball/geometry"
	"github.com/aknapen/pinball/leaf"
	"github.com/aknapen/pinball/syndrome"
)

// Edge is stage 9: each boundary ancilla is paired against an
// artificial, always-set boundary detector. It operates on a single
// round array — callers run it on the previous-round side every
// round (to surface residual for ComplexFlag) and, on the final round of
// a block, additionally on the current-round side (the final-round edge
// correction, since there is no next round left to carry it forward).
func Edge(cat *geometry.Catalog, round *syndrome.Round) (out *syndrome.Round, mask *syndrome.DataMask) {
	out = round.Clone()
	mask = syndrome.NewDataMask(cat.D)
	claims := newClaimTracker(cat.D)
	for _, b := range cat.Boundary {
		center := out.Get(b.Row, b.Col)
		const artificialBoundary = true
		corr, co, _ := leaf.Fire(center, artificialBoundary)
		if !corr {
			continue
		}
		if !claims.tryClaim([2]int{b.DQRow, b.DQCol}) {
			continue
		}
		out.Set(b.Row, b.Col, co)
		mask.Flip(b.DQRow, b.DQCol)
	}
	return out, mask
}
