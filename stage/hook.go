package stage

import (
	"github.com/aknapen/pinball/geometry"
	"github.com/aknapen/pinball/leaf"
	"github.com/aknapen/pinball/syndrome"
)

// Hook is stage 8: a width-2 cross-round correction for detector pairs
// two rows apart. Checked bidirectionally — either round may hold the
// "upper" detector of the pair — so a hook error's signature is
// recognized regardless of which round it surfaces in first (see
// DESIGN.md).
func Hook(cat *geometry.Catalog, curr, prev *syndrome.Round) Result {
	outCurr := curr.Clone()
	outPrev := prev.Clone()
	mask := syndrome.NewDataMask(cat.D)
	claims := newClaimTracker(cat.D)

	for _, h := range cat.Stage8 {
		upper, lower := h.Row, h.Row-2
		forward, _, _ := leaf.Fire(outCurr.Get(upper, h.Col), outPrev.Get(lower, h.Col))
		backward, _, _ := leaf.Fire(outPrev.Get(upper, h.Col), outCurr.Get(lower, h.Col))
		if !forward && !backward {
			continue
		}
		dq1, dq2 := [2]int{h.DQRow1, h.DQCol1}, [2]int{h.DQRow2, h.DQCol2}
		if !claims.tryClaim(dq1, dq2) {
			continue
		}
		if forward {
			outCurr.Set(upper, h.Col, false)
			outPrev.Set(lower, h.Col, false)
		}
		if backward {
			outPrev.Set(upper, h.Col, false)
			outCurr.Set(lower, h.Col, false)
		}
		mask.Flip(h.DQRow1, h.DQCol1)
		mask.Flip(h.DQRow2, h.DQCol2)
	}
	return Result{Curr: outCurr, Prev: outPrev, Mask: mask}
}
