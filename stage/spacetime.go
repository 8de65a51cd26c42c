package stage

import (
	"github.com/aknapen/pinball/geometry"
	"github.com/aknapen/pinball/leaf"
	"github.com/aknapen/pinball/syndrome"
)

// applySpacetime runs one cross-round spacetime diagonal stage (6 or 7):
// the center sits on prev, the neighbor one row ahead on curr.
func applySpacetime(cat *geometry.Catalog, curr, prev *syndrome.Round, pairs []geometry.Pair) Result {
	outCurr := curr.Clone()
	outPrev := prev.Clone()
	mask := syndrome.NewDataMask(cat.D)
	claims := newClaimTracker(cat.D)
	for _, p := range pairs {
		center := outPrev.Get(p.CenterRow, p.CenterCol)
		neighbor := outCurr.Get(p.NeighborRow, p.NeighborCol)
		corr, co, no := leaf.Fire(center, neighbor)
		if !corr {
			continue
		}
		if !claims.tryClaim([2]int{p.DQRow, p.DQCol}) {
			continue
		}
		outPrev.Set(p.CenterRow, p.CenterCol, co)
		outCurr.Set(p.NeighborRow, p.NeighborCol, no)
		mask.Flip(p.DQRow, p.DQCol)
	}
	return Result{Curr: outCurr, Prev: outPrev, Mask: mask}
}

// SpacetimeTopRight is stage 6.
func SpacetimeTopRight(cat *geometry.Catalog, curr, prev *syndrome.Round) Result {
	return applySpacetime(cat, curr, prev, cat.Stage6)
}

// SpacetimeTopLeft is stage 7.
func SpacetimeTopLeft(cat *geometry.Catalog, curr, prev *syndrome.Round) Result {
	return applySpacetime(cat, curr, prev, cat.Stage7)
}
