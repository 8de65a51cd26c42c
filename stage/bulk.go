package stage

import (
	"github.com/aknapen/pinball/geometry"
	"github.com/aknapen/pinball/leaf"
	"github.com/aknapen/pinball/syndrome"
)

// applyBulk runs one same-round bulk stage (2-5): both center and
// neighbor live in curr, from pairs already filtered to in-bounds
// lattice positions by the Geometry Catalog.
func applyBulk(cat *geometry.Catalog, curr *syndrome.Round, pairs []geometry.Pair) Result {
	outCurr := curr.Clone()
	mask := syndrome.NewDataMask(cat.D)
	claims := newClaimTracker(cat.D)
	for _, p := range pairs {
		center := outCurr.Get(p.CenterRow, p.CenterCol)
		neighbor := outCurr.Get(p.NeighborRow, p.NeighborCol)
		corr, co, no := leaf.Fire(center, neighbor)
		if !corr {
			continue
		}
		if !claims.tryClaim([2]int{p.DQRow, p.DQCol}) {
			continue
		}
		outCurr.Set(p.CenterRow, p.CenterCol, co)
		outCurr.Set(p.NeighborRow, p.NeighborCol, no)
		mask.Flip(p.DQRow, p.DQCol)
	}
	return Result{Curr: outCurr, Prev: nil, Mask: mask}
}

// BulkTopRight is stage 2.
func BulkTopRight(cat *geometry.Catalog, curr *syndrome.Round) Result {
	return applyBulk(cat, curr, cat.Stage2)
}

// BulkBottomRight is stage 3.
func BulkBottomRight(cat *geometry.Catalog, curr *syndrome.Round) Result {
	return applyBulk(cat, curr, cat.Stage3)
}

// BulkBottomLeft is stage 4.
func BulkBottomLeft(cat *geometry.Catalog, curr *syndrome.Round) Result {
	return applyBulk(cat, curr, cat.Stage4)
}

// BulkTopLeft is stage 5.
func BulkTopLeft(cat *geometry.Catalog, curr *syndrome.Round) Result {
	return applyBulk(cat, curr, cat.Stage5)
}
