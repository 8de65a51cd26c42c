package stage

import (
	"github.com/aknapen/pinball/geometry"
	"github.com/aknapen/pinball/leaf"
	"github.com/aknapen/pinball/syndrome"
)

// Measurement is stage 1: a detector firing at the same ancilla position
// in two consecutive rounds is explained as a single measurement error
// and needs no data-qubit correction.
func Measurement(cat *geometry.Catalog, curr, prev *syndrome.Round) Result {
	outCurr := curr.Clone()
	outPrev := prev.Clone()
	for i := 0; i < cat.R; i++ {
		for j := 0; j < cat.C; j++ {
			_, co, po := leaf.Fire(outCurr.Get(i, j), outPrev.Get(i, j))
			outCurr.Set(i, j, co)
			outPrev.Set(i, j, po)
		}
	}
	return Result{Curr: outCurr, Prev: outPrev, Mask: syndrome.NewDataMask(cat.D)}
}
