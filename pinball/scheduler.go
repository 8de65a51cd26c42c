// Package pinball implements the Pinball variant's Round Scheduler: a
// single-threaded, fixed-latency state machine that feeds each incoming
// syndrome round through the nine stage kernels in the precedence order
// derived in DESIGN.md and accumulates a block correction, complex
// flag, and residual.
package pinball

import (
	"github.com/aknapen/pinball/geometry"
	"github.com/aknapen/pinball/predecoder"
	"github.com/aknapen/pinball/stage"
	"github.com/aknapen/pinball/syndrome"
)

// Scheduler is the Pinball decoder's per-block state machine. It
// implements predecoder.Decoder.
type Scheduler struct {
	cat *geometry.Catalog

	prevRound *syndrome.Round
	counter   int

	blockCorrection *syndrome.DataMask
	residual        *syndrome.Round
}

// NewScheduler builds a Scheduler for the given code distance.
func NewScheduler(codeDistance int) (*Scheduler, error) {
	cat, err := geometry.ForDistance(codeDistance)
	if err != nil {
		return nil, err
	}
	s := &Scheduler{cat: cat}
	s.Reset()
	return s, nil
}

// Reset clears all per-block state, starting a fresh block.
func (s *Scheduler) Reset() {
	s.prevRound = syndrome.NewRound(s.cat.R, s.cat.C)
	s.counter = 0
	s.blockCorrection = syndrome.NewDataMask(s.cat.D)
	s.residual = syndrome.NewRound(s.cat.R, s.cat.C)
}

// Decode advances the scheduler by one syndrome measurement round.
func (s *Scheduler) Decode(curr *syndrome.Round, roundIndex int) error {
	if roundIndex != s.counter {
		return predecoder.ErrRoundOutOfOrder
	}
	if curr.Rows != s.cat.R || curr.Cols != s.cat.C {
		return predecoder.ErrRoundShape
	}

	// Precedence order 6,7,8,1,2,3,4,5 — see DESIGN.md: the cross-round
	// spacetime/hook stages must claim their ancillas before the
	// narrower same-position measurement stage gets a chance, or a
	// genuine hook/spacetime event collapses into two independent
	// (and uncorrected) measurement-error explanations.
	r6 := stage.SpacetimeTopRight(s.cat, curr, s.prevRound)
	r7 := stage.SpacetimeTopLeft(s.cat, r6.Curr, r6.Prev)
	r8 := stage.Hook(s.cat, r7.Curr, r7.Prev)
	r1 := stage.Measurement(s.cat, r8.Curr, r8.Prev)

	bulkCurr := r1.Curr
	b2 := stage.BulkTopRight(s.cat, bulkCurr)
	b3 := stage.BulkBottomRight(s.cat, b2.Curr)
	b4 := stage.BulkBottomLeft(s.cat, b3.Curr)
	b5 := stage.BulkTopLeft(s.cat, b4.Curr)

	postStage8Curr := b5.Curr
	postStage8Prev := r1.Prev

	for _, m := range []*syndrome.DataMask{r6.Mask, r7.Mask, r8.Mask, r1.Mask, b2.Mask, b3.Mask, b4.Mask, b5.Mask} {
		s.blockCorrection.XORInto(m)
	}

	prevEdgeOut, prevEdgeMask := stage.Edge(s.cat, postStage8Prev)
	s.blockCorrection.XORInto(prevEdgeMask)
	s.residual.OrInto(prevEdgeOut)

	isFinalRound := roundIndex == s.cat.D-1
	if isFinalRound {
		currEdgeOut, currEdgeMask := stage.Edge(s.cat, postStage8Curr)
		s.blockCorrection.XORInto(currEdgeMask)
		s.residual.OrInto(currEdgeOut)
	}

	s.prevRound = postStage8Curr
	s.counter++
	return nil
}

// BlockCorrection returns the XOR-accumulated correction mask built up
// across the block so far.
func (s *Scheduler) BlockCorrection() *syndrome.DataMask {
	return s.blockCorrection.Clone()
}

// ComplexFlag reports whether any residual syndrome so far requires a
// downstream matching decoder.
func (s *Scheduler) ComplexFlag() bool {
	return s.residual.AnySet()
}

// Residual exposes the accumulated, unresolved syndrome for a
// downstream matching decoder.
func (s *Scheduler) Residual() *syndrome.Round {
	return s.residual.Clone()
}
