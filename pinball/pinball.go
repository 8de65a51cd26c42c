package pinball

import (
	"github.com/aknapen/pinball/predecoder"
	"github.com/aknapen/pinball/syndrome"
)

// Pinball adapts a Scheduler to the predecoder.Decoder facade.
type Pinball struct {
	sched *Scheduler
}

// New builds a Pinball decoder for the given code distance.
func New(codeDistance int) (*Pinball, error) {
	sched, err := NewScheduler(codeDistance)
	if err != nil {
		return nil, err
	}
	return &Pinball{sched: sched}, nil
}

func (p *Pinball) Decode(round *syndrome.Round, roundIndex int) error {
	return p.sched.Decode(round, roundIndex)
}

func (p *Pinball) BlockCorrection() *syndrome.DataMask { return p.sched.BlockCorrection() }

func (p *Pinball) ComplexFlag() bool { return p.sched.ComplexFlag() }

func (p *Pinball) Residual() *syndrome.Round { return p.sched.Residual() }

func (p *Pinball) Reset() { p.sched.Reset() }

func init() {
	predecoder.Register(predecoder.Pinball, func(codeDistance int) (predecoder.Decoder, error) {
		return New(codeDistance)
	})
}
