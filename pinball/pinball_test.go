package pinball

import (
	"testing"

	"github.com/aknapen/pinball/predecoder"
	"github.com/aknapen/pinball/syndrome"
)

func TestPinballRegisteredUnderDefaultRegistry(t *testing.T) {
	dec, err := predecoder.Get(predecoder.Pinball, 3)
	if err != nil {
		t.Fatalf("Get(Pinball, 3): %v", err)
	}
	if _, ok := dec.(*Pinball); !ok {
		t.Fatalf("expected *Pinball, got %T", dec)
	}
}

func TestPinballImplementsDecoderRoundTrip(t *testing.T) {
	dec, err := New(3)
	if err != nil {
		t.Fatalf("New(3): %v", err)
	}
	rounds := []*syndrome.Round{
		syndrome.NewRound(4, 1),
		syndrome.NewRound(4, 1),
		syndrome.NewRound(4, 1),
	}
	correction, complex, residual, err := predecoder.DecodeBatch(dec, rounds)
	if err != nil {
		t.Fatalf("DecodeBatch: %v", err)
	}
	if correction.AnySet() || complex || residual.AnySet() {
		t.Fatalf("expected trivial all-zero block, got correction=%v complex=%v residual=%v", correction.Bits(), complex, residual.Bits())
	}
}
