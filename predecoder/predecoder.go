// Package predecoder defines the public facade the Pinball and Clique
// variants implement: a streaming, fixed-latency local predecoder for
// the rotated surface code under circuit-level noise.
package predecoder

import (
	"errors"
	"fmt"

	"github.com/aknapen/pinball/syndrome"
)

// Variant selects which concrete predecoder a Config resolves to.
type Variant string

const (
	Pinball Variant = "pinball"
	Clique  Variant = "clique"
)

// Sentinel errors returned by Config.Validate, the Registry, and the
// Decoder implementations.
var (
	ErrInvalidDistance = errors.New("predecoder: code distance must be an odd integer >= 3")
	ErrUnknownVariant  = errors.New("predecoder: unknown variant")
	ErrRoundOutOfOrder = errors.New("predecoder: round index out of order")
	ErrRoundShape      = errors.New("predecoder: round has the wrong shape for this code distance")
)

// Config carries the two fields that affect the decoding core.
// Harness-only fields (shot count, physical error rate, output paths)
// belong to the calling experiment driver, not this package.
type Config struct {
	CodeDistance int
	Variant      Variant
}

// Validate checks the fields the core actually consumes.
func (c Config) Validate() error {
	if c.CodeDistance < 3 || c.CodeDistance%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDistance, c.CodeDistance)
	}
	switch c.Variant {
	case Pinball, Clique:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
	}
	return nil
}

// Decoder is the interface both variants implement: a streaming round-
// at-a-time decode plus accessors for the block's state. Full-block
// decoding and the logical-error check are the package-level
// DecodeBatch and IsLogicalError functions.
type Decoder interface {
	// Decode processes one syndrome measurement round. roundIndex must
	// be exactly one greater than the previous call's (or zero for the
	// first call in a block); out-of-order calls return
	// ErrRoundOutOfOrder.
	Decode(round *syndrome.Round, roundIndex int) error

	// BlockCorrection returns the XOR-accumulated data-qubit correction
	// mask built up across the block so far.
	BlockCorrection() *syndrome.DataMask

	// ComplexFlag reports whether any residual syndrome so far requires
	// a downstream matching decoder.
	ComplexFlag() bool

	// Residual returns the detector positions this variant could not
	// resolve on its own, for handoff to a downstream matching decoder
	// alongside BlockCorrection.
	Residual() *syndrome.Round

	// Reset clears all per-block state, starting a fresh block.
	Reset()
}

// DecodeBatch feeds a full block of d rounds through d and returns the
// resulting BlockCorrection, ComplexFlag, and Residual, resetting d's
// state first.
func DecodeBatch(d Decoder, rounds []*syndrome.Round) (*syndrome.DataMask, bool, *syndrome.Round, error) {
	d.Reset()
	for i, r := range rounds {
		if err := d.Decode(r, i); err != nil {
			return nil, false, nil, err
		}
	}
	return d.BlockCorrection(), d.ComplexFlag(), d.Residual(), nil
}

// IsLogicalError XORs a block correction against a ground-truth
// data-qubit flip mask and reports whether a flip remains anywhere,
// without modelling the full logical-observable support (left to the
// downstream matching decoder when ComplexFlag is set).
func IsLogicalError(correction, groundTruth *syndrome.DataMask) bool {
	residual := correction.Clone()
	residual.XORInto(groundTruth)
	return residual.AnySet()
}
