package rotor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvenigma/alphabet"
)

// Sentinel errors for wheel specs and instances.
var (
	// ErrUnknownRotor indicates an ID missing from the catalogue.
	ErrUnknownRotor = errors.New("rotor: unknown rotor")

	// ErrBadWiring indicates a wiring that is not a permutation of A–Z.
	ErrBadWiring = errors.New("rotor: wiring is not a permutation of A-Z")

	// ErrBadNotch indicates a notch outside A–Z.
	ErrBadNotch = errors.New("rotor: notch must be A-Z")

	// ErrRingOutOfRange indicates a ring setting outside 0–25.
	ErrRingOutOfRange = errors.New("rotor: ring setting out of range")

	// ErrPositionOutOfRange indicates a position outside 0–25.
	ErrPositionOutOfRange = errors.New("rotor: position out of range")
)

// ID names a wheel type in the catalogue, e.g. "III".
type ID string

// Spec is an immutable wheel type. The inverse wiring is derived once at
// construction.
type Spec struct {
	name    string
	wiring  [alphabet.Size]int
	inverse [alphabet.Size]int
	notch   int
}

// NewSpec builds a wheel type from a 26-letter wiring and a notch letter.
func NewSpec(name, wiring string, notch rune) (Spec, error) {
	table, err := alphabet.Permutation(wiring)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %s %q: %w", ErrBadWiring, name, wiring, err)
	}
	n, ok := alphabet.Index(notch)
	if !ok {
		return Spec{}, fmt.Errorf("%w: %s %q", ErrBadNotch, name, notch)
	}

	return Spec{
		name:    name,
		wiring:  table,
		inverse: alphabet.Inverse(table),
		notch:   n,
	}, nil
}

// Name returns the wheel type name.
func (s Spec) Name() string { return s.name }

// Notch returns the notch letter.
func (s Spec) Notch() rune { return alphabet.Letter(s.notch) }

// Wiring returns the forward wiring as letters.
func (s Spec) Wiring() string {
	out := make([]rune, alphabet.Size)
	for i, v := range s.wiring {
		out[i] = alphabet.Letter(v)
	}

	return string(out)
}
