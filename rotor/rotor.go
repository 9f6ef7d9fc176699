// SPDX-License-Identifier: MIT
// Package: lvenigma/rotor
//
// rotor.go - the mutable wheel instance.
//
// Contract:
//   • ring and position are always held in [0, alphabet.Size).
//   • Forward/Backward are pure with respect to the wheel state.
//   • Step is the only mutation besides SetPosition.

package rotor

import (
	"fmt"

	"github.com/katalvlaran/lvenigma/alphabet"
)

// Rotor is one installed wheel. The zero value is not usable; construct
// with New.
type Rotor struct {
	spec     Spec
	ring     int
	position int
}

// New installs spec with the given ring setting and starting position.
// Both must lie in [0, 25].
func New(spec Spec, ring, position int) (Rotor, error) {
	if !alphabet.InRange(ring) {
		return Rotor{}, fmt.Errorf("%w: %s ring %d", ErrRingOutOfRange, spec.name, ring)
	}
	if !alphabet.InRange(position) {
		return Rotor{}, fmt.Errorf("%w: %s position %d", ErrPositionOutOfRange, spec.name, position)
	}

	return Rotor{spec: spec, ring: ring, position: position}, nil
}

// shift is the net rotational offset of the wiring core.
func (r *Rotor) shift() int {
	return r.position - r.ring
}

// Forward maps an entry contact to an exit contact on the way to the reflector.
func (r *Rotor) Forward(i int) int {
	s := r.shift()

	return alphabet.Mod(r.spec.wiring[alphabet.Mod(i+s, alphabet.Size)]-s, alphabet.Size)
}

// Backward maps an entry contact to an exit contact on the way back from the
// reflector. It is the exact inverse of Forward at the same position.
func (r *Rotor) Backward(i int) int {
	s := r.shift()

	return alphabet.Mod(r.spec.inverse[alphabet.Mod(i+s, alphabet.Size)]-s, alphabet.Size)
}

// AtNotch reports whether the wheel sits on its notch letter.
func (r *Rotor) AtNotch() bool {
	return r.position == r.spec.notch
}

// Step advances the wheel by one position.
func (r *Rotor) Step() {
	r.position = alphabet.Mod(r.position+1, alphabet.Size)
}

// Position returns the current position, 0–25.
func (r *Rotor) Position() int { return r.position }

// Ring returns the ring setting, 0–25.
func (r *Rotor) Ring() int { return r.ring }

// Spec returns the wheel type.
func (r *Rotor) Spec() Spec { return r.spec }

// SetPosition moves the wheel to p. The position is unchanged on error.
func (r *Rotor) SetPosition(p int) error {
	if !alphabet.InRange(p) {
		return fmt.Errorf("%w: %s position %d", ErrPositionOutOfRange, r.spec.name, p)
	}
	r.position = p

	return nil
}
