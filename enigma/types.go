package enigma

import (
	"errors"

	"github.com/katalvlaran/lvenigma/plugboard"
	"github.com/katalvlaran/lvenigma/rotor"
)

// Wheel slots, left to right. Right is closest to the keyboard.
const (
	Left = iota
	Middle
	Right

	// Slots is the number of installed wheels.
	Slots
)

// Sentinel errors for machine construction.
var (
	// ErrConfiguration wraps every construction-time failure. The leaf cause
	// (rotor.ErrUnknownRotor, plugboard.ErrDuplicateLetter, …) stays
	// reachable through errors.Is.
	ErrConfiguration = errors.New("enigma: invalid configuration")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enigma: invalid option supplied")
)

// Config holds the construction parameters of a Machine.
//
// Fields:
//   - Rotors    - catalogue wheels in slot order (left, middle, right).
//   - Positions - starting positions, 0–25, one per slot.
//   - Rings     - ring settings, 0–25, one per slot.
//   - Plugboard - 0 to 13 cables; no letter may appear twice.
type Config struct {
	Rotors    [Slots]rotor.ID
	Positions [Slots]int
	Rings     [Slots]int
	Plugboard []plugboard.Pair
}

// clone returns a copy that shares no memory with c.
func (c Config) clone() Config {
	out := c
	if c.Plugboard != nil {
		out.Plugboard = make([]plugboard.Pair, len(c.Plugboard))
		copy(out.Plugboard, c.Plugboard)
	}

	return out
}
