package plugboard

import "errors"

// MaxPairs is the largest number of cables a board can hold: 26 sockets / 2.
const MaxPairs = 13

// Sentinel errors for plugboard construction.
var (
	// ErrInvalidLetter indicates a pair member outside A–Z.
	ErrInvalidLetter = errors.New("plugboard: pair letter must be A-Z")

	// ErrSelfPair indicates a pair whose two members are the same letter.
	ErrSelfPair = errors.New("plugboard: letter paired with itself")

	// ErrDuplicateLetter indicates a letter used by more than one pair.
	ErrDuplicateLetter = errors.New("plugboard: letter used in more than one pair")

	// ErrTooManyPairs indicates more than MaxPairs pairs.
	ErrTooManyPairs = errors.New("plugboard: too many pairs")

	// ErrBadNotation indicates a malformed key-sheet token.
	ErrBadNotation = errors.New("plugboard: malformed pair notation")
)

// Pair is an unordered pair of letters joined by one cable.
type Pair [2]rune

// String renders the pair in key-sheet notation, e.g. "AB".
func (p Pair) String() string {
	return string(p[:])
}
