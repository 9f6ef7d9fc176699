package alphabet

import (
	"errors"
	"fmt"
)

// Size is the number of symbols in the alphabet.
const Size = 26

// Letters is the alphabet in index order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Sentinel errors for letter and wiring parsing.
var (
	// ErrNotALetter indicates a rune outside A–Z where a letter was required.
	ErrNotALetter = errors.New("alphabet: not a letter A-Z")

	// ErrNotPermutation indicates a wiring of the wrong length or with a
	// repeated letter.
	ErrNotPermutation = errors.New("alphabet: not a permutation of A-Z")
)

// Mod returns a modulo n in the range [0, n) for any sign of a.
// n must be positive.
//
// Example:
//
//	Mod(-1, 26) == 25
//	Mod(27, 26) == 1
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// IsLetter reports whether r is one of the uppercase letters A–Z.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// Upper maps the ASCII letters a–z onto A–Z. Any other rune is returned as is.
func Upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}

	return r
}

// Index returns the index of r in the alphabet.
// ok is false when r is not an uppercase letter.
func Index(r rune) (int, bool) {
	if !IsLetter(r) {
		return 0, false
	}

	return int(r - 'A'), true
}

// IndexOf is like Index but returns an error wrapping ErrNotALetter.
func IndexOf(r rune) (int, error) {
	i, ok := Index(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotALetter, r)
	}

	return i, nil
}

// Letter returns the letter at index i, reduced modulo Size.
func Letter(i int) rune {
	return rune('A' + Mod(i, Size))
}

// InRange reports whether i is a valid index, 0 ≤ i < Size.
func InRange(i int) bool {
	return i >= 0 && i < Size
}

// Permutation parses a 26-letter wiring string into index form.
// It fails with ErrNotALetter on a foreign rune and with ErrNotPermutation on
// a wrong length or a repeated letter.
func Permutation(wiring string) ([Size]int, error) {
	var table [Size]int
	if len(wiring) != Size {
		return table, fmt.Errorf("%w: length %d", ErrNotPermutation, len(wiring))
	}
	var seen [Size]bool
	for i, r := range wiring {
		idx, err := IndexOf(r)
		if err != nil {
			return table, err
		}
		if seen[idx] {
			return table, fmt.Errorf("%w: %c repeated", ErrNotPermutation, r)
		}
		seen[idx] = true
		table[i] = idx
	}

	return table, nil
}

// Inverse returns the inverse of a permutation table: Inverse(p)[p[i]] == i.
func Inverse(p [Size]int) [Size]int {
	var inv [Size]int
	for i, v := range p {
		inv[v] = i
	}

	return inv
}
