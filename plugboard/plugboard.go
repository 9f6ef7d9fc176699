package plugboard

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvenigma/alphabet"
)

// Plugboard is an immutable swap table built from validated pairs.
// The zero value is not usable; construct with New.
type Plugboard struct {
	table [alphabet.Size]int
	pairs []Pair
}

// New validates pairs and builds the swap table.
// Zero pairs yields the identity board.
//
// Validation order: count, then per pair letters, self pair, duplicates.
// Errors wrap one of the package sentinels and name the offending pair.
//
// Complexity: O(len(pairs)) time, O(1) extra space.
func New(pairs ...Pair) (*Plugboard, error) {
	if len(pairs) > MaxPairs {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyPairs, len(pairs), MaxPairs)
	}

	pb := &Plugboard{pairs: make([]Pair, len(pairs))}
	copy(pb.pairs, pairs)
	for i := range pb.table {
		pb.table[i] = i
	}

	var used [alphabet.Size]bool
	for n, p := range pairs {
		a, okA := alphabet.Index(p[0])
		b, okB := alphabet.Index(p[1])
		if !okA || !okB {
			return nil, fmt.Errorf("%w: pair %d %q", ErrInvalidLetter, n, p.String())
		}
		if a == b {
			return nil, fmt.Errorf("%w: pair %d %q", ErrSelfPair, n, p.String())
		}
		if used[a] || used[b] {
			return nil, fmt.Errorf("%w: pair %d %q", ErrDuplicateLetter, n, p.String())
		}
		used[a], used[b] = true, true
		pb.table[a], pb.table[b] = b, a
	}

	return pb, nil
}

// Swap maps a letter index through the board.
// i must be in [0, alphabet.Size).
func (pb *Plugboard) Swap(i int) int {
	return pb.table[i]
}

// SwapLetter maps a letter through the board. Runes outside A–Z are
// returned unchanged.
func (pb *Plugboard) SwapLetter(r rune) rune {
	i, ok := alphabet.Index(r)
	if !ok {
		return r
	}

	return alphabet.Letter(pb.table[i])
}

// Pairs returns a copy of the installed pairs in construction order.
func (pb *Plugboard) Pairs() []Pair {
	out := make([]Pair, len(pb.pairs))
	copy(out, pb.pairs)

	return out
}

// Len returns the number of installed cables.
func (pb *Plugboard) Len() int {
	return len(pb.pairs)
}

// Swap returns the partner of letter in the first pair that contains it, or
// letter itself when no pair does. pairs is not validated: when a letter
// appears in several pairs the first match wins, which can break the
// involution. Use New for a checked board.
func Swap(letter rune, pairs []Pair) rune {
	for _, p := range pairs {
		switch letter {
		case p[0]:
			return p[1]
		case p[1]:
			return p[0]
		}
	}

	return letter
}

// ParsePair parses a single two-letter token such as "AB".
func ParsePair(token string) (Pair, error) {
	rs := []rune(token)
	if len(rs) != 2 {
		return Pair{}, fmt.Errorf("%w: %q", ErrBadNotation, token)
	}

	return Pair{rs[0], rs[1]}, nil
}

// ParsePairs parses key-sheet notation: whitespace separated two-letter
// tokens, e.g. "AB CD EF". Letters are not validated here; pass the result
// to New.
func ParsePairs(s string) ([]Pair, error) {
	fields := strings.Fields(s)
	pairs := make([]Pair, 0, len(fields))
	for _, f := range fields {
		p, err := ParsePair(f)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}
