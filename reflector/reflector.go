package reflector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvenigma/alphabet"
)

// Sentinel errors for reflector construction and lookup.
var (
	// ErrBadWiring indicates a wiring that is not a permutation of A–Z.
	ErrBadWiring = errors.New("reflector: wiring is not a permutation of A-Z")

	// ErrNotInvolution indicates a wiring that is not self-inverse or maps a
	// letter to itself.
	ErrNotInvolution = errors.New("reflector: wiring is not a fixed-point-free involution")

	// ErrUnknownReflector indicates a name missing from the catalogue.
	ErrUnknownReflector = errors.New("reflector: unknown reflector")
)

// Reflector is an immutable involutive lookup table.
type Reflector struct {
	name  string
	table [alphabet.Size]int
}

// Catalogue reflectors.
var (
	// B is UKW-B, the standard wartime reflector.
	B = mustNew("B", "YRUHQSLDPXNGOKMIEBFZCWVJAT")

	// C is UKW-C.
	C = mustNew("C", "FVPJIAOYEDRZXWGCTKUQSBNMHL")
)

var catalog = map[string]*Reflector{
	B.name: B,
	C.name: C,
}

// New validates wiring and builds a reflector.
func New(name, wiring string) (*Reflector, error) {
	table, err := alphabet.Permutation(wiring)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %w", ErrBadWiring, name, wiring, err)
	}
	for i, v := range table {
		if v == i || table[v] != i {
			return nil, fmt.Errorf("%w: %s at %c", ErrNotInvolution, name, alphabet.Letter(i))
		}
	}

	return &Reflector{name: name, table: table}, nil
}

func mustNew(name, wiring string) *Reflector {
	r, err := New(name, wiring)
	if err != nil {
		panic(err)
	}

	return r
}

// Lookup returns the catalogue reflector called name.
func Lookup(name string) (*Reflector, error) {
	r, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
	}

	return r, nil
}

// Reflect maps a contact index through the reflector.
func (r *Reflector) Reflect(i int) int {
	return r.table[i]
}

// Name returns the reflector name.
func (r *Reflector) Name() string {
	return r.name
}
