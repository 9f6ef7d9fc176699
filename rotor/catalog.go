package rotor

import "fmt"

// Catalogue IDs: the Enigma I / M3 wheels.
const (
	I   ID = "I"
	II  ID = "II"
	III ID = "III"
	IV  ID = "IV"
	V   ID = "V"
)

// ordered is the catalogue in numeral order.
var ordered = []ID{I, II, III, IV, V}

var catalog = map[ID]Spec{
	I:   mustSpec(I, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q'),
	II:  mustSpec(II, "AJDKSIRUXBLHWNMOZCQTYGPEFV", 'E'),
	III: mustSpec(III, "BDFHJLCPRTXMVQNKUYGZOIEWSA", 'V'),
	IV:  mustSpec(IV, "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J'),
	V:   mustSpec(V, "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z'),
}

// mustSpec panics on a malformed built-in table.
func mustSpec(id ID, wiring string, notch rune) Spec {
	s, err := NewSpec(string(id), wiring, notch)
	if err != nil {
		panic(err)
	}

	return s
}

// Lookup returns the catalogue spec for id.
func Lookup(id ID) (Spec, error) {
	s, ok := catalog[id]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownRotor, string(id))
	}

	return s, nil
}

// IDs lists the catalogue in numeral order.
func IDs() []ID {
	out := make([]ID, len(ordered))
	copy(out, ordered)

	return out
}
