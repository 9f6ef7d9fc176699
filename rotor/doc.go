// Package rotor models a single Enigma wheel: a substitution permutation with
// its inverse, a fixed ring setting, a rotating position and a notch that
// tells the machine when the neighbouring wheel must advance.
//
// 🚀 Contact arithmetic
//
//	Let s = position − ring. A signal entering on contact i leaves on
//
//	    Forward(i)  = Mod(wiring[Mod(i+s)] − s)
//	    Backward(i) = Mod(inverse[Mod(i+s)] − s)
//
//	so Backward(Forward(i)) == i for every i, position and ring. The
//	machine-level reciprocity of lvenigma rests on this identity.
//
// ✨ Key pieces:
//   - Spec     - immutable wheel type (wiring, derived inverse, notch).
//   - Catalog  - the five Enigma I / M3 wheels I–V, looked up by ID.
//   - Rotor    - a mutable wheel instance owned by exactly one machine.
//
// ⚙️ Usage:
//
//	spec, _ := rotor.Lookup(rotor.III)
//	r, err := rotor.New(spec, 0, 21) // ring A, position V
//	r.AtNotch()  // true: III turns over at V
//	r.Step()     // position W
//
// Rotor is a value type. Copying a Rotor copies its position, so two
// machines never share wheel state.
package rotor
