// Package lvenigma is a rotor-cipher engine modeled on the three-wheel
// Enigma: a deterministic, stateful, reciprocal substitution cipher over the
// letters A–Z.
//
// 🚀 What is in the box?
//
//	  • alphabet/  - the 26-symbol index space and a negative-safe Mod
//	  • plugboard/ - symmetric letter-pair swaps, applied on both sides
//	  • rotor/     - wheel types I–V, ring settings, stepping and notches
//	  • reflector/ - the involutive turn-around wheels B and C
//	  • enigma/    - the machine: stepping, signal path, key sheets
//
// ✨ Why lvenigma?
//
//   - Reciprocal by construction – the same settings encrypt and decrypt
//   - Fail fast – bad wheels, rings, positions or cables are rejected in New
//   - Owned state – machines never share wheels; reseed with Reset
//   - Pure Go – no cgo; YAML key sheets and slog logging are optional
//
// Quick example:
//
//	cfg := enigma.Config{Rotors: [3]rotor.ID{rotor.I, rotor.II, rotor.III}}
//	c, _ := enigma.Transform(cfg, "HELLO")
//	p, _ := enigma.Transform(cfg, c) // "HELLO"
//
//	go get github.com/katalvlaran/lvenigma
package lvenigma
