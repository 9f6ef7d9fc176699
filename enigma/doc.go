// Package enigma assembles plugboard, three rotors and a reflector into a
// reciprocal rotor-cipher machine.
//
// 🚀 What happens on a keypress?
//
//	For every letter A–Z (input is case-folded first):
//	  1. the wheels step:
//	       • if the right wheel sits on its notch, the middle wheel steps;
//	       • if the middle wheel now sits on its notch, the left wheel steps;
//	       • the right wheel always steps;
//	  2. the signal runs
//	       plugboard → right → middle → left → reflector
//	                 → left⁻¹ → middle⁻¹ → right⁻¹ → plugboard
//	Every other byte is copied unchanged and does not move the wheels.
//
//	The plugboard is applied on both sides of the rotor stack. Each stage is
//	an involution or an inverse pair, so two machines built from the same
//	Config undo each other:
//
//	    b.Process(a.Process(p)) == p
//
// ✨ Key features:
//   - strict construction: every bad setting fails in New with
//     ErrConfiguration wrapped around the precise cause
//   - owned wheel state: a Machine never shares rotors with another Machine
//   - read-only state inspection (Positions, Window) and Reset/SetPositions
//     for reseeding without rebuilding
//   - YAML key sheets (Settings) validated with struct tags
//   - optional structured logging through log/slog
//
// ⚙️ Usage:
//
//	cfg := enigma.Config{
//	  Rotors:    [3]rotor.ID{rotor.I, rotor.II, rotor.III},
//	  Positions: [3]int{0, 0, 0},
//	  Rings:     [3]int{0, 0, 0},
//	  Plugboard: []plugboard.Pair{{'A', 'B'}, {'C', 'D'}},
//	}
//	enc, err := enigma.New(cfg)
//	if err != nil {
//	  // errors.Is(err, enigma.ErrConfiguration)
//	}
//	dec, _ := enigma.New(cfg)
//	plain := dec.Process(enc.Process("HELLO")) // "HELLO"
//
// Concurrency: a Machine is sequential state. Use one Machine per goroutine
// and per role; never share an instance between an encrypting and a
// decrypting caller.
package enigma
