// Package alphabet defines the canonical 26-symbol index space shared by every
// stage of the lvenigma signal path, plus a modulo helper that stays correct
// for negative operands.
//
// Every wiring table, rotor position and ring setting in the library is an
// index in [0, Size). Letters map to indices by their offset from 'A':
//
//	A=0, B=1, … , Z=25
//
// Only the uppercase ASCII letters A–Z belong to the alphabet. Upper folds the
// lowercase ASCII letters onto them and leaves every other rune alone, so
// callers can normalise input without touching digits, punctuation or
// non-ASCII text.
//
// ⚙️ Usage:
//
//	i, ok := alphabet.Index('Q')   // 16, true
//	r := alphabet.Letter(i + 10)   // 'A' (wraps modulo 26)
//	n := alphabet.Mod(-1, alphabet.Size) // 25
package alphabet
