// Package plugboard implements the Enigma Steckerbrett: a symmetric,
// pairwise letter-swap table applied at both ends of the signal path.
//
// 🚀 What does it do?
//
//	Each cable joins two sockets. A letter that is cabled comes out as its
//	partner; an uncabled letter passes straight through. Because the table
//	is symmetric the swap is an involution:
//
//	    Swap(Swap(x)) == x   for every letter x
//
// ✨ Key features:
//   - fixed 26-entry lookup table, O(1) per swap
//   - strict construction: letters must be A–Z, no self pairs, no letter in
//     two pairs, at most MaxPairs cables
//   - key-sheet notation parsing ("AB CD EF") via ParsePairs
//   - a table-free Swap(letter, pairs) helper for ad-hoc pair lists
//
// ⚙️ Usage:
//
//	pb, err := plugboard.New(plugboard.Pair{'A', 'B'}, plugboard.Pair{'C', 'D'})
//	if err != nil {
//	  // errors.Is(err, plugboard.ErrDuplicateLetter), …
//	}
//	pb.SwapLetter('A') // 'B'
//	pb.SwapLetter('E') // 'E'
//
// Errors:
//   - ErrInvalidLetter   - a pair contains a rune outside A–Z.
//   - ErrSelfPair        - a pair joins a letter to itself.
//   - ErrDuplicateLetter - a letter appears in more than one pair.
//   - ErrTooManyPairs    - more than MaxPairs pairs.
//   - ErrBadNotation     - ParsePairs met a token that is not two letters.
package plugboard
