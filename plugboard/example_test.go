package plugboard_test

import (
	"fmt"

	"github.com/katalvlaran/lvenigma/plugboard"
)

// ExampleNew cables a board from key-sheet notation and swaps a few letters.
func ExampleNew() {
	pairs, err := plugboard.ParsePairs("AB CD")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pb, err := plugboard.New(pairs...)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(string(pb.SwapLetter('A')), string(pb.SwapLetter('D')), string(pb.SwapLetter('E')))
	// Output:
	// B C E
}
