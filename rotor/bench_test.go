package rotor_test

import (
	"testing"

	"github.com/katalvlaran/lvenigma/rotor"
)

// BenchmarkRotor_ForwardBackward measures one round trip through a wheel.
func BenchmarkRotor_ForwardBackward(b *testing.B) {
	spec, err := rotor.Lookup(rotor.I)
	if err != nil {
		b.Fatalf("lookup: %v", err)
	}
	r, err := rotor.New(spec, 3, 7)
	if err != nil {
		b.Fatalf("new: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Backward(r.Forward(i % 26))
	}
}
