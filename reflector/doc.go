// Package reflector provides the Enigma Umkehrwalze: a fixed, self-inverse
// substitution with no fixed points that turns the signal around between the
// forward and backward rotor passes.
//
// Because Reflect(Reflect(i)) == i and Reflect(i) != i, the whole machine is
// reciprocal and no letter can ever encrypt to itself.
//
// Two historical reflectors ship with the package, B (the default used by
// the machine) and C. Custom reflectors are validated by New.
package reflector
