// Package testutil provides deterministic polynomial generators and
// comparison helpers shared by the arithmetic test suites.
package testutil

import "math/rand"

// RandPoly returns a deterministic pseudo-random polynomial of length n
// with coefficients in [-bound, bound].
func RandPoly(n int, bound, seed int64) []int64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(2*bound+1) - bound
	}
	return out
}

// OracleProduct is the ground-truth polynomial product: a uniform double
// loop with index arithmetic that can never go out of bounds. Test
// subjects are compared against it, never against each other alone.
func OracleProduct(a, b []int64) []int64 {
	dst := make([]int64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
	return dst
}

// EqualSlices reports whether two coefficient slices are identical.
func EqualSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
