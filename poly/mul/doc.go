// Package mul provides multiplication routines for polynomials with
// fixed-width signed integer coefficients.
//
// A polynomial is represented as a coefficient slice: index i holds the
// coefficient of the i-th power of the indeterminate, so [3, 4, 5] is
// 3 + 4x + 5x². The package offers multiple multiplication strategies:
//
//   - Naive: direct O(N*M) Cauchy product, best for short operands
//   - Karatsuba: divide-and-conquer, asymptotically O(N^1.585)
//   - FFT: floating-point convolution with exact integer rounding,
//     restricted to inputs that fit the float64 exact-integer range
//
// # Usage
//
// For one-shot multiplication, use the simple functions:
//
//	p, err := mul.Mul(a, b)       // Auto-selects naive or Karatsuba
//	p, err := mul.Product(a, b)   // Force the naive kernel
//
// For allocation-free operation, every function has a pre-allocated
// destination variant:
//
//	dst := make([]int64, len(a)+len(b)-1)
//	err := mul.MulTo(dst, a, b)
//
// The accumulating kernels are the building blocks a divide-and-conquer
// multiplier needs; they add into the destination instead of overwriting:
//
//	err := mul.AddProduct(dst, a, b)         // dst += a*b
//	err := mul.AddSumProduct(dst, a0, a1, b) // dst += (a0+a1)*b
//	err := mul.ScaledAdd(dst, a, c)          // dst[i] += c*a[i]
//
// # Algorithm Selection
//
// [Mul] switches from the naive kernel to Karatsuba once the shorter
// operand exceeds 32 coefficients, the point below which the recursion
// overhead outweighs the saved multiplications. [FFTMul] is never selected
// automatically: it is only exact while the largest convolution term fits
// in a float64, so it is an explicit opt-in for long operands with small
// coefficients.
//
// # Overflow
//
// Coefficient arithmetic wraps around on overflow, following Go's defined
// behavior for signed integer types. Callers needing headroom should pick
// a wider coefficient type; the routines are generic over all signed
// integer types.
//
// # Concurrency
//
// All functions are stateless and safe for concurrent use as long as
// destination slices do not overlap with each other or with the operands.
// No aliasing detection is performed.
package mul
