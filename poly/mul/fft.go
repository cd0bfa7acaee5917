package mul

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftMaxMagnitude bounds the worst-case convolution term so that the
// float64 FFT round-trip recovers every integer coefficient exactly.
// The accumulated FFT rounding error scales with the result magnitude;
// capping it at 2^44 keeps that error well below the 0.5 needed for
// correct rounding, with generous headroom.
const fftMaxMagnitude = float64(1 << 44)

// FFTMul multiplies two polynomials via floating-point FFT convolution,
// rounding the result back to the integer coefficient type.
// Returns a new slice of length len(a) + len(b) - 1.
//
// The call fails with [ErrRange] when the inputs could produce a
// convolution term too large for exact float64 arithmetic; a successful
// FFTMul is therefore always exact. Unlike [Mul], this path is never
// selected automatically because of that input restriction: it is an
// explicit opt-in for long operands with small coefficients.
func FFTMul[T Coeff](a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyOperand
	}

	dst := make([]T, len(a)+len(b)-1)
	if err := FFTMulTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// FFTMulTo multiplies two polynomials via FFT convolution into a
// pre-allocated destination. dst must have length at least
// len(a) + len(b) - 1; exactly that region is overwritten.
func FFTMulTo[T Coeff](dst, a, b []T) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyOperand
	}
	need := len(a) + len(b) - 1
	if len(dst) < need {
		return ErrShortDest
	}

	// Worst-case term: every in-bounds product at peak magnitude.
	peak := maxAbs(a) * maxAbs(b) * float64(min(len(a), len(b)))
	if peak >= fftMaxMagnitude {
		return ErrRange
	}

	size := nextPowerOf2(need)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return fmt.Errorf("mul: failed to create FFT plan: %w", err)
	}

	fa := make([]complex128, size)
	for i, v := range a {
		fa[i] = complex(float64(v), 0)
	}
	fb := make([]complex128, size)
	for i, v := range b {
		fb[i] = complex(float64(v), 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return fmt.Errorf("mul: forward FFT failed: %w", err)
	}
	if err := plan.Forward(fb, fb); err != nil {
		return fmt.Errorf("mul: forward FFT failed: %w", err)
	}

	// Convolution is pointwise multiplication in the frequency domain.
	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return fmt.Errorf("mul: inverse FFT failed: %w", err)
	}

	for i := 0; i < need; i++ {
		dst[i] = T(math.Round(real(fa[i])))
	}
	return nil
}

// maxAbs returns the largest coefficient magnitude as a float64.
func maxAbs[T Coeff](a []T) float64 {
	peak := 0.0
	for _, v := range a {
		if m := math.Abs(float64(v)); m > peak {
			peak = m
		}
	}
	return peak
}
