package mul

import "errors"

// Coeff is the constraint for polynomial coefficient types: any signed
// integer type. Arithmetic wraps around on overflow.
type Coeff interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Errors returned by multiplication functions.
var (
	ErrEmptyOperand   = errors.New("mul: empty operand")
	ErrShortDest      = errors.New("mul: destination too short")
	ErrLengthMismatch = errors.New("mul: summand length mismatch")
	ErrOperandOrder   = errors.New("mul: summed operand longer than plain operand")
	ErrRange          = errors.New("mul: coefficients exceed exact FFT range")
)

// karatsubaThreshold is the shorter-operand length at which Mul switches
// from the naive kernel to Karatsuba. Below it the recursion overhead
// outweighs the saved coefficient multiplications.
const karatsubaThreshold = 32

// Mul multiplies two polynomials with automatic algorithm selection.
// Returns a new slice of length len(a) + len(b) - 1.
//
// Short operands use the naive Cauchy product; longer ones use Karatsuba.
// Operand order does not matter.
func Mul[T Coeff](a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyOperand
	}

	dst := make([]T, len(a)+len(b)-1)
	if err := MulTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// MulTo multiplies two polynomials into a pre-allocated destination.
// dst must have length at least len(a) + len(b) - 1; only that region is
// written.
func MulTo[T Coeff](dst, a, b []T) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyOperand
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(dst) < len(a)+len(b)-1 {
		return ErrShortDest
	}

	if len(a) <= karatsubaThreshold {
		return ProductTo(dst, a, b)
	}
	return KaratsubaTo(dst, a, b)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
