package mul

// Product computes the naive Cauchy product a*b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short operands. For longer
// operands, use Karatsuba or FFTMul. Operand order does not matter.
func Product[T Coeff](a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyOperand
	}

	dst := make([]T, len(a)+len(b)-1)
	if err := ProductTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// ProductTo computes the naive Cauchy product a*b into a pre-allocated
// destination. dst must have length at least len(a) + len(b) - 1.
//
// Exactly that region of dst is overwritten; prior content is never read
// and slots beyond it are never touched.
func ProductTo[T Coeff](dst, a, b []T) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyOperand
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	need := len(a) + len(b) - 1
	if len(dst) < need {
		return ErrShortDest
	}

	out := dst[:need]
	for i := range out {
		out[i] = 0
	}

	addConvolve(out, b, len(a), func(m int) T { return a[m] })
	return nil
}

// AddProduct accumulates the product a*b into dst: dst += a*b.
// Pre-existing content of dst is preserved and added to; dst must have
// length at least len(a) + len(b) - 1. Operand order does not matter.
func AddProduct[T Coeff](dst, a, b []T) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyOperand
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(dst) < len(a)+len(b)-1 {
		return ErrShortDest
	}

	addConvolve(dst, b, len(a), func(m int) T { return a[m] })
	return nil
}

// AddSumProduct accumulates the fused product (a0+a1)*b into dst without
// materializing the intermediate sum: dst += (a0+a1)*b.
//
// This is the merge primitive of a Karatsuba multiplier: it saves the
// temporary allocation for the pointwise sum a0+a1. a0 and a1 must have
// equal length, which must not exceed len(b); dst must have length at
// least len(a0) + len(b) - 1.
func AddSumProduct[T Coeff](dst, a0, a1, b []T) error {
	if len(a0) == 0 || len(b) == 0 {
		return ErrEmptyOperand
	}
	if len(a0) != len(a1) {
		return ErrLengthMismatch
	}
	if len(a0) > len(b) {
		return ErrOperandOrder
	}
	if len(dst) < len(a0)+len(b)-1 {
		return ErrShortDest
	}

	addConvolve(dst, b, len(a0), func(m int) T { return a0[m] + a1[m] })
	return nil
}

// addConvolve accumulates into dst the Cauchy product of b with the
// length-aLen sequence produced by term. Requires aLen >= 1 and
// aLen <= len(b); dst must hold at least aLen + len(b) - 1 elements.
//
// Output index n receives the sum of term(m)*b[n-m] over all in-bounds
// index pairs. Because the operands differ in length, the valid m range
// changes across three contiguous regions of n; splitting the outer loop
// by region keeps every access in bounds without branches in the inner
// loop:
//
//	ramp-up:    0 <= n <= aDeg        m in [0, n]
//	plateau:    aDeg < n <= bDeg      m in [0, aDeg]
//	ramp-down:  bDeg < n <= aDeg+bDeg m in [n-bDeg, aDeg]
//
// When aLen == len(b) the plateau is empty; when aLen == 1 the ramp-down
// is empty.
func addConvolve[T Coeff](dst, b []T, aLen int, term func(int) T) {
	aDeg := aLen - 1
	bDeg := len(b) - 1

	for n := 0; n <= aDeg; n++ {
		for m := 0; m <= n; m++ {
			dst[n] += term(m) * b[n-m]
		}
	}

	for n := aDeg + 1; n <= bDeg; n++ {
		for m := 0; m <= aDeg; m++ {
			dst[n] += term(m) * b[n-m]
		}
	}

	for n := bDeg + 1; n <= aDeg+bDeg; n++ {
		for m := n - bDeg; m <= aDeg; m++ {
			dst[n] += term(m) * b[n-m]
		}
	}
}
