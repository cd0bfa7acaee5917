package mul

import "github.com/cwbudde/algo-poly/internal/buffer"

// Karatsuba multiplies two polynomials with the divide-and-conquer
// Karatsuba algorithm, using the naive kernels below a size threshold.
// Returns a new slice of length len(a) + len(b) - 1.
//
// Asymptotically O(N^1.585) coefficient multiplications versus the naive
// kernel's O(N^2). Operand order does not matter.
func Karatsuba[T Coeff](a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyOperand
	}

	dst := make([]T, len(a)+len(b)-1)
	if err := KaratsubaTo(dst, a, b); err != nil {
		return nil, err
	}
	return dst, nil
}

// KaratsubaTo multiplies two polynomials into a pre-allocated destination.
// dst must have length at least len(a) + len(b) - 1; exactly that region
// is overwritten and nothing beyond it is touched.
func KaratsubaTo[T Coeff](dst, a, b []T) error {
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

	addMul(out, a, b, buffer.NewPool[T]())
	return nil
}

// addMul accumulates a*b into dst. Requires len(a) <= len(b) and
// len(dst) >= len(a) + len(b) - 1.
//
// Small problems go straight to the naive kernel. Unequal lengths are
// reduced to equal-length sub-products by slicing the longer operand
// into shorter-operand-sized chunks and accumulating each chunk product
// into dst at its offset, the same decomposition the overlap-add method
// applies to long signals.
func addMul[T Coeff](dst, a, b []T, p *buffer.Pool[T]) {
	if len(a) <= karatsubaThreshold {
		addConvolve(dst, b, len(a), func(m int) T { return a[m] })
		return
	}

	if len(a) < len(b) {
		for off := 0; off < len(b); off += len(a) {
			end := off + len(a)
			if end > len(b) {
				end = len(b)
			}
			chunk := b[off:end]
			if len(chunk) < len(a) {
				// Tail chunk: roles swap, the chunk is now shorter.
				addMul(dst[off:], chunk, a, p)
			} else {
				addMulEqual(dst[off:], a, chunk, p)
			}
		}
		return
	}

	addMulEqual(dst, a, b, p)
}

// addMulEqual accumulates a*b into dst for equal-length operands via one
// Karatsuba step. With a = a0 + a1*x^k and b = b0 + b1*x^k:
//
//	a*b = z0 + (z1 - z0 - z2)*x^k + z2*x^2k
//
// where z0 = a0*b0, z2 = a1*b1 and z1 = (a0+a1)*(b0+b1). Only three
// sub-products instead of four; the middle band is corrected by
// subtracting z0 and z2 with the scaled-add kernel.
func addMulEqual[T Coeff](dst, a, b []T, p *buffer.Pool[T]) {
	n := len(a)
	k := n / 2
	h := n - k // high-half length; h == k+1 when n is odd

	a0, a1 := a[:k], a[k:]
	b0, b1 := b[:k], b[k:]

	z0 := p.Get(2*k - 1)
	z2 := p.Get(2*h - 1)
	z1 := p.Get(2*h - 1)

	// sb = b0 + b1, padded to the high-half length.
	sb := p.Get(h)
	copy(sb.Coeffs(), b1)
	addInto(sb.Coeffs(), b0)

	addMul(z0.Coeffs(), a0, b0, p)
	addMul(z2.Coeffs(), a1, b1, p)

	if k == h && h <= karatsubaThreshold {
		// Even split at the recursion base: the fused kernel computes
		// z1 += (a0+a1)*sb without materializing the sum a0+a1.
		addConvolve(z1.Coeffs(), sb.Coeffs(), k, func(m int) T { return a0[m] + a1[m] })
	} else {
		sa := p.Get(h)
		copy(sa.Coeffs(), a1)
		addInto(sa.Coeffs(), a0)
		addMul(z1.Coeffs(), sa.Coeffs(), sb.Coeffs(), p)
		p.Put(sa)
	}

	addInto(dst, z0.Coeffs())
	addInto(dst[2*k:], z2.Coeffs())
	addInto(dst[k:], z1.Coeffs())
	scaledAdd(dst[k:], z0.Coeffs(), -1)
	scaledAdd(dst[k:], z2.Coeffs(), -1)

	p.Put(z0)
	p.Put(z2)
	p.Put(z1)
	p.Put(sb)
}
