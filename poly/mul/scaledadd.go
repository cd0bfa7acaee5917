package mul

// ScaledAdd accumulates a scalar multiple of a into dst:
// dst[i] += c * a[i] for i in [0, len(a)).
// dst must have length at least len(a); slots beyond len(a) are untouched.
func ScaledAdd[T Coeff](dst, a []T, c T) error {
	if len(a) == 0 {
		return ErrEmptyOperand
	}
	if len(dst) < len(a) {
		return ErrShortDest
	}

	scaledAdd(dst, a, c)
	return nil
}

// scaledAdd is the unchecked kernel behind ScaledAdd. The Karatsuba
// driver uses it with c = -1 to subtract partial products from the
// middle band of the result.
func scaledAdd[T Coeff](dst, a []T, c T) {
	for i, v := range a {
		dst[i] += c * v
	}
}

// addInto accumulates src into dst element-wise: dst[i] += src[i].
// dst must hold at least len(src) elements.
func addInto[T Coeff](dst, src []T) {
	for i, v := range src {
		dst[i] += v
	}
}
