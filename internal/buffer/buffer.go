// Package buffer provides a reusable coefficient buffer type and pool for
// allocation-friendly polynomial arithmetic. The public mul API accepts
// raw coefficient slices; Buffer is an internal convenience that lets the
// Karatsuba recursion reuse scratch space across levels.
package buffer

import "sync"

// Coeff mirrors the coefficient constraint of the mul package.
type Coeff interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Buffer wraps a coefficient slice with reuse-friendly semantics.
type Buffer[T Coeff] struct {
	coeffs []T
}

// New returns a zero-filled Buffer of the given length.
func New[T Coeff](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{coeffs: make([]T, length)}
}

// Coeffs returns the underlying slice.
func (b *Buffer[T]) Coeffs() []T {
	return b.coeffs
}

// Len returns the current number of coefficients.
func (b *Buffer[T]) Len() int {
	return len(b.coeffs)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.coeffs)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.coeffs)
	if n <= cap(b.coeffs) {
		b.coeffs = b.coeffs[:n]
	} else {
		s := make([]T, n)
		copy(s, b.coeffs)
		b.coeffs = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.coeffs[i] = 0
		}
	}
}

// Zero sets all coefficients to 0.
func (b *Buffer[T]) Zero() {
	for i := range b.coeffs {
		b.coeffs[i] = 0
	}
}

// Pool provides sync.Pool-based Buffer reuse so a Karatsuba recursion
// does not allocate fresh scratch at every level.
type Pool[T Coeff] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T Coeff]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
