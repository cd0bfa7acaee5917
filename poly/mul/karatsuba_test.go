package mul

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-poly/internal/testutil"
)

func TestKaratsubaMatchesNaive(t *testing.T) {
	sizes := []struct{ la, lb int }{
		// Below, at, and just above the naive fallback threshold.
		{1, 1},
		{8, 8},
		{31, 31},
		{32, 32},
		{33, 33},
		// Odd and even split sizes above the threshold.
		{40, 40},
		{41, 41},
		{64, 64},
		{100, 100},
		{129, 129},
		// Unequal lengths, including ragged tail chunks.
		{33, 100},
		{40, 127},
		{64, 65},
		{3, 200},
		{50, 512},
	}

	for i, size := range sizes {
		a := testutil.RandPoly(size.la, 1000, int64(1000+i))
		b := testutil.RandPoly(size.lb, 1000, int64(2000+i))

		want := testutil.OracleProduct(a, b)

		got, err := Karatsuba(a, b)
		if err != nil {
			t.Fatalf("la=%d lb=%d: unexpected error: %v", size.la, size.lb, err)
		}
		testutil.RequireSliceEqual(t, got, want)

		// Operand order is normalized internally.
		swapped, err := Karatsuba(b, a)
		if err != nil {
			t.Fatalf("la=%d lb=%d: unexpected error: %v", size.la, size.lb, err)
		}
		testutil.RequireSliceEqual(t, swapped, want)
	}
}

func TestKaratsubaSizeGrid(t *testing.T) {
	// Sweep a dense grid of length pairs against the oracle so every
	// split parity, threshold crossing, and ragged tail chunk shows up.
	for la := 1; la <= 70; la += 3 {
		for lb := la; lb <= 140; lb += 13 {
			a := testutil.RandPoly(la, 1000, int64(la))
			b := testutil.RandPoly(lb, 1000, int64(1000*la+lb))

			got, err := Karatsuba(a, b)
			if err != nil {
				t.Fatalf("la=%d lb=%d: unexpected error: %v", la, lb, err)
			}
			testutil.RequireSliceEqual(t, got, testutil.OracleProduct(a, b))
		}
	}
}

func TestKaratsubaWraparound(t *testing.T) {
	// The Karatsuba identity holds in any commutative ring, so results
	// must match the naive kernel coefficient-for-coefficient even when
	// the narrow type wraps constantly.
	a := make([]int8, 80)
	b := make([]int8, 80)
	wide := testutil.RandPoly(160, 127, 42)
	for i := range a {
		a[i] = int8(wide[i])
		b[i] = int8(wide[80+i])
	}

	got, err := Karatsuba(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := Product(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Errorf("coefficient %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestKaratsubaTo(t *testing.T) {
	a := testutil.RandPoly(50, 100, 7)
	b := testutil.RandPoly(70, 100, 8)
	need := len(a) + len(b) - 1

	// Oversized destination: slots beyond the result stay untouched,
	// prior content of the result region is ignored.
	dst := make([]int64, need+3)
	for i := range dst {
		dst[i] = 99
	}

	if err := KaratsubaTo(dst, a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceEqual(t, dst[:need], testutil.OracleProduct(a, b))

	for i := need; i < len(dst); i++ {
		if dst[i] != 99 {
			t.Errorf("slot %d beyond the result was touched: %d", i, dst[i])
		}
	}
}

func TestKaratsubaErrors(t *testing.T) {
	_, err := Karatsuba(nil, []int64{1})
	if !errors.Is(err, ErrEmptyOperand) {
		t.Errorf("expected ErrEmptyOperand, got %v", err)
	}

	err = KaratsubaTo(make([]int64, 3), testutil.RandPoly(40, 10, 1), testutil.RandPoly(40, 10, 2))
	if !errors.Is(err, ErrShortDest) {
		t.Errorf("expected ErrShortDest, got %v", err)
	}
}
