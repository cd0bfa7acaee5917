package testutil

import "testing"

func TestRandPolyDeterministic(t *testing.T) {
	a := RandPoly(16, 100, 7)
	b := RandPoly(16, 100, 7)
	if !EqualSlices(a, b) {
		t.Fatal("same seed must produce the same polynomial")
	}

	c := RandPoly(16, 100, 8)
	if EqualSlices(a, c) {
		t.Fatal("different seeds should produce different polynomials")
	}

	for i, v := range a {
		if v < -100 || v > 100 {
			t.Fatalf("coefficient %d = %d outside [-100, 100]", i, v)
		}
	}
}

func TestOracleProduct(t *testing.T) {
	got := OracleProduct([]int64{1, 2}, []int64{3, 4, 5})
	want := []int64{3, 10, 13, 10}
	if !EqualSlices(got, want) {
		t.Fatalf("OracleProduct = %v, want %v", got, want)
	}
}

func TestEqualSlices(t *testing.T) {
	if !EqualSlices([]int64{1, 2}, []int64{1, 2}) {
		t.Error("identical slices reported unequal")
	}
	if EqualSlices([]int64{1, 2}, []int64{1, 3}) {
		t.Error("different slices reported equal")
	}
	if EqualSlices([]int64{1, 2}, []int64{1}) {
		t.Error("different lengths reported equal")
	}
}
