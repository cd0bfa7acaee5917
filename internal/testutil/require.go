package testutil

import "testing"

// RequireSliceEqual fails t if got and want differ in length or in any
// coefficient. Integer results are exact; there is no tolerance.
func RequireSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("coefficient %d = %v, want %v", i, got[i], want[i])
		}
	}
}
