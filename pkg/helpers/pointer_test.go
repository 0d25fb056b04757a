package helpers

import "testing"

func TestValue(t *testing.T) {
	if got := Value[string](nil); got != "" {
		t.Fatalf("Value(nil) = %q, want zero", got)
	}
	if got := Value(Ptr("x")); got != "x" {
		t.Fatalf("Value = %q, want x", got)
	}
}

func TestClone(t *testing.T) {
	if Clone[int](nil) != nil {
		t.Fatalf("Clone(nil) should be nil")
	}
	orig := Ptr(3)
	c := Clone(orig)
	*c = 4
	if *orig != 3 {
		t.Fatalf("Clone shares storage with original")
	}
}
