package core

import "testing"

func TestSimpleRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)

	for i := range 100 {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}

	if NewSimpleRNG(0).Next() != NewSimpleRNG(1).Next() {
		t.Error("seed 0 should behave like seed 1")
	}
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(7)

	for range 1000 {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of [0, 1)", f)
		}
		if v := r.Range(-3, 5); v < -3 || v >= 5 {
			t.Fatalf("Range(-3, 5) = %v", v)
		}
		if v := r.Range(5, -3); v < -3 || v >= 5 {
			t.Fatalf("Range(5, -3) = %v", v)
		}
		if v := r.IntRange(2, 4); v < 2 || v > 4 {
			t.Fatalf("IntRange(2, 4) = %d", v)
		}
		if v := r.Intn(3); v < 0 || v >= 3 {
			t.Fatalf("Intn(3) = %d", v)
		}
	}

	if r.Intn(0) != 0 || r.Intn(-4) != 0 {
		t.Error("Intn of a non-positive bound should be 0")
	}
	if r.Range(2, 2) != 2 {
		t.Error("empty range should return its bound")
	}
}
