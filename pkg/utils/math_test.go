package utils

import "testing"

func TestClamp01(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, c := range cases {
		if got := Clamp01(c.in); got != c.want {
			t.Errorf("Clamp01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.2, 1.5, 0); got != 0.2 {
		t.Errorf("Lerp at t=0 should return a, got %v", got)
	}
	if got := Lerp(0.2, 1.5, 1); got != 1.5 {
		t.Errorf("Lerp at t=1 should return b, got %v", got)
	}
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp midpoint = %v, want 5", got)
	}
	// t за пределами [0,1] зажимается
	if got := Lerp(0, 10, 2); got != 10 {
		t.Errorf("Lerp with t>1 should clamp, got %v", got)
	}
}
