package utils

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name     string
		v        float64
		min, max float64
		want     float64
	}{
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"inside", 7, 0, 10, 7},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
		{"negative range", -8, -10, -5, -8},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Errorf("%s: Clamp(%v, %v, %v) = %v, want %v", c.name, c.v, c.min, c.max, got, c.want)
		}
	}
}
