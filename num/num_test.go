package num

import (
	"math"
	"testing"
)

func TestAppendHeuristics(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-5, "-5"},
		{3, "3"},
		{2147483647, "2147483647"},
		{-2147483648, "-2147483648"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
		{1e10, "10000000000"},
		{-4e9, "-4000000000"},
		{1e70, "1.000000e+70"},
		{1e-7, "1.000000e-07"},
		{3.5, "3.500000"},
		{123.456, "123.456000"},
		{-0.25, "-0.250000"},
	} {
		if got := string(Append(nil, tc.in)); got != tc.want {
			t.Fatalf("%v: got %s want %s", tc.in, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		f    float64
		n    int
	}{
		{"0", 0, 1},
		{"3.14xyz", 3.14, 4},
		{"-2e3,", -2000, 4},
		{"5.", 5, 2},
		{".5", 0.5, 2},
		{"1e", 1, 1},
		{"1e+", 1, 1},
		{"-17,", -17, 3},
		{"abc", 0, 0},
		{"-", 0, 0},
		{".", 0, 0},
	} {
		f, n := Parse([]byte(tc.in))
		if n != tc.n || f != tc.f {
			t.Fatalf("%q: got (%v, %d) want (%v, %d)", tc.in, f, n, tc.f, tc.n)
		}
	}
}

func TestParseOverflowSaturates(t *testing.T) {
	f, n := Parse([]byte("1e309"))
	if n != 5 || !math.IsInf(f, 1) {
		t.Fatalf("got (%v, %d)", f, n)
	}
}
