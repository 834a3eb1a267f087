package deriv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-xps/internal/testutil"
)

func TestGradientUniform(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1, 4, 9, 16}

	got, err := Gradient(x, y)
	if err != nil {
		t.Fatal(err)
	}
	// Ends one-sided, interior central.
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2, 4, 6, 7}, 1e-12)
}

func TestGradientNonUniformExactForQuadratic(t *testing.T) {
	x := []float64{0, 0.5, 2, 2.25, 4, 7}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3*v*v - 2*v + 1
	}

	got, err := Gradient(x, y)
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(x)-1; i++ {
		testutil.RequireNearlyEqual(t, "interior", got[i], 6*x[i]-2, 1e-10)
	}
	testutil.RequireNearlyEqual(t, "first", got[0], (y[1]-y[0])/(x[1]-x[0]), 1e-12)
	testutil.RequireNearlyEqual(t, "last", got[5], (y[5]-y[4])/(x[5]-x[4]), 1e-12)
}

func TestGradientDescendingAxis(t *testing.T) {
	x := []float64{4, 3, 2, 1, 0}
	y := []float64{8, 6, 4, 2, 0} // y = 2x

	got, err := Gradient(x, y)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 2, 2, 2, 2}, 1e-12)
}

func TestGradientTwoSamples(t *testing.T) {
	got, err := Gradient([]float64{1, 3}, []float64{5, 9})
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 2}, 0)
}

func TestDifferentiateNegates(t *testing.T) {
	x := []float64{0, 1, 3, 4, 8}
	y := []float64{2, -1, 5, 0, 3}

	g, _ := Gradient(x, y)
	d, err := Differentiate(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for i := range g {
		if d[i] != -g[i] {
			t.Fatalf("index %d: %v != -%v", i, d[i], g[i])
		}
	}
}

func TestDifferentiateConstantIsZero(t *testing.T) {
	x := testutil.Linspace(300, 280, 41)
	y := testutil.DC(1234.5, len(x))

	d, err := Differentiate(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range d {
		if math.Abs(v) > 1e-9 {
			t.Fatalf("index %d: %v, want ~0", i, v)
		}
	}
}

func TestGradientErrors(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want error
	}{
		{name: "mismatch", x: []float64{0, 1, 2}, y: []float64{0, 1}, want: ErrLengthMismatch},
		{name: "single", x: []float64{0}, y: []float64{1}, want: ErrTooShort},
		{name: "empty", x: nil, y: nil, want: ErrTooShort},
		{name: "repeated x", x: []float64{0, 1, 1, 2}, y: []float64{0, 1, 2, 3}, want: ErrZeroSpacing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Gradient(tt.x, tt.y); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
