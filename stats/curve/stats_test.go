package curve

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-xps/internal/testutil"
)

const tolerance = 1e-10

func TestDescribeEmpty(t *testing.T) {
	st := Describe(nil, nil)
	if st != (Stats{}) {
		t.Fatalf("Describe(nil) = %+v", st)
	}
}

func TestDescribeAxis(t *testing.T) {
	tests := []struct {
		name       string
		x          []float64
		descending bool
		monotonic  bool
		uniform    bool
	}{
		{name: "ascending", x: []float64{0, 1, 2, 3}, monotonic: true, uniform: true},
		{name: "descending", x: []float64{3, 2, 1, 0}, descending: true, monotonic: true, uniform: true},
		{name: "non-uniform", x: []float64{0, 1, 3, 3.5}, monotonic: true},
		{name: "zigzag", x: []float64{0, 2, 1, 3}},
		{name: "repeated", x: []float64{0, 1, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Describe(tt.x, []float64{1, 2, 3, 4})
			if st.Descending != tt.descending || st.Monotonic != tt.monotonic || st.Uniform(1e-9) != tt.uniform {
				t.Fatalf("descending=%v monotonic=%v uniform=%v", st.Descending, st.Monotonic, st.Uniform(1e-9))
			}
		})
	}
}

func TestDescribeIntensity(t *testing.T) {
	y := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	x := testutil.Linspace(10, 3, len(y))

	st := Describe(x, y)

	testutil.RequireNearlyEqual(t, "mean", st.Mean, 5, tolerance)
	testutil.RequireNearlyEqual(t, "variance", st.Variance, 4, tolerance)
	if st.Min != 2 || st.MinPos != 0 || st.Max != 9 || st.MaxPos != 7 || st.Range != 7 {
		t.Fatalf("extrema = %+v", st)
	}
	if st.XFirst != 10 || st.XLast != 3 || !st.Descending {
		t.Fatalf("axis = %+v", st)
	}
	if st.Skewness <= 0 {
		t.Fatalf("skewness = %v, want > 0", st.Skewness)
	}
}

func TestDescribeFirstExtremum(t *testing.T) {
	st := Describe([]float64{0, 1, 2, 3}, []float64{1, 3, 3, 1})
	if st.MaxPos != 1 || st.MinPos != 0 {
		t.Fatalf("positions = %d, %d", st.MinPos, st.MaxPos)
	}
}

func TestNoiseIgnoresLinearTrend(t *testing.T) {
	x := testutil.Linspace(0, 99, 100)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3*v + 20
	}

	st := Describe(x, y)
	if st.Noise > 1e-9 {
		t.Fatalf("noise = %v on a straight line", st.Noise)
	}
	if !math.IsInf(st.SNR(), 1) {
		t.Fatalf("SNR = %v, want +Inf", st.SNR())
	}
}

func TestNoiseEstimate(t *testing.T) {
	x := testutil.Linspace(0, 1, 20000)
	noise := testutil.DeterministicNoise(11, 1, len(x))
	y := testutil.Sigmoid(x, 0, 5, 0.5, 0.1)
	for i := range y {
		y[i] += noise[i]
	}

	st := Describe(x, y)

	// Uniform noise on [-1, 1] has sigma 1/sqrt(3).
	want := 1 / math.Sqrt(3)
	if math.Abs(st.Noise-want)/want > 0.05 {
		t.Fatalf("noise = %v, want ~%v", st.Noise, want)
	}
}

func TestDescribeMismatchedLengths(t *testing.T) {
	st := Describe([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 3})
	if st.Length != 3 || st.XLast != 2 {
		t.Fatalf("Describe = %+v", st)
	}
}
