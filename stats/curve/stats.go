// Package curve summarizes a sampled (x, y) curve before it is measured:
// axis direction and spacing, intensity extrema, moments, and a noise
// estimate used to pick smoothing widths.
package curve

import "math"

// Stats describes one curve.
type Stats struct {
	Length int

	// Axis.
	XFirst     float64
	XLast      float64
	Descending bool
	MinStep    float64 // smallest |x[i+1]-x[i]|
	MaxStep    float64 // largest |x[i+1]-x[i]|
	Monotonic  bool

	// Intensity.
	Mean     float64
	Variance float64 // population
	Skewness float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64
	// Noise is the standard deviation of white noise on y, estimated from
	// second differences so that smooth trends do not contribute.
	Noise float64
}

// Uniform reports whether the x spacing varies by at most tol relative to
// the largest step.
func (s Stats) Uniform(tol float64) bool {
	if s.Length < 2 || s.MaxStep == 0 {
		return false
	}
	return (s.MaxStep-s.MinStep)/s.MaxStep <= tol
}

// SNR returns Range / Noise, or +Inf for a noise-free curve.
func (s Stats) SNR() float64 {
	if s.Noise == 0 {
		return math.Inf(1)
	}
	return s.Range / s.Noise
}

// Describe computes all statistics in a single pass, using Welford's
// online update for the moments. Extra samples in the longer of x and y
// are ignored.
func Describe(x, y []float64) Stats {
	n := min(len(x), len(y))
	if n == 0 {
		return Stats{}
	}

	var (
		mean, m2, m3 float64
		minStep      = math.Inf(1)
		maxStep      float64
		rising       bool
		falling      bool
		sumD2        float64
	)

	st := Stats{
		Length: n,
		XFirst: x[0],
		XLast:  x[n-1],
		Min:    y[0],
		Max:    y[0],
	}

	for i := 0; i < n; i++ {
		v := y[i]

		ni := float64(i + 1)
		delta := v - mean
		deltaN := delta / ni
		term1 := delta * deltaN * float64(i)

		// M3 must be updated before M2.
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if v > st.Max {
			st.Max = v
			st.MaxPos = i
		}
		if v < st.Min {
			st.Min = v
			st.MinPos = i
		}

		if i > 0 {
			step := x[i] - x[i-1]
			switch {
			case step > 0:
				rising = true
			case step < 0:
				falling = true
			}
			a := math.Abs(step)
			minStep = math.Min(minStep, a)
			maxStep = math.Max(maxStep, a)
		}

		if i > 1 {
			d2 := y[i] - 2*y[i-1] + y[i-2]
			sumD2 += d2 * d2
		}
	}

	nf := float64(n)
	st.Mean = mean
	st.Variance = m2 / nf
	if st.Variance > 0 {
		st.Skewness = (m3 / nf) / (st.Variance * math.Sqrt(st.Variance))
	}
	st.Range = st.Max - st.Min

	if n > 1 {
		st.MinStep = minStep
		st.MaxStep = maxStep
		st.Monotonic = rising != falling && minStep > 0
		st.Descending = falling && !rising
	}

	// Var(y[i] - 2y[i-1] + y[i-2]) = 6 sigma^2 for white noise.
	if n > 2 {
		st.Noise = math.Sqrt(sumD2 / float64(n-2) / 6)
	}

	return st
}
