package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// A descending axis is produced when stop < start.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// Sigmoid samples a logistic edge rising from low to high, centred on
// center with the given width, at every x.
func Sigmoid(x []float64, low, high, center, width float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = low + (high-low)/(1+math.Exp(-(v-center)/width))
	}
	return out
}

// Gaussian samples an unnormalized peak of the given height at every x.
func Gaussian(x []float64, height, center, sigma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		d := (v - center) / sigma
		out[i] = height * math.Exp(-0.5*d*d)
	}
	return out
}

// Reversed returns a reversed copy of s.
func Reversed(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
