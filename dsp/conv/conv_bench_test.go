package conv

import (
	"fmt"
	"math"
	"testing"
)

func BenchmarkDirect(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{256, 9},
		{256, 33},
		{1024, 9},
		{1024, 65},
		{4096, 33},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Direct(signal, kernel)
			}
		})
	}
}

func BenchmarkSame(b *testing.B) {
	sizes := []struct {
		signal int
		kernel int
	}{
		{1024, 17},
		{1024, 81},
		{4096, 161},
	}

	for _, size := range sizes {
		signal := makeTestSignal(size.signal)
		kernel := makeTestKernel(size.kernel)

		b.Run(fmt.Sprintf("signal=%d_kernel=%d", size.signal, size.kernel), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Same(signal, kernel)
			}
		})
	}
}

// makeTestSignal builds a noisy-looking spectrum-like curve.
func makeTestSignal(n int) []float64 {
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/100) + 0.5*math.Cos(2*math.Pi*float64(i)/30)
	}
	return signal
}

// makeTestKernel builds a unit-sum Gaussian-like kernel of length n.
func makeTestKernel(n int) []float64 {
	kernel := make([]float64, n)
	center := float64(n-1) / 2
	sigma := float64(n) / 8
	sum := 0.0
	for i := range kernel {
		x := float64(i) - center
		kernel[i] = math.Exp(-0.5 * x * x / (sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
