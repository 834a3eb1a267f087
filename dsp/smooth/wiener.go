package smooth

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-xps/dsp/conv"
	"github.com/cwbudde/algo-xps/dsp/kernel"
)

// wiener applies an adaptive Wiener filter over a window of n samples.
//
// With local mean m and local variance v (both same-mode boxcar averages)
// and noise power p = mean(v):
//
//	out = m                          where v <= p
//	out = m + (1 - p/v) * (x - m)    otherwise
func wiener(data []float64, n int) ([]float64, error) {
	box, err := kernel.Boxcar(n)
	if err != nil {
		return nil, err
	}

	mean, err := conv.Same(data, box)
	if err != nil {
		return nil, err
	}

	sq := make([]float64, len(data))
	vecmath.MulBlock(sq, data, data)

	meanSq, err := conv.Same(sq, box)
	if err != nil {
		return nil, err
	}

	variance := make([]float64, len(data))
	for i := range variance {
		variance[i] = meanSq[i] - mean[i]*mean[i]
	}

	noise := floats.Sum(variance) / float64(len(variance))

	out := make([]float64, len(data))
	for i, x := range data {
		v := variance[i]
		if v <= noise {
			out[i] = mean[i]
			continue
		}
		out[i] = mean[i] + (1-noise/v)*(x-mean[i])
	}

	return out, nil
}
