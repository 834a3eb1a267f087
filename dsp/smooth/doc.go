// Package smooth applies one of a fixed set of smoothing algorithms to a
// sampled curve.
//
// # Algorithms
//
//   - [Gaussian]: convolution with a unit-sum Gaussian, sigma = width samples
//   - [SavitzkyGolay]: cubic least-squares smoothing over floor(width*10) samples, forced odd
//   - [MovingAverage]: boxcar mean over floor(width*10) samples
//   - [Wiener]: adaptive local-variance filter over floor(width*10) samples
//   - [None]: identity
//
// The width-to-window rules are deterministic: floor(width*10) is computed
// in float64 and truncated, so a width of 0.35 yields a 3-sample window.
//
// # Edge policy
//
// All kernel smoothers produce "same"-length output through
// [github.com/cwbudde/algo-xps/dsp/conv.Same]: samples outside the data are
// zero and the kernel is not renormalized near the ends. A constant input
// therefore droops toward zero over the first and last half-window. The
// Wiener filter computes its local mean and variance the same way.
//
// # Multiple passes
//
// [Passes] folds the smoother over its own output n times. Each pass
// allocates a fresh slice; the caller's input is never written.
//
//	s, err := smooth.New(2.0, smooth.Gaussian)
//	out, err := s.Passes(y, 3)
package smooth
