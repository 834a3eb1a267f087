// Package conv provides linear convolution for smoothing kernels.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, used for kernels up to 64 taps
//   - Overlap-add (OLA): FFT-based block convolution for longer kernels
//
// # Usage
//
//	full, err := conv.Convolve(signal, kernel)             // auto-selects algorithm
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Edge policy
//
// [ModeSame] returns exactly len(signal) samples taken from the centre of the
// full result, starting at index (len(kernel)-1)/2. Everything outside the
// signal is treated as zero: the first and last samples are computed from
// whatever part of the kernel overlaps the data and are not renormalized.
// Kernels longer than the signal are allowed and still yield len(signal)
// samples.
package conv
