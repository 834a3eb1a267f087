// Package dparam measures the D-parameter of a spectrum.
//
// The D-parameter is the x distance between the global minimum and the
// global maximum of the normalized negative derivative of a curve, usually
// an XPS core-level spectrum plotted against binding energy. [Run] executes
// the fixed pipeline
//
//	smooth(pre) -> differentiate -> smooth(post) -> normalize -> locate
//
// and returns a [Result]. Each stage is exported on its own as well:
// smoothing lives in package smooth, differentiation in package deriv, and
// [Normalize] and [Locate] are defined here.
//
// Everything is validated before any computation starts. Failures are
// reported through the sentinel errors [ErrInvalidInput],
// [ErrInvalidParameter], [ErrUnsupportedAlgorithm] and [ErrDegenerateRange];
// no result is returned alongside an error.
//
// Run holds no state between calls, so independent signals can be
// measured concurrently. [RunBatch] does that with a bounded worker pool.
package dparam
