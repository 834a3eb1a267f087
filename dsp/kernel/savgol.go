package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SavitzkyGolay returns the smoothing coefficients of a Savitzky-Golay
// filter: convolving with them evaluates, at every sample, the least-squares
// polynomial of the given order fitted over the surrounding window.
//
// window must be odd and greater than order.
func SavitzkyGolay(window, order int) ([]float64, error) {
	if err := validateSavGol(window, order); err != nil {
		return nil, err
	}

	half := window / 2
	cols := order + 1

	// Positions are scaled into [-1, 1]; the value fitted at the centre does
	// not depend on the scale and the normal matrix stays well conditioned.
	scale := 1.0
	if half > 0 {
		scale = 1 / float64(half)
	}

	a := mat.NewDense(window, cols, nil)
	for i := 0; i < window; i++ {
		z := float64(i-half) * scale
		p := 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, p)
			p *= z
		}
	}

	// c = A (AᵀA)⁻¹ e₀
	var ata mat.SymDense
	ata.SymOuterK(1, a.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(&ata); !ok {
		return nil, fmt.Errorf("%w: window %d, order %d", ErrSingularFit, window, order)
	}

	e0 := mat.NewVecDense(cols, nil)
	e0.SetVec(0, 1)

	var x mat.VecDense
	if err := chol.SolveVecTo(&x, e0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularFit, err)
	}

	var c mat.VecDense
	c.MulVec(a, &x)

	out := make([]float64, window)
	for i := range out {
		out[i] = c.AtVec(i)
	}

	return out, nil
}
