package deriv_test

import (
	"fmt"

	"github.com/cwbudde/algo-xps/dsp/deriv"
)

func ExampleDifferentiate() {
	// A rising edge on a descending binding-energy axis.
	x := []float64{4, 3, 2, 1, 0}
	y := []float64{0, 0, 5, 10, 10}

	d, _ := deriv.Differentiate(x, y)
	fmt.Println(d)

	// Output:
	// [0 2.5 5 2.5 0]
}
