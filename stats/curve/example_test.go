package curve_test

import (
	"fmt"

	"github.com/cwbudde/algo-xps/stats/curve"
)

func ExampleDescribe() {
	x := []float64{290, 289.5, 289, 288.5, 288}
	y := []float64{100, 120, 400, 900, 950}

	st := curve.Describe(x, y)
	fmt.Printf("descending=%v uniform=%v\n", st.Descending, st.Uniform(1e-9))
	fmt.Printf("min %.0f at %d, max %.0f at %d\n", st.Min, st.MinPos, st.Max, st.MaxPos)

	// Output:
	// descending=true uniform=true
	// min 100 at 0, max 950 at 4
}
