package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-xps/dsp/core"
)

func ExampleRoundTo() {
	fmt.Println(core.RoundTo(1.2345, 2))
	fmt.Println(core.RoundTo(2.675, 2))

	// Output:
	// 1.23
	// 2.67
}
