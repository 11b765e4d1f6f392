package quality_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/measure/quality"
)

func ExampleSNR() {
	x := []float64{1, 2, 3, 4}

	// Identical signals saturate at the 100 dB ceiling.
	fmt.Println(quality.SNR(x, x))
	// Output: 100
}
