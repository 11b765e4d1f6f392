package savgol_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/denoise/savgol"
)

func ExampleNew() {
	// Order 0 degenerates to a plain moving average.
	f, _ := savgol.New(5, 0)

	fmt.Println(f.Name())
	for _, tap := range f.Taps() {
		fmt.Printf("%.2f\n", tap)
	}
	// Output:
	// SavgolFilter_5_0
	// 0.20
	// 0.20
	// 0.20
	// 0.20
	// 0.20
}
