package savgol

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func BenchmarkProcess(b *testing.B) {
	input := testutil.DeterministicNoise(1, 1, 4096)

	for _, windowSize := range []int{5, 11, 21} {
		b.Run(fmt.Sprintf("window=%d", windowSize), func(b *testing.B) {
			f, err := New(windowSize, 2)
			if err != nil {
				b.Fatal(err)
			}

			for b.Loop() {
				f.Process(input)
			}
		})
	}
}

func BenchmarkDeriveTaps(b *testing.B) {
	for b.Loop() {
		if _, err := deriveTaps(21, 4); err != nil {
			b.Fatal(err)
		}
	}
}
