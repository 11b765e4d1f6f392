package savgol_test

import (
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-denoise/dsp/denoise/savgol"
	"github.com/cwbudde/algo-denoise/internal/testutil"
)

// TestProcessAttenuatesHighBand verifies the smoothing behavior in the
// frequency domain: filtering a noisy low-frequency sine must remove most
// of the power in the upper half of the spectrum.
func TestProcessAttenuatesHighBand(t *testing.T) {
	const n = 1024

	clean := testutil.DeterministicSine(0.02, 1, n)
	noise := testutil.DeterministicNoise(42, 0.5, n)

	noisy := make([]float64, n)
	for i := range noisy {
		noisy[i] = clean[i] + noise[i]
	}

	f, err := savgol.New(11, 2)
	if err != nil {
		t.Fatal(err)
	}

	filtered := f.Process(noisy)
	testutil.RequireFinite(t, filtered)

	rawHigh := highBandPower(t, noisy)
	filteredHigh := highBandPower(t, filtered)

	if filteredHigh >= 0.5*rawHigh {
		t.Fatalf("high-band power %g not attenuated below half of %g", filteredHigh, rawHigh)
	}
}

// highBandPower sums the spectral power over the bins between a quarter and
// half of the sample rate.
func highBandPower(t *testing.T, x []float64) float64 {
	t.Helper()

	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		t.Fatal(err)
	}

	in := make([]complex128, len(x))
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(x))
	if err := plan.Forward(out, in); err != nil {
		t.Fatal(err)
	}

	var power float64
	for k := len(x) / 4; k < len(x)/2; k++ {
		re, im := real(out[k]), imag(out[k])
		power += re*re + im*im
	}
	return power
}
