package quality_test

import (
	"testing"

	"github.com/cwbudde/algo-denoise/dsp/denoise/median"
	"github.com/cwbudde/algo-denoise/internal/testutil"
	"github.com/cwbudde/algo-denoise/measure/quality"
)

// TestMedianFilterImprovesSNR runs the full evaluation pipeline: corrupt a
// clean reference with isolated spikes, filter, and score the result.
func TestMedianFilterImprovesSNR(t *testing.T) {
	clean := testutil.DeterministicSine(0.02, 1, 256)
	noisy := testutil.WithSpikes(clean, 5, 40, 90, 170, 220)

	f, err := median.New(5)
	if err != nil {
		t.Fatal(err)
	}
	filtered := f.Process(noisy)

	if before, after := quality.SNR(clean, noisy), quality.SNR(clean, filtered); after <= before {
		t.Fatalf("SNR did not improve: %g dB before, %g dB after", before, after)
	}
	if before, after := quality.MSE(clean, noisy), quality.MSE(clean, filtered); after >= before {
		t.Fatalf("MSE did not improve: %g before, %g after", before, after)
	}
	if corr := quality.Correlation(clean, filtered); corr < 0.99 {
		t.Fatalf("correlation with reference %g, want >= 0.99", corr)
	}
}
