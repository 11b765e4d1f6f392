package signal

import (
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestDatasetShape(t *testing.T) {
	g := NewGenerator(WithSeed(5))
	pairs, err := g.Dataset(256, 6)
	if err != nil {
		t.Fatal(err)
	}

	if len(pairs) != 6 {
		t.Fatalf("pair count %d, want 6", len(pairs))
	}
	for i, p := range pairs {
		if len(p.Clean) != 256 || len(p.Noisy) != 256 {
			t.Fatalf("pair %d: lengths %d/%d, want 256", i, len(p.Clean), len(p.Noisy))
		}
		testutil.RequireFinite(t, p.Clean)
		testutil.RequireFinite(t, p.Noisy)
	}
}

func TestDatasetDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(5)).Dataset(256, 6)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(WithSeed(5)).Dataset(256, 6)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		testutil.RequireSliceNearlyEqual(t, a[i].Clean, b[i].Clean, 0)
		testutil.RequireSliceNearlyEqual(t, a[i].Noisy, b[i].Noisy, 0)
	}
}

func TestDatasetNoiseActuallyAdded(t *testing.T) {
	pairs, err := NewGenerator(WithSeed(5)).Dataset(512, 4)
	if err != nil {
		t.Fatal(err)
	}

	// Low densities can leave an individual signal untouched, but the
	// rotation through noise types must corrupt at least one pair.
	corrupted := 0
	for _, p := range pairs {
		if testutil.MaxAbsDiff(p.Clean, p.Noisy) > 0 {
			corrupted++
		}
	}
	if corrupted == 0 {
		t.Fatal("no noisy signal differs from its clean reference")
	}
}
