package adaptive

import (
	"testing"

	"github.com/cwbudde/algo-denoise/internal/testutil"
)

func TestRLSOutputFinite(t *testing.T) {
	f, err := New(4, 0.05, 0.99, WithAlgorithm(RLS))
	if err != nil {
		t.Fatal(err)
	}

	input := testutil.DeterministicNoise(5, 1, 500)
	out := f.Process(input)

	if len(out) != len(input) {
		t.Fatalf("output length %d, want %d", len(out), len(input))
	}
	testutil.RequireFinite(t, out)
}

func TestRLSDeterministic(t *testing.T) {
	input := testutil.DeterministicSine(0.05, 1, 256)

	f1, err := New(4, 0.05, 0.99, WithAlgorithm(RLS), WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	f2, err := New(4, 0.05, 0.99, WithAlgorithm(RLS), WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}

	if diff := testutil.MaxAbsDiff(f1.Process(input), f2.Process(input)); diff != 0 {
		t.Fatalf("same-seed RLS outputs differ by %g", diff)
	}
}

func TestRLSDiffersFromLMS(t *testing.T) {
	input := testutil.DeterministicSine(0.05, 1, 256)

	lms, err := New(4, 0.05, 0.99, WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	rls, err := New(4, 0.05, 0.99, WithAlgorithm(RLS), WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}

	if diff := testutil.MaxAbsDiff(lms.Process(input), rls.Process(input)); diff == 0 {
		t.Fatal("RLS output identical to LMS output")
	}
}
