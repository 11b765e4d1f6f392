// Command filterinfo prints the canonical labels of the denoising filter
// set and the derived Savitzky-Golay tap tables.
//
// Usage:
//
//	filterinfo [flags]
//
// Examples:
//
//	filterinfo -list
//	filterinfo -window 11 -order 3
//	filterinfo -window 21 -order 4 -taps
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-denoise/dsp/denoise"
	"github.com/cwbudde/algo-denoise/dsp/denoise/adaptive"
	"github.com/cwbudde/algo-denoise/dsp/denoise/median"
	"github.com/cwbudde/algo-denoise/dsp/denoise/morph"
	"github.com/cwbudde/algo-denoise/dsp/denoise/outlier"
	"github.com/cwbudde/algo-denoise/dsp/denoise/savgol"
)

func main() {
	var (
		window   = flag.Int("window", 11, "window size (positive odd integer)")
		order    = flag.Int("order", 2, "Savitzky-Golay polynomial order")
		showTaps = flag.Bool("taps", false, "print the Savitzky-Golay tap table")
		list     = flag.Bool("list", false, "list the default filter bank and exit")
	)
	flag.Parse()

	if *list {
		if err := printBank(*window, *order); err != nil {
			fail(err)
		}
		return
	}

	sg, err := savgol.New(*window, *order)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%s: %d taps\n", sg.Name(), sg.WindowSize())
	if *showTaps {
		printTaps(sg)
	}
}

// printBank builds one instance of every filter family with the requested
// window and prints its canonical label.
func printBank(window, order int) error {
	var bank []denoise.Processor

	med, err := median.New(window)
	if err != nil {
		return err
	}
	bank = append(bank, med)

	open, err := morph.New(morph.Opening, window)
	if err != nil {
		return err
	}
	bank = append(bank, open)

	out, err := outlier.New(outlier.DetectMAD, outlier.InterpLinear, 3.0, window)
	if err != nil {
		return err
	}
	bank = append(bank, out)

	sg, err := savgol.New(window, order)
	if err != nil {
		return err
	}
	bank = append(bank, sg)

	wiener, err := adaptive.New(8, 0.01, 0.99)
	if err != nil {
		return err
	}
	bank = append(bank, wiener)

	kinds := []string{"median", "morphological", "outlier", "savgol", "adaptive"}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FILTER\tLABEL")
	for i, p := range bank {
		fmt.Fprintf(w, "%s\t%s\n", kinds[i], p.Name())
	}
	return w.Flush()
}

func printTaps(sg *savgol.Filter) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "OFFSET\tTAP\t")
	half := sg.WindowSize() / 2
	for i, tap := range sg.Taps() {
		fmt.Fprintf(w, "%d\t%.9f\t\n", i-half, tap)
	}
	w.Flush()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "filterinfo:", err)
	os.Exit(1)
}
