// Command smoothinfo prints the behavior of the smoothing filters for a
// given cutoff and sample rate.
//
// Usage:
//
//	smoothinfo [flags] [filter-name ...]
//
// Without arguments it prints info for all filters.
//
// Examples:
//
//	smoothinfo onepole
//	smoothinfo -fc 2 -fs 50 biquad window
//	smoothinfo -q 1.2 biquad
//	smoothinfo -coeffs
//	smoothinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/filter/biquad"
	"github.com/cwbudde/algo-smooth/dsp/filter/iir"
	"github.com/cwbudde/algo-smooth/dsp/filter/movingwindow"
	"github.com/cwbudde/algo-smooth/dsp/signal"
	"github.com/cwbudde/algo-smooth/measure/response"
	timestats "github.com/cwbudde/algo-smooth/stats/time"
)

type options struct {
	cutoffHz   float64
	sampleRate float64
	q          float64
	window     int
	noise      float64
	samples    int
	fftSize    int
	seed       int64
	coeffs     bool
}

type filterEntry struct {
	name    string
	summary string
	factory func(o options) response.Factory
}

var registry = []filterEntry{
	{"onepole", "first-order low-pass (exponential moving average)", onePoleFactory},
	{"biquad", "second-order low-pass (RBJ, Butterworth by default)", biQuadFactory},
	{"window", "moving-window arithmetic mean", windowFactory},
}

func onePoleFactory(o options) response.Factory {
	return func() (response.Processor, error) {
		f, err := iir.NewOnePole[float64](iir.WithCutoff(o.cutoffHz, o.sampleRate))
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

func biQuadFactory(o options) response.Factory {
	return func() (response.Processor, error) {
		f, err := iir.NewBiQuad[float64](iir.WithCutoff(o.cutoffHz, o.sampleRate), iir.WithQ(o.q))
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

func windowFactory(o options) response.Factory {
	return func() (response.Processor, error) {
		f := movingwindow.New[float64]()
		if err := f.SetWindowSize(o.window); err != nil {
			return nil, err
		}
		return f, nil
	}
}

func main() {
	var o options
	flag.Float64Var(&o.cutoffHz, "fc", 5, "cutoff frequency in Hz (one-pole, biquad)")
	flag.Float64Var(&o.sampleRate, "fs", core.DefaultSampleRate, "sample rate in Hz")
	flag.Float64Var(&o.q, "q", biquad.DefaultQ, "biquad quality factor")
	flag.IntVar(&o.window, "window", movingwindow.DefaultWindowSize, "moving-window size in samples")
	flag.Float64Var(&o.noise, "noise", 0.2, "noise amplitude of the test signal")
	flag.IntVar(&o.samples, "samples", 2000, "length of the test signal")
	flag.IntVar(&o.fftSize, "fft", 4096, "FFT size for the frequency response (power of two)")
	flag.Int64Var(&o.seed, "seed", 1, "noise seed")
	flag.BoolVar(&o.coeffs, "coeffs", false, "print filter coefficients instead of the analysis")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: smoothinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints cutoff, lag, settling and noise reduction of the smoothing filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo onepole\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -fc 2 -fs 50 biquad window\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -coeffs\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filters\n")
		os.Exit(1)
	}

	var err error
	if o.coeffs {
		err = printCoefficients(os.Stdout, o)
	} else {
		err = printAnalysis(os.Stdout, entries, o)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, e := range registry {
		fmt.Fprintf(w, "%-8s %s\n", e.name, e.summary)
	}
}

func resolveEntries(names []string) []filterEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printCoefficients(w io.Writer, o options) error {
	op, err := iir.NewOnePole[float64](iir.WithCutoff(o.cutoffHz, o.sampleRate))
	if err != nil {
		return err
	}
	bq, err := iir.NewBiQuad[float64](iir.WithCutoff(o.cutoffHz, o.sampleRate), iir.WithQ(o.q))
	if err != nil {
		return err
	}

	a0, b1 := op.Coefficients()
	c := bq.Coefficients()

	fmt.Fprintf(w, "fc=%g Hz fs=%g Hz q=%.4f\n", o.cutoffHz, o.sampleRate, bq.Q())
	fmt.Fprintf(w, "onepole: a0=%.9f b1=%.9f\n", a0, b1)
	fmt.Fprintf(w, "biquad:  b0=%.9f b1=%.9f b2=%.9f a1=%.9f a2=%.9f stable=%v\n",
		c.B0, c.B1, c.B2, c.A1, c.A2, c.Stable())
	return nil
}

type row struct {
	name       string
	cutoff     string
	lagMs      float64
	settle     string
	overshoot  float64
	rmseBefore float64
	rmseAfter  float64
	reduction  float64
}

func analyze(e filterEntry, o options) (row, error) {
	factory := e.factory(o)

	curve, err := response.FrequencyResponse(factory, o.fftSize, o.sampleRate)
	if err != nil {
		return row{}, err
	}
	step, err := response.StepResponse(factory, o.fftSize)
	if err != nil {
		return row{}, err
	}

	r := row{name: e.name, cutoff: "-", settle: "-", lagMs: curve.Lag() * 1000}
	if fc, ok := curve.Cutoff(); ok {
		r.cutoff = fmt.Sprintf("%.3f", fc)
	}
	if n, ok := response.Settling(step, 1, 0.02); ok {
		r.settle = fmt.Sprintf("%.1f", float64(n)/o.sampleRate*1000)
	}
	r.overshoot = response.Overshoot(step, 1) * 100

	// The test tone sits a decade below the cutoff so the filter should
	// keep it and remove the broadband noise.
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(o.sampleRate)},
		signal.WithSeed(o.seed),
	)
	clean, noisy, err := gen.NoisySine(o.cutoffHz/10, 1, o.noise, o.samples)
	if err != nil {
		return row{}, err
	}

	p, err := factory()
	if err != nil {
		return row{}, err
	}
	filtered := make([]float64, len(noisy))
	for i, x := range noisy {
		filtered[i] = p.Process(x)
	}

	warmup := len(step) / 8
	if s, ok := response.Settling(step, 1, 0.02); ok && s < len(noisy)/2 {
		warmup = s
	}
	warmup = min(warmup, len(noisy)/2)

	before, err := timestats.Compare(clean[warmup:], noisy[warmup:])
	if err != nil {
		return row{}, err
	}
	after, err := timestats.Compare(clean[warmup:], filtered[warmup:])
	if err != nil {
		return row{}, err
	}
	r.rmseBefore = before.RMSE
	r.rmseAfter = after.RMSE
	r.reduction, err = timestats.NoiseReduction(clean[warmup:], noisy[warmup:], filtered[warmup:])
	if err != nil {
		return row{}, err
	}

	return r, nil
}

func printAnalysis(w io.Writer, entries []filterEntry, o options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\t-3 dB [Hz]\tLag [ms]\tSettle 2%% [ms]\tOvershoot [%%]\tRMSE raw\tRMSE out\tReduction [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----------\t--------\t--------------\t-------------\t--------\t--------\t--------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	var errs []error
	for _, e := range entries {
		r, err := analyze(e, o)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.name, err))
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%.2f\t%.4f\t%.4f\t%.2f\n",
			r.name,
			r.cutoff,
			r.lagMs,
			r.settle,
			r.overshoot,
			r.rmseBefore,
			r.rmseAfter,
			r.reduction,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return errors.Join(errs...)
}
