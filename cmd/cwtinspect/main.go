// Command cwtinspect runs a Morlet wavelet transform over a signal and prints
// the frequency axis, a resolved frequency band and a time-compressed summary
// of one feature matrix.
//
// Usage:
//
//	cwtinspect [flags]
//
// Without -input a synthetic chirp is analysed. Frequencies are in cycles per
// sample, the unit of the frequency axis.
//
// Examples:
//
//	cwtinspect -voices 8 -band 0.01,0.04 -bands 4
//	cwtinspect -input signal.txt -rate 1000 -window 0.1,0.4 -width 8
//	cwtinspect -config analysis.json -feature phase -json-log
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/RyanBlaney/sonido-cwt/algorithms/common"
	"github.com/RyanBlaney/sonido-cwt/algorithms/wavelet"
	"github.com/RyanBlaney/sonido-cwt/config"
	"github.com/RyanBlaney/sonido-cwt/cwt"
	"github.com/RyanBlaney/sonido-cwt/logging"
)

func main() {
	configPath := flag.String("config", "", "JSON transform config (flags override it)")
	startOctave := flag.Int("start-octave", 1, "first octave")
	endOctave := flag.Int("end-octave", 6, "last octave")
	voices := flag.Int("voices", 16, "voices per octave")
	c0 := flag.Float64("c0", 1.0, "wavelet central frequency constant")
	threads := flag.Int("threads", 0, "transform workers (0 = one per CPU)")
	optimize := flag.Bool("optimize", true, "pad the FFT to a power of two")
	rate := flag.Int("rate", 0, "sampling rate in Hz (0 = none, time axis in samples)")
	input := flag.String("input", "", "signal file, one sample per line")
	length := flag.Int("length", 4096, "length of the synthetic chirp")
	band := flag.String("band", "", "frequency band lo,hi to resolve to rows")
	bands := flag.Int("bands", 4, "number of rows to sample from the band")
	width := flag.Int("width", 8, "compressed time width of the summary")
	window := flag.String("window", "", "time window t0,t1 applied before compression")
	featureName := flag.String("feature", "modulus", "feature to summarise: real, imaginary, modulus, phase")
	jsonLog := flag.Bool("json-log", false, "emit JSON logs through zap")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cwtinspect [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a Morlet CWT and prints its axes and a compressed feature summary.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.DefaultTransformConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("%v", err)
		}
		cfg = loaded
	}

	// Only flags given on the command line override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start-octave":
			cfg.StartOctave = *startOctave
		case "end-octave":
			cfg.EndOctave = *endOctave
		case "voices":
			cfg.VoicesPerOctave = *voices
		case "c0":
			cfg.CentralFrequency = *c0
		case "threads":
			cfg.Threads = *threads
		case "optimize":
			cfg.Optimize = *optimize
		case "rate":
			cfg.SamplingRate = cwt.Rate(*rate)
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.SamplingRate != nil && *cfg.SamplingRate == 0 {
		cfg.SamplingRate = nil
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	var logger logging.Logger
	if *jsonLog {
		zl := logging.NewZapLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
		defer zl.Sync()
		logger = zl
	} else {
		dl := logging.NewWriterLogger(os.Stderr, os.Stderr)
		dl.SetLevel(logging.ParseLevel(cfg.LogLevel))
		logger = dl
	}
	logging.SetGlobalLogger(logger)

	feature, err := cwt.ParseFeature(*featureName)
	if err != nil {
		fatalf("%v", err)
	}

	samples, err := loadSignal(*input, *length)
	if err != nil {
		fatalf("%v", err)
	}

	// Without a sampling rate the time axis is labelled in samples
	params := cfg.Params()
	timeUnit := "s"
	if params.SamplingRate == nil {
		params.SamplingRate = cwt.Rate(1)
		timeUnit = "samples"
	}

	transformer := wavelet.NewMorlet(
		wavelet.WithOmega0(cfg.Omega0),
		wavelet.WithEdgeTaper(cfg.EdgeTaper),
		wavelet.WithLogger(logger.WithFields(logging.Fields{"component": "morlet_transform"})),
	)
	session, err := cwt.NewSession(samples, params, transformer,
		cwt.WithLogger(logger.WithFields(logging.Fields{"component": "cwt_session"})))
	if err != nil {
		fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := session.Run(ctx); err != nil {
		fatalf("%v", err)
	}
	if err := session.CalculateFrequencyAxis(); err != nil {
		fatalf("%v", err)
	}
	if err := session.CalculateTimeAxis(); err != nil {
		fatalf("%v", err)
	}

	axis, _ := session.FrequencyAxis()
	fmt.Printf("signal:          %d samples\n", len(samples))
	fmt.Printf("frequency axis:  %d rows, %.6g .. %.6g cycles/sample (span %.6g)\n",
		axis.Len(), axis.Min(), axis.Max(), common.Span(axis.Values()))

	rows := []int{0, axis.Len() / 2, axis.Len() - 1}
	if *band != "" {
		lo, hi, err := parsePair(*band)
		if err != nil {
			fatalf("band: %v", err)
		}
		r, err := session.IndicesForFrequencyRange(lo, hi)
		if err != nil {
			fatalf("band: %v", err)
		}
		fmt.Printf("band %g..%g:   rows %d..%d (%.6g .. %.6g)\n", lo, hi, r.Start, r.End, axis.At(r.Start), axis.At(r.End))
		if rows, err = cwt.SpreadIndices(r, *bands); err != nil {
			fatalf("bands: %v", err)
		}
	}

	view, err := session.View(feature)
	if err != nil {
		fatalf("%v", err)
	}
	if *window != "" {
		t0, t1, err := parsePair(*window)
		if err != nil {
			fatalf("window: %v", err)
		}
		if view, err = view.Window(t0, t1); err != nil {
			fatalf("window: %v", err)
		}
	}
	if w := min(*width, len(view.Times)); w > 0 {
		if view, err = view.Compress(w); err != nil {
			fatalf("compress: %v", err)
		}
	}

	printSummary(view, rows, timeUnit)
}

func printSummary(view *cwt.View, rows []int, timeUnit string) {
	data, err := view.Rows(rows)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("\n%s (rows = frequency, columns = mean over time blocks)\n\n", view.Feature)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "freq \\ t [%s]\t", timeUnit)
	for _, t := range view.Times {
		fmt.Fprintf(tw, "%.4g\t", t)
	}
	fmt.Fprintln(tw)
	for k, i := range rows {
		fmt.Fprintf(tw, "%.5g\t", view.Frequencies[i])
		for _, v := range data[k] {
			fmt.Fprintf(tw, "%.4g\t", v)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func loadSignal(path string, length int) ([]float64, error) {
	if path == "" {
		if length <= 0 {
			return nil, errors.New("length must be positive")
		}
		return common.Chirp(0.005, 0.1, 1.0, length), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open signal: %w", err)
	}
	defer f.Close()

	var samples []float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read signal: %w", err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: no samples", path)
	}
	return samples, nil
}

func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want two comma-separated values, got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "cwtinspect: "+format+"\n", args...)
	os.Exit(1)
}
