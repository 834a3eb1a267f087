// Command dparam measures the D-parameter of XPS spectra.
//
// Usage:
//
//	dparam [flags] file ...
//
// Each file holds two columns, binding energy and counts. Settings default
// to the DPARAM_* environment variables (also read from .env); flags
// override them.
//
// Examples:
//
//	dparam C1s.csv
//	dparam -alg savitzky-golay -width 1.5 -passes 1 C1s.csv O1s.csv
//	dparam -db results.db -plot plots -html plots *.csv
//	dparam -db results.db -show C1s
//	dparam -db results.db -clear C1s
//	dparam -stats C1s.csv
//	dparam -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/cwbudde/algo-xps/dsp/smooth"
	"github.com/cwbudde/algo-xps/internal/config"
	"github.com/cwbudde/algo-xps/internal/render"
	"github.com/cwbudde/algo-xps/internal/source"
	"github.com/cwbudde/algo-xps/internal/store"
	"github.com/cwbudde/algo-xps/measure/dparam"
	"github.com/cwbudde/algo-xps/stats/curve"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	pipeline dparam.Config
	alg      string
	dbPath   string
	plotDir  string
	htmlDir  string
	label    string
	clear    string
	show     string
	workers  int
	list     bool
	stats    bool
	verbose  bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "dparam: ", 0)

	env, err := config.Load(os.LookupEnv)
	if err != nil {
		logger.Printf("config: %v", err)
		return 2
	}

	opt, files, err := parseFlags(args, env, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opt.list {
		printAlgorithms(stdout)
		return 0
	}

	alg, err := smooth.ParseAlgorithm(opt.alg)
	if err != nil {
		logger.Printf("%v (use -list to see available)", err)
		return 2
	}
	opt.pipeline.Algorithm = alg

	if opt.verbose {
		store.SetLogWriters(stderr, stderr)
	} else {
		store.SetLogWriters(stderr, nil)
	}

	st, err := openStore(opt.dbPath)
	if err != nil {
		logger.Print(err)
		return 1
	}
	defer st.Close()

	if opt.clear != "" {
		n, err := st.ClearSource(opt.clear)
		if err != nil {
			logger.Print(err)
			return 1
		}
		fmt.Fprintf(stdout, "cleared %d entries of %s\n", n, opt.clear)
	}

	if opt.show != "" {
		if err := printPeaks(stdout, st, opt.show); err != nil {
			logger.Print(err)
			return 1
		}
	}

	if len(files) == 0 {
		if opt.clear == "" && opt.show == "" {
			logger.Print("no input files (see -h)")
			return 2
		}
		return 0
	}

	if err := opt.pipeline.Validate(); err != nil {
		logger.Print(err)
		return 2
	}

	return measure(ctx, logger, stdout, st, opt, files)
}

func parseFlags(args []string, env config.Config, stderr io.Writer) (options, []string, error) {
	opt := options{
		pipeline: env.Pipeline,
		alg:      env.Pipeline.Algorithm.String(),
		dbPath:   env.DBPath,
		plotDir:  env.PlotDir,
		htmlDir:  env.HTMLDir,
		workers:  env.Workers,
	}

	fs := flag.NewFlagSet("dparam", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&opt.pipeline.SmoothWidth, "width", opt.pipeline.SmoothWidth, "smoothing width before differentiation")
	fs.IntVar(&opt.pipeline.PrePasses, "passes", opt.pipeline.PrePasses, "smoothing passes before differentiation")
	fs.Float64Var(&opt.pipeline.DiffWidth, "diff-width", opt.pipeline.DiffWidth, "smoothing width applied to the derivative")
	fs.IntVar(&opt.pipeline.PostPasses, "post-passes", opt.pipeline.PostPasses, "smoothing passes applied to the derivative")
	fs.StringVar(&opt.alg, "alg", opt.alg, "smoothing algorithm (see -list)")
	fs.StringVar(&opt.dbPath, "db", opt.dbPath, "SQLite database for results (empty: keep in memory)")
	fs.StringVar(&opt.plotDir, "plot", opt.plotDir, "write a PNG plot per file into this directory")
	fs.StringVar(&opt.htmlDir, "html", opt.htmlDir, "write an HTML plot per file into this directory")
	fs.StringVar(&opt.label, "label", "", "peak label to store results under (default: next D<n>)")
	fs.StringVar(&opt.clear, "clear", "", "remove all stored results of this sheet")
	fs.StringVar(&opt.show, "show", "", "print stored results of this sheet")
	fs.IntVar(&opt.workers, "workers", opt.workers, "parallel runs (0: one per CPU)")
	fs.BoolVar(&opt.list, "list", false, "list smoothing algorithms")
	fs.BoolVar(&opt.stats, "stats", false, "print axis and noise statistics of each file")
	fs.BoolVar(&opt.verbose, "v", false, "log store diagnostics")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dparam [flags] file ...\n\n")
		fmt.Fprintf(stderr, "Measures the D-parameter of two-column spectra.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  dparam C1s.csv\n")
		fmt.Fprintf(stderr, "  dparam -alg savitzky-golay -width 1.5 C1s.csv\n")
		fmt.Fprintf(stderr, "  dparam -db results.db -plot plots *.csv\n")
	}

	if err := fs.Parse(args); err != nil {
		return opt, nil, err
	}
	return opt, fs.Args(), nil
}

func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	return store.OpenSQLite(path)
}

func measure(ctx context.Context, logger *log.Logger, stdout io.Writer, st store.Store, opt options, files []string) int {
	status := 0

	var (
		sheets []*source.Sheet
		jobs   []dparam.Job
	)
	for _, path := range files {
		s, err := source.LoadFile(path)
		if err != nil {
			logger.Print(err)
			status = 1
			continue
		}
		if s.Dropped > 0 {
			logger.Printf("%s: dropped %d invalid rows", path, s.Dropped)
		}
		sheets = append(sheets, s)
		jobs = append(jobs, dparam.Job{ID: s.Name, X: s.X, Y: s.Y, Config: opt.pipeline})
	}

	if opt.stats {
		if err := printStats(stdout, sheets); err != nil {
			logger.Printf("failed to write statistics: %v", err)
			status = 1
		}
	}

	outcomes, err := dparam.RunBatch(ctx, jobs, opt.workers)
	if err != nil {
		logger.Printf("interrupted: %v", err)
		status = 1
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sheet\tLabel\tAlgorithm\tPre\tWidth\tPost\tDiff Width\tCenter\tD\n")
	fmt.Fprintf(tw, "-----\t-----\t---------\t---\t-----\t----\t----------\t------\t-\n")

	for i, o := range outcomes {
		if o.Err != nil {
			if !errors.Is(o.Err, context.Canceled) {
				logger.Printf("%s: %v", o.ID, o.Err)
			}
			status = 1
			continue
		}

		label, err := persist(st, sheets[i].Name, opt.label, o.Result)
		if err != nil {
			logger.Printf("%s: %v", o.ID, err)
			status = 1
		}

		c := o.Result.Config
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%d\t%.2f\t%.2f\t%.2f\n",
			o.ID, label, c.Algorithm.DisplayName(), c.PrePasses, c.SmoothWidth,
			c.PostPasses, c.DiffWidth, o.Result.Center, o.Result.Separation)

		if err := writePlots(opt, sheets[i], label, o.Result); err != nil {
			logger.Printf("%s: %v", o.ID, err)
			status = 1
		}
	}

	if err := tw.Flush(); err != nil {
		logger.Printf("failed to flush output: %v", err)
		status = 1
	}

	return status
}

func persist(st store.Store, sheet, label string, res *dparam.Result) (string, error) {
	if label == "" {
		next, err := store.NextLabel(st, sheet)
		if err != nil {
			return "", err
		}
		label = next
	}

	if err := st.Put(store.Key{Source: sheet, Label: label}, store.NewEntry(res)); err != nil {
		return label, err
	}
	return label, nil
}

func writePlots(opt options, s *source.Sheet, label string, res *dparam.Result) error {
	if opt.plotDir != "" {
		if err := writeFile(opt.plotDir, s.Name+"_"+label+".png", func(w io.Writer) error {
			return render.PNG(w, s, res)
		}); err != nil {
			return err
		}
	}
	if opt.htmlDir != "" {
		if err := writeFile(opt.htmlDir, s.Name+"_"+label+".html", func(w io.Writer) error {
			return render.HTML(w, s, res)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(dir, name string, fn func(io.Writer) error) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}

func printAlgorithms(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tDisplay Name\tWindow at width 1.0\n")
	fmt.Fprintf(tw, "----\t------------\t-------------------\n")
	for _, alg := range smooth.Algorithms() {
		n, err := smooth.WindowLength(1.0, alg)
		window := fmt.Sprint(n)
		if err != nil {
			window = "invalid"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", alg, alg.DisplayName(), window)
	}
	_ = tw.Flush()
}

func printPeaks(w io.Writer, st store.Store, sheet string) error {
	recs, err := st.Peaks(sheet)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sheet\tLabel\tAlgorithm\tPre\tWidth\tPost\tDiff Width\tCenter\tD\tRun\n")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%d\t%.2f\t%.2f\t%.2f\t%s\n",
			r.Source, r.Label, r.Algorithm, r.PrePasses, r.SmoothWidth,
			r.PostPasses, r.DiffWidth, r.Center, r.Separation, r.RunID)
	}
	return tw.Flush()
}

func printStats(w io.Writer, sheets []*source.Sheet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Sheet\tPoints\tFrom\tTo\tStep\tUniform\tMin\tMax\tNoise\tSNR\n")
	for _, s := range sheets {
		st := curve.Describe(s.X, s.Y)
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.3f\t%.4g\t%v\t%.4g\t%.4g\t%.3g\t%.1f\n",
			s.Name, st.Length, st.XFirst, st.XLast, st.MaxStep, st.Uniform(1e-6),
			st.Min, st.Max, st.Noise, st.SNR())
	}
	return tw.Flush()
}
