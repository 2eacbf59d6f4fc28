package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoverse/alice/internal/cache"
	"github.com/gnoverse/alice/internal/formatter"
	"github.com/gnoverse/alice/internal/prover"
	"github.com/gnoverse/alice/suite"
)

var (
	checkJSON   bool
	outPath     string
	watchSuites bool
	workers     int
	noProgress  bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Prove every case of the given suite files and compare with the expected verdicts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := checkOptions{
			json:     checkJSON,
			output:   outPath,
			stats:    showStats,
			maxDepth: effectiveMaxDepth(cmd),
			workers:  config.Workers,
			cacheDir: config.CacheDir,
		}
		if f := cmd.Flags().Lookup("workers"); f.Changed {
			opts.workers = workers
		}
		if !noProgress && !checkJSON {
			opts.progress = cmd.ErrOrStderr()
		}

		if watchSuites {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runWatch(ctx, cmd.OutOrStdout(), args, opts)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return runCheck(ctx, cmd.OutOrStdout(), args, opts)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output the report in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	checkCmd.Flags().BoolVarP(&watchSuites, "watch", "w", false, "Re-run a suite whenever its file changes")
	checkCmd.Flags().BoolVar(&showStats, "stats", false, "Show proof search statistics")
	checkCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Recursion limit, 0 for unbounded (default from configuration)")
	checkCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent proofs, 0 for one per CPU (default from configuration)")
	checkCmd.Flags().BoolVar(&noProgress, "no-progress", false, "Do not draw a progress bar")
}

type checkOptions struct {
	json     bool
	output   string
	stats    bool
	maxDepth int
	workers  int
	cacheDir string
	progress io.Writer
}

func newRunner(opts checkOptions) (*suite.Runner, error) {
	p := prover.New(prover.WithLogger(logger), prover.WithMaxDepth(opts.maxDepth))
	runnerOpts := []suite.RunnerOption{
		suite.WithLogger(logger),
		suite.WithWorkers(opts.workers),
	}
	if opts.progress != nil {
		runnerOpts = append(runnerOpts, suite.WithProgress(opts.progress))
	}
	if opts.cacheDir != "" {
		c, err := cache.New(opts.cacheDir, fmt.Sprintf("max_depth=%d", opts.maxDepth))
		if err != nil {
			return nil, err
		}
		runnerOpts = append(runnerOpts, suite.WithCache(c))
	}
	return suite.NewRunner(p, runnerOpts...), nil
}

func runCheck(ctx context.Context, w io.Writer, paths []string, opts checkOptions) error {
	suites, err := suite.LoadPaths(paths)
	if err != nil {
		return err
	}
	runner, err := newRunner(opts)
	if err != nil {
		return err
	}
	return checkSuites(ctx, w, runner, suites, opts)
}

func checkSuites(ctx context.Context, w io.Writer, runner *suite.Runner, suites []*suite.Suite, opts checkOptions) error {
	report, err := runner.Run(ctx, suites)
	if err != nil {
		logger.Error("batch interrupted", zap.Error(err))
	}
	if err := printReport(w, report, opts); err != nil {
		return err
	}
	if err != nil || !report.OK() {
		return errNotValid
	}
	return nil
}

func printReport(w io.Writer, report *suite.Report, opts checkOptions) error {
	if opts.json {
		d, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if opts.output == "" {
			_, err = fmt.Fprintln(w, string(d))
			return err
		}
		return os.WriteFile(opts.output, d, 0o644)
	}

	for _, c := range report.Cases {
		name := c.Suite + "/" + c.Name
		if c.ParseErr != nil {
			fmt.Fprint(w, formatter.FormatParseError(name, c.Entailment, c.ParseErr))
			continue
		}
		fmt.Fprint(w, formatter.FormatResult(name, c.Result, c.Expect, formatter.Options{Stats: opts.stats}))
	}
	passed, failed := report.Counts()
	_, err := fmt.Fprint(w, formatter.FormatSummary(passed, failed))
	return err
}

// runWatch checks every suite once, then re-checks a suite each time its
// file is written, until ctx ends.
func runWatch(ctx context.Context, w io.Writer, paths []string, opts checkOptions) error {
	suites, err := suite.LoadPaths(paths)
	if err != nil {
		return err
	}
	runner, err := newRunner(opts)
	if err != nil {
		return err
	}
	if err := checkSuites(ctx, w, runner, suites, opts); err != nil && ExitCode(err) != 1 {
		return err
	}

	files := make([]string, len(suites))
	for i, s := range suites {
		files[i] = s.Path
	}
	return suite.Watch(ctx, logger, files, func(ctx context.Context, path string) error {
		s, err := suite.Load(path)
		if err != nil {
			fmt.Fprint(w, formatter.FormatParseError(path, "", err))
			return nil
		}
		if err := checkSuites(ctx, w, runner, []*suite.Suite{s}, opts); err != nil && ExitCode(err) != 1 {
			return err
		}
		return nil
	})
}
