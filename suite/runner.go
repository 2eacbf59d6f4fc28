package suite

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoverse/alice/internal/cache"
	"github.com/gnoverse/alice/internal/parser"
	"github.com/gnoverse/alice/internal/prover"
	"github.com/gnoverse/alice/internal/sl"
)

// Engine proves a single entailment. *prover.Prover implements it.
type Engine interface {
	Prove(ctx context.Context, goal sl.Entailment) prover.Result
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for batch-level entries.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithWorkers bounds the number of concurrent proofs. Zero or less means
// one per CPU.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithCache makes the runner consult and fill c.
func WithCache(c *cache.Cache) RunnerOption {
	return func(r *Runner) {
		r.cache = c
	}
}

// WithProgress draws a progress bar on w.
func WithProgress(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.progress = w
	}
}

// Runner proves the cases of one or more suites concurrently.
type Runner struct {
	engine   Engine
	logger   *zap.Logger
	workers  int
	cache    *cache.Cache
	progress io.Writer
}

// NewRunner creates a Runner that proves with engine.
func NewRunner(engine Engine, opts ...RunnerOption) *Runner {
	r := &Runner{
		engine: engine,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	return r
}

type job struct {
	suite *Suite
	c     Case
}

// Run proves every case of suites and returns the report in suite and case
// order. A parse error fails only its own case. The returned error is
// non-nil only when ctx ended before all cases were proved; the report then
// holds the cases finished so far.
func (r *Runner) Run(ctx context.Context, suites []*Suite) (*Report, error) {
	var jobs []job
	for _, s := range suites {
		for _, c := range s.Cases {
			jobs = append(jobs, job{suite: s, c: c})
		}
	}

	report := &Report{
		RunID: uuid.NewString(),
		Cases: make([]CaseReport, len(jobs)),
	}
	logger := r.logger.With(zap.String("run", report.RunID))
	logger.Info("batch started", zap.Int("suites", len(suites)), zap.Int("cases", len(jobs)))
	start := time.Now()

	bar := r.newProgressBar(len(jobs), report.RunID)
	done := make([]bool, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report.Cases[i] = r.runCase(gctx, logger, j)
			done[i] = true
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()
	if bar != nil {
		_ = bar.Finish()
	}

	if err != nil {
		report.Cases = finished(report.Cases, done)
	}
	if r.cache != nil {
		if saveErr := r.cache.Save(); saveErr != nil {
			logger.Warn("failed to save verdict cache", zap.Error(saveErr))
		}
	}
	report.Duration = time.Since(start)

	passed, failed := report.Counts()
	logger.Info("batch finished",
		zap.Int("passed", passed),
		zap.Int("failed", failed),
		zap.Duration("duration", report.Duration),
	)
	return report, err
}

func (r *Runner) runCase(ctx context.Context, logger *zap.Logger, j job) CaseReport {
	cr := CaseReport{
		Suite:      j.suite.Name,
		Path:       j.suite.Path,
		Name:       j.c.Name,
		Entailment: j.c.Entailment,
		Expect:     j.c.Expect,
	}

	goal, err := parser.Parse(j.c.Entailment)
	if err != nil {
		logger.Error("failed to parse case",
			zap.String("suite", j.suite.Name),
			zap.String("case", j.c.Name),
			zap.Error(err),
		)
		cr.ParseErr = err
		return cr
	}

	if r.cache != nil {
		if res, ok := r.cache.Get(goal); ok {
			cr.Result = res
			cr.Cached = true
			return cr
		}
	}

	cr.Result = r.engine.Prove(ctx, goal)
	if r.cache != nil {
		r.cache.Set(cr.Result)
	}
	logger.Debug("case proved",
		zap.String("suite", j.suite.Name),
		zap.String("case", j.c.Name),
		zap.Stringer("verdict", cr.Result.Verdict),
	)
	return cr
}

// newProgressBar returns nil when no progress writer was configured.
func (r *Runner) newProgressBar(n int, runID string) *progressbar.ProgressBar {
	if r.progress == nil {
		return nil
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription(runID[:8]),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func finished(cases []CaseReport, done []bool) []CaseReport {
	out := cases[:0]
	for i, c := range cases {
		if done[i] {
			out = append(out, c)
		}
	}
	return out
}
