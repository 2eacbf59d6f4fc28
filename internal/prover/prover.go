// Package prover decides entailments by depth-first proof search over the
// fixed rule table.
//
// For every goal the first rule that applies is committed to; its premises
// are proved left to right and the first failure fails the goal. There is
// no backtracking into other rules. A goal no rule applies to makes the
// whole entailment invalid.
package prover

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gnoverse/alice/internal/rules"
	"github.com/gnoverse/alice/internal/sl"
)

// DefaultMaxDepth bounds the recursion of a Prover created without
// WithMaxDepth.
const DefaultMaxDepth = 10000

// Option configures a Prover.
type Option func(*Prover)

// WithLogger sets the logger used for per-rule debug entries.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Prover) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMaxDepth caps the recursion depth. Zero means unbounded.
func WithMaxDepth(depth int) Option {
	return func(p *Prover) {
		if depth >= 0 {
			p.maxDepth = depth
		}
	}
}

// Prover runs proof searches. It holds no per-proof state and is safe for
// concurrent use.
type Prover struct {
	logger   *zap.Logger
	maxDepth int
}

// New creates a Prover.
func New(opts ...Option) *Prover {
	p := &Prover{
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prove returns nil if goal is valid and an error wrapping
// ErrInvalidEntailment otherwise, using a default Prover.
func Prove(goal sl.Entailment) error {
	return New().Prove(context.Background(), goal).Err
}

// Prove searches for a proof of goal.
func (p *Prover) Prove(ctx context.Context, goal sl.Entailment) Result {
	start := time.Now()
	s := &search{
		Prover: p,
		ctx:    ctx,
		stats:  Stats{Applications: make(map[string]int)},
	}
	err := s.prove(goal, 0)

	res := Result{
		Goal:     goal,
		Verdict:  verdictOf(err),
		Err:      err,
		Detail:   s.detail,
		Stats:    s.stats,
		Duration: time.Since(start),
	}
	p.logger.Info("proof finished",
		zap.Stringer("goal", goal),
		zap.Stringer("verdict", res.Verdict),
		zap.Int("goals", res.Stats.Goals),
		zap.Int("depth", res.Stats.Depth),
		zap.Duration("duration", res.Duration),
	)
	return res
}

// search is the state of one proof attempt.
type search struct {
	*Prover
	ctx    context.Context
	stats  Stats
	detail string
}

func (s *search) prove(goal sl.Entailment, depth int) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	if s.maxDepth > 0 && depth > s.maxDepth {
		return fmt.Errorf("%w %d", ErrDepthExceeded, s.maxDepth)
	}
	s.stats.Goals++
	if depth > s.stats.Depth {
		s.stats.Depth = depth
	}

	for _, rule := range rules.Table {
		if !rule.Predicate(goal) {
			continue
		}
		premisses, ok := rule.Premisses(goal)
		if !ok {
			continue
		}
		s.stats.Applications[rule.Name()]++
		if ce := s.logger.Check(zap.DebugLevel, "rule applied"); ce != nil {
			ce.Write(
				zap.String("rule", rule.Name()),
				zap.Int("depth", depth),
				zap.Int("premisses", len(premisses)),
				zap.Stringer("goal", goal),
			)
		}
		for _, next := range premisses {
			if err := s.prove(next, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	s.detail = "no rule applies to " + goal.String()
	return ErrInvalidEntailment
}
