package suite

import (
	"encoding/json"
	"time"

	"github.com/gnoverse/alice/internal/prover"
)

// CaseReport is the outcome of one case.
type CaseReport struct {
	Suite      string
	Path       string
	Name       string
	Entailment string
	Expect     prover.Verdict
	Result     prover.Result
	// ParseErr is set when the entailment could not be parsed; Result is
	// then empty.
	ParseErr error
	Cached   bool
}

// Passed reports whether the case parsed and met its expectation.
func (c CaseReport) Passed() bool {
	return c.ParseErr == nil && c.Result.Verdict == c.Expect
}

// Report is the outcome of a batch run.
type Report struct {
	RunID    string
	Cases    []CaseReport
	Duration time.Duration
}

// Counts returns the number of passed and failed cases.
func (r *Report) Counts() (passed, failed int) {
	for _, c := range r.Cases {
		if c.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	_, failed := r.Counts()
	return failed == 0
}

type jsonCase struct {
	Suite      string          `json:"suite"`
	Path       string          `json:"path,omitempty"`
	Name       string          `json:"name"`
	Entailment string          `json:"entailment"`
	Expect     prover.Verdict  `json:"expect"`
	Verdict    *prover.Verdict `json:"verdict,omitempty"`
	Passed     bool            `json:"passed"`
	Reason     string          `json:"reason,omitempty"`
	Detail     string          `json:"detail,omitempty"`
	Error      string          `json:"error,omitempty"`
	Cached     bool            `json:"cached,omitempty"`
	Stats      *prover.Stats   `json:"stats,omitempty"`
}

type jsonReport struct {
	RunID    string     `json:"run_id"`
	Passed   int        `json:"passed"`
	Failed   int        `json:"failed"`
	Duration string     `json:"duration"`
	Cases    []jsonCase `json:"cases"`
}

// MarshalJSON renders the report in the format written by check --json.
func (r *Report) MarshalJSON() ([]byte, error) {
	passed, failed := r.Counts()
	out := jsonReport{
		RunID:    r.RunID,
		Passed:   passed,
		Failed:   failed,
		Duration: r.Duration.String(),
		Cases:    make([]jsonCase, 0, len(r.Cases)),
	}
	for _, c := range r.Cases {
		jc := jsonCase{
			Suite:      c.Suite,
			Path:       c.Path,
			Name:       c.Name,
			Entailment: c.Entailment,
			Expect:     c.Expect,
			Passed:     c.Passed(),
			Cached:     c.Cached,
		}
		if c.ParseErr != nil {
			jc.Error = c.ParseErr.Error()
		} else {
			verdict := c.Result.Verdict
			stats := c.Result.Stats
			jc.Verdict = &verdict
			jc.Reason = c.Result.Reason()
			jc.Detail = c.Result.Detail
			jc.Stats = &stats
		}
		out.Cases = append(out.Cases, jc)
	}
	return json.Marshal(out)
}
