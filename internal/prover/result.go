package prover

import (
	"errors"
	"fmt"
	"time"

	"github.com/gnoverse/alice/internal/sl"
)

var (
	// ErrInvalidEntailment is reported when no rule applies to some goal of
	// the search.
	ErrInvalidEntailment = errors.New("entailment is invalid")

	// ErrDepthExceeded is reported when the search goes deeper than the
	// configured limit.
	ErrDepthExceeded = errors.New("proof search exceeded depth limit")
)

// Verdict is the outcome of a proof attempt.
type Verdict int

const (
	_ Verdict = iota
	// Valid indicates the entailment was proved.
	Valid
	// Invalid indicates the search got stuck on a goal no rule applies to.
	Invalid
	// Unknown indicates the search was cut short by the depth limit or the
	// context.
	Unknown
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Unknown:
		return "unknown"
	default:
		return "?"
	}
}

// ParseVerdict is the inverse of Verdict.String.
func ParseVerdict(s string) (Verdict, bool) {
	for _, v := range []Verdict{Valid, Invalid, Unknown} {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Stats summarizes the work done by one proof attempt.
type Stats struct {
	// Goals counts every goal the search visited, the root included.
	Goals int `json:"goals"`
	// Depth is the deepest recursion level reached. The root is level 0.
	Depth int `json:"depth"`
	// Applications counts successful applications per rule name.
	Applications map[string]int `json:"applications"`
}

// Result is the report of a single proof attempt.
type Result struct {
	Goal    sl.Entailment
	Verdict Verdict
	// Err is nil for a valid entailment. Otherwise it wraps
	// ErrInvalidEntailment, ErrDepthExceeded or a context error.
	Err error
	// Detail names the goal the search got stuck on, if any.
	Detail   string
	Stats    Stats
	Duration time.Duration
}

// Reason returns the failure message, or "" for a valid entailment.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

func verdictOf(err error) Verdict {
	switch {
	case err == nil:
		return Valid
	case errors.Is(err, ErrInvalidEntailment):
		return Invalid
	default:
		return Unknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verdict) UnmarshalText(text []byte) error {
	parsed, ok := ParseVerdict(string(text))
	if !ok {
		return fmt.Errorf("unknown verdict %q", text)
	}
	*v = parsed
	return nil
}
