package rules

import "github.com/gnoverse/alice/internal/sl"

// Tautology closes Π | Emp ⊢ True | Emp. Only the canonical Emp and True
// forms are recognized; Cleanup produces them.
type Tautology struct{}

func (Tautology) Name() string { return "tautology" }

func (Tautology) Predicate(sl.Entailment) bool { return true }

func (Tautology) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	ant, cons := goal.Destroy()
	if _, ok := ant.Spatial.(sl.Emp); !ok {
		return inapplicable()
	}
	if _, ok := cons.Spatial.(sl.Emp); !ok {
		return inapplicable()
	}
	if _, ok := cons.Pure.(sl.True); !ok {
		return inapplicable()
	}
	return closed()
}
