package rules

import "github.com/gnoverse/alice/internal/sl"

// Cleanup canonicalizes empty conjunctions: And[] becomes True and
// SepConj[] becomes Emp, on both sides independently.
type Cleanup struct{}

func (Cleanup) Name() string { return "cleanup" }

func (Cleanup) Predicate(sl.Entailment) bool { return true }

func (Cleanup) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	ant, antChanged := canonical(goal.Antecedent)
	cons, consChanged := canonical(goal.Consequent)
	if !antChanged && !consChanged {
		return inapplicable()
	}
	return single(sl.Entails(ant, cons))
}

func canonical(f sl.Formula) (sl.Formula, bool) {
	changed := false
	if and, ok := f.Pure.(sl.And); ok && len(and.Ops) == 0 {
		f.Pure = sl.True{}
		changed = true
	}
	if sep, ok := f.Spatial.(sl.SepConj); ok && len(sep.Atoms) == 0 {
		f.Spatial = sl.Emp{}
		changed = true
	}
	return f, changed
}
