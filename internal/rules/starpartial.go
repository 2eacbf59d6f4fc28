package rules

import "github.com/gnoverse/alice/internal/sl"

// StarPartial makes explicit that two separately allocated cells live at
// different addresses: for E->G * F->H it adds E≠F unless already present.
type StarPartial struct{}

func (StarPartial) Name() string { return "star-partial" }

func (StarPartial) Predicate(goal sl.Entailment) bool {
	_, _, found := unwitnessedPair(goal.Antecedent)
	return found
}

func (StarPartial) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	a, b, found := unwitnessedPair(goal.Antecedent)
	if !found {
		return inapplicable()
	}
	return single(sl.Entails(goal.Antecedent.AddOp(sl.Neq(a, b)), goal.Consequent))
}

// unwitnessedPair returns the first pair of distinct cell sources of f
// without a disequality between them.
func unwitnessedPair(f sl.Formula) (sl.Expr, sl.Expr, bool) {
	sources := cellSources(f)
	if len(sources) < 2 {
		return nil, nil, false
	}
	ops, _ := f.Ops()
	for i, a := range sources {
		for _, b := range sources[i+1:] {
			if a == b {
				continue
			}
			if !sl.HasNeq(ops, a, b) {
				return a, b, true
			}
		}
	}
	return nil, nil, false
}
