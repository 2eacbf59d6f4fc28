package rules

import "github.com/gnoverse/alice/internal/sl"

// Hypothesis cancels a pure fact assumed by the antecedent and required by
// the consequent.
type Hypothesis struct{}

func (Hypothesis) Name() string { return "hypothesis" }

func (Hypothesis) Predicate(sl.Entailment) bool { return true }

func (Hypothesis) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	antOps, ok := goal.Antecedent.Ops()
	if !ok {
		return inapplicable()
	}
	consOps, ok := goal.Consequent.Ops()
	if !ok {
		return inapplicable()
	}
	i, j, found := FindPair(antOps, consOps, sl.SameOp)
	if !found {
		return inapplicable()
	}
	return single(sl.Entails(
		goal.Antecedent.WithOps(sl.RemoveAt(antOps, i)),
		goal.Consequent.WithOps(sl.RemoveAt(consOps, j)),
	))
}
