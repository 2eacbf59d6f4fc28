package rules

import "github.com/gnoverse/alice/internal/sl"

// EqReflexiveL drops a trivial equality E=E from the antecedent.
type EqReflexiveL struct{}

func (EqReflexiveL) Name() string { return "eq-reflexive-l" }

func (EqReflexiveL) Predicate(sl.Entailment) bool { return true }

func (EqReflexiveL) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	ops, ok := goal.Antecedent.Ops()
	if !ok {
		return inapplicable()
	}
	_, rest, found := FindAndRemove(ops, isReflexiveEq)
	if !found {
		return inapplicable()
	}
	return single(sl.Entails(goal.Antecedent.WithOps(rest), goal.Consequent))
}

// EqReflexiveR drops a trivial equality E=E from the consequent.
type EqReflexiveR struct{}

func (EqReflexiveR) Name() string { return "eq-reflexive-r" }

func (EqReflexiveR) Predicate(sl.Entailment) bool { return true }

func (EqReflexiveR) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	ops, ok := goal.Consequent.Ops()
	if !ok {
		return inapplicable()
	}
	_, rest, found := FindAndRemove(ops, isReflexiveEq)
	if !found {
		return inapplicable()
	}
	return single(sl.Entails(goal.Antecedent, goal.Consequent.WithOps(rest)))
}
