package rules

import "github.com/gnoverse/alice/internal/sl"

// Substitution eliminates the first equality of the antecedent. When one
// side is a variable it is replaced by the other side throughout the goal;
// an equality between two Nils is simply dropped.
type Substitution struct{}

func (Substitution) Name() string { return "substitution" }

func (Substitution) Predicate(sl.Entailment) bool { return true }

func (Substitution) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	ops, ok := goal.Antecedent.Ops()
	if !ok {
		return inapplicable()
	}
	op, rest, found := FindAndRemove(ops, func(op sl.Op) bool {
		_, isEq := op.(sl.AtomEq)
		return isEq
	})
	if !found {
		return inapplicable()
	}

	next := sl.Entails(goal.Antecedent.WithOps(rest), goal.Consequent)
	eq := op.(sl.AtomEq)
	if name, isVar := sl.IsVar(eq.Left); isVar {
		next = sl.Substitution{Name: name, By: eq.Right}.Entailment(next)
	} else if name, isVar := sl.IsVar(eq.Right); isVar {
		next = sl.Substitution{Name: name, By: eq.Left}.Entailment(next)
	}
	return single(next)
}
