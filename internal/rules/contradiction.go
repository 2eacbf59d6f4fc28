package rules

import "github.com/gnoverse/alice/internal/sl"

// Contradiction closes any goal whose antecedent asserts E≠E.
type Contradiction struct{}

func (Contradiction) Name() string { return "contradiction" }

func (Contradiction) Predicate(sl.Entailment) bool { return true }

func (Contradiction) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	ops, _ := goal.Antecedent.Ops()
	i := FindFirst(ops, func(op sl.Op) bool {
		neq, ok := op.(sl.AtomNeq)
		return ok && neq.Left == neq.Right
	})
	if i < 0 {
		return inapplicable()
	}
	return closed()
}
