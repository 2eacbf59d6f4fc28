package rules

import "github.com/gnoverse/alice/internal/sl"

// NilNotLVal makes explicit that the source of an allocated cell is not
// Nil: for E->F in the antecedent it adds E≠Nil unless already present.
type NilNotLVal struct{}

func (NilNotLVal) Name() string { return "nil-not-lval" }

func (NilNotLVal) Predicate(goal sl.Entailment) bool {
	_, found := unwitnessedSource(goal.Antecedent)
	return found
}

func (NilNotLVal) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	src, found := unwitnessedSource(goal.Antecedent)
	if !found {
		return inapplicable()
	}
	return single(sl.Entails(goal.Antecedent.AddOp(sl.Neq(src, sl.Nil)), goal.Consequent))
}

// unwitnessedSource returns the first cell source of f lacking a E≠Nil
// fact. A pure part that is not a conjunction witnesses nothing.
func unwitnessedSource(f sl.Formula) (sl.Expr, bool) {
	ops, _ := f.Ops()
	for _, src := range cellSources(f) {
		if !sl.HasNeq(ops, src, sl.Nil) {
			return src, true
		}
	}
	return nil, false
}
