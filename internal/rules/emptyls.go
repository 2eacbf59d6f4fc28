package rules

import "github.com/gnoverse/alice/internal/sl"

// EmptyLs drops an empty segment ls(E,E) from the consequent.
type EmptyLs struct{}

func (EmptyLs) Name() string { return "empty-ls" }

func (EmptyLs) Predicate(sl.Entailment) bool { return true }

func (EmptyLs) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	atoms, ok := goal.Consequent.Atoms()
	if !ok {
		return inapplicable()
	}
	_, rest, found := FindAndRemove(atoms, func(a sl.AtomSpatial) bool {
		seg, isLs := a.(sl.LS)
		return isLs && seg.From == seg.To
	})
	if !found {
		return inapplicable()
	}
	return single(sl.Entails(goal.Antecedent, goal.Consequent.WithAtoms(rest)))
}
