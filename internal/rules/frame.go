package rules

import "github.com/gnoverse/alice/internal/sl"

// Frame cancels a spatial atom present on both sides. It is only sound
// once the antecedent is in normal form.
type Frame struct{}

func (Frame) Name() string { return "frame" }

func (Frame) Predicate(goal sl.Entailment) bool {
	return sl.IsNormalForm(goal)
}

func (Frame) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	antAtoms, ok := goal.Antecedent.Atoms()
	if !ok {
		return inapplicable()
	}
	consAtoms, ok := goal.Consequent.Atoms()
	if !ok {
		return inapplicable()
	}
	i, j, found := FindPair(antAtoms, consAtoms, sl.SameAtom)
	if !found {
		return inapplicable()
	}
	return single(sl.Entails(
		goal.Antecedent.WithAtoms(sl.RemoveAt(antAtoms, i)),
		goal.Consequent.WithAtoms(sl.RemoveAt(consAtoms, j)),
	))
}
