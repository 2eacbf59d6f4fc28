package rules

import "github.com/gnoverse/alice/internal/sl"

// NonEmptyLS consumes the first cell of a non-empty consequent segment:
// given E≠F and E->G in the antecedent, ls(E,F) in the consequent becomes
// ls(G,F) and the cell is dropped. Requires antecedent normal form.
type NonEmptyLS struct{}

func (NonEmptyLS) Name() string { return "non-empty-ls" }

func (NonEmptyLS) Predicate(goal sl.Entailment) bool {
	return sl.IsNormalForm(goal)
}

func (NonEmptyLS) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	consAtoms, ok := goal.Consequent.Atoms()
	if !ok {
		return inapplicable()
	}
	antAtoms, ok := goal.Antecedent.Atoms()
	if !ok {
		return inapplicable()
	}
	antOps, _ := goal.Antecedent.Ops()

	for j, atom := range consAtoms {
		seg, isLs := atom.(sl.LS)
		if !isLs || !sl.HasNeq(antOps, seg.From, seg.To) {
			continue
		}
		k := FindFirst(antAtoms, func(a sl.AtomSpatial) bool {
			cell, isCell := a.(sl.PointsTo)
			return isCell && cell.From == seg.From
		})
		if k < 0 {
			continue
		}
		next := antAtoms[k].(sl.PointsTo).To
		return single(sl.Entails(
			goal.Antecedent.WithAtoms(sl.RemoveAt(antAtoms, k)),
			goal.Consequent.WithAtoms(sl.ReplaceAt(consAtoms, j, sl.AtomSpatial(sl.LS{From: next, To: seg.To}))),
		))
	}
	return inapplicable()
}
