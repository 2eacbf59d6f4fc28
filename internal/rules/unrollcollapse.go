package rules

import "github.com/gnoverse/alice/internal/sl"

// UnrollCollapse case-splits the first list segment ls(E,F) of the
// antecedent, E a variable, into the empty case (E=F) and the unrolled
// case E->x * x->F with E≠F and x≠F for a fresh x.
//
// The unrolled case describes exactly two cells and leaves no residual
// segment behind.
type UnrollCollapse struct{}

func (UnrollCollapse) Name() string { return "unroll-collapse" }

func (UnrollCollapse) Predicate(sl.Entailment) bool { return true }

func (UnrollCollapse) Premisses(goal sl.Entailment) ([]sl.Entailment, bool) {
	atoms, ok := goal.Antecedent.Atoms()
	if !ok {
		return inapplicable()
	}
	atom, rest, found := FindAndRemove(atoms, func(a sl.AtomSpatial) bool {
		_, isLs := a.(sl.LS)
		return isLs
	})
	if !found {
		return inapplicable()
	}
	seg := atom.(sl.LS)
	name, isVar := sl.IsVar(seg.From)
	if !isVar {
		return inapplicable()
	}

	base := goal.Antecedent.WithAtoms(rest)
	collapse := sl.Entails(base.AddOp(sl.Eq(seg.From, seg.To)), goal.Consequent)

	fresh := sl.FreshVar(goal, name)
	unrolled := base.
		AddOp(sl.Neq(seg.From, seg.To)).
		AddOp(sl.Neq(fresh, seg.To)).
		AddAtom(sl.Pts(seg.From, fresh)).
		AddAtom(sl.Pts(fresh, seg.To))
	unroll := sl.Entails(unrolled, goal.Consequent)

	return []sl.Entailment{collapse, unroll}, true
}
