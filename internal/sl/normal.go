package sl

// IsNormalForm reports whether the antecedent of goal is in normal form:
// it contains no list segment, every variable occurring in it is provably
// different from Nil, and every pair of distinct variables is provably
// different. Proofs are disequalities present verbatim in the pure part.
func IsNormalForm(goal Entailment) bool {
	ant := goal.Antecedent

	atoms, _ := ant.Atoms()
	for _, a := range atoms {
		if _, ok := a.(LS); ok {
			return false
		}
	}

	vars := Variables(ant)
	ops, ok := ant.Ops()
	if !ok {
		return len(vars) == 0
	}

	for i, o := range vars {
		if !HasNeq(ops, o, Nil) {
			return false
		}
		for _, other := range vars[i+1:] {
			if !HasNeq(ops, o, other) {
				return false
			}
		}
	}
	return true
}
