package rules

import "github.com/gnoverse/alice/internal/sl"

// FindFirst returns the index of the first element of s satisfying pred,
// or -1.
func FindFirst[T any](s []T, pred func(T) bool) int {
	for i, v := range s {
		if pred(v) {
			return i
		}
	}
	return -1
}

// FindAndRemove returns the first element of s satisfying pred together
// with a copy of s that lacks it. s itself is not modified.
func FindAndRemove[T any](s []T, pred func(T) bool) (T, []T, bool) {
	i := FindFirst(s, pred)
	if i < 0 {
		var zero T
		return zero, s, false
	}
	return s[i], sl.RemoveAt(s, i), true
}

// FindPair returns the indices of the first (a[i], b[j]) pair, scanning a in
// the outer loop, for which match holds.
func FindPair[A, B any](a []A, b []B, match func(A, B) bool) (int, int, bool) {
	for i, av := range a {
		for j, bv := range b {
			if match(av, bv) {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func isReflexiveEq(op sl.Op) bool {
	eq, ok := op.(sl.AtomEq)
	return ok && eq.Left == eq.Right
}

// cellSources returns the source locations of all points-to cells in f.
func cellSources(f sl.Formula) []sl.Expr {
	atoms, _ := f.Atoms()
	var sources []sl.Expr
	for _, a := range atoms {
		if p, ok := a.(sl.PointsTo); ok {
			sources = append(sources, p.From)
		}
	}
	return sources
}
