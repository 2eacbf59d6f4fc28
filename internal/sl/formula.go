package sl

import "strings"

// Pure is the pure part of a symbolic heap.
type Pure interface {
	isPure()
	String() string
}

// True is the empty pure constraint.
type True struct{}

func (True) isPure() {}
func (True) String() string {
	return "True"
}

// And is a conjunction of atomic constraints. And{} is equivalent to True{}
// but stays distinct until Cleanup canonicalizes it.
type And struct {
	Ops []Op
}

func (And) isPure() {}
func (p And) String() string {
	parts := make([]string, len(p.Ops))
	for i, op := range p.Ops {
		parts[i] = op.String()
	}
	return "And[" + strings.Join(parts, ",") + "]"
}

// Conj creates a conjunction of the given constraints.
func Conj(ops ...Op) Pure {
	return And{Ops: ops}
}

// Spatial is the spatial part of a symbolic heap.
type Spatial interface {
	isSpatial()
	String() string
}

// Emp describes the empty heap.
type Emp struct{}

func (Emp) isSpatial() {}
func (Emp) String() string {
	return "Emp"
}

// SepConj is a separating conjunction of spatial atoms. SepConj{} is
// equivalent to Emp{} but stays distinct until Cleanup canonicalizes it.
type SepConj struct {
	Atoms []AtomSpatial
}

func (SepConj) isSpatial() {}
func (s SepConj) String() string {
	parts := make([]string, len(s.Atoms))
	for i, a := range s.Atoms {
		parts[i] = a.String()
	}
	return "SepConj[" + strings.Join(parts, ",") + "]"
}

// Sep creates a separating conjunction of the given atoms.
func Sep(atoms ...AtomSpatial) Spatial {
	return SepConj{Atoms: atoms}
}

// Formula is a symbolic heap.
type Formula struct {
	Pure    Pure
	Spatial Spatial
}

func (f Formula) String() string {
	return f.Pure.String() + "|" + f.Spatial.String()
}

// Ops returns the constraints of the pure part and whether it is a
// conjunction at all. The returned slice must not be modified.
func (f Formula) Ops() ([]Op, bool) {
	and, ok := f.Pure.(And)
	return and.Ops, ok
}

// Atoms returns the atoms of the spatial part and whether it is a separating
// conjunction at all. The returned slice must not be modified.
func (f Formula) Atoms() ([]AtomSpatial, bool) {
	sep, ok := f.Spatial.(SepConj)
	return sep.Atoms, ok
}

// WithOps returns a copy of f whose pure part is the conjunction ops.
func (f Formula) WithOps(ops []Op) Formula {
	return Formula{Pure: And{Ops: ops}, Spatial: f.Spatial}
}

// WithAtoms returns a copy of f whose spatial part is the conjunction atoms.
func (f Formula) WithAtoms(atoms []AtomSpatial) Formula {
	return Formula{Pure: f.Pure, Spatial: SepConj{Atoms: atoms}}
}

// AddOp returns a copy of f with op appended to its pure part. A pure part
// that is not a conjunction is replaced by the single-element conjunction.
func (f Formula) AddOp(op Op) Formula {
	ops, _ := f.Ops()
	return f.WithOps(appendCopy(ops, op))
}

// AddAtom returns a copy of f with atom appended to its spatial part. A
// spatial part that is not a conjunction is replaced by the single-atom
// conjunction.
func (f Formula) AddAtom(atom AtomSpatial) Formula {
	atoms, _ := f.Atoms()
	return f.WithAtoms(appendCopy(atoms, atom))
}

// Entailment is a proof goal: Antecedent |- Consequent.
type Entailment struct {
	Antecedent Formula
	Consequent Formula
}

func (e Entailment) String() string {
	return e.Antecedent.String() + " |- " + e.Consequent.String()
}

// Entails builds an entailment from its two sides.
func Entails(antecedent, consequent Formula) Entailment {
	return Entailment{Antecedent: antecedent, Consequent: consequent}
}

// Destroy splits the goal into its antecedent and consequent.
func (e Entailment) Destroy() (Formula, Formula) {
	return e.Antecedent, e.Consequent
}

// Size returns the number of atoms in the goal, pure and spatial, on both
// sides.
func (e Entailment) Size() int {
	n := 0
	for _, f := range []Formula{e.Antecedent, e.Consequent} {
		ops, _ := f.Ops()
		atoms, _ := f.Atoms()
		n += len(ops) + len(atoms)
	}
	return n
}

// appendCopy appends to a fresh slice so the backing array of s is never
// shared with the result.
func appendCopy[T any](s []T, elems ...T) []T {
	out := make([]T, 0, len(s)+len(elems))
	out = append(out, s...)
	return append(out, elems...)
}

// RemoveAt returns a copy of s without the element at index i.
func RemoveAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// ReplaceAt returns a copy of s with the element at index i replaced by v.
func ReplaceAt[T any](s []T, i int, v T) []T {
	out := appendCopy(s)
	out[i] = v
	return out
}
