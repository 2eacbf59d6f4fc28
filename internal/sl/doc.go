// Package sl models symbolic heaps of a small separation logic with
// singly-linked list segments.
//
// A Formula pairs a pure part (a conjunction of equalities and
// disequalities between locations) with a spatial part (a separating
// conjunction of points-to cells and list segments). An Entailment claims
// that every heap described by its antecedent is also described by its
// consequent.
//
// Values are treated as immutable. Functions that produce a modified
// formula build fresh slices and never write through a slice they were
// handed, so a goal can be passed to several rules without copying first.
//
// Empty forms are not canonicalized on construction: And{} and True{}
// mean the same thing, as do SepConj{} and Emp{}. Code matching on these
// types must accept both shapes.
package sl
