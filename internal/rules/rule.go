// Package rules implements the inference rules of the entailment prover.
//
// Every rule is a stateless value. Predicate is a cheap applicability test;
// Premisses transforms a goal into the goals that must be proved instead.
// Rules never modify the goal they are given.
//
// The order of Table is part of the decision procedure: rules that make
// implicit facts explicit run before the rules that need those facts, and
// Cleanup runs last. Reordering the table changes which entailments are
// provable.
package rules

import "github.com/gnoverse/alice/internal/sl"

// Rule is a single inference rule.
type Rule interface {
	// Name returns the kebab-case name of the rule.
	Name() string

	// Predicate reports whether the rule may apply to goal.
	Predicate(goal sl.Entailment) bool

	// Premisses returns the goals that together imply goal. An empty,
	// applied result closes the goal. ok is false when the rule could not
	// transform goal, in which case the caller moves on to the next rule.
	Premisses(goal sl.Entailment) (premisses []sl.Entailment, ok bool)
}

// Table is the fixed rule order tried on every goal.
var Table = [...]Rule{
	Tautology{},
	Contradiction{},
	Substitution{},
	EqReflexiveL{},
	NilNotLVal{},
	StarPartial{},
	UnrollCollapse{},
	EqReflexiveR{},
	EmptyLs{},
	Hypothesis{},
	Frame{},
	NonEmptyLS{},
	Cleanup{},
}

var schemas = map[string]string{
	"tautology":       "Π | emp  ⊢  true | emp",
	"contradiction":   "Π ∧ E≠E | Σ  ⊢  Π' | Σ'",
	"substitution":    "Π[E/x] | Σ[E/x] ⊢ Π'[E/x] | Σ'[E/x]  ⟹  Π ∧ x=E | Σ ⊢ Π' | Σ'",
	"eq-reflexive-l":  "Π | Σ ⊢ Π' | Σ'  ⟹  Π ∧ E=E | Σ ⊢ Π' | Σ'",
	"nil-not-lval":    "Π ∧ E≠nil | E↦F ∗ Σ ⊢ Π' | Σ'  ⟹  Π | E↦F ∗ Σ ⊢ Π' | Σ'",
	"star-partial":    "Π ∧ E≠F | E↦G ∗ F↦H ∗ Σ ⊢ Π' | Σ'  ⟹  Π | E↦G ∗ F↦H ∗ Σ ⊢ Π' | Σ'",
	"unroll-collapse": "Π ∧ E=F | Σ ⊢ Π' | Σ'  and  Π ∧ E≠F ∧ x≠F | E↦x ∗ x↦F ∗ Σ ⊢ Π' | Σ'  ⟹  Π | ls(E,F) ∗ Σ ⊢ Π' | Σ'",
	"eq-reflexive-r":  "Π | Σ ⊢ Π' | Σ'  ⟹  Π | Σ ⊢ Π' ∧ E=E | Σ'",
	"empty-ls":        "Π | Σ ⊢ Π' | Σ'  ⟹  Π | Σ ⊢ Π' | ls(E,E) ∗ Σ'",
	"hypothesis":      "Π | Σ ⊢ Π' | Σ'  ⟹  Π ∧ P | Σ ⊢ Π' ∧ P | Σ'",
	"frame":           "Π | Σ ⊢ Π' | Σ'  ⟹  Π | S ∗ Σ ⊢ Π' | S ∗ Σ'   (normal form)",
	"non-empty-ls":    "Π ∧ E≠F | Σ ⊢ Π' | ls(G,F) ∗ Σ'  ⟹  Π ∧ E≠F | E↦G ∗ Σ ⊢ Π' | ls(E,F) ∗ Σ'   (normal form)",
	"cleanup":         "And[] ↝ True,  SepConj[] ↝ Emp",
}

// Schema returns the inference schema of the named rule, premises first.
func Schema(name string) string {
	return schemas[name]
}

// Lookup returns the rule of Table with the given name.
func Lookup(name string) (Rule, bool) {
	for _, r := range Table {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// single wraps one premise.
func single(goal sl.Entailment) ([]sl.Entailment, bool) {
	return []sl.Entailment{goal}, true
}

// closed reports a goal discharged without premises.
func closed() ([]sl.Entailment, bool) {
	return []sl.Entailment{}, true
}

func inapplicable() ([]sl.Entailment, bool) {
	return nil, false
}
