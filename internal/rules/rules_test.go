package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoverse/alice/internal/parser"
	"github.com/gnoverse/alice/internal/sl"
)

func mustParse(t *testing.T, input string) sl.Entailment {
	t.Helper()
	goal, err := parser.Parse(input)
	require.NoError(t, err, input)
	return goal
}

// ruleCase describes one application of a rule. A nil want means the rule
// must decline the goal.
type ruleCase struct {
	name      string
	goal      string
	predicate bool
	want      []string
}

func runRuleCases(t *testing.T, rule Rule, cases []ruleCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			goal := mustParse(t, tt.goal)
			before := goal.String()

			assert.Equal(t, tt.predicate, rule.Predicate(goal), "predicate")

			premisses, ok := rule.Premisses(goal)
			if tt.want == nil {
				assert.False(t, ok, "expected %s to decline", rule.Name())
				assert.Nil(t, premisses)
			} else {
				require.True(t, ok, "expected %s to apply", rule.Name())
				got := make([]string, len(premisses))
				for i, p := range premisses {
					got[i] = p.String()
				}
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, before, goal.String(), "rule modified its input")
		})
	}
}

func TestTableOrder(t *testing.T) {
	t.Parallel()
	names := make([]string, len(Table))
	for i, r := range Table {
		names[i] = r.Name()
		assert.NotEmpty(t, Schema(r.Name()), r.Name())
	}
	assert.Equal(t, []string{
		"tautology",
		"contradiction",
		"substitution",
		"eq-reflexive-l",
		"nil-not-lval",
		"star-partial",
		"unroll-collapse",
		"eq-reflexive-r",
		"empty-ls",
		"hypothesis",
		"frame",
		"non-empty-ls",
		"cleanup",
	}, names)
}

func TestLookup(t *testing.T) {
	t.Parallel()
	r, ok := Lookup("frame")
	require.True(t, ok)
	assert.Equal(t, Frame{}, r)

	_, ok = Lookup("modus-ponens")
	assert.False(t, ok)
}

func TestTautology(t *testing.T) {
	t.Parallel()
	runRuleCases(t, Tautology{}, []ruleCase{
		{
			name:      "empty heaps",
			goal:      "And[Neq(y,y),Eq(Nil,Nil)]|Emp |- True|Emp",
			predicate: true,
			want:      []string{},
		},
		{
			name:      "non-canonical consequent heap",
			goal:      "And[Neq(y,y),Eq(Nil,Nil)]|Emp |- True|SepConj[]",
			predicate: true,
		},
		{
			name:      "non-canonical consequent pure",
			goal:      "True|Emp |- And[]|Emp",
			predicate: true,
		},
		{
			name:      "antecedent heap",
			goal:      "True|SepConj[x->Nil] |- True|Emp",
			predicate: true,
		},
	})
}

func TestContradiction(t *testing.T) {
	t.Parallel()
	for _, e := range []string{"Nil", "x", "y"} {
		goal := mustParse(t, "And[Neq(a,b),Neq("+e+","+e+")]|SepConj[a->b] |- True|SepConj[ls(a,c)]")
		premisses, ok := Contradiction{}.Premisses(goal)
		require.True(t, ok, e)
		assert.Empty(t, premisses)
	}

	runRuleCases(t, Contradiction{}, []ruleCase{
		{
			name:      "distinct operands",
			goal:      "And[Neq(y,x)]|Emp |- True|Emp",
			predicate: true,
		},
		{
			name:      "reflexive equality is no contradiction",
			goal:      "And[Eq(x,x)]|Emp |- True|Emp",
			predicate: true,
		},
		{
			name:      "true",
			goal:      "True|Emp |- True|Emp",
			predicate: true,
		},
	})
}

func TestSubstitution(t *testing.T) {
	t.Parallel()
	runRuleCases(t, Substitution{}, []ruleCase{
		{
			name:      "variable on the left",
			goal:      "And[Eq(x,Nil),Neq(y,x)]|SepConj[y->x] |- And[Neq(z,x)]|SepConj[ls(x,Nil)]",
			predicate: true,
			want:      []string{"And[Neq(y,Nil)]|SepConj[y->Nil] |- And[Neq(z,Nil)]|SepConj[ls(Nil,Nil)]"},
		},
		{
			name:      "variable on the right",
			goal:      "And[Eq(Nil,x)]|SepConj[x->y] |- True|SepConj[ls(x,y)]",
			predicate: true,
			want:      []string{"And[]|SepConj[Nil->y] |- True|SepConj[ls(Nil,y)]"},
		},
		{
			name:      "only the first equality",
			goal:      "And[Neq(a,b),Eq(x,y),Eq(y,z)]|SepConj[x->z] |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(a,b),Eq(y,z)]|SepConj[y->z] |- True|Emp"},
		},
		{
			name:      "nil equals nil",
			goal:      "And[Eq(Nil,Nil),Neq(x,Nil)]|Emp |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(x,Nil)]|Emp |- True|Emp"},
		},
		{
			name:      "no equality",
			goal:      "And[Neq(x,Nil)]|Emp |- And[Eq(x,y)]|Emp",
			predicate: true,
		},
		{
			name:      "true",
			goal:      "True|Emp |- True|Emp",
			predicate: true,
		},
	})
}

func TestEqReflexiveL(t *testing.T) {
	t.Parallel()
	runRuleCases(t, EqReflexiveL{}, []ruleCase{
		{
			name:      "nil",
			goal:      "And[Eq(Nil,Nil),Neq(Nil,x)]|Emp |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(Nil,x)]|Emp |- True|Emp"},
		},
		{
			name:      "skips non-reflexive",
			goal:      "And[Eq(Nil,x),Eq(x,x)]|Emp |- True|Emp",
			predicate: true,
			want:      []string{"And[Eq(Nil,x)]|Emp |- True|Emp"},
		},
		{
			name:      "leaves empty conjunction",
			goal:      "And[Eq(x,x)]|Emp |- True|Emp",
			predicate: true,
			want:      []string{"And[]|Emp |- True|Emp"},
		},
		{
			name:      "consequent untouched",
			goal:      "And[Eq(x,y)]|Emp |- And[Eq(x,x)]|Emp",
			predicate: true,
		},
	})
}

func TestEqReflexiveR(t *testing.T) {
	t.Parallel()
	runRuleCases(t, EqReflexiveR{}, []ruleCase{
		{
			name:      "removes one",
			goal:      "True|Emp |- And[Neq(x,y),Eq(y,y),Eq(y,y)]|Emp",
			predicate: true,
			want:      []string{"True|Emp |- And[Neq(x,y),Eq(y,y)]|Emp"},
		},
		{
			name:      "antecedent untouched",
			goal:      "And[Eq(x,x)]|Emp |- And[Eq(x,y)]|Emp",
			predicate: true,
		},
		{
			name:      "true",
			goal:      "True|Emp |- True|Emp",
			predicate: true,
		},
	})
}

func TestNilNotLVal(t *testing.T) {
	t.Parallel()
	runRuleCases(t, NilNotLVal{}, []ruleCase{
		{
			name: "all witnessed",
			goal: "And[Neq(y,Nil),Neq(Nil,x)]|SepConj[y->x,x->z] |- True|Emp",
		},
		{
			name:      "second cell unwitnessed",
			goal:      "And[Neq(y,Nil)]|SepConj[y->x,x->z] |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(y,Nil),Neq(x,Nil)]|SepConj[y->x,x->z] |- True|Emp"},
		},
		{
			name:      "true pure part",
			goal:      "True|SepConj[y->x,x->z] |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(y,Nil)]|SepConj[y->x,x->z] |- True|Emp"},
		},
		{
			name:      "nil source yields a contradiction",
			goal:      "True|SepConj[Nil->x] |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(Nil,Nil)]|SepConj[Nil->x] |- True|Emp"},
		},
		{
			name: "segments only",
			goal: "True|SepConj[ls(x,y)] |- True|Emp",
		},
		{
			name: "empty heap",
			goal: "True|SepConj[] |- True|Emp",
		},
	})
}

func TestStarPartial(t *testing.T) {
	t.Parallel()
	runRuleCases(t, StarPartial{}, []ruleCase{
		{
			name: "all pairs witnessed",
			goal: "And[Neq(z,Nil),Neq(y,x)]|SepConj[x->y,y->z] |- True|Emp",
		},
		{
			name:      "first unwitnessed pair",
			goal:      "And[Neq(x,y)]|SepConj[x->a,y->b,z->c] |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(x,y),Neq(x,z)]|SepConj[x->a,y->b,z->c] |- True|Emp"},
		},
		{
			name:      "true pure part with a segment in between",
			goal:      "True|SepConj[x->a,ls(a,b),y->b] |- True|Emp",
			predicate: true,
			want:      []string{"And[Neq(x,y)]|SepConj[x->a,ls(a,b),y->b] |- True|Emp"},
		},
		{
			name: "single cell",
			goal: "True|SepConj[x->y,ls(y,z)] |- True|Emp",
		},
		{
			name: "same source twice",
			goal: "True|SepConj[x->a,x->b] |- True|Emp",
		},
	})
}

func TestUnrollCollapse(t *testing.T) {
	t.Parallel()
	runRuleCases(t, UnrollCollapse{}, []ruleCase{
		{
			name:      "segment after a cell",
			goal:      "And[Neq(a,Nil)]|SepConj[a->x,ls(x,y)] |- True|SepConj[ls(a,y)]",
			predicate: true,
			want: []string{
				"And[Neq(a,Nil),Eq(x,y)]|SepConj[a->x] |- True|SepConj[ls(a,y)]",
				"And[Neq(a,Nil),Neq(x,y),Neq(xx,y)]|SepConj[a->x,x->xx,xx->y] |- True|SepConj[ls(a,y)]",
			},
		},
		{
			name:      "true pure part",
			goal:      "True|SepConj[ls(x,Nil)] |- True|Emp",
			predicate: true,
			want: []string{
				"And[Eq(x,Nil)]|SepConj[] |- True|Emp",
				"And[Neq(x,Nil),Neq(xx,Nil)]|SepConj[x->xx,xx->Nil] |- True|Emp",
			},
		},
		{
			name:      "fresh name avoids the consequent",
			goal:      "True|SepConj[ls(x,Nil)] |- True|SepConj[xx->Nil]",
			predicate: true,
			want: []string{
				"And[Eq(x,Nil)]|SepConj[] |- True|SepConj[xx->Nil]",
				"And[Neq(x,Nil),Neq(xxx,Nil)]|SepConj[x->xxx,xxx->Nil] |- True|SepConj[xx->Nil]",
			},
		},
		{
			name:      "nil source",
			goal:      "True|SepConj[ls(Nil,x)] |- True|Emp",
			predicate: true,
		},
		{
			name:      "no segment",
			goal:      "True|SepConj[x->y] |- True|SepConj[ls(x,y)]",
			predicate: true,
		},
	})
}

func TestEmptyLs(t *testing.T) {
	t.Parallel()
	runRuleCases(t, EmptyLs{}, []ruleCase{
		{
			name:      "empty segment",
			goal:      "True|Emp |- True|SepConj[x->y,ls(x,x)]",
			predicate: true,
			want:      []string{"True|Emp |- True|SepConj[x->y]"},
		},
		{
			name:      "non-empty segment",
			goal:      "True|Emp |- True|SepConj[ls(x,y)]",
			predicate: true,
		},
		{
			name:      "antecedent untouched",
			goal:      "True|SepConj[ls(x,x)] |- True|Emp",
			predicate: true,
		},
	})
}

func TestHypothesis(t *testing.T) {
	t.Parallel()
	runRuleCases(t, Hypothesis{}, []ruleCase{
		{
			name:      "swapped operands",
			goal:      "And[Neq(x,y),Eq(a,b)]|Emp |- And[Eq(b,a)]|Emp",
			predicate: true,
			want:      []string{"And[Neq(x,y)]|Emp |- And[]|Emp"},
		},
		{
			name:      "one occurrence each",
			goal:      "And[Neq(x,Nil),Neq(x,Nil)]|Emp |- And[Neq(Nil,x)]|Emp",
			predicate: true,
			want:      []string{"And[Neq(x,Nil)]|Emp |- And[]|Emp"},
		},
		{
			name:      "constructor mismatch",
			goal:      "And[Neq(x,y)]|Emp |- And[Eq(x,y)]|Emp",
			predicate: true,
		},
		{
			name:      "true consequent",
			goal:      "And[Neq(x,y)]|Emp |- True|Emp",
			predicate: true,
		},
	})
}

func TestFrame(t *testing.T) {
	t.Parallel()
	runRuleCases(t, Frame{}, []ruleCase{
		{
			name:      "shared cell",
			goal:      "And[Neq(x,Nil)]|SepConj[x->Nil] |- True|SepConj[x->Nil]",
			predicate: true,
			want:      []string{"And[Neq(x,Nil)]|SepConj[] |- True|SepConj[]"},
		},
		{
			name:      "shared cell among others",
			goal:      "And[Neq(x,Nil),Neq(y,Nil),Neq(x,y)]|SepConj[x->y,y->Nil] |- True|SepConj[ls(x,y),y->Nil]",
			predicate: true,
			want:      []string{"And[Neq(x,Nil),Neq(y,Nil),Neq(x,y)]|SepConj[x->y] |- True|SepConj[ls(x,y)]"},
		},
		{
			name:      "nothing shared",
			goal:      "And[Neq(x,Nil)]|SepConj[x->Nil] |- True|SepConj[ls(x,Nil)]",
			predicate: true,
		},
	})

	// A textual match alone is not enough: x and y are not known to differ.
	goal := mustParse(t, "And[Neq(x,Nil),Neq(y,Nil)]|SepConj[x->y,y->Nil] |- True|SepConj[y->Nil]")
	assert.False(t, Frame{}.Predicate(goal))

	segment := mustParse(t, "True|SepConj[ls(x,Nil)] |- True|SepConj[ls(x,Nil)]")
	assert.False(t, Frame{}.Predicate(segment))
}

func TestNonEmptyLS(t *testing.T) {
	t.Parallel()
	runRuleCases(t, NonEmptyLS{}, []ruleCase{
		{
			name:      "first cell of the list",
			goal:      "And[Neq(x,Nil),Neq(y,Nil),Neq(x,y)]|SepConj[x->y,y->Nil] |- True|SepConj[ls(x,Nil)]",
			predicate: true,
			want:      []string{"And[Neq(x,Nil),Neq(y,Nil),Neq(x,y)]|SepConj[y->Nil] |- True|SepConj[ls(y,Nil)]"},
		},
		{
			name:      "reversed witness",
			goal:      "And[Neq(Nil,x)]|SepConj[x->Nil] |- True|SepConj[ls(x,Nil)]",
			predicate: true,
			want:      []string{"And[Neq(Nil,x)]|SepConj[] |- True|SepConj[ls(Nil,Nil)]"},
		},
		{
			name:      "segment not known to be non-empty",
			goal:      "And[Neq(x,Nil)]|SepConj[x->Nil] |- True|SepConj[ls(x,x)]",
			predicate: true,
		},
		{
			name:      "no cell at the segment start",
			goal:      "And[Neq(x,Nil)]|SepConj[x->Nil] |- True|SepConj[ls(Nil,x)]",
			predicate: true,
		},
		{
			name: "antecedent not in normal form",
			goal: "True|SepConj[x->Nil] |- True|SepConj[ls(x,Nil)]",
		},
	})
}

func TestCleanup(t *testing.T) {
	t.Parallel()
	runRuleCases(t, Cleanup{}, []ruleCase{
		{
			name:      "everything empty",
			goal:      "And[]|SepConj[] |- And[]|SepConj[]",
			predicate: true,
			want:      []string{"True|Emp |- True|Emp"},
		},
		{
			name:      "antecedent heap only",
			goal:      "And[Neq(x,y)]|SepConj[] |- True|SepConj[x->y]",
			predicate: true,
			want:      []string{"And[Neq(x,y)]|Emp |- True|SepConj[x->y]"},
		},
		{
			name:      "consequent pure only",
			goal:      "True|Emp |- And[]|Emp",
			predicate: true,
			want:      []string{"True|Emp |- True|Emp"},
		},
		{
			name:      "already canonical",
			goal:      "True|Emp |- True|Emp",
			predicate: true,
		},
		{
			name:      "non-empty conjunctions",
			goal:      "And[Neq(x,y)]|SepConj[x->y] |- And[Neq(x,y)]|SepConj[x->y]",
			predicate: true,
		},
	})
}

func TestCleanupIdempotent(t *testing.T) {
	t.Parallel()
	goal := mustParse(t, "And[]|SepConj[] |- And[]|SepConj[]")
	premisses, ok := Cleanup{}.Premisses(goal)
	require.True(t, ok)
	require.Len(t, premisses, 1)

	_, ok = Cleanup{}.Premisses(premisses[0])
	assert.False(t, ok)
}

func TestFindHelpers(t *testing.T) {
	t.Parallel()
	s := []int{1, 2, 3, 3, 5}
	isThree := func(v int) bool { return v == 3 }

	assert.Equal(t, 2, FindFirst(s, isThree))
	assert.Equal(t, -1, FindFirst(s, func(v int) bool { return v == 6 }))

	v, rest, ok := FindAndRemove(s, isThree)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2, 3, 5}, rest)
	assert.Equal(t, []int{1, 2, 3, 3, 5}, s)

	i, j, ok := FindPair([]int{1, 4}, []int{4, 1}, func(a, b int) bool { return a == b })
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{i, j})
}
