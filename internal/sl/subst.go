package sl

// Substitution replaces every occurrence of one variable by an expression.
type Substitution struct {
	Name string
	By   Expr
}

func (s Substitution) expr(e Expr) Expr {
	if v, ok := e.(VarExpr); ok && v.Name == s.Name {
		return s.By
	}
	return e
}

func (s Substitution) op(op Op) Op {
	switch o := op.(type) {
	case AtomEq:
		return AtomEq{Left: s.expr(o.Left), Right: s.expr(o.Right)}
	case AtomNeq:
		return AtomNeq{Left: s.expr(o.Left), Right: s.expr(o.Right)}
	default:
		return op
	}
}

func (s Substitution) atom(a AtomSpatial) AtomSpatial {
	switch at := a.(type) {
	case PointsTo:
		return PointsTo{From: s.expr(at.From), To: s.expr(at.To)}
	case LS:
		return LS{From: s.expr(at.From), To: s.expr(at.To)}
	default:
		return a
	}
}

// Pure applies the substitution to a pure part.
func (s Substitution) Pure(p Pure) Pure {
	and, ok := p.(And)
	if !ok {
		return p
	}
	ops := make([]Op, len(and.Ops))
	for i, op := range and.Ops {
		ops[i] = s.op(op)
	}
	return And{Ops: ops}
}

// Spatial applies the substitution to a spatial part.
func (s Substitution) Spatial(sp Spatial) Spatial {
	sep, ok := sp.(SepConj)
	if !ok {
		return sp
	}
	atoms := make([]AtomSpatial, len(sep.Atoms))
	for i, a := range sep.Atoms {
		atoms[i] = s.atom(a)
	}
	return SepConj{Atoms: atoms}
}

// Formula applies the substitution to both parts of a formula.
func (s Substitution) Formula(f Formula) Formula {
	return Formula{Pure: s.Pure(f.Pure), Spatial: s.Spatial(f.Spatial)}
}

// Entailment applies the substitution to both sides of a goal.
func (s Substitution) Entailment(e Entailment) Entailment {
	return Entailment{
		Antecedent: s.Formula(e.Antecedent),
		Consequent: s.Formula(e.Consequent),
	}
}

// Variables returns the distinct variables of f in order of first
// occurrence, pure part first.
func Variables(f Formula) []Expr {
	var vars []Expr
	seen := make(map[string]struct{})
	add := func(e Expr) {
		v, ok := e.(VarExpr)
		if !ok {
			return
		}
		if _, dup := seen[v.Name]; dup {
			return
		}
		seen[v.Name] = struct{}{}
		vars = append(vars, v)
	}

	ops, _ := f.Ops()
	for _, op := range ops {
		l, r := op.Operands()
		add(l)
		add(r)
	}
	atoms, _ := f.Atoms()
	for _, a := range atoms {
		l, r := a.Operands()
		add(l)
		add(r)
	}
	return vars
}

// FreshVar returns a variable named base followed by one or more 'x'
// that occurs nowhere in e. Only letters are appended so the result
// stays expressible in the textual notation.
func FreshVar(e Entailment, base string) Expr {
	used := make(map[string]struct{})
	for _, f := range []Formula{e.Antecedent, e.Consequent} {
		for _, v := range Variables(f) {
			used[v.(VarExpr).Name] = struct{}{}
		}
	}
	name := base + "x"
	for {
		if _, taken := used[name]; !taken {
			return Var(name)
		}
		name += "x"
	}
}
