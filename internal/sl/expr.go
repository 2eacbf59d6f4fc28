package sl

import "fmt"

// Expr is a location expression: either Nil or a variable.
// All implementations are comparable, so two Exprs are equal iff ==.
type Expr interface {
	isExpr()
	String() string
}

// NilExpr is the null location.
type NilExpr struct{}

func (NilExpr) isExpr() {}
func (NilExpr) String() string {
	return "Nil"
}

// VarExpr is a program variable denoting a heap location.
type VarExpr struct {
	Name string
}

func (VarExpr) isExpr() {}
func (e VarExpr) String() string {
	return e.Name
}

// Nil is the shared null location.
var Nil Expr = NilExpr{}

// Var creates a variable location.
func Var(name string) Expr {
	return VarExpr{Name: name}
}

// IsVar reports whether e is a variable and returns its name.
func IsVar(e Expr) (string, bool) {
	v, ok := e.(VarExpr)
	return v.Name, ok
}

// Op is an atomic pure constraint between two locations.
type Op interface {
	isOp()
	Operands() (Expr, Expr)
	String() string
}

// AtomEq states that two locations are equal.
type AtomEq struct {
	Left, Right Expr
}

func (AtomEq) isOp() {}
func (o AtomEq) Operands() (Expr, Expr) {
	return o.Left, o.Right
}

func (o AtomEq) String() string {
	return fmt.Sprintf("Eq(%s,%s)", o.Left, o.Right)
}

// AtomNeq states that two locations differ.
type AtomNeq struct {
	Left, Right Expr
}

func (AtomNeq) isOp() {}
func (o AtomNeq) Operands() (Expr, Expr) {
	return o.Left, o.Right
}

func (o AtomNeq) String() string {
	return fmt.Sprintf("Neq(%s,%s)", o.Left, o.Right)
}

// Eq creates an equality constraint.
func Eq(left, right Expr) Op {
	return AtomEq{Left: left, Right: right}
}

// Neq creates a disequality constraint.
func Neq(left, right Expr) Op {
	return AtomNeq{Left: left, Right: right}
}

// AtomSpatial is a single spatial fact: one heap cell or one list segment.
type AtomSpatial interface {
	isAtomSpatial()
	Operands() (Expr, Expr)
	String() string
}

// PointsTo is a single heap cell at From whose next field holds To.
type PointsTo struct {
	From, To Expr
}

func (PointsTo) isAtomSpatial() {}
func (a PointsTo) Operands() (Expr, Expr) {
	return a.From, a.To
}

func (a PointsTo) String() string {
	return fmt.Sprintf("%s->%s", a.From, a.To)
}

// LS is an acyclic singly-linked list segment from From to To.
type LS struct {
	From, To Expr
}

func (LS) isAtomSpatial() {}
func (a LS) Operands() (Expr, Expr) {
	return a.From, a.To
}

func (a LS) String() string {
	return fmt.Sprintf("ls(%s,%s)", a.From, a.To)
}

// Pts creates a points-to cell.
func Pts(from, to Expr) AtomSpatial {
	return PointsTo{From: from, To: to}
}

// Ls creates a list segment.
func Ls(from, to Expr) AtomSpatial {
	return LS{From: from, To: to}
}

// sameOperands reports whether (a1,a2) and (b1,b2) are equal as unordered pairs.
func sameOperands(a1, a2, b1, b2 Expr) bool {
	return (a1 == b1 && a2 == b2) || (a1 == b2 && a2 == b1)
}

// SameOp reports whether two constraints have the same constructor and the
// same operands in either order.
func SameOp(a, b Op) bool {
	switch a.(type) {
	case AtomEq:
		if _, ok := b.(AtomEq); !ok {
			return false
		}
	case AtomNeq:
		if _, ok := b.(AtomNeq); !ok {
			return false
		}
	default:
		return false
	}
	a1, a2 := a.Operands()
	b1, b2 := b.Operands()
	return sameOperands(a1, a2, b1, b2)
}

// SameAtom reports whether two spatial atoms have the same constructor and
// the same operands in either order.
func SameAtom(a, b AtomSpatial) bool {
	switch a.(type) {
	case PointsTo:
		if _, ok := b.(PointsTo); !ok {
			return false
		}
	case LS:
		if _, ok := b.(LS); !ok {
			return false
		}
	default:
		return false
	}
	a1, a2 := a.Operands()
	b1, b2 := b.Operands()
	return sameOperands(a1, a2, b1, b2)
}

// HasNeq reports whether ops contains a disequality between a and b,
// in either operand order.
func HasNeq(ops []Op, a, b Expr) bool {
	for _, op := range ops {
		if n, ok := op.(AtomNeq); ok && sameOperands(n.Left, n.Right, a, b) {
			return true
		}
	}
	return false
}
