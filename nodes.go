package mapa

import (
	"strconv"
	"strings"
)

// Expr is a node in a partially evaluated expression: a free variable, an
// operator, or a function call whose operands are not all known. An Expr
// is immutable; Eval builds fresh nodes rather than rewriting old ones, so
// trees may be shared freely across evaluations.
type Expr struct {
	kind exprKind
	// dom is the numeric domain the node was parsed under. Folding an
	// operator during Eval uses it, so a tree from a complex session keeps
	// complex exponentiation no matter what values are bound later.
	dom Domain

	// op is the operator symbol of unary and binary operator nodes.
	op string
	// name is a variable name or the display name of a called function.
	name string
	// fn1 and fn2 are the resolved callables of function-call nodes.
	fn1 UnaryFunc
	fn2 BinaryFunc

	left, right Result
}

type exprKind int8

const (
	exprNone exprKind = iota
	// exprVar is a free variable. name is set.
	exprVar
	// exprUnary is a unary operator, - or %. op and left are set.
	exprUnary
	// exprBinary is a binary operator: + - * / ^ %. op, left, right.
	exprBinary
	// exprCall1 is a unary function call. name, fn1, left.
	exprCall1
	// exprCall2 is a binary function call. name, fn2, left, right.
	exprCall2
)

func (k exprKind) String() string {
	switch k {
	case exprNone:
		return "None"
	case exprVar:
		return "Var"
	case exprUnary:
		return "Unary"
	case exprBinary:
		return "Binary"
	case exprCall1:
		return "Call1"
	case exprCall2:
		return "Call2"
	default:
		return "exprKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the outcome of parsing or evaluating: either a concrete Value
// or an Expr with at least one free variable. The same type fills the
// operand slots of Expr nodes. The zero Result is empty, which Parse
// returns for input containing no statements.
type Result struct {
	v Value
	n *Expr
}

// val wraps a concrete value.
func val(v Value) Result {
	return Result{v: v}
}

// tree wraps an expression node.
func tree(n *Expr) Result {
	return Result{n: n}
}

// Concrete reports whether r holds a concrete value.
func (r Result) Concrete() bool {
	return r.n == nil && r.v.kind != kindNone
}

// Empty reports whether r holds neither a value nor an expression.
func (r Result) Empty() bool {
	return r.n == nil && r.v.kind == kindNone
}

// Value returns the concrete value of r. It is meaningful only when
// Concrete reports true.
func (r Result) Value() Value {
	return r.v
}

// Expr returns the expression tree of r, or nil if r is concrete or empty.
func (r Result) Expr() *Expr {
	return r.n
}

// String renders r in readable form, with the minimal brackets required by
// operator priorities.
func (r Result) String() string {
	if r.n == nil {
		return r.v.String()
	}
	return r.n.String()
}

// Canonical renders r fully bracketed. Parsing the canonical form in an
// equivalent session reconstructs a structurally equal tree.
func (r Result) Canonical() string {
	if r.n == nil {
		return r.v.String()
	}
	return r.n.Canonical()
}

// Output priorities. These control bracket placement only: - sits above +
// and / above * so that a-(b+c) and a/(b*c) keep their brackets while
// (a-b)+c and (a/b)*c lose theirs. Parsing precedence lives in parse.go.
func binPriority(op string) int8 {
	switch op {
	case "+":
		return 0
	case "-":
		return 1
	case "*":
		return 3
	case "/":
		return 4
	case "^":
		return 5
	case "%":
		return 6
	default:
		panic("mapa: no priority for binary operator " + strconv.Quote(op))
	}
}

func unPriority(op string) int8 {
	switch op {
	case "-":
		return 3
	case "%":
		return 7
	default:
		panic("mapa: no priority for unary operator " + strconv.Quote(op))
	}
}

// String renders the expression in readable form.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmtTo(&b, 0, true)
	return b.String()
}

// Canonical renders the expression fully bracketed, one bracket pair per
// operator node. Function calls render as name(args) in both forms.
func (e *Expr) Canonical() string {
	var b strings.Builder
	e.fmtTo(&b, 0, false)
	return b.String()
}

// fmtTo writes e to b. parent is the priority of the enclosing operator;
// an operator node brackets itself iff parent is higher, or always when
// readable is false.
func (e *Expr) fmtTo(b *strings.Builder, parent int8, readable bool) {
	switch e.kind {
	case exprVar:
		b.WriteString(e.name)
	case exprUnary:
		p := unPriority(e.op)
		br := !readable || parent > p
		if br {
			b.WriteByte('(')
		}
		b.WriteString(e.op)
		e.left.fmtTo(b, p, readable)
		if br {
			b.WriteByte(')')
		}
	case exprBinary:
		p := binPriority(e.op)
		br := !readable || parent > p
		if br {
			b.WriteByte('(')
		}
		e.left.fmtTo(b, p, readable)
		b.WriteString(e.op)
		e.right.fmtTo(b, p, readable)
		if br {
			b.WriteByte(')')
		}
	case exprCall1:
		b.WriteString(e.name)
		b.WriteByte('(')
		e.left.fmtTo(b, 0, readable)
		b.WriteByte(')')
	case exprCall2:
		b.WriteString(e.name)
		b.WriteByte('(')
		e.left.fmtTo(b, 0, readable)
		b.WriteByte(',')
		e.right.fmtTo(b, 0, readable)
		b.WriteByte(')')
	default:
		panic("mapa: invalid node kind " + e.kind.String())
	}
}

func (r Result) fmtTo(b *strings.Builder, parent int8, readable bool) {
	if r.n == nil {
		b.WriteString(r.v.String())
		return
	}
	r.n.fmtTo(b, parent, readable)
}
