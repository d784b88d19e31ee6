package mapa

// vars is a binding set for evaluation. A bound value may itself be an
// expression tree (from assigning a partial expression to a variable), in
// which case lookup splices the tree into the evaluation.
type vars map[string]Result

// Eval evaluates e as far as the bindings allow. Operands that become
// concrete fold; a node with any unbound operand is rebuilt fresh, never
// mutated, so e itself is unchanged. If the bindings cover every free
// variable of e, the result is concrete.
func (e *Expr) Eval(bindings map[string]Value) Result {
	vs := make(vars, len(bindings))
	for k, v := range bindings {
		vs[k] = val(v)
	}
	return e.eval(vs)
}

func (e *Expr) eval(vs vars) Result {
	switch e.kind {
	case exprVar:
		if r, ok := vs[e.name]; ok {
			return r
		}
		return tree(e)
	case exprUnary:
		o := e.left.eval(vs)
		if o.Concrete() {
			return val(applyUnary(e.op, o.v, e.dom))
		}
		return tree(&Expr{kind: exprUnary, dom: e.dom, op: e.op, left: o})
	case exprBinary:
		l := e.left.eval(vs)
		r := e.right.eval(vs)
		if l.Concrete() && r.Concrete() {
			return val(applyBinary(e.op, l.v, r.v, e.dom))
		}
		return tree(&Expr{kind: exprBinary, dom: e.dom, op: e.op, left: l, right: r})
	case exprCall1:
		o := e.left.eval(vs)
		if o.Concrete() {
			return val(e.fn1(o.v))
		}
		return tree(&Expr{kind: exprCall1, dom: e.dom, name: e.name, fn1: e.fn1, left: o})
	case exprCall2:
		l := e.left.eval(vs)
		r := e.right.eval(vs)
		if l.Concrete() && r.Concrete() {
			return val(e.fn2(l.v, r.v))
		}
		return tree(&Expr{kind: exprCall2, dom: e.dom, name: e.name, fn2: e.fn2, left: l, right: r})
	default:
		panic("mapa: invalid node kind " + e.kind.String())
	}
}

// eval evaluates an operand slot: recurse if it holds a node, otherwise
// the concrete value stands.
func (r Result) eval(vs vars) Result {
	if r.n != nil {
		return r.n.eval(vs)
	}
	return r
}

// Eval re-evaluates r against bindings. A concrete result is returned
// unchanged regardless of the bindings.
func (r Result) Eval(bindings map[string]Value) Result {
	if r.n == nil {
		return r
	}
	return r.n.Eval(bindings)
}

// applyUnary folds a unary operator over a concrete operand in domain dom.
func applyUnary(op string, v Value, dom Domain) Value {
	switch op {
	case "-":
		return neg(v)
	case "%":
		return sqrt(v, dom)
	default:
		panic("mapa: no unary operator " + op)
	}
}

// applyBinary folds a binary operator over concrete operands in domain
// dom. The binary % is the nth root, with the degree on the left: 3%x is
// the cube root of x.
func applyBinary(op string, a, b Value, dom Domain) Value {
	switch op {
	case "+":
		return add(a, b)
	case "-":
		return sub(a, b)
	case "*":
		return mul(a, b)
	case "/":
		return div(a, b)
	case "^":
		return pow(a, b, dom)
	case "%":
		return root(a, b, dom)
	default:
		panic("mapa: no binary operator " + op)
	}
}

// FreeVars returns the sorted set of variable names in e with no bound
// value. It is never empty: a node with no free variables would have
// folded to a Value.
func (e *Expr) FreeVars() []string {
	set := make(map[string]bool)
	e.freeVars(set)
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// FreeVars returns the sorted free-variable names of r. A concrete or
// empty result has none.
func (r Result) FreeVars() []string {
	if r.n == nil {
		return nil
	}
	return r.n.FreeVars()
}

func (e *Expr) freeVars(set map[string]bool) {
	switch e.kind {
	case exprVar:
		set[e.name] = true
	case exprUnary, exprCall1:
		e.left.freeVars(set)
	case exprBinary, exprCall2:
		e.left.freeVars(set)
		e.right.freeVars(set)
	default:
		panic("mapa: invalid node kind " + e.kind.String())
	}
}

func (r Result) freeVars(set map[string]bool) {
	if r.n != nil {
		r.n.freeVars(set)
	}
}

// sortstrs sorts a small string slice in place, avoiding package sort.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
