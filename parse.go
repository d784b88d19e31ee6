package mapa

import (
	"io"
	"strings"
)

// Statements = { Sep } [ Statement { Sep { Sep } Statement } ] { Sep }
// Statement  = ident '=' Expr | Expr
// Expr       = Term | Expr binop Expr
// Term       = int | num | ident | ident '(' Expr ')' | ident '(' Expr ',' Expr ')'
//            | '-' Term | '%' Term | '(' Expr ')'

// Parse reads statements from src until EOF and returns the result of the
// last non-empty one: a concrete Value when every name is known, otherwise
// an Expr over the free variables. Assignments are staged while parsing
// and committed to the session only if the whole input parses, so a failed
// Parse leaves the session untouched.
func (s *Session) Parse(src io.RuneScanner) (Result, error) {
	p := parser{
		s:       s,
		scan:    lex(src, s.domain == DomainComplex),
		pending: make(vars),
	}
	r, err := p.program()
	if err != nil {
		return Result{}, err
	}
	for k, v := range p.pending {
		s.vars[k] = v
	}
	return r, nil
}

// ParseString is a shortcut for Parse on a string.
func (s *Session) ParseString(src string) (Result, error) {
	return s.Parse(strings.NewReader(src))
}

// ParseString parses src in a fresh session created with opts.
func ParseString(src string, opts ...SessionOption) (Result, error) {
	return NewSession(opts...).ParseString(src)
}

type parser struct {
	s    *Session
	scan *lexer
	// pending stages assignments made during this parse. Later statements
	// of the same input see them; the session does not until commit.
	pending vars
}

func (p *parser) program() (Result, error) {
	var last Result
	for {
		tok, err := p.scan.next()
		if err != nil {
			return Result{}, err
		}
		switch tok.kind {
		case tokenEOF:
			return last, nil
		case tokenSep:
			continue
		}
		p.scan.push(tok)
		r, err := p.statement()
		if err != nil {
			return Result{}, err
		}
		if !r.Empty() {
			last = r
		}
		end, err := p.scan.next()
		if err != nil {
			return Result{}, err
		}
		switch end.kind {
		case tokenEOF:
			return last, nil
		case tokenSep:
			// Next statement.
		default:
			return Result{}, &SyntaxError{Token: end.text, Col: end.pos}
		}
	}
}

func (p *parser) statement() (Result, error) {
	tok, err := p.scan.next()
	if err != nil {
		return Result{}, err
	}
	if tok.kind == tokenIdent {
		eq, err := p.scan.next()
		if err != nil {
			return Result{}, err
		}
		if eq.kind == tokenAssign {
			if !p.s.assign {
				return Result{}, &CapabilityError{Feature: FeatureAssignment, Col: eq.pos}
			}
			r, err := p.parseterm(exprprec)
			if err != nil {
				return Result{}, err
			}
			// The assignment takes the value of its right-hand side.
			p.pending[tok.text] = r
			return r, nil
		}
		p.scan.push(eq)
	}
	p.scan.push(tok)
	return p.parseterm(exprprec)
}

// parseterm parses one expression, folding or building at each reduction,
// until a binary operator no more binding than until, or the end of the
// expression. The ending token is pushed back.
func (p *parser) parseterm(until operator) (Result, error) {
	n, err := p.parselhs(until)
	if err != nil {
		return Result{}, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return Result{}, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if !prec.moreBinding(until) {
				p.scan.push(tok)
				return n, nil
			}
			rhs, err := p.parseterm(prec)
			if err != nil {
				return Result{}, err
			}
			n = p.combineBinary(prec.op, n, rhs)
		case tokenClose, tokenComma, tokenSep, tokenEOF:
			// End of expression; the caller decides whether it is legal.
			p.scan.push(tok)
			return n, nil
		default:
			return Result{}, &SyntaxError{Token: tok.text, Col: tok.pos}
		}
	}
}

// parselhs parses the first component of a term: a literal, a name, a
// call, a unary operator, or a parenthesized group.
func (p *parser) parselhs(until operator) (Result, error) {
	tok, err := p.scan.next()
	if err != nil {
		return Result{}, err
	}
	switch tok.kind {
	case tokenInt:
		v, err := literal(tok.text, true, false)
		if err != nil {
			return Result{}, &SyntaxError{Token: tok.text, Col: tok.pos}
		}
		return val(v), nil
	case tokenNum:
		text, imaginary := tok.text, false
		if strings.HasSuffix(text, "j") {
			text, imaginary = text[:len(text)-1], true
		}
		v, err := literal(text, false, imaginary)
		if err != nil {
			return Result{}, &SyntaxError{Token: tok.text, Col: tok.pos}
		}
		return val(v), nil
	case tokenIdent:
		nxt, err := p.scan.next()
		if err != nil {
			return Result{}, err
		}
		if nxt.kind == tokenOpen {
			return p.parsecall(tok)
		}
		p.scan.push(nxt)
		return p.resolve(tok)
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == "" {
			return Result{}, &SyntaxError{Token: tok.text, Col: tok.pos}
		}
		// The operand binds by the unary operator's own precedence no
		// matter what until is, so x^-y^z parses as x^(-(y^z)).
		rhs, err := p.parseterm(prec)
		if err != nil {
			return Result{}, err
		}
		return p.combineUnary(prec.op, rhs), nil
	case tokenOpen:
		rhs, err := p.parseterm(exprprec)
		if err != nil {
			return Result{}, err
		}
		end, err := p.scan.next()
		if err != nil {
			return Result{}, err
		}
		if end.kind != tokenClose {
			return Result{}, &SyntaxError{Token: end.text, Col: end.pos}
		}
		// Grouping is transparent; no node is built for it.
		return rhs, nil
	default:
		return Result{}, &SyntaxError{Token: tok.text, Col: tok.pos}
	}
}

// parsecall parses a call's arguments after the open bracket and resolves
// the name against the arity's function table. A name followed by an open
// bracket always denotes a call, so a constant name in call position is an
// unknown-function error rather than a multiplication.
func (p *parser) parsecall(name lexToken) (Result, error) {
	arg, err := p.parseterm(exprprec)
	if err != nil {
		return Result{}, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return Result{}, err
	}
	switch tok.kind {
	case tokenClose:
		fn := p.s.unary[name.text]
		if fn == nil {
			return Result{}, &NameError{Name: name.text, Kind: "unary function", Col: name.pos}
		}
		if arg.Concrete() {
			return val(fn(arg.v)), nil
		}
		return tree(&Expr{kind: exprCall1, dom: p.s.domain, name: name.text, fn1: fn, left: arg}), nil
	case tokenComma:
		arg2, err := p.parseterm(exprprec)
		if err != nil {
			return Result{}, err
		}
		end, err := p.scan.next()
		if err != nil {
			return Result{}, err
		}
		if end.kind != tokenClose {
			return Result{}, &SyntaxError{Token: end.text, Col: end.pos}
		}
		fn := p.s.binary[name.text]
		if fn == nil {
			return Result{}, &NameError{Name: name.text, Kind: "binary function", Col: name.pos}
		}
		if arg.Concrete() && arg2.Concrete() {
			return val(fn(arg.v, arg2.v)), nil
		}
		return tree(&Expr{kind: exprCall2, dom: p.s.domain, name: name.text, fn2: fn, left: arg, right: arg2}), nil
	default:
		return Result{}, &SyntaxError{Token: tok.text, Col: tok.pos}
	}
}

// resolve looks up a bare identifier: staged assignments first, then the
// session's variables, then constants, and finally a symbolic variable
// node if the session allows free variables. A variable bound to a partial
// expression re-evaluates against the current bindings, so it shrinks as
// the variables it mentions become known.
func (p *parser) resolve(tok lexToken) (Result, error) {
	if r, ok := p.pending[tok.text]; ok {
		return p.reeval(r), nil
	}
	if r, ok := p.s.vars[tok.text]; ok {
		return p.reeval(r), nil
	}
	if v, ok := p.s.consts[tok.text]; ok {
		return val(v), nil
	}
	if p.s.free {
		return tree(&Expr{kind: exprVar, dom: p.s.domain, name: tok.text}), nil
	}
	return Result{}, &NameError{Name: tok.text, Kind: "variable or constant", Col: tok.pos}
}

func (p *parser) reeval(r Result) Result {
	if r.n == nil {
		return r
	}
	return r.n.eval(p.bindings())
}

// bindings is the variable table as this parse sees it: the session's
// variables overlaid with staged assignments.
func (p *parser) bindings() vars {
	if len(p.pending) == 0 {
		return p.s.vars
	}
	m := make(vars, len(p.s.vars)+len(p.pending))
	for k, v := range p.s.vars {
		m[k] = v
	}
	for k, v := range p.pending {
		m[k] = v
	}
	return m
}

// combineBinary folds a binary reduction when both operands are concrete
// and builds a node preserving operand order otherwise. Folding and the
// node both take the session's domain, so exponentiation stays complex in
// a complex session however the operands arrive.
func (p *parser) combineBinary(op string, l, r Result) Result {
	if l.Concrete() && r.Concrete() {
		return val(applyBinary(op, l.v, r.v, p.s.domain))
	}
	return tree(&Expr{kind: exprBinary, dom: p.s.domain, op: op, left: l, right: r})
}

func (p *parser) combineUnary(op string, o Result) Result {
	if o.Concrete() {
		return val(applyUnary(op, o.v, p.s.domain))
	}
	return tree(&Expr{kind: exprUnary, dom: p.s.domain, op: op, left: o})
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operator symbol.
	op string
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the parsing precedence of a binary operator. All six
// operators are left-associative; the output priorities in nodes.go are a
// separate table.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, "+"}
	case "-":
		return operator{1, false, "-"}
	case "*":
		return operator{3, false, "*"}
	case "/":
		return operator{3, false, "/"}
	case "^":
		return operator{7, false, "^"}
	case "%":
		return operator{7, false, "%"}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. Unary minus binds between
// multiplication and exponentiation; unary root binds tightest of all. If
// text is no unary operator, the result has an empty op.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{5, true, "-"}
	case "%":
		return operator{9, true, "%"}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{prec: -128, right: true}
