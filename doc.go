// Package mapa parses math expressions over real or complex numbers.
//
// An expression whose variables are all known folds to a concrete Value as
// it is parsed. An expression that mentions unbound variables parses to an
// Expr, a symbolic tree that can be evaluated repeatedly against new
// bindings until every variable is known:
//
//	s := mapa.NewSession()
//	r, _ := s.ParseString("1 - cos(pi/3) + x*y")
//	r.FreeVars()                                  // [x y]
//	r = r.Eval(map[string]mapa.Value{"x": mapa.Int(1), "y": mapa.Int(2)})
//	r.Value()                                     // 2.5
//
// A Session holds the variable table mutated by assignments ("x = 3") as
// well as the constant and function tables, and gates the optional
// capabilities: assignment, free variables, and complex-number literals.
package mapa
