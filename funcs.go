package mapa

import (
	"math"
	"math/cmplx"
)

// UnaryFunc is a function callable with one argument, e.g. cos. A
// call whose argument has free variables parses to an Expr node capturing
// the UnaryFunc; the function is applied once the argument folds.
type UnaryFunc func(Value) Value

// BinaryFunc is a function callable with two arguments, e.g. atan2.
type BinaryFunc func(Value, Value) Value

// RealFunc adapts a float64 function, such as the ones in package math,
// into a UnaryFunc operating on the real part of its argument.
func RealFunc(f func(float64) float64) UnaryFunc {
	return func(v Value) Value {
		return Real(f(v.Float64()))
	}
}

// RealFunc2 adapts a two-argument float64 function into a BinaryFunc.
func RealFunc2(f func(x, y float64) float64) BinaryFunc {
	return func(a, b Value) Value {
		return Real(f(a.Float64(), b.Float64()))
	}
}

// ComplexFunc adapts a complex128 function, such as the ones in package
// math/cmplx, into a UnaryFunc.
func ComplexFunc(f func(complex128) complex128) UnaryFunc {
	return func(v Value) Value {
		return Complex(f(v.Complex128()))
	}
}

// ComplexFunc2 adapts a two-argument complex128 function into a
// BinaryFunc.
func ComplexFunc2(f func(x, y complex128) complex128) BinaryFunc {
	return func(a, b Value) Value {
		return Complex(f(a.Complex128(), b.Complex128()))
	}
}

var defaultConstants = map[string]Value{
	"pi": Real(math.Pi),
	"e":  Real(math.E),
}

var realUnary = map[string]UnaryFunc{
	"exp":   RealFunc(math.Exp),
	"expm1": RealFunc(math.Expm1),
	"log":   RealFunc(math.Log),
	"log1p": RealFunc(math.Log1p),
	"log2":  RealFunc(math.Log2),
	"log10": RealFunc(math.Log10),
	"sqrt":  RealFunc(math.Sqrt),
	"asin":  RealFunc(math.Asin),
	"acos":  RealFunc(math.Acos),
	"atan":  RealFunc(math.Atan),
	"cos":   RealFunc(math.Cos),
	"sin":   RealFunc(math.Sin),
	"tan":   RealFunc(math.Tan),
	"fabs":  RealFunc(math.Abs),
	"floor": RealFunc(math.Floor),
	"ceil":  RealFunc(math.Ceil),
}

var realBinary = map[string]BinaryFunc{
	"pow":   RealFunc2(math.Pow),
	"atan2": RealFunc2(math.Atan2),
	// log(x, b) is the log of x in base b.
	"log": RealFunc2(func(x, b float64) float64 {
		return math.Log(x) / math.Log(b)
	}),
}

var complexUnary = map[string]UnaryFunc{
	"phase": func(v Value) Value { return Real(cmplx.Phase(v.Complex128())) },
	"abs":   func(v Value) Value { return Real(cmplx.Abs(v.Complex128())) },
	"exp":   ComplexFunc(cmplx.Exp),
	"log":   ComplexFunc(cmplx.Log),
	"log10": ComplexFunc(cmplx.Log10),
	"sqrt":  ComplexFunc(cmplx.Sqrt),
	"asin":  ComplexFunc(cmplx.Asin),
	"acos":  ComplexFunc(cmplx.Acos),
	"atan":  ComplexFunc(cmplx.Atan),
	"cos":   ComplexFunc(cmplx.Cos),
	"sin":   ComplexFunc(cmplx.Sin),
	"tan":   ComplexFunc(cmplx.Tan),
}

var complexBinary = map[string]BinaryFunc{
	"log": ComplexFunc2(func(x, b complex128) complex128 {
		return cmplx.Log(x) / cmplx.Log(b)
	}),
	// rect(r, theta) is the complex number with polar coordinates r, theta.
	"rect": func(a, b Value) Value {
		return Complex(cmplx.Rect(a.Float64(), b.Float64()))
	},
}
