package mapa

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Domain selects the numeric domain of a session. In the real domain all
// arithmetic stays on float64 and out-of-domain operations follow IEEE
// conventions (Inf, NaN). In the complex domain exponentiation and the
// default function tables use complex128 arithmetic.
type Domain int8

const (
	DomainReal Domain = iota
	DomainComplex
)

func (d Domain) String() string {
	if d == DomainComplex {
		return "complex"
	}
	return "real"
}

type valueKind int8

const (
	kindNone valueKind = iota
	kindInt
	kindReal
	kindComplex
)

// Value is an immutable numeric value: an integer, a real, or a complex
// number. Integers and reals are stored as float64, complex values as a
// pair of float64s. The zero Value is not a number; it only appears inside
// an empty Result.
type Value struct {
	re, im float64
	kind   valueKind
}

// Int returns the Value for an integer.
func Int(n int64) Value {
	return Value{re: float64(n), kind: kindInt}
}

// Real returns the Value for a real number.
func Real(f float64) Value {
	return Value{re: f, kind: kindReal}
}

// Complex returns the Value for a complex number.
func Complex(c complex128) Value {
	return Value{re: real(c), im: imag(c), kind: kindComplex}
}

// IsInt reports whether v is an integer value. Integer-ness is preserved by
// addition, subtraction, multiplication, negation, and exponentiation with
// a non-negative integer exponent; division always promotes to real.
func (v Value) IsInt() bool {
	return v.kind == kindInt
}

// IsComplex reports whether v is a complex value.
func (v Value) IsComplex() bool {
	return v.kind == kindComplex
}

// Float64 returns the real part of v.
func (v Value) Float64() float64 {
	return v.re
}

// Complex128 returns v as a complex128.
func (v Value) Complex128() complex128 {
	return complex(v.re, v.im)
}

// String renders v so that the result lexes back to the same value:
// integers without a decimal part, reals in shortest 'g' form, complex
// values with the j suffix, parenthesized when both parts are nonzero.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		if math.IsInf(v.re, 0) || math.IsNaN(v.re) {
			return fmtReal(v.re)
		}
		return strconv.FormatFloat(v.re, 'f', -1, 64)
	case kindComplex:
		im := fmtReal(v.im) + "j"
		if v.re == 0 {
			return im
		}
		sign := "+"
		if strings.HasPrefix(im, "-") {
			sign = ""
		}
		return "(" + fmtReal(v.re) + sign + im + ")"
	default:
		return fmtReal(v.re)
	}
}

// fmtReal renders a float64 so that, finite or not, the result lexes back
// as an expression: inf and nan are identifiers, not number tokens.
func fmtReal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// literal converts a numeric token to a Value. integer marks tokens with no
// fractional part and no exponent; imaginary marks a j-suffixed token whose
// suffix has already been stripped.
func literal(text string, integer, imaginary bool) (Value, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}, err
	}
	if imaginary {
		return Value{im: f, kind: kindComplex}, nil
	}
	k := kindReal
	if integer {
		k = kindInt
	}
	return Value{re: f, kind: k}, nil
}

func joinKind(a, b valueKind) valueKind {
	if a > b {
		return a
	}
	return b
}

func add(a, b Value) Value {
	return Value{re: a.re + b.re, im: a.im + b.im, kind: joinKind(a.kind, b.kind)}
}

func sub(a, b Value) Value {
	return Value{re: a.re - b.re, im: a.im - b.im, kind: joinKind(a.kind, b.kind)}
}

func mul(a, b Value) Value {
	return Value{
		re:   a.re*b.re - a.im*b.im,
		im:   a.re*b.im + a.im*b.re,
		kind: joinKind(a.kind, b.kind),
	}
}

// div always promotes to at least real. Real division by zero follows
// IEEE: ±Inf or NaN, never an error.
func div(a, b Value) Value {
	k := joinKind(joinKind(a.kind, b.kind), kindReal)
	if k != kindComplex {
		return Value{re: a.re / b.re, kind: k}
	}
	q := a.Complex128() / b.Complex128()
	return Value{re: real(q), im: imag(q), kind: k}
}

// pow is exponentiation in domain dom. Two integers with a non-negative
// exponent stay integer. A complex operand, or the complex domain, selects
// cmplx.Pow so that e.g. (-1)^0.5 is i there; otherwise math.Pow applies
// and a negative base with fractional exponent is NaN.
func pow(a, b Value, dom Domain) Value {
	if a.kind == kindInt && b.kind == kindInt && b.re >= 0 {
		return Value{re: math.Pow(a.re, b.re), kind: kindInt}
	}
	if a.kind == kindComplex || b.kind == kindComplex || dom == DomainComplex {
		r := cmplx.Pow(a.Complex128(), b.Complex128())
		return Value{re: real(r), im: imag(r), kind: kindComplex}
	}
	return Value{re: math.Pow(a.re, b.re), kind: kindReal}
}

// root computes the nth root of x: x^(1/n). The degree is the left operand
// of the binary % operator.
func root(n, x Value, dom Domain) Value {
	return pow(x, div(Int(1), n), dom)
}

// sqrt is the unary % operator: x^0.5.
func sqrt(x Value, dom Domain) Value {
	return pow(x, Real(0.5), dom)
}

// neg negates. A non-complex value keeps its zero imaginary part as +0;
// negating it to -0 would put later complex folds on the wrong side of the
// branch cut.
func neg(a Value) Value {
	if a.kind != kindComplex {
		return Value{re: -a.re, kind: a.kind}
	}
	return Value{re: -a.re, im: -a.im, kind: a.kind}
}
