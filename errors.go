package mapa

import "strconv"

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the offending token.
	Pos() int
}

// LexError indicates an illegal character in the input.
type LexError struct {
	// Rune is the offending character.
	Rune rune
	// Context is a short snippet of the input starting at the offending
	// character.
	Context string
	// Col is the rune column of the character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "illegal character "+strconv.QuoteRune(err.Rune)+" in "+strconv.Quote(err.Context))
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates a malformed token sequence.
type SyntaxError struct {
	// Token is the offending token, or the empty string at end of input.
	Token string
	// Col is the rune column of the token.
	Col int
}

func (err *SyntaxError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unexpected end of input")
	}
	return errpos(err.Col, "syntax error at "+strconv.Quote(err.Token))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// NameError indicates an unknown variable, constant, or function name.
type NameError struct {
	// Name is the name that did not resolve.
	Name string
	// Kind describes the table that was consulted: "variable or constant",
	// "unary function", or "binary function".
	Kind string
	// Col is the rune column of the name.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unknown "+err.Kind+" "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// Features which a session can disable. A disabled feature surfaces as a
// CapabilityError, not a syntax error.
const (
	FeatureAssignment      = "assignment"
	FeatureFreeVariables   = "free variables"
	FeatureComplexLiterals = "complex literals"
)

// CapabilityError indicates use of a feature the session has disabled.
type CapabilityError struct {
	// Feature is one of the Feature constants.
	Feature string
	// Col is the rune column at which the feature was invoked.
	Col int
}

func (err *CapabilityError) Error() string {
	return errpos(err.Col, err.Feature+" not enabled in this session")
}

func (err *CapabilityError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*CapabilityError)(nil)
)
