package mapa

import (
	"reflect"
	"testing"
)

func TestSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.Domain() != DomainReal {
		t.Errorf("default domain: got %v", s.Domain())
	}
	if !s.assign || !s.free {
		t.Errorf("default capabilities: assign=%v free=%v", s.assign, s.free)
	}
	for _, name := range []string{"pi", "e"} {
		if _, ok := s.consts[name]; !ok {
			t.Errorf("missing default constant %q", name)
		}
	}
	if s.unary["cos"] == nil || s.binary["atan2"] == nil {
		t.Error("missing default real functions")
	}
}

func TestSessionComplexMode(t *testing.T) {
	s := NewSession(ComplexMode())
	if s.Domain() != DomainComplex {
		t.Errorf("domain: got %v", s.Domain())
	}
	if s.unary["phase"] == nil || s.binary["rect"] == nil {
		t.Error("missing default complex functions")
	}
	if s.unary["fabs"] != nil {
		t.Error("real-only function in complex table")
	}
}

func TestSessionCustomTables(t *testing.T) {
	double := func(v Value) Value { return mul(Int(2), v) }
	smaller := func(a, b Value) Value {
		if b.Float64() < a.Float64() {
			return b
		}
		return a
	}
	s := NewSession(
		WithConstants(map[string]Value{"answer": Int(42)}),
		WithUnaryFuncs(map[string]UnaryFunc{"double": double}),
		WithBinaryFuncs(map[string]BinaryFunc{"smaller": smaller}),
	)
	r, err := s.ParseString("smaller(double(answer), 100)")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Value().Float64(); got != 84 {
		t.Errorf("want 84, got %g", got)
	}
	// Replacing a table removes its defaults.
	if _, err := s.ParseString("cos(1)"); err == nil {
		t.Error("default function survived a replaced table")
	}
}

func TestSessionConstantsReplaced(t *testing.T) {
	s := NewSession(
		WithConstants(map[string]Value{"tau": Real(6.283185307179586)}),
		DisableFreeVariables(),
	)
	if _, err := s.ParseString("pi"); err == nil {
		t.Error("default constant survived a replaced table")
	}
	r, err := s.ParseString("tau/2")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Value().Float64(); got < 3.14 || got > 3.15 {
		t.Errorf("tau/2: got %g", got)
	}
}

func TestSessionSeedVariables(t *testing.T) {
	s := NewSession(WithVariables(map[string]Value{"x": Int(7)}))
	r, err := s.ParseString("x*x")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Value().Float64(); got != 49 {
		t.Errorf("want 49, got %g", got)
	}
	if got := s.Vars(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("Vars: got %v", got)
	}
}

func TestSessionVarsSorted(t *testing.T) {
	s := NewSession()
	if _, err := s.ParseString("c = 1; a = 2; b = 3"); err != nil {
		t.Fatal(err)
	}
	if got := s.Vars(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Vars: got %v", got)
	}
}
