package mapa

import "testing"

func TestFormatReadable(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"var", "x", "x"},
		{"group", "(x)", "x"},
		{"add", "x+y", "x+y"},
		{"assoc-left", "(a-b)+c", "a-b+c"},
		{"assoc-right", "a-(b+c)", "a-(b+c)"},
		{"sub-flat", "a-(b-c)", "a-b-c"},
		{"div-left", "(a/b)*c", "a/b*c"},
		{"div-right", "a/(b*c)", "a/(b*c)"},
		{"mul-flat", "a*(b*c)", "a*b*c"},
		{"pow-left", "(a^b)^c", "a^b^c"},
		{"pow-flat", "a^(b^c)", "a^b^c"},
		{"prec", "a+(b*c)", "a+b*c"},
		{"prec-keep", "(a+b)*c", "(a+b)*c"},
		{"neg", "-x", "-x"},
		{"neg-mul", "-(x*y)", "-x*y"},
		{"neg-add", "-(x+y)", "-(x+y)"},
		{"neg-in-add", "x+-y", "x+-y"},
		{"uroot", "%x^y", "%x^y"},
		{"root-pow", "(2%x)^y", "2%x^y"},
		{"call", "cos(x)", "cos(x)"},
		{"call-bin", "atan2(x,y)", "atan2(x,y)"},
		{"call-arg", "cos((x+y))", "cos(x+y)"},
		{"fold-in", "x*(1+2)", "x*3"},
		{"fold-real", "2*x + 1/4", "2*x+0.25"},
	}
	s := NewSession()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := s.ParseString(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("%q renders %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestFormatCanonical(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"var", "x", "x"},
		{"add", "x+y+z", "((x+y)+z)"},
		{"mix", "a-(b+c)", "(a-(b+c))"},
		{"neg", "-x^y", "(-(x^y))"},
		{"call", "cos(x+y)", "cos((x+y))"},
	}
	s := NewSession()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := s.ParseString(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if got := r.Canonical(); got != c.want {
				t.Errorf("%q canonical %q, want %q", c.src, got, c.want)
			}
		})
	}
}

// Reparsing either rendering of a tree reconstructs an equal tree.
func TestFormatRoundTrip(t *testing.T) {
	srcs := []string{
		"x",
		"x+y*z",
		"a-(b+c)",
		"-x^y",
		"x^-y^z",
		"2%x + %y",
		"cos(x)*atan2(y,z)",
		"2*x + 1/4",
	}
	s := NewSession()
	for _, src := range srcs {
		r, err := s.ParseString(src)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", src, err)
		}
		for _, render := range []string{r.String(), r.Canonical()} {
			back, err := s.ParseString(render)
			if err != nil {
				t.Fatalf("failed to reparse %q (from %q): %v", render, src, err)
			}
			if !eqResult(r, back) {
				t.Errorf("%q reparsed from %q as %v", src, render, back.Canonical())
			}
		}
	}
}
