package mapa

import (
	"errors"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", nil},
		{" \t \r ", nil},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenInt, pos: 1}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenInt, pos: 1}}},
		{"1 0", []lexToken{{text: "1", kind: tokenInt, pos: 1}, {text: "0", kind: tokenInt, pos: 3}}},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 1}}},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}},
		{".1e1", []lexToken{{text: ".1e1", kind: tokenNum, pos: 1}}},
		// a number token ends at the second dot
		{"1.0.", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}, {text: ".", kind: tokenNone, pos: 4}}},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}}},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, pos: 1}}},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, pos: 1}}},
		{"cos x", []lexToken{{text: "cos", kind: tokenIdent, pos: 1}, {text: "x", kind: tokenIdent, pos: 5}}},
		// operators
		{"+-*/^%", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "^", kind: tokenOp, pos: 5},
			{text: "%", kind: tokenOp, pos: 6},
		}},
		// a doubled * is the exponent operator
		{"2**3", []lexToken{
			{text: "2", kind: tokenInt, pos: 1},
			{text: "^", kind: tokenOp, pos: 2},
			{text: "3", kind: tokenInt, pos: 4},
		}},
		{"2*3", []lexToken{
			{text: "2", kind: tokenInt, pos: 1},
			{text: "*", kind: tokenOp, pos: 2},
			{text: "3", kind: tokenInt, pos: 3},
		}},
		// punctuation
		{"(x,y)=", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "x", kind: tokenIdent, pos: 2},
			{text: ",", kind: tokenComma, pos: 3},
			{text: "y", kind: tokenIdent, pos: 4},
			{text: ")", kind: tokenClose, pos: 5},
			{text: "=", kind: tokenAssign, pos: 6},
		}},
		// separators
		{"1;2\n3", []lexToken{
			{text: "1", kind: tokenInt, pos: 1},
			{text: ";", kind: tokenSep, pos: 2},
			{text: "2", kind: tokenInt, pos: 3},
			{text: "\n", kind: tokenSep, pos: 4},
			{text: "3", kind: tokenInt, pos: 5},
		}},
	}
	for _, c := range cases {
		scan := lexString(c.src, false)
		for _, want := range c.tokens {
			got, err := scan.next()
			if want.kind == tokenNone {
				// The case expects a lex error here.
				if err == nil {
					t.Errorf("scanning %q: want error at %d, got token %v", c.src, want.pos, got)
				}
				break
			}
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				break
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
	}
}

func TestLexEOF(t *testing.T) {
	scan := lexString("x", false)
	if tok, err := scan.next(); err != nil || tok.kind != tokenIdent {
		t.Fatalf("first token: got %v, %v", tok, err)
	}
	// EOF repeats once reached.
	for i := 0; i < 3; i++ {
		tok, err := scan.next()
		if err != nil {
			t.Fatalf("EOF token %d: unexpected error %v", i, err)
		}
		if tok.kind != tokenEOF {
			t.Errorf("EOF token %d: got %v", i, tok)
		}
	}
}

func TestLexIllegal(t *testing.T) {
	cases := []struct {
		src string
		r   rune
		col int
		ctx string
	}{
		{"$", '$', 1, "$"},
		{"1 + !boom", '!', 5, "!boom"},
		{"a @ b + c + d", '@', 3, "@ b + c + "},
		{"x ? y\nz", '?', 3, "? y"},
	}
	for _, c := range cases {
		scan := lexString(c.src, false)
		var lerr *LexError
		for {
			tok, err := scan.next()
			if err != nil {
				if !errors.As(err, &lerr) {
					t.Fatalf("scanning %q: error %v is no LexError", c.src, err)
				}
				break
			}
			if tok.kind == tokenEOF {
				t.Fatalf("scanning %q: no error before EOF", c.src)
			}
		}
		if lerr.Rune != c.r || lerr.Col != c.col || lerr.Context != c.ctx {
			t.Errorf("scanning %q: got rune %q col %d context %q", c.src, lerr.Rune, lerr.Col, lerr.Context)
		}
	}
}

func TestLexImaginary(t *testing.T) {
	scan := lexString("2j", true)
	tok, err := scan.next()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if want := (lexToken{text: "2j", kind: tokenNum, pos: 1}); tok != want {
		t.Errorf("want %v, got %v", want, tok)
	}

	scan = lexString("2j", false)
	_, err = scan.next()
	var cerr *CapabilityError
	if !errors.As(err, &cerr) {
		t.Fatalf("real-mode 2j: got %v, want CapabilityError", err)
	}
	if cerr.Feature != FeatureComplexLiterals || cerr.Col != 1 {
		t.Errorf("real-mode 2j: got feature %q col %d", cerr.Feature, cerr.Col)
	}
}

func TestLexPush(t *testing.T) {
	scan := lexString("a b", false)
	a, _ := scan.next()
	b, _ := scan.next()
	scan.push(b)
	scan.push(a)
	if tok, _ := scan.next(); tok != a {
		t.Errorf("first repop: want %v, got %v", a, tok)
	}
	if tok, _ := scan.next(); tok != b {
		t.Errorf("second repop: want %v, got %v", b, tok)
	}
}
