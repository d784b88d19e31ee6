package mapa

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenSep is a statement separator, either ; or a newline.
	tokenSep
	// tokenAssign is the = of an assignment.
	tokenAssign
	// tokenOpen and tokenClose are ( and ).
	tokenOpen
	tokenClose
	// tokenComma separates function arguments.
	tokenComma
	// tokenOp is an operator: + - * / ^ %. A doubled * lexes as ^.
	tokenOp
	// tokenInt is a numeric literal with no fractional part and no
	// exponent. It differs from tokenNum only in the value it produces.
	tokenInt
	// tokenNum is any other numeric literal, including j-suffixed ones.
	tokenNum
	// tokenIdent is a variable, constant, or function name.
	tokenIdent
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenSep:
		return "Sep"
	case tokenAssign:
		return "Assign"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenComma:
		return "Comma"
	case tokenOp:
		return "Op"
	case tokenInt:
		return "Int"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// p is the pushed-back token stack. The parser needs to unread two
	// tokens to decide between an assignment and a bare expression.
	p   []lexToken
	eof bool
	// complexOK permits j-suffixed literals.
	complexOK bool
}

func lexString(src string, complexOK bool) *lexer {
	return lex(strings.NewReader(src), complexOK)
}

func lex(src io.RuneScanner, complexOK bool) *lexer {
	return &lexer{
		src:       src,
		rune:      1,
		complexOK: complexOK,
	}
}

// push unreads a token so that it is the next token returned from next.
// Panics if two tokens are already pushed.
func (l *lexer) push(tok lexToken) {
	if len(l.p) >= 2 {
		panic("mapa: triple push")
	}
	l.p = append(l.p, tok)
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Once the end of the input is
// reached, next returns an EOF token every time.
func (l *lexer) next() (lexToken, error) {
	if n := len(l.p); n > 0 {
		tok := l.p[n-1]
		l.p = l.p[:n-1]
		return tok, nil
	}
	if l.eof {
		return lexToken{kind: tokenEOF, pos: l.rune}, nil
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case r == ' ', r == '\t', r == '\r':
			tok.pos++
			continue
		case r == '\n', r == ';':
			tok.text = string(r)
			tok.kind = tokenSep
			return tok, nil
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			return l.scanNum(tok)
		case r == '_', isAlpha(r):
			l.unreadRune()
			l.scanIdent()
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == '=':
			tok.text = "="
			tok.kind = tokenAssign
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case r == ',':
			tok.text = ","
			tok.kind = tokenComma
			return tok, nil
		case r == '*':
			// ** is the exponent operator, same as ^.
			tok.text = "*"
			r, err := l.readRune()
			switch {
			case err == nil && r == '*':
				tok.text = "^"
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return tok, err
			}
			tok.kind = tokenOp
			return tok, nil
		case r == '+', r == '-', r == '/', r == '^', r == '%':
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			return tok, l.illegal(r, tok.pos)
		}
	}
}

// scanNum scans a numeric literal: digits with an optional fractional
// part, an optional exponent, and an optional j suffix. The j suffix is a
// CapabilityError unless the session is in complex mode.
func (l *lexer) scanNum(tok lexToken) (lexToken, error) {
	integer := true
	dig := l.scanDigits()
	r, err := l.readRune()
	if err == nil && r == '.' {
		integer = false
		l.buf.WriteRune(r)
		if l.scanDigits() == 0 && dig == 0 {
			// A lone dot is not a number.
			return tok, l.illegal('.', tok.pos)
		}
		r, err = l.readRune()
	} else if dig == 0 {
		// Unreachable from next, which only calls scanNum on a digit or
		// dot, but keep the scanner self-contained.
		return tok, l.illegal(r, tok.pos)
	}
	if err == nil && (r == 'e' || r == 'E') {
		integer = false
		l.buf.WriteRune(r)
		r, err = l.readRune()
		if err == nil && (r == '+' || r == '-') {
			l.buf.WriteRune(r)
			r, err = l.readRune()
		}
		if err == nil {
			l.unreadRune()
		}
		if l.scanDigits() == 0 {
			return tok, l.illegal(r, tok.pos)
		}
		r, err = l.readRune()
	}
	if err == nil && r == 'j' {
		if !l.complexOK {
			return tok, &CapabilityError{Feature: FeatureComplexLiterals, Col: tok.pos}
		}
		l.buf.WriteRune(r)
		integer = false
	} else if err == nil {
		l.unreadRune()
	} else if !errors.Is(err, io.EOF) {
		return tok, err
	}
	tok.text = l.buf.String()
	tok.kind = tokenNum
	if integer {
		tok.kind = tokenInt
	}
	return tok, nil
}

// scanDigits appends a run of decimal digits to the buffer and reports how
// many there were.
func (l *lexer) scanDigits() int {
	n := 0
	for {
		r, err := l.readRune()
		if err != nil {
			return n
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return n
		}
		l.buf.WriteRune(r)
		n++
	}
}

func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			return
		}
		switch {
		case r == '_', isAlpha(r), '0' <= r && r <= '9':
			l.buf.WriteRune(r)
		default:
			l.unreadRune()
			return
		}
	}
}

func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// illegal builds a LexError for r, reading ahead a few runes for the
// context snippet.
func (l *lexer) illegal(r rune, pos int) error {
	var ctx strings.Builder
	ctx.WriteRune(r)
	for i := 0; i < 9; i++ {
		c, err := l.readRune()
		if err != nil {
			break
		}
		if c == '\n' {
			break
		}
		ctx.WriteRune(c)
	}
	return &LexError{
		Rune:    r,
		Context: ctx.String(),
		Col:     pos,
	}
}
