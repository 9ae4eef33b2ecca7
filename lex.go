package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a run of digits and decimal points.
	tokenNum
	// tokenSym is a single rune that may be part of an operator or constant
	// name.
	tokenSym
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSpace is a run of whitespace.
	tokenSpace
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenSym:
		return "Sym"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSpace:
		return "Space"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calculator: double push")
	}
	l.p = tok
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

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent times, if the EOF
// token is not pushed, the result is an empty token with io.EOF. Any other
// error is from the source.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
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
	case unicode.IsSpace(r):
		if err := l.scanWhile(unicode.IsSpace, r); err != nil {
			return tok, err
		}
		tok.kind = tokenSpace
	case isNumeral(r):
		if err := l.scanWhile(isNumeral, r); err != nil {
			return tok, err
		}
		tok.kind = tokenNum
	case r == '(':
		l.buf.WriteRune(r)
		tok.kind = tokenOpen
	case r == ')':
		l.buf.WriteRune(r)
		tok.kind = tokenClose
	default:
		l.buf.WriteRune(r)
		tok.kind = tokenSym
	}
	tok.text = l.buf.String()
	return tok, nil
}

// nextSignificant scans the next token that is not whitespace.
func (l *lexer) nextSignificant() (lexToken, error) {
	for {
		tok, err := l.next()
		if err != nil || tok.kind != tokenSpace {
			return tok, err
		}
	}
}

// scanWhile writes first and then every following rune that satisfies f to
// the buffer. The first rune that does not satisfy f is unread.
func (l *lexer) scanWhile(f func(rune) bool, first rune) error {
	l.buf.WriteRune(first)
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !f(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// isNumeral returns whether r can be part of a number.
func isNumeral(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}
