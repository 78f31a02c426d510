// Package lexer implements the tokenizer for the Link header field value
// grammar of RFC 8288. It is tolerant by construction: lexical faults are
// emitted in-stream as [Err] tokens so the parser can resynchronize instead
// of failing the whole header.
package lexer

import (
	"iter"
	"strings"

	"github.com/ghettovoice/weblink/internal/util"
)

// identByte reports whether c can appear in an Ident lexeme: visible
// ASCII excluding the structural delimiters and the quote. The class is
// wider than the RFC 7230 tchar set on purpose, unquoted values like
// "application/json" are widespread in the wild and must lex as one
// token. Strict token validity is the validator's call.
func identByte(c byte) bool {
	switch c {
	case '<', '>', ';', '=', ',', '"':
		return false
	}
	return c > ' ' && c < 0x7f
}

// Lexer tokenizes one Link header field value.
// The zero value is a lexer over the empty input.
type Lexer struct {
	src string
}

// New returns a Lexer over the given field value s.
// The input must already be unfolded and stripped of the field name.
func New(s string) *Lexer { return &Lexer{src: s} }

// Tokens returns a restartable lazy sequence over the tokens of the input.
// The sequence always ends with exactly one EOF token. Ranging over it again
// rescans the input from the start.
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		i := 0
		for i < len(l.src) {
			c := l.src[i]
			switch {
			case c == ' ' || c == '\t':
				i++
			case c == '<':
				var ok bool
				i, ok = l.scanTarget(i, yield)
				if !ok {
					return
				}
			case c == '"':
				var ok bool
				i, ok = l.scanQuoted(i, yield)
				if !ok {
					return
				}
			case c == '>':
				if !yield(Token{Type: GT, Lexeme: ">", Pos: i}) {
					return
				}
				i++
			case c == ';':
				if !yield(Token{Type: Semicolon, Lexeme: ";", Pos: i}) {
					return
				}
				i++
			case c == '=':
				if !yield(Token{Type: Equals, Lexeme: "=", Pos: i}) {
					return
				}
				i++
			case c == ',':
				if !yield(Token{Type: Comma, Lexeme: ",", Pos: i}) {
					return
				}
				i++
			case identByte(c):
				j := i + 1
				for j < len(l.src) && identByte(l.src[j]) {
					j++
				}
				if !yield(Token{Type: Ident, Lexeme: l.src[i:j], Pos: i}) {
					return
				}
				i = j
			default:
				if !yield(Token{Type: Err, Lexeme: l.src[i : i+1], Pos: i}) {
					return
				}
				i++
			}
		}
		yield(Token{Type: EOF, Pos: len(l.src)})
	}
}

// scanTarget emits LT, the verbatim URI text and GT.
// Only ">" terminates the target text, any other byte is captured as-is.
func (l *Lexer) scanTarget(i int, yield func(Token) bool) (int, bool) {
	if !yield(Token{Type: LT, Lexeme: "<", Pos: i}) {
		return i, false
	}
	j := strings.IndexByte(l.src[i+1:], '>')
	if j < 0 {
		return len(l.src), yield(Token{Type: Err, Lexeme: l.src[i+1:], Pos: i + 1})
	}
	if !yield(Token{Type: URI, Lexeme: l.src[i+1 : i+1+j], Pos: i + 1}) {
		return i, false
	}
	end := i + 1 + j
	if !yield(Token{Type: GT, Lexeme: ">", Pos: end}) {
		return i, false
	}
	return end + 1, true
}

// scanQuoted emits a Quoted token with escapes decoded, or an Err token
// when the closing quote is missing.
func (l *Lexer) scanQuoted(i int, yield func(Token) bool) (int, bool) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	j := i + 1
	for j < len(l.src) {
		switch c := l.src[j]; c {
		case '"':
			return j + 1, yield(Token{Type: Quoted, Lexeme: sb.String(), Pos: i})
		case '\\':
			if j+1 < len(l.src) {
				sb.WriteByte(l.src[j+1])
				j += 2
				continue
			}
			j++
		default:
			sb.WriteByte(c)
			j++
		}
	}
	return len(l.src), yield(Token{Type: Err, Lexeme: l.src[i:], Pos: i})
}
