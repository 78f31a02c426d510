// Package parser recovers the link-values of a Link header field from its
// token stream. It implements the grammar of RFC 8288 section 3:
//
//	Link      = link-value *( "," link-value )
//	link-value = "<" URI-Reference ">" *( ";" link-param )
//	link-param = token [ "=" ( token / quoted-string ) ]
//
// The parser is purely syntactic: it performs no deduplication, cardinality
// checks or known/unknown parameter classification. A malformed segment
// yields one syntax issue and is skipped up to the next top-level comma, so
// valid neighbors always survive.
package parser

import (
	"fmt"
	"iter"

	"github.com/ghettovoice/weblink/internal/lexer"
	"github.com/ghettovoice/weblink/validate"
)

// RawParam is one link-param as encountered in the serialization.
// HasValue distinguishes a bare flag parameter from one with an explicit
// value: `foo` has HasValue false, `foo=""` has HasValue true and an empty
// Value.
type RawParam struct {
	Name     string
	Value    string
	HasValue bool
}

// LinkValue is one comma-separated segment of the header: the target text,
// not yet URI-validated, plus its parameters in encounter order.
type LinkValue struct {
	Target string
	Params []RawParam
	// Index is the position of the segment within the header, counting
	// malformed segments that produced no LinkValue.
	Index int
}

// Parse tokenizes and parses s into its syntactically valid link-values.
// Syntax faults are returned as issues, never as an error: one malformed
// segment discards that segment only.
func Parse(s string) ([]LinkValue, []validate.Issue) {
	next, stop := iter.Pull(lexer.New(s).Tokens())
	defer stop()

	p := parser{next: next}
	p.advance()
	p.parseLink()
	return p.vals, p.issues
}

type parser struct {
	next   func() (lexer.Token, bool)
	tok    lexer.Token
	vals   []LinkValue
	issues []validate.Issue
	idx    int
}

func (p *parser) advance() {
	if t, ok := p.next(); ok {
		p.tok = t
		return
	}
	p.tok = lexer.Token{Type: lexer.EOF}
}

func (p *parser) parseLink() {
	for {
		p.parseLinkValue()
		switch p.tok.Type {
		case lexer.Comma:
			p.advance()
			p.idx++
		case lexer.EOF:
			return
		}
	}
}

func (p *parser) parseLinkValue() {
	if p.tok.Type != lexer.LT {
		p.fail("link-value must start with \"<\", got %s at offset %d", p.tok.Type, p.tok.Pos)
		return
	}
	p.advance()

	if p.tok.Type != lexer.URI {
		p.fail("unterminated \"<\" at offset %d", p.tok.Pos)
		return
	}
	val := LinkValue{Target: p.tok.Lexeme, Index: p.idx}
	p.advance()

	if p.tok.Type != lexer.GT {
		p.fail("missing \">\" at offset %d", p.tok.Pos)
		return
	}
	p.advance()

	for p.tok.Type == lexer.Semicolon {
		p.advance()
		param, ok := p.parseParam()
		if !ok {
			return
		}
		val.Params = append(val.Params, param)
	}

	if p.tok.Type != lexer.Comma && p.tok.Type != lexer.EOF {
		p.fail("unexpected %s at offset %d", p.tok.Type, p.tok.Pos)
		return
	}
	p.vals = append(p.vals, val)
}

// parseParam consumes one link-param after its ";" separator.
func (p *parser) parseParam() (RawParam, bool) {
	if p.tok.Type != lexer.Ident {
		p.fail("link-param must start with a token name, got %s at offset %d", p.tok.Type, p.tok.Pos)
		return RawParam{}, false
	}
	param := RawParam{Name: p.tok.Lexeme}
	p.advance()

	if p.tok.Type != lexer.Equals {
		return param, true
	}
	p.advance()

	if p.tok.Type != lexer.Ident && p.tok.Type != lexer.Quoted {
		p.fail("link-param %q must have a token or quoted-string value, got %s at offset %d",
			param.Name, p.tok.Type, p.tok.Pos)
		return RawParam{}, false
	}
	param.Value = p.tok.Lexeme
	param.HasValue = true
	p.advance()
	return param, true
}

// fail records one syntax issue for the current segment and discards
// tokens up to the next top-level comma or EOF.
func (p *parser) fail(format string, args ...any) {
	p.issues = append(p.issues, validate.NewError(validate.IssueSyntax, p.idx, fmt.Sprintf(format, args...)))
	for p.tok.Type != lexer.Comma && p.tok.Type != lexer.EOF {
		p.advance()
	}
}
