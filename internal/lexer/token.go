package lexer

// TokenType enumerates the lexical classes of the Link header field grammar.
type TokenType int

const (
	// EOF terminates every token stream.
	EOF TokenType = iota
	// Err marks a lexical fault: an unterminated quoted-string, an
	// unterminated "<...>" or a byte outside every token class.
	// The lexeme carries the offending text.
	Err
	// LT is "<".
	LT
	// GT is ">".
	GT
	// Semicolon is ";".
	Semicolon
	// Equals is "=".
	Equals
	// Comma is ",".
	Comma
	// URI is the text between "<" and its matching ">", captured verbatim.
	// The angle brackets themselves are emitted as LT and GT tokens.
	URI
	// Ident is a maximal run of visible bytes outside the structural
	// delimiters, covering parameter names and unquoted values.
	Ident
	// Quoted is a quoted-string value without the surrounding quotes and
	// with backslash escapes decoded.
	Quoted
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Err:
		return "ERR"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case Semicolon:
		return "SEMICOLON"
	case Equals:
		return "EQUALS"
	case Comma:
		return "COMMA"
	case URI:
		return "URI"
	case Ident:
		return "IDENT"
	case Quoted:
		return "QUOTED"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit with its decoded lexeme and the byte
// offset of its first character in the input.
type Token struct {
	Type   TokenType
	Lexeme string
	Pos    int
}
