// Package grammar provides syntax checks for the lexical elements of the
// Link header field: RFC 7230 tokens and quoted-strings, RFC 3986 URI
// references and the RFC 6838 media type shape.
package grammar

import (
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/weblink/internal/constraints"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// IsToken reports whether s is a valid RFC 7230 token.
func IsToken[T constraints.Byteseq](s T) bool { return fullMatch(token, s) }

// IsQuotedString reports whether s is a valid RFC 7230 quoted-string,
// including the surrounding double quotes.
func IsQuotedString[T constraints.Byteseq](s T) bool { return fullMatch(quotedString, s) }

// IsMediaType reports whether s has the shape of a media type:
// token "/" token with optional ";" separated parameters.
func IsMediaType[T constraints.Byteseq](s T) bool { return fullMatch(mediaType, s) }

// IsURIReference reports whether s is a syntactically valid RFC 3986
// URI reference, absolute or relative. The empty string is valid, it is
// a same-document reference (RFC 3986 section 4.4).
func IsURIReference[T constraints.Byteseq](s T) bool {
	return len(s) == 0 || fullMatch(uriReference, s)
}

func fullMatch[T constraints.Byteseq](op abnf.Operator, s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
