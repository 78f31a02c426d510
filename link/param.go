package link

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weblink/internal/grammar"
)

// ParamKind classifies a link parameter name against the fixed set of
// parameters defined by RFC 8288. Every other name is an Extension.
type ParamKind int

const (
	// Extension is any parameter name outside the RFC 8288 set.
	Extension ParamKind = iota
	// Anchor is the "anchor" link context parameter.
	Anchor
	// Rel is the "rel" relation type parameter.
	Rel
	// Rev is the "rev" reverse relation parameter.
	Rev
	// Hreflang is the "hreflang" target attribute.
	Hreflang
	// Media is the "media" target attribute.
	Media
	// Title is the "title" target attribute.
	Title
	// TitleStar is the "title*" extended target attribute (RFC 8187).
	TitleStar
	// Type is the "type" media type target attribute.
	Type
)

var paramKinds = map[string]ParamKind{
	"anchor":   Anchor,
	"rel":      Rel,
	"rev":      Rev,
	"hreflang": Hreflang,
	"media":    Media,
	"title":    Title,
	"title*":   TitleStar,
	"type":     Type,
}

// KindOf returns the kind of the given parameter name.
// The lookup is case-sensitive: "Rel" is an extension, "rel" is not.
func KindOf(name string) ParamKind { return paramKinds[name] }

func (k ParamKind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case Rel:
		return "rel"
	case Rev:
		return "rev"
	case Hreflang:
		return "hreflang"
	case Media:
		return "media"
	case Title:
		return "title"
	case TitleStar:
		return "title*"
	case Type:
		return "type"
	default:
		return "extension"
	}
}

// Parameter is one link-param of a link-value.
// HasValue distinguishes a bare flag parameter from one carrying an
// explicit value; an empty Value with HasValue set means `name=""`.
type Parameter struct {
	Name     string
	Value    string
	HasValue bool
}

// Param creates a parameter with an explicit value.
func Param(name, value string) Parameter {
	return Parameter{Name: name, Value: value, HasValue: true}
}

// FlagParam creates a value-less parameter.
func FlagParam(name string) Parameter {
	return Parameter{Name: name}
}

// Kind returns the RFC 8288 classification of the parameter name.
func (p Parameter) Kind() ParamKind { return KindOf(p.Name) }

// Valued returns the parameter value and whether one was present in the
// serialization.
func (p Parameter) Valued() (string, bool) { return p.Value, p.HasValue }

// IsValid reports whether the parameter can be legally serialized: the
// name must be a token and the value, when present, must render as a
// token or a quoted-string. Values holding control bytes fail the check.
func (p Parameter) IsValid() bool {
	if !grammar.IsToken(p.Name) {
		return false
	}
	if !p.HasValue || grammar.IsToken(p.Value) {
		return true
	}
	return grammar.IsQuotedString(quoteValue(p.Value))
}

// Equal compares this parameter with another for equality.
func (p Parameter) Equal(val any) bool {
	var other Parameter
	switch v := val.(type) {
	case Parameter:
		other = v
	case *Parameter:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return p == other
}

func (p Parameter) String() string {
	if !p.HasValue {
		return p.Name
	}
	if grammar.IsToken(p.Value) {
		return p.Name + "=" + p.Value
	}
	return p.Name + "=" + quoteValue(p.Value)
}

// RenderTo writes the serialized link-param to w.
func (p Parameter) RenderTo(w io.Writer) (int, error) {
	return errtrace.Wrap2(fmt.Fprint(w, p.String()))
}

// quoteValue serializes s as an RFC 7230 quoted-string, escaping the
// double quote and backslash characters.
func quoteValue(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
