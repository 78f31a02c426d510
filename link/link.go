// Package link implements the semantic model of one Web Linking relation
// as serialized in the HTTP Link header field (RFC 8288).
//
// A [WebLink] is a validated target URI plus its parameters in encounter
// order. The type does not enforce RFC constraints itself: it is an
// accessor layer over raw parameters produced by the parser, while
// cardinality and value rules are the validator's business. Accessors over
// parameters that RFC 8288 allows once return the first occurrence;
// accessors over repeatable parameters preserve encounter order.
package link

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weblink/internal/errorutil"
	"github.com/ghettovoice/weblink/internal/grammar"
	"github.com/ghettovoice/weblink/internal/util"
)

// WebLink is one link of a Link header field: a target URI and the
// parameters attached to it, in source encounter order.
// Treat values as immutable snapshots, mutate only fresh copies from Clone.
type WebLink struct {
	// Target is the link target, the URI between "<" and ">".
	Target *url.URL
	// Params holds the link parameters in encounter order.
	Params []Parameter
}

// New creates a WebLink for the given target and parameters.
func New(target *url.URL, params ...Parameter) (WebLink, error) {
	if target == nil {
		return WebLink{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil target"))
	}
	return WebLink{Target: target, Params: params}, nil
}

// Rel returns all relation types of the link.
// Every "rel" parameter value is split on whitespace runs and the parts
// are flattened in encounter order. The view does not enforce the RFC
// single-occurrence rule, that is the validator's call.
func (ln WebLink) Rel() []string { return ln.splitAll(Rel) }

// Rev returns all reverse relation types, with the same splitting and
// flattening behavior as [WebLink.Rel].
func (ln WebLink) Rev() []string { return ln.splitAll(Rev) }

// Anchor returns the first "anchor" parameter value.
// Later duplicates are ignored by this view.
func (ln WebLink) Anchor() (string, bool) { return ln.first(Anchor) }

// Media returns the first "media" parameter value.
func (ln WebLink) Media() (string, bool) { return ln.first(Media) }

// Title returns the first "title" parameter value.
func (ln WebLink) Title() (string, bool) { return ln.first(Title) }

// TitleStar returns the first "title*" parameter value, raw and undecoded.
func (ln WebLink) TitleStar() (string, bool) { return ln.first(TitleStar) }

// Type returns the first "type" parameter value.
func (ln WebLink) Type() (string, bool) { return ln.first(Type) }

// Hreflang returns every "hreflang" parameter value in encounter order,
// unsplit and without deduplication.
func (ln WebLink) Hreflang() []string {
	var out []string
	for _, p := range ln.Params {
		if p.Kind() == Hreflang {
			out = append(out, p.Value)
		}
	}
	return out
}

// ExtensionAttributes groups every parameter whose name is outside the
// RFC 8288 set by name, preserving the encounter order of values.
// Names are compared case-sensitively.
func (ln WebLink) ExtensionAttributes() map[string][]string {
	out := map[string][]string{}
	for _, p := range ln.Params {
		if p.Kind() == Extension {
			out[p.Name] = append(out[p.Name], p.Value)
		}
	}
	return out
}

// ExtensionAttribute returns all values of the named extension attribute
// in encounter order. An absent name yields an empty slice, never a failure;
// RFC-known names always yield an empty slice.
func (ln WebLink) ExtensionAttribute(name string) []string {
	if KindOf(name) != Extension {
		return nil
	}
	return ln.ExtensionAttributes()[name]
}

func (ln WebLink) first(kind ParamKind) (string, bool) {
	for _, p := range ln.Params {
		if p.Kind() == kind {
			return p.Value, true
		}
	}
	return "", false
}

func (ln WebLink) splitAll(kind ParamKind) []string {
	var out []string
	for _, p := range ln.Params {
		if p.Kind() == kind {
			out = append(out, strings.Fields(p.Value)...)
		}
	}
	return out
}

// String returns the canonical RFC 8288 serialization of the link.
func (ln WebLink) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ln.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// Render returns the canonical serialization, same as [WebLink.String].
func (ln WebLink) Render() string { return ln.String() }

// RenderTo writes the canonical serialization of the link to w.
func (ln WebLink) RenderTo(w io.Writer) (num int, err error) {
	if ln.Target == nil {
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil target"))
	}

	n, err := fmt.Fprint(w, "<", ln.Target.String(), ">")
	num += n
	if err != nil {
		return num, errtrace.Wrap(err)
	}
	for _, p := range ln.Params {
		n, err = fmt.Fprint(w, ";", p.String())
		num += n
		if err != nil {
			return num, errtrace.Wrap(err)
		}
	}
	return num, nil
}

func (ln WebLink) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, ln.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(ln.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, ln.String())
			return
		}

		type hideMethods WebLink
		type WebLink hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), WebLink(ln))
		return
	}
}

// Clone returns a deep copy of the link.
func (ln WebLink) Clone() WebLink {
	ln2 := WebLink{Params: slices.Clone(ln.Params)}
	if ln.Target != nil {
		u := *ln.Target
		if ln.Target.User != nil {
			u.User = cloneUserinfo(ln.Target.User)
		}
		ln2.Target = &u
	}
	return ln2
}

func cloneUserinfo(ui *url.Userinfo) *url.Userinfo {
	if pwd, ok := ui.Password(); ok {
		return url.UserPassword(ui.Username(), pwd)
	}
	return url.User(ui.Username())
}

// Equal compares this link with another for equality.
// Targets compare by serialized form, parameters by name, value and
// value presence, in order.
func (ln WebLink) Equal(val any) bool {
	var other WebLink
	switch v := val.(type) {
	case WebLink:
		other = v
	case *WebLink:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	switch {
	case ln.Target == nil && other.Target != nil,
		ln.Target != nil && other.Target == nil:
		return false
	case ln.Target != nil && ln.Target.String() != other.Target.String():
		return false
	}
	return slices.Equal(ln.Params, other.Params)
}

// IsValid reports whether the link has a syntactically valid URI reference
// target and valid parameter names.
func (ln WebLink) IsValid() bool {
	if ln.Target == nil || !grammar.IsURIReference(ln.Target.String()) {
		return false
	}
	for _, p := range ln.Params {
		if !p.IsValid() {
			return false
		}
	}
	return true
}
