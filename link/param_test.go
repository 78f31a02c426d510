package link_test

import (
	"testing"

	"github.com/ghettovoice/weblink/link"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want link.ParamKind
	}{
		{"anchor", link.Anchor},
		{"rel", link.Rel},
		{"rev", link.Rev},
		{"hreflang", link.Hreflang},
		{"media", link.Media},
		{"title", link.Title},
		{"title*", link.TitleStar},
		{"type", link.Type},
		{"Rel", link.Extension},
		{"TYPE", link.Extension},
		{"profile", link.Extension},
		{"", link.Extension},
	}

	for _, c := range cases {
		if got := link.KindOf(c.name); got != c.want {
			t.Errorf("KindOf(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParameter_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		param link.Parameter
		want  string
	}{
		{link.FlagParam("crossorigin"), "crossorigin"},
		{link.Param("rel", "self"), "rel=self"},
		{link.Param("title", "Home Page"), `title="Home Page"`},
		{link.Param("title", `say "hi"`), `title="say \"hi\""`},
		{link.Param("path", `a\b`), `path="a\\b"`},
		{link.Param("bar", ""), `bar=""`},
	}

	for _, c := range cases {
		if got := c.param.String(); got != c.want {
			t.Errorf("%#v.String() = %q, want %q", c.param, got, c.want)
		}
	}
}

func TestParameter_Valued(t *testing.T) {
	t.Parallel()

	if v, ok := link.Param("bar", "").Valued(); v != "" || !ok {
		t.Errorf(`Param("bar", "").Valued() = %q, %v, want "", true`, v, ok)
	}
	if v, ok := link.FlagParam("foo").Valued(); v != "" || ok {
		t.Errorf(`FlagParam("foo").Valued() = %q, %v, want "", false`, v, ok)
	}
}

func TestParameter_IsValid(t *testing.T) {
	t.Parallel()

	if !link.Param("x-custom", "any value at all").IsValid() {
		t.Error("token name with spaced value must be valid")
	}
	if !link.Param("bar", "").IsValid() {
		t.Error("explicit empty value must be valid")
	}
	if !link.Param("title", `say "hi"`).IsValid() {
		t.Error("escapable value must be valid")
	}
	if link.Param("bad name", "v").IsValid() {
		t.Error("name with a space must be invalid")
	}
	if link.FlagParam("").IsValid() {
		t.Error("empty name must be invalid")
	}
	if link.Param("t", "ctl\x01byte").IsValid() {
		t.Error("value with a control byte cannot be serialized and must be invalid")
	}
}

func TestParameter_Equal(t *testing.T) {
	t.Parallel()

	p := link.Param("rel", "self")
	if !p.Equal(link.Param("rel", "self")) {
		t.Error("identical params must be equal")
	}
	if !p.Equal(&p) {
		t.Error("pointer form must be equal")
	}
	if p.Equal(link.Param("rel", "next")) {
		t.Error("different values must not be equal")
	}
	if p.Equal(link.FlagParam("rel")) {
		t.Error("valued and flag params must not be equal")
	}
	if p.Equal((*link.Parameter)(nil)) || p.Equal("rel=self") {
		t.Error("nil pointer and foreign types must not be equal")
	}
}
