package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/weblink/internal/parser"
	"github.com/ghettovoice/weblink/validate"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		in         string
		want       []parser.LinkValue
		wantIssues int
	}{
		{
			"single link no params",
			"<https://example.com/>",
			[]parser.LinkValue{{Target: "https://example.com/"}},
			0,
		},
		{
			"params with and without values",
			`<https://a/>;rel="self";foo;bar=""`,
			[]parser.LinkValue{{
				Target: "https://a/",
				Params: []parser.RawParam{
					{Name: "rel", Value: "self", HasValue: true},
					{Name: "foo"},
					{Name: "bar", Value: "", HasValue: true},
				},
			}},
			0,
		},
		{
			"token value",
			"<https://a/>;type=application/json",
			[]parser.LinkValue{{
				Target: "https://a/",
				Params: []parser.RawParam{{Name: "type", Value: "application/json", HasValue: true}},
			}},
			0,
		},
		{
			"multiple links keep indices",
			"<https://a/>;rel=self, <https://b/>;rel=next",
			[]parser.LinkValue{
				{Target: "https://a/", Params: []parser.RawParam{{Name: "rel", Value: "self", HasValue: true}}, Index: 0},
				{Target: "https://b/", Params: []parser.RawParam{{Name: "rel", Value: "next", HasValue: true}}, Index: 1},
			},
			0,
		},
		{
			"comma inside quoted value",
			`<https://a/>;title="a, b", <https://b/>`,
			[]parser.LinkValue{
				{Target: "https://a/", Params: []parser.RawParam{{Name: "title", Value: "a, b", HasValue: true}}, Index: 0},
				{Target: "https://b/", Index: 1},
			},
			0,
		},
		{
			"param names kept case sensitive",
			"<https://a/>;Profile=x;profile=y",
			[]parser.LinkValue{{
				Target: "https://a/",
				Params: []parser.RawParam{
					{Name: "Profile", Value: "x", HasValue: true},
					{Name: "profile", Value: "y", HasValue: true},
				},
			}},
			0,
		},
		{
			"malformed segment skipped, neighbors kept",
			"<https://a/>;rel=self, no-brackets;x=1, <https://b/>;rel=alt",
			[]parser.LinkValue{
				{Target: "https://a/", Params: []parser.RawParam{{Name: "rel", Value: "self", HasValue: true}}, Index: 0},
				{Target: "https://b/", Params: []parser.RawParam{{Name: "rel", Value: "alt", HasValue: true}}, Index: 2},
			},
			1,
		},
		{
			"empty target is a same-document reference",
			"<>;rel=self",
			[]parser.LinkValue{{
				Target: "",
				Params: []parser.RawParam{{Name: "rel", Value: "self", HasValue: true}},
			}},
			0,
		},
		{
			"comma inside brackets stays in the target",
			"<https://a/?q=1,2>;rel=self",
			[]parser.LinkValue{{
				Target: "https://a/?q=1,2",
				Params: []parser.RawParam{{Name: "rel", Value: "self", HasValue: true}},
			}},
			0,
		},
		{
			"unterminated target swallows the rest",
			"<https://a, <https://b",
			nil,
			1,
		},
		{
			"missing param value drops the segment",
			"<https://a/>;rel=, <https://b/>;rel=x",
			[]parser.LinkValue{
				{Target: "https://b/", Params: []parser.RawParam{{Name: "rel", Value: "x", HasValue: true}}, Index: 1},
			},
			1,
		},
		{
			"trailing junk drops the segment",
			"<https://a/>x, <https://b/>",
			[]parser.LinkValue{
				{Target: "https://b/", Index: 1},
			},
			1,
		},
		{
			"only malformed input",
			";rel=x",
			nil,
			1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			vals, issues := parser.Parse(c.in)
			if diff := cmp.Diff(vals, c.want); diff != "" {
				t.Errorf("Parse(%q) values mismatch\ndiff (-got +want):\n%v", c.in, diff)
			}
			if len(issues) != c.wantIssues {
				t.Errorf("Parse(%q) = %d issues, want %d: %v", c.in, len(issues), c.wantIssues, issues)
			}
			for _, i := range issues {
				if i.Code != validate.IssueSyntax || !i.IsError() {
					t.Errorf("Parse(%q) issue = %v, want syntax error", c.in, i)
				}
			}
		})
	}
}

func TestParse_IssueReferencesSegment(t *testing.T) {
	t.Parallel()

	_, issues := parser.Parse("<https://a/>;rel=self, bad segment, <https://b/>;rel=alt")
	if len(issues) != 1 {
		t.Fatalf("Parse() = %d issues, want 1: %v", len(issues), issues)
	}
	if issues[0].Link != 1 {
		t.Errorf("issue.Link = %d, want 1", issues[0].Link)
	}
}

func TestParse_NoSemanticInterpretation(t *testing.T) {
	t.Parallel()

	// Duplicates and unknown names pass through untouched, in order.
	vals, issues := parser.Parse("<https://a/>;rel=self;rel=next;zzz=1")
	if len(issues) != 0 {
		t.Fatalf("Parse() = %d issues, want 0: %v", len(issues), issues)
	}
	want := []parser.RawParam{
		{Name: "rel", Value: "self", HasValue: true},
		{Name: "rel", Value: "next", HasValue: true},
		{Name: "zzz", Value: "1", HasValue: true},
	}
	if diff := cmp.Diff(vals[0].Params, want); diff != "" {
		t.Errorf("params mismatch\ndiff (-got +want):\n%v", diff)
	}
}
