package validate_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/weblink/internal/testutil/rulemock"
	"github.com/ghettovoice/weblink/link"
	"github.com/ghettovoice/weblink/validate"
)

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	lnA := mustLink(t, "https://a/", link.Param("rel", "self"))
	lnB := mustLink(t, "https://b/", link.Param("rel", "next"))
	entries := []validate.Entry{{Link: lnA, Index: 0}, {Link: lnB, Index: 2}}

	issueA := validate.NewWarning(validate.IssueUnknownParam, 0, "a")
	issueColl := validate.NewError(validate.IssueSignposting, validate.NoLink, "coll")

	rule := rulemock.NewMockRule(ctrl)
	// The rule sees every link with its original segment index.
	rule.EXPECT().Check(lnA, 0).Return([]validate.Issue{issueA})
	rule.EXPECT().Check(lnB, 2).Return(nil)

	collRule := rulemock.NewMockCollectionRule(ctrl)
	collRule.EXPECT().CheckAll([]link.WebLink{lnA, lnB}).Return([]validate.Issue{issueColl})

	prior := validate.NewError(validate.IssueSyntax, 1, "dropped segment")
	report := validate.New().
		AddRules(rule).
		AddCollectionRules(collRule).
		Validate(entries, prior)

	// Prior issues first, then per-link, then collection-wide.
	want := []validate.Issue{prior, issueA, issueColl}
	if diff := cmp.Diff(report.Issues(), want); diff != "" {
		t.Errorf("report mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestValidator_BaselineAlwaysActive(t *testing.T) {
	t.Parallel()

	entries := []validate.Entry{{Link: mustLink(t, "https://a/", link.Param("title", "x")), Index: 0}}
	report := validate.New().Validate(entries)
	if !report.ContainsIssues() {
		t.Fatal("missing rel must be flagged without any configuration")
	}
	if got := report.Errors(); len(got) != 1 || got[0].Code != validate.IssueMissingRel {
		t.Errorf("Errors() = %v, want one missing-rel", got)
	}
}

func TestValidator_ProfileRulesAppended(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ln := mustLink(t, "https://a/", link.Param("rel", "self"))

	rule := rulemock.NewMockRule(ctrl)
	rule.EXPECT().Check(ln, 0).Return(nil)

	report := validate.New(validate.Profile{Name: "custom", Rules: []validate.Rule{rule}}).
		Validate([]validate.Entry{{Link: ln, Index: 0}})
	if report.Len() != 0 {
		t.Errorf("report = %v, want empty", report)
	}
}

func TestValidator_NoLinks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	collRule := rulemock.NewMockCollectionRule(ctrl)
	collRule.EXPECT().CheckAll([]link.WebLink{}).Return(nil)

	report := validate.New().AddCollectionRules(collRule).Validate(nil)
	if report.Len() != 0 {
		t.Errorf("report = %v, want empty", report)
	}
}

func TestRuleFunc(t *testing.T) {
	t.Parallel()

	called := 0
	r := validate.RuleFunc(func(ln link.WebLink, idx int) []validate.Issue {
		called++
		return []validate.Issue{validate.NewWarning(validate.IssueUnknownParam, idx, "x")}
	})
	issues := r.Check(link.WebLink{}, 7)
	if called != 1 || len(issues) != 1 || issues[0].Link != 7 {
		t.Errorf("RuleFunc dispatch failed: called=%d issues=%v", called, issues)
	}

	cr := validate.CollectionRuleFunc(func(links []link.WebLink) []validate.Issue {
		return []validate.Issue{validate.NewWarning(validate.IssueSignposting, validate.NoLink, "y")}
	})
	if issues := cr.CheckAll(nil); len(issues) != 1 || issues[0].Link != validate.NoLink {
		t.Errorf("CollectionRuleFunc dispatch failed: %v", issues)
	}
}
