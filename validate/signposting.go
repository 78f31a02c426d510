package validate

import (
	"fmt"
	"slices"

	"github.com/ghettovoice/weblink/internal/util"
	"github.com/ghettovoice/weblink/link"
)

// signpostingRels are the relation types of FAIR Signposting level 1.
var signpostingRels = []string{
	"author",
	"cite-as",
	"collection",
	"describedby",
	"describes",
	"item",
	"license",
	"type",
}

// typedRels are signposting relations whose links should advertise the
// media type of the target.
var typedRels = []string{"describedby", "item"}

// SignpostingProfile returns the FAIR Signposting relation profile.
// It layers two checks on the baseline: a link carrying a signposting
// relation must have an absolute target URI, and "describedby"/"item"
// links should carry a "type" parameter.
func SignpostingProfile() Profile {
	return Profile{
		Name: "signposting",
		Rules: []Rule{
			RuleFunc(checkSignpostingTarget),
			RuleFunc(checkSignpostingType),
		},
	}
}

// Relation types compare case-insensitively, RFC 8288 section 2.1.1.
func signpostingRel(ln link.WebLink, rels []string) (string, bool) {
	for _, rel := range ln.Rel() {
		if slices.Contains(rels, util.LCase(rel)) {
			return util.LCase(rel), true
		}
	}
	return "", false
}

func checkSignpostingTarget(ln link.WebLink, idx int) []Issue {
	rel, ok := signpostingRel(ln, signpostingRels)
	if !ok || (ln.Target != nil && ln.Target.IsAbs()) {
		return nil
	}
	return []Issue{NewError(IssueSignposting, idx,
		fmt.Sprintf("%q link target must be an absolute URI", rel)).WithParam("rel")}
}

func checkSignpostingType(ln link.WebLink, idx int) []Issue {
	rel, ok := signpostingRel(ln, typedRels)
	if !ok {
		return nil
	}
	if _, ok := ln.Type(); ok {
		return nil
	}
	return []Issue{NewWarning(IssueSignposting, idx,
		fmt.Sprintf(`%q link should carry a "type" parameter`, rel)).WithParam("type")}
}
