package validate

import (
	"fmt"

	"github.com/ghettovoice/weblink/internal/grammar"
	"github.com/ghettovoice/weblink/link"
)

// BaselineRules returns the always-active RFC 8288 rule set:
//
//   - the target must be a syntactically valid URI reference (re-surfaced
//     here so the report is self-contained even though invalid targets are
//     already dropped by the model builder);
//   - a link without any "rel" parameter is an error;
//   - a "rel" parameter appearing more than once is a warning, the first
//     occurrence carries the relation (RFC 8288 section 3.3 forbids the
//     repeat but parsers must not fail on it);
//   - a "type" value that does not look like a media type is a warning,
//     never fatal.
func BaselineRules() []Rule {
	return []Rule{
		RuleFunc(checkTarget),
		RuleFunc(checkRel),
		RuleFunc(checkType),
	}
}

func checkTarget(ln link.WebLink, idx int) []Issue {
	if ln.Target != nil && grammar.IsURIReference(ln.Target.String()) {
		return nil
	}
	return []Issue{NewError(IssueBadTarget, idx, "target is not a valid URI reference")}
}

func checkRel(ln link.WebLink, idx int) []Issue {
	n := 0
	for _, p := range ln.Params {
		if p.Kind() == link.Rel {
			n++
		}
	}
	switch {
	case n == 0:
		return []Issue{NewError(IssueMissingRel, idx, `link has no "rel" parameter`).WithParam("rel")}
	case n > 1:
		return []Issue{NewWarning(IssueDuplicateParam, idx,
			fmt.Sprintf(`"rel" parameter appears %d times, it must not appear more than once`, n)).WithParam("rel")}
	}
	return nil
}

func checkType(ln link.WebLink, idx int) []Issue {
	var issues []Issue
	for _, p := range ln.Params {
		if p.Kind() != link.Type {
			continue
		}
		if !grammar.IsMediaType(p.Value) {
			issues = append(issues, NewWarning(IssueBadType, idx,
				fmt.Sprintf(`"type" value %q is not a media type`, p.Value)).WithParam("type"))
		}
	}
	return issues
}

// AllowedExtensions returns a rule for the opt-in strict extension mode:
// every extension parameter whose name is outside the given allow-list is
// reported as a warning. The RFC default is unrestricted, so the rule is
// only active when configured explicitly.
func AllowedExtensions(names ...string) Rule {
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	return RuleFunc(func(ln link.WebLink, idx int) []Issue {
		var issues []Issue
		for _, p := range ln.Params {
			if p.Kind() == link.Extension && !allowed[p.Name] {
				issues = append(issues, NewWarning(IssueUnknownParam, idx,
					fmt.Sprintf("extension parameter %q is not in the allow-list", p.Name)).WithParam(p.Name))
			}
		}
		return issues
	})
}
