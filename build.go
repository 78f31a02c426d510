package weblink

import (
	"fmt"
	"net/url"

	"github.com/ghettovoice/weblink/internal/grammar"
	"github.com/ghettovoice/weblink/internal/parser"
	"github.com/ghettovoice/weblink/link"
	"github.com/ghettovoice/weblink/validate"
)

// buildLinks turns syntactically valid link-values into the semantic model.
// A target that is not a valid URI reference drops that one link with an
// error issue referencing its original segment index; the rest of the
// header is unaffected.
func buildLinks(vals []parser.LinkValue) ([]validate.Entry, []validate.Issue) {
	var (
		entries []validate.Entry
		issues  []validate.Issue
	)
	for _, val := range vals {
		if !grammar.IsURIReference(val.Target) {
			issues = append(issues, validate.NewError(validate.IssueBadTarget, val.Index,
				fmt.Sprintf("target %q is not a valid URI reference", val.Target)))
			continue
		}
		target, err := url.Parse(val.Target)
		if err != nil {
			issues = append(issues, validate.NewError(validate.IssueBadTarget, val.Index,
				fmt.Sprintf("target %q: %v", val.Target, err)))
			continue
		}

		params := make([]link.Parameter, len(val.Params))
		for i, p := range val.Params {
			params[i] = link.Parameter{Name: p.Name, Value: p.Value, HasValue: p.HasValue}
		}
		entries = append(entries, validate.Entry{
			Link:  link.WebLink{Target: target, Params: params},
			Index: val.Index,
		})
	}
	return entries, issues
}
