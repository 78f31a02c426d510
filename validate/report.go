package validate

import (
	"slices"

	"github.com/ghettovoice/weblink/internal/util"
)

// Report is an ordered, immutable collection of issues.
// Issues tied to a link keep the order of the links that produced them,
// followed by any collection-wide issues.
type Report struct {
	issues []Issue
}

// NewReport builds a report from the given issues.
// The slice is copied, later mutation of the argument does not leak in.
func NewReport(issues ...Issue) Report {
	return Report{issues: slices.Clone(issues)}
}

// Issues returns a copy of the issues in report order.
func (r Report) Issues() []Issue { return slices.Clone(r.issues) }

// Len returns the number of issues in the report.
func (r Report) Len() int { return len(r.issues) }

// ContainsIssues reports whether the report holds at least one
// error-severity issue. Warning-only reports return false: callers use
// this flag to decide whether the returned links can be trusted.
func (r Report) ContainsIssues() bool {
	for _, i := range r.issues {
		if i.IsError() {
			return true
		}
	}
	return false
}

// Errors returns all error-severity issues in report order.
func (r Report) Errors() []Issue { return r.filter(Issue.IsError) }

// Warnings returns all warning-severity issues in report order.
func (r Report) Warnings() []Issue { return r.filter(Issue.IsWarning) }

func (r Report) filter(pred func(Issue) bool) []Issue {
	var out []Issue
	for _, i := range r.issues {
		if pred(i) {
			out = append(out, i)
		}
	}
	return out
}

func (r Report) String() string {
	if len(r.issues) == 0 {
		return "no issues"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for n, i := range r.issues {
		if n > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(i.String())
	}
	return sb.String()
}

// Equal compares this report with another for equality.
func (r Report) Equal(val any) bool {
	var other Report
	switch v := val.(type) {
	case Report:
		other = v
	case *Report:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(r.issues, other.issues)
}
