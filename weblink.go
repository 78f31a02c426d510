package weblink

//go:generate go tool errtrace -w .

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/weblink/internal/constraints"
	"github.com/ghettovoice/weblink/internal/errorutil"
	"github.com/ghettovoice/weblink/internal/log"
	"github.com/ghettovoice/weblink/internal/parser"
	"github.com/ghettovoice/weblink/link"
	"github.com/ghettovoice/weblink/validate"
)

// ErrEmptyInput is returned by [Process] when called with empty input.
// It is the only error the pipeline ever returns: all syntax and semantic
// faults inside a non-empty header are accumulated in the report instead.
const ErrEmptyInput errorutil.Error = "empty input"

// Result is the outcome of processing one Link header field value:
// the surviving links in source order plus the diagnostic report.
type Result struct {
	links   []link.WebLink
	entries []validate.Entry
	report  validate.Report
}

// Links returns the syntactically valid links in source order.
// Malformed link-values and links with invalid target URIs are absent
// here and reported in [Result.Report] instead.
func (r *Result) Links() []link.WebLink { return slices.Clone(r.links) }

// Entries returns the surviving links paired with the index of the
// link-value they came from in the original header. The indices match
// the [validate.Issue] Link references, counting dropped segments.
func (r *Result) Entries() []validate.Entry { return slices.Clone(r.entries) }

// Report returns the diagnostic report of the call.
func (r *Result) Report() validate.Report { return r.report }

// ContainsIssues reports whether the report holds at least one error.
// Warning-only reports return false.
func (r *Result) ContainsIssues() bool { return r.report.ContainsIssues() }

// Process parses and validates one Link header field value s.
//
// The input must be a single unfolded field value with the field name
// removed; multiple header lines must be comma-joined by the caller
// beforehand. Malformed content never fails the call: the result carries
// every link that could be recovered plus an issue per fault. Only empty
// input is a contract violation and returns [ErrEmptyInput] before any
// token is produced.
func Process[T constraints.Byteseq](s T, opts ...Option) (*Result, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	po := newProcessOptions(opts)
	raw := string(s)

	vals, issues := parser.Parse(raw)
	po.logger.Debug("parsed link header",
		"input", log.StringValue(s),
		"values", log.FmtValue(vals, false),
		"syntax_issues", len(issues),
	)

	entries, buildIssues := buildLinks(vals)
	issues = append(issues, buildIssues...)

	v := validate.New(po.profiles...)
	if len(po.rules) > 0 {
		v.AddRules(po.rules...)
	}
	if len(po.collRules) > 0 {
		v.AddCollectionRules(po.collRules...)
	}
	report := v.Validate(entries, issues...)

	links := make([]link.WebLink, len(entries))
	for i, e := range entries {
		links[i] = e.Link
	}
	po.logger.Debug("validated link header", "links", len(links), "report", report)

	return &Result{links: links, entries: entries, report: report}, nil
}
