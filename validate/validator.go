package validate

import (
	"github.com/ghettovoice/weblink/link"
)

// Entry pairs a surviving link with the index of the link-value it came
// from in the original header. The two differ as soon as a malformed or
// dropped segment precedes the link.
type Entry struct {
	Link  link.WebLink
	Index int
}

// Validator applies the baseline RFC 8288 rules plus any configured
// profiles and extra rules. A Validator is immutable after construction
// and safe for concurrent use.
type Validator struct {
	rules     []Rule
	collRules []CollectionRule
}

// New creates a Validator with the baseline rules always active and the
// given profiles layered on top. Profiles are additive: they contribute
// rules without altering the baseline set.
func New(profiles ...Profile) *Validator {
	v := &Validator{rules: BaselineRules()}
	for _, p := range profiles {
		v.rules = append(v.rules, p.Rules...)
		v.collRules = append(v.collRules, p.CollectionRules...)
	}
	return v
}

// AddRules returns the validator with extra per-link rules appended.
// It must not be called after the validator is shared between goroutines.
func (v *Validator) AddRules(rules ...Rule) *Validator {
	v.rules = append(v.rules, rules...)
	return v
}

// AddCollectionRules returns the validator with extra collection rules
// appended.
func (v *Validator) AddCollectionRules(rules ...CollectionRule) *Validator {
	v.collRules = append(v.collRules, rules...)
	return v
}

// Validate checks the given links and builds the report.
// prior issues, typically syntax and dropped-target findings from earlier
// pipeline stages, are placed first; then per-link issues in link order,
// rules in registration order; then collection-wide issues.
func (v *Validator) Validate(entries []Entry, prior ...Issue) Report {
	issues := make([]Issue, 0, len(prior))
	issues = append(issues, prior...)

	for _, e := range entries {
		for _, r := range v.rules {
			issues = append(issues, r.Check(e.Link, e.Index)...)
		}
	}

	if len(v.collRules) > 0 {
		links := make([]link.WebLink, len(entries))
		for i, e := range entries {
			links[i] = e.Link
		}
		for _, r := range v.collRules {
			issues = append(issues, r.CheckAll(links)...)
		}
	}
	return NewReport(issues...)
}
