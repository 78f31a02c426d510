// Package validate checks a parsed collection of web links against RFC 8288
// constraints and optional relation-profile rules, producing an ordered
// diagnostic [Report]. Rules never mutate the links they inspect and never
// remove links from the collection: every finding is accumulated as an
// [Issue].
package validate

//go:generate go tool mockgen -destination ../internal/testutil/rulemock/rulemock.go -package rulemock github.com/ghettovoice/weblink/validate Rule,CollectionRule

import (
	"github.com/ghettovoice/weblink/link"
)

// Rule inspects one link and contributes zero or more issues.
// idx is the index of the link-value within the original header, which may
// differ from the position in the surviving collection when malformed
// segments were dropped.
type Rule interface {
	Check(ln link.WebLink, idx int) []Issue
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(ln link.WebLink, idx int) []Issue

func (f RuleFunc) Check(ln link.WebLink, idx int) []Issue { return f(ln, idx) }

// CollectionRule inspects the whole link collection and contributes zero
// or more collection-wide issues.
type CollectionRule interface {
	CheckAll(links []link.WebLink) []Issue
}

// CollectionRuleFunc adapts a function to the CollectionRule interface.
type CollectionRuleFunc func(links []link.WebLink) []Issue

func (f CollectionRuleFunc) CheckAll(links []link.WebLink) []Issue { return f(links) }

// Profile is a named, additive set of validation rules layered on top of
// the always-active RFC 8288 baseline.
type Profile struct {
	// Name identifies the profile in diagnostics.
	Name string
	// Rules are applied to each link.
	Rules []Rule
	// CollectionRules are applied to the whole collection.
	CollectionRules []CollectionRule
}
