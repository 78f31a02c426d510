package validate

import (
	"fmt"
	"strconv"
)

// Severity classifies how serious a validation issue is.
type Severity string

const (
	// SeverityError marks a violation of a MUST-level constraint.
	// A report holding at least one error is considered failed.
	SeverityError Severity = "error"
	// SeverityWarning marks a questionable but tolerated construct.
	// Warnings alone never fail a report.
	SeverityWarning Severity = "warning"
)

func (s Severity) String() string { return string(s) }

// IssueCode is a stable machine-readable identifier of a fault class.
type IssueCode string

const (
	// IssueSyntax marks a grammar-level fault inside one link-value.
	IssueSyntax IssueCode = "syntax"
	// IssueBadTarget marks a target that is not a valid URI reference.
	IssueBadTarget IssueCode = "bad-target"
	// IssueMissingRel marks a link without any "rel" parameter.
	IssueMissingRel IssueCode = "missing-rel"
	// IssueDuplicateParam marks a parameter that RFC 8288 allows at most
	// once but that appears repeatedly.
	IssueDuplicateParam IssueCode = "duplicate-param"
	// IssueBadType marks a "type" value that does not look like a media type.
	IssueBadType IssueCode = "bad-type"
	// IssueUnknownParam marks an extension parameter outside the configured
	// allow-list in strict extension mode.
	IssueUnknownParam IssueCode = "unknown-param"
	// IssueSignposting marks a violation of the FAIR Signposting profile.
	IssueSignposting IssueCode = "signposting"
)

// NoLink is the link index of collection-wide issues.
const NoLink = -1

// Issue is one diagnostic finding tied to a link-value of the header.
type Issue struct {
	// Severity of the issue.
	Severity Severity `json:"severity"`
	// Code identifies the fault class.
	Code IssueCode `json:"code"`
	// Message is a human-readable description.
	Message string `json:"message"`
	// Link is the index of the offending link-value within the header,
	// counting malformed segments, or [NoLink] for collection-wide issues.
	Link int `json:"link"`
	// Param is the offending parameter name, when applicable.
	Param string `json:"param,omitempty"`
}

// IsError reports whether the issue has error severity.
func (i Issue) IsError() bool { return i.Severity == SeverityError }

// IsWarning reports whether the issue has warning severity.
func (i Issue) IsWarning() bool { return i.Severity == SeverityWarning }

func (i Issue) String() string {
	loc := ""
	if i.Link != NoLink {
		loc = " at link " + strconv.Itoa(i.Link)
	}
	if i.Param != "" {
		loc += " param " + strconv.Quote(i.Param)
	}
	return fmt.Sprintf("%s [%s]%s: %s", i.Severity, i.Code, loc, i.Message)
}

// NewError creates an error issue for the link at index idx.
func NewError(code IssueCode, idx int, msg string) Issue {
	return Issue{Severity: SeverityError, Code: code, Message: msg, Link: idx}
}

// NewWarning creates a warning issue for the link at index idx.
func NewWarning(code IssueCode, idx int, msg string) Issue {
	return Issue{Severity: SeverityWarning, Code: code, Message: msg, Link: idx}
}

// WithParam returns a copy of the issue referencing the parameter name.
func (i Issue) WithParam(name string) Issue {
	i.Param = name
	return i
}
