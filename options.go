package weblink

import (
	"log/slog"

	"github.com/ghettovoice/weblink/internal/log"
	"github.com/ghettovoice/weblink/validate"
)

// Option configures a [Process] call.
type Option interface {
	apply(opts *processOptions)
}

type processOptions struct {
	profiles  []validate.Profile
	rules     []validate.Rule
	collRules []validate.CollectionRule
	logger    *slog.Logger
}

func newProcessOptions(opts []Option) *processOptions {
	po := &processOptions{logger: log.Noop}
	for _, o := range opts {
		o.apply(po)
	}
	return po
}

type withProfiles struct {
	profiles []validate.Profile
}

func (o withProfiles) apply(opts *processOptions) {
	opts.profiles = append(opts.profiles, o.profiles...)
}

// WithProfiles activates extra named rule profiles on top of the always
// active RFC 8288 baseline, e.g. [validate.SignpostingProfile].
func WithProfiles(profiles ...validate.Profile) Option {
	return withProfiles{profiles}
}

type withRules struct {
	rules []validate.Rule
}

func (o withRules) apply(opts *processOptions) {
	opts.rules = append(opts.rules, o.rules...)
}

// WithRules adds extra per-link validation rules.
func WithRules(rules ...validate.Rule) Option {
	return withRules{rules}
}

type withCollectionRules struct {
	rules []validate.CollectionRule
}

func (o withCollectionRules) apply(opts *processOptions) {
	opts.collRules = append(opts.collRules, o.rules...)
}

// WithCollectionRules adds extra collection-wide validation rules.
func WithCollectionRules(rules ...validate.CollectionRule) Option {
	return withCollectionRules{rules}
}

type withAllowedExtensions struct {
	names []string
}

func (o withAllowedExtensions) apply(opts *processOptions) {
	opts.rules = append(opts.rules, validate.AllowedExtensions(o.names...))
}

// WithAllowedExtensions switches extension parameters to the opt-in strict
// mode: any extension parameter name outside the given allow-list is
// reported as a warning. Without this option unknown names are
// unrestricted, the RFC default.
func WithAllowedExtensions(names ...string) Option {
	return withAllowedExtensions{names}
}

type withLogger struct {
	logger *slog.Logger
}

func (o withLogger) apply(opts *processOptions) {
	if o.logger != nil {
		opts.logger = o.logger
	}
}

// WithLogger injects a logger for pipeline debug output.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return withLogger{logger}
}
