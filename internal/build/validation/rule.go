// Package validation checks that a site has every input a build needs before
// any output is written.
package validation

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	foundationerrors "git.home.luguber.info/inful/blogbuilder/internal/foundation/errors"
)

// Context contains all the data needed by validation rules.
type Context struct {
	Layout config.Layout
	Logger *slog.Logger
}

// Result indicates whether a rule passed. Err is a classified error
// describing the failure.
type Result struct {
	Passed bool
	Err    error
}

// Success returns a passing result.
func Success() Result {
	return Result{Passed: true}
}

// Failure returns a failed result carrying err.
func Failure(err error) Result {
	return Result{Passed: false, Err: err}
}

// Rule is a single prerequisite check.
type Rule interface {
	// Name returns a short identifier for logging.
	Name() string

	Validate(ctx context.Context, vctx Context) Result
}

// RuleChain executes rules in sequence, stopping at the first failure.
type RuleChain struct {
	rules []Rule
}

// NewRuleChain creates a new rule chain with the given rules.
func NewRuleChain(rules ...Rule) *RuleChain {
	return &RuleChain{rules: rules}
}

// DefaultRuleChain checks the configuration file, the content directory and
// both templates, in that order.
func DefaultRuleChain() *RuleChain {
	return NewRuleChain(
		ConfigFileRule{},
		ContentDirRule{},
		PostTemplateRule(),
		IndexTemplateRule(),
	)
}

// Validate executes all rules in order and returns the first failure's error.
func (rc *RuleChain) Validate(ctx context.Context, vctx Context) error {
	for _, rule := range rc.rules {
		if err := ctx.Err(); err != nil {
			return foundationerrors.RuntimeError(err, "validation canceled").Build()
		}
		result := rule.Validate(ctx, vctx)
		if !result.Passed {
			if vctx.Logger != nil {
				vctx.Logger.Debug("Validation failed",
					slog.String("rule", rule.Name()),
					slog.String("error", result.Err.Error()))
			}
			return result.Err
		}
	}
	return nil
}
