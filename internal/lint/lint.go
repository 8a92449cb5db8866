// Package lint parses and validates conventional commit messages.
//
// Parsing and rule-checking are separate stages: a header that does not
// match the grammar is a hard stop, while content rules over a parsed
// message are all collected so one run reports every problem at once.
package lint

import (
	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

// Linter applies the configured rule set to raw commit messages. It holds
// no mutable state and is safe for concurrent use.
type Linter struct {
	cfg *config.Config
}

// New creates a Linter with the given configuration
func New(cfg *config.Config) *Linter {
	return &Linter{cfg: cfg}
}

// Parse parses a raw message using the linter's configuration
func (l *Linter) Parse(raw string) (*models.CommitMessage, error) {
	return Parse(raw, l.cfg)
}

// Lint parses the raw message and runs every rule over it. On a parse
// failure the result carries a nil Message and a single violation for the
// parse error; no content rules run, since there is nothing to check them
// against.
func (l *Linter) Lint(raw string) models.ValidationResult {
	msg, err := Parse(raw, l.cfg)
	if err != nil {
		return models.ValidationResult{
			Violations: []models.Violation{parseViolation(err)},
		}
	}

	var violations []models.Violation
	for _, rule := range rules {
		violations = append(violations, rule(l.cfg, msg)...)
	}

	return models.ValidationResult{
		Message:    msg,
		Violations: violations,
	}
}

// parseViolation converts a parse error into a violation so callers see a
// uniform result shape
func parseViolation(err error) models.Violation {
	switch e := err.(type) {
	case *MalformedHeaderError:
		return models.NewViolation(models.RuleMalformedHeader, models.SeverityError, e.Error(), e.Line)
	case *UnknownTypeError:
		return models.NewViolation(models.RuleUnknownType, models.SeverityError, e.Error(), e.Type)
	default:
		return models.NewViolation("parse-error", models.SeverityError, err.Error(), "")
	}
}
