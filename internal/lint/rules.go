package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

// ruleFunc is a single content check over a parsed message. Rules are pure
// and independent; every rule runs on every message so the caller gets the
// complete violation list in one pass.
type ruleFunc func(cfg *config.Config, msg *models.CommitMessage) []models.Violation

var rules = []ruleFunc{
	checkSubjectEmpty,
	checkSubjectLength,
	checkSubjectTrailingPeriod,
	checkScopeRequired,
	checkScopeShape,
	checkBreakingDetail,
	checkFooterKeys,
	checkCoauthorShape,
}

var coauthorRe = regexp.MustCompile(`^[^<>]+ <[^<>@\s]+@[^<>@\s]+>$`)

func checkSubjectEmpty(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	if strings.TrimSpace(msg.Subject) != "" {
		return nil
	}
	return []models.Violation{models.NewViolation(
		models.RuleSubjectEmpty,
		models.SeverityError,
		"subject must not be empty",
		"",
	)}
}

func checkSubjectLength(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	n := len([]rune(msg.Subject))
	max := cfg.Lint.MaxSubjectLength
	warn := cfg.Lint.WarnSubjectLength

	if max > 0 && n > max {
		return []models.Violation{models.NewViolation(
			models.RuleSubjectTooLong,
			models.SeverityError,
			fmt.Sprintf("subject is %d characters, limit is %d", n, max),
			msg.Subject,
		)}
	}
	if warn > 0 && n > warn {
		return []models.Violation{models.NewViolation(
			models.RuleSubjectOverRecommended,
			models.SeverityWarning,
			fmt.Sprintf("subject is %d characters, %d or fewer is recommended", n, warn),
			msg.Subject,
		)}
	}
	return nil
}

func checkSubjectTrailingPeriod(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	if !strings.HasSuffix(msg.Subject, ".") {
		return nil
	}
	return []models.Violation{models.NewViolation(
		models.RuleSubjectTrailingPeriod,
		models.SeverityError,
		"subject must not end with a period",
		msg.Subject,
	)}
}

func checkScopeRequired(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	if !cfg.Lint.RequireScope || msg.Scope != "" {
		return nil
	}
	return []models.Violation{models.NewViolation(
		models.RuleScopeRequired,
		models.SeverityError,
		"scope is required",
		"",
	)}
}

func checkScopeShape(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	if msg.Scope == "" {
		return nil
	}
	re := cfg.ScopeRegex()
	if re == nil || re.MatchString(msg.Scope) {
		return nil
	}
	return []models.Violation{models.NewViolation(
		models.RuleScopeNotKebabCase,
		models.SeverityError,
		fmt.Sprintf("scope %q must be lowercase kebab-case", msg.Scope),
		msg.Scope,
	)}
}

func checkBreakingDetail(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	if !msg.Breaking || strings.TrimSpace(msg.BreakingDetail()) != "" {
		return nil
	}
	return []models.Violation{models.NewViolation(
		models.RuleMissingBreakingDetail,
		models.SeverityError,
		"breaking change marker requires a BREAKING CHANGE footer with details",
		"",
	)}
}

func checkFooterKeys(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	var violations []models.Violation
	for _, f := range msg.Footers {
		if cfg.AllowsFooterKey(f.Key) {
			continue
		}
		violations = append(violations, models.NewViolation(
			models.RuleUnknownFooterKey,
			models.SeverityWarning,
			fmt.Sprintf("footer key %q is not in the allow-list", f.Key),
			f.Key,
		))
	}
	return violations
}

func checkCoauthorShape(cfg *config.Config, msg *models.CommitMessage) []models.Violation {
	var violations []models.Violation
	for _, value := range msg.FooterValues("Co-authored-by") {
		if coauthorRe.MatchString(value) {
			continue
		}
		violations = append(violations, models.NewViolation(
			models.RuleCoauthorShape,
			models.SeverityError,
			fmt.Sprintf("Co-authored-by %q must be \"Name <email>\"", value),
			value,
		))
	}
	return violations
}
