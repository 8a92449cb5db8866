package models

// Severity classifies a violation as blocking or advisory
type Severity string

const (
	// SeverityError blocks the message (nonzero exit)
	SeverityError Severity = "error"
	// SeverityWarning is advisory unless strict mode is on
	SeverityWarning Severity = "warning"
)

// Rule identifiers, one per check. These are stable strings so CI logs
// and hook output can be grepped for them.
const (
	RuleMalformedHeader        = "malformed-header"
	RuleUnknownType            = "unknown-type"
	RuleSubjectEmpty           = "subject-empty"
	RuleSubjectTooLong         = "subject-too-long"
	RuleSubjectOverRecommended = "subject-over-recommended"
	RuleSubjectTrailingPeriod  = "subject-trailing-period"
	RuleScopeRequired          = "scope-required"
	RuleScopeNotKebabCase      = "scope-not-kebab-case"
	RuleMissingBreakingDetail  = "missing-breaking-detail"
	RuleUnknownFooterKey       = "unknown-footer-key"
	RuleCoauthorShape          = "coauthor-shape"
)

// Violation represents a single rule failure against a parsed message
type Violation struct {
	// Rule is the stable rule identifier
	Rule string `json:"rule"`
	// Severity is error or warning
	Severity Severity `json:"severity"`
	// Message is a human-readable description
	Message string `json:"message"`
	// Span is the offending text, when one can be pointed at
	Span string `json:"span,omitempty"`
}

// NewViolation creates a Violation
func NewViolation(rule string, severity Severity, message, span string) Violation {
	return Violation{
		Rule:     rule,
		Severity: severity,
		Message:  message,
		Span:     span,
	}
}
