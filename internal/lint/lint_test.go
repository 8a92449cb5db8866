package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

func ruleIDs(violations []models.Violation) []string {
	var ids []string
	for _, v := range violations {
		ids = append(ids, v.Rule)
	}
	return ids
}

func TestLint_ValidMessage(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("feat(auth): add passwordless sign-in")

	require.NotNil(t, result.Message)
	assert.Empty(t, result.Violations)
	assert.True(t, result.Valid())
	assert.True(t, result.StrictValid())
}

func TestLint_ParseFailureYieldsSingleViolation(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("update stuff")

	assert.Nil(t, result.Message)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, models.RuleMalformedHeader, result.Violations[0].Rule)
	assert.False(t, result.Valid())
}

func TestLint_SubjectTooLong(t *testing.T) {
	l := New(config.DefaultConfig())

	subject := strings.Repeat("a", 80)
	result := l.Lint("feat: " + subject)

	require.NotNil(t, result.Message)
	assert.Contains(t, ruleIDs(result.Violations), models.RuleSubjectTooLong)
	assert.False(t, result.Valid())
}

func TestLint_SubjectOverRecommendedIsWarningOnly(t *testing.T) {
	l := New(config.DefaultConfig())

	subject := strings.Repeat("a", 60)
	result := l.Lint("feat: " + subject)

	require.Len(t, result.Violations, 1)
	assert.Equal(t, models.RuleSubjectOverRecommended, result.Violations[0].Rule)
	assert.Equal(t, models.SeverityWarning, result.Violations[0].Severity)
	assert.True(t, result.Valid())
	assert.False(t, result.StrictValid())
}

func TestLint_SubjectTrailingPeriod(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("fix: handle empty input.")

	assert.Contains(t, ruleIDs(result.Violations), models.RuleSubjectTrailingPeriod)
	assert.False(t, result.Valid())
}

func TestLint_SubjectEmpty(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("fix:")

	require.NotNil(t, result.Message)
	assert.Contains(t, ruleIDs(result.Violations), models.RuleSubjectEmpty)
}

func TestLint_ScopeNotKebabCase(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("chore(Build): bump deps")

	require.NotNil(t, result.Message, "message must still parse")
	assert.Equal(t, "Build", result.Message.Scope)
	assert.Contains(t, ruleIDs(result.Violations), models.RuleScopeNotKebabCase)
	assert.False(t, result.Valid())
}

func TestLint_KebabScopeAccepted(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("feat(user-profiles): add avatar upload")
	assert.True(t, result.Valid())
}

func TestLint_ScopeRequired(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lint.RequireScope = true
	l := New(cfg)

	result := l.Lint("feat: add avatar upload")
	assert.Contains(t, ruleIDs(result.Violations), models.RuleScopeRequired)

	result = l.Lint("feat(profiles): add avatar upload")
	assert.True(t, result.Valid())
}

func TestLint_MissingBreakingDetail(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("feat!: drop v1 endpoints")

	assert.Contains(t, ruleIDs(result.Violations), models.RuleMissingBreakingDetail)
	assert.False(t, result.Valid())
}

func TestLint_BreakingWithDetailIsValid(t *testing.T) {
	l := New(config.DefaultConfig())

	raw := "fix!(api): sanitize headers\n\nBREAKING CHANGE: headers now rejected if malformed."
	result := l.Lint(raw)

	require.True(t, result.Valid(), "violations: %v", result.Violations)
	assert.True(t, result.Message.Breaking)
}

func TestLint_UnknownFooterKeyIsWarning(t *testing.T) {
	l := New(config.DefaultConfig())

	result := l.Lint("feat: add thing\n\nReviewed-by: Jane Doe <jane@example.com>")

	require.Len(t, result.Violations, 1)
	assert.Equal(t, models.RuleUnknownFooterKey, result.Violations[0].Rule)
	assert.Equal(t, models.SeverityWarning, result.Violations[0].Severity)
	assert.True(t, result.Valid())
}

func TestLint_CoauthorShape(t *testing.T) {
	l := New(config.DefaultConfig())

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"name and email", "Jane Doe <jane@example.com>", true},
		{"missing email", "Jane Doe", false},
		{"missing name", "<jane@example.com>", false},
		{"bare email", "jane@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := l.Lint("feat: add thing\n\nCo-authored-by: " + tt.value)
			if tt.valid {
				assert.True(t, result.Valid(), "violations: %v", result.Violations)
			} else {
				assert.Contains(t, ruleIDs(result.Violations), models.RuleCoauthorShape)
			}
		})
	}
}

func TestLint_CollectsAllViolations(t *testing.T) {
	l := New(config.DefaultConfig())

	// Long subject, trailing period, uppercase scope: all reported at once
	subject := strings.Repeat("x", 79) + "."
	result := l.Lint("chore(Build): " + subject)

	ids := ruleIDs(result.Violations)
	assert.Contains(t, ids, models.RuleSubjectTooLong)
	assert.Contains(t, ids, models.RuleSubjectTrailingPeriod)
	assert.Contains(t, ids, models.RuleScopeNotKebabCase)
}

func TestLint_ConfiguredSubjectLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lint.MaxSubjectLength = 20
	cfg.Lint.WarnSubjectLength = 0
	l := New(cfg)

	result := l.Lint("feat: this subject is well over twenty characters")
	assert.Contains(t, ruleIDs(result.Violations), models.RuleSubjectTooLong)
}

func TestLint_ConcurrentUse(t *testing.T) {
	l := New(config.DefaultConfig())

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				result := l.Lint("feat(auth): add passwordless sign-in")
				assert.True(t, result.Valid())
			}
			done <- true
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
