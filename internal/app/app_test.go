package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.commitcheck/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// send drives the model through a sequence of key presses
func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		if r == ' ' {
			m = send(t, m, "space")
		} else {
			m = send(t, m, string(r))
		}
	}
	return m
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(config.DefaultConfig(), false)
}

func TestCompose_HappyPath(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ScreenTypeSelect, m.screen)

	// feat is the first type, accept it
	m = send(t, m, "enter")
	assert.Equal(t, ScreenScopeInput, m.screen)

	m = typeText(t, m, "auth")
	m = send(t, m, "enter")
	assert.Equal(t, ScreenSubjectInput, m.screen)

	m = typeText(t, m, "add passwordless sign-in")
	m = send(t, m, "enter")
	assert.Equal(t, ScreenBodyInput, m.screen)

	m = send(t, m, "ctrl+d")
	assert.Equal(t, ScreenPreview, m.screen)

	result := m.lintDraft()
	assert.True(t, result.Valid(), "violations: %v", result.Violations)

	m = send(t, m, "enter")
	output, accepted := m.Output()
	require.True(t, accepted)
	assert.Equal(t, "feat(auth): add passwordless sign-in\n", output)
}

func TestCompose_InvalidDraftNotAccepted(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, "enter") // feat
	m = send(t, m, "enter") // no scope
	m = typeText(t, m, "add thing.")
	m = send(t, m, "enter")  // subject with trailing period
	m = send(t, m, "ctrl+d") // skip body
	m = send(t, m, "enter")  // try to accept

	assert.Equal(t, ScreenPreview, m.screen, "stays on preview")
	_, accepted := m.Output()
	assert.False(t, accepted)
}

func TestCompose_BreakingFlowRequiresDetail(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, "!")
	assert.True(t, m.breaking)

	m = send(t, m, "enter", "enter") // type, no scope
	m = typeText(t, m, "drop v1 endpoints")
	m = send(t, m, "enter", "ctrl+d")
	assert.Equal(t, ScreenBreakingInput, m.screen)

	m = typeText(t, m, "v1 endpoints removed, use v2")
	m = send(t, m, "enter")
	assert.Equal(t, ScreenPreview, m.screen)

	m = send(t, m, "enter")
	output, accepted := m.Output()
	require.True(t, accepted)
	assert.Contains(t, output, "BREAKING CHANGE: v1 endpoints removed, use v2")
	assert.NotContains(t, output, "!", "footer carries the breaking flag")
}

func TestCompose_TypeNavigationWraps(t *testing.T) {
	m := newTestModel(t)
	count := len(m.config.Lint.Types)

	m = send(t, m, "k")
	assert.Equal(t, count-1, m.typeIndex, "up from top wraps to bottom")

	m = send(t, m, "j")
	assert.Equal(t, 0, m.typeIndex)
}

func TestCompose_EscStepsBack(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, "enter")
	assert.Equal(t, ScreenScopeInput, m.screen)

	m = send(t, m, "esc")
	assert.Equal(t, ScreenTypeSelect, m.screen)
}

func TestBodyParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"empty", nil, nil},
		{"single line", []string{"one line"}, []string{"one line"}},
		{"multi line paragraph", []string{"line one", "line two"}, []string{"line one\nline two"}},
		{"two paragraphs", []string{"first", "", "second"}, []string{"first", "second"}},
		{"trailing blanks dropped", []string{"first", "", ""}, []string{"first"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bodyParagraphs(tt.lines))
		})
	}
}

func TestRecordAndLoadScopes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.Empty(t, loadRecentScopes())

	recordScope("auth")
	recordScope("api")

	scopes := loadRecentScopes()
	require.Len(t, scopes, 2)
	assert.Equal(t, "api", scopes[0], "most recent first")

	// Re-recording moves a scope to the front
	recordScope("auth")
	scopes = loadRecentScopes()
	assert.Equal(t, "auth", scopes[0])
}
