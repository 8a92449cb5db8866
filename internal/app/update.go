package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		m.output = ""
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenTypeSelect:
		return m.handleTypeSelectKey(msg)
	case ScreenScopeInput:
		return m.handleScopeInputKey(msg)
	case ScreenSubjectInput:
		return m.handleSubjectInputKey(msg)
	case ScreenBodyInput:
		return m.handleBodyInputKey(msg)
	case ScreenBreakingInput:
		return m.handleBreakingInputKey(msg)
	case ScreenPreview:
		return m.handlePreviewKey(msg)
	}

	return m, nil
}

func (m Model) handleTypeSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.config.Lint.Types)
	switch msg.String() {
	case "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		if m.typeIndex > 0 {
			m.typeIndex--
		} else {
			m.typeIndex = count - 1 // Wrap to bottom
		}
	case "down", "j":
		if m.typeIndex < count-1 {
			m.typeIndex++
		} else {
			m.typeIndex = 0 // Wrap to top
		}
	case "!":
		m.breaking = !m.breaking
	case "enter":
		m.screen = ScreenScopeInput
		m.suggestIndex = -1
	}
	return m, nil
}

func (m Model) handleScopeInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.screen = ScreenSubjectInput
	case tea.KeyEsc:
		m.screen = ScreenTypeSelect
	case tea.KeyTab:
		// Cycle through recently used scopes
		if len(m.recentScopes) > 0 {
			m.suggestIndex = (m.suggestIndex + 1) % len(m.recentScopes)
			m.scope = m.recentScopes[m.suggestIndex]
		}
	case tea.KeyBackspace:
		if len(m.scope) > 0 {
			m.scope = trimLastRune(m.scope)
		}
		m.suggestIndex = -1
	case tea.KeyRunes:
		m.scope += string(msg.Runes)
		m.suggestIndex = -1
	}
	return m, nil
}

func (m Model) handleSubjectInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.screen = ScreenBodyInput
	case tea.KeyEsc:
		m.screen = ScreenScopeInput
	case tea.KeyBackspace:
		if len(m.subject) > 0 {
			m.subject = trimLastRune(m.subject)
		}
	case tea.KeySpace:
		m.subject += " "
	case tea.KeyRunes:
		m.subject += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleBodyInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.bodyLines = append(m.bodyLines, m.bodyCurrent)
		m.bodyCurrent = ""
	case tea.KeyCtrlD:
		if m.bodyCurrent != "" {
			m.bodyLines = append(m.bodyLines, m.bodyCurrent)
			m.bodyCurrent = ""
		}
		if m.breaking {
			m.screen = ScreenBreakingInput
		} else {
			m.screen = ScreenPreview
		}
	case tea.KeyEsc:
		m.screen = ScreenSubjectInput
	case tea.KeyBackspace:
		if len(m.bodyCurrent) > 0 {
			m.bodyCurrent = trimLastRune(m.bodyCurrent)
		} else if len(m.bodyLines) > 0 {
			// Pull the previous line back up for editing
			m.bodyCurrent = m.bodyLines[len(m.bodyLines)-1]
			m.bodyLines = m.bodyLines[:len(m.bodyLines)-1]
		}
	case tea.KeySpace:
		m.bodyCurrent += " "
	case tea.KeyRunes:
		m.bodyCurrent += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleBreakingInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.screen = ScreenPreview
	case tea.KeyEsc:
		m.screen = ScreenBodyInput
	case tea.KeyBackspace:
		if len(m.breakingDetail) > 0 {
			m.breakingDetail = trimLastRune(m.breakingDetail)
		}
	case tea.KeySpace:
		m.breakingDetail += " "
	case tea.KeyRunes:
		m.breakingDetail += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "esc", "e":
		m.screen = ScreenTypeSelect
	case "enter":
		result := m.lintDraft()
		ok := result.Valid()
		if m.strict {
			ok = result.StrictValid()
		}
		if !ok {
			// Stay on preview, violations are already on screen
			return m, nil
		}
		m.output = m.draftText()
		if m.scope != "" {
			recordScope(m.scope)
		}
		return m, tea.Quit
	}
	return m, nil
}

// trimLastRune drops the final rune, handling multibyte input
func trimLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
