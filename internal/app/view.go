package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.commitcheck/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current screen
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var body string
	switch m.screen {
	case ScreenTypeSelect:
		body = m.viewTypeSelect()
	case ScreenScopeInput:
		body = m.viewScopeInput()
	case ScreenSubjectInput:
		body = m.viewSubjectInput()
	case ScreenBodyInput:
		body = m.viewBodyInput()
	case ScreenBreakingInput:
		body = m.viewBreakingInput()
	case ScreenPreview:
		body = m.viewPreview()
	}

	return ui.RenderBanner(m.strict) + "\n\n" + body
}

func (m Model) viewTypeSelect() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("TYPE", ui.ColorCyan))
	lines = append(lines, "")

	cursorStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	for i, t := range m.config.Lint.Types {
		typeStyle := lipgloss.NewStyle().Foreground(ui.TypeColor(t))
		cursor := "  "
		if i == m.typeIndex {
			cursor = cursorStyle.Render("> ")
			typeStyle = typeStyle.Bold(true)
		}
		lines = append(lines, fmt.Sprintf("  %s%s  %s",
			cursor,
			typeStyle.Render(padRight(t, 10)),
			descStyle.Render(ui.TypeDescription(t)),
		))
	}

	lines = append(lines, "")
	if m.breaking {
		breakStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
		lines = append(lines, breakStyle.Render("  ! breaking change"))
		lines = append(lines, "")
	}
	lines = append(lines, m.helpLine("↑/↓ select · ! toggle breaking · enter next · q quit"))

	return strings.Join(lines, "\n")
}

func (m Model) viewScopeInput() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("SCOPE", ui.ColorCyan))
	lines = append(lines, "")
	lines = append(lines, m.inputLine(m.scope, "optional, lowercase kebab-case"))

	if re := m.config.ScopeRegex(); m.scope != "" && re != nil && !re.MatchString(m.scope) {
		warnStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
		lines = append(lines, warnStyle.Render("  not kebab-case"))
	}

	if len(m.recentScopes) > 0 {
		suggestStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, "")
		lines = append(lines, suggestStyle.Render("  recent: "+strings.Join(m.recentScopes, ", ")))
	}

	lines = append(lines, "")
	lines = append(lines, m.helpLine("type scope · tab cycle recent · enter next · esc back"))

	return strings.Join(lines, "\n")
}

func (m Model) viewSubjectInput() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("SUBJECT", ui.ColorCyan))
	lines = append(lines, "")
	lines = append(lines, m.inputLine(m.subject, "imperative mood, no trailing period"))
	lines = append(lines, "")
	lines = append(lines, m.subjectGauge())
	lines = append(lines, "")
	lines = append(lines, m.helpLine("type subject · enter next · esc back"))

	return strings.Join(lines, "\n")
}

// subjectGauge shows the character count colored by the configured limits
func (m Model) subjectGauge() string {
	n := len([]rune(m.subject))
	warn := m.config.Lint.WarnSubjectLength
	max := m.config.Lint.MaxSubjectLength

	color := ui.ColorGreen
	if max > 0 && n > max {
		color = ui.ColorRed
	} else if warn > 0 && n > warn {
		color = ui.ColorYellow
	}

	gaugeStyle := lipgloss.NewStyle().Foreground(color)
	return gaugeStyle.Render(fmt.Sprintf("  %d/%d characters", n, max))
}

func (m Model) viewBodyInput() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("BODY", ui.ColorCyan))
	lines = append(lines, "")

	textStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	for _, line := range m.bodyLines {
		lines = append(lines, textStyle.Render("  "+line))
	}
	lines = append(lines, m.inputLine(m.bodyCurrent, "optional, blank line starts a new paragraph"))
	lines = append(lines, "")
	lines = append(lines, m.helpLine("enter newline · ctrl+d done · esc back"))

	return strings.Join(lines, "\n")
}

func (m Model) viewBreakingInput() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("BREAKING CHANGE", ui.ColorRed))
	lines = append(lines, "")
	lines = append(lines, m.inputLine(m.breakingDetail, "what breaks, and what callers must do"))
	lines = append(lines, "")
	lines = append(lines, m.helpLine("type details · enter next · esc back"))

	return strings.Join(lines, "\n")
}

func (m Model) viewPreview() string {
	var lines []string
	lines = append(lines, ui.SectionHeader("PREVIEW", ui.ColorCyan))
	lines = append(lines, "")

	msgStyle := lipgloss.NewStyle().
		Foreground(ui.ColorWhite).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorDarkGray).
		Padding(0, 1)
	lines = append(lines, msgStyle.Render(strings.TrimRight(m.draftText(), "\n")))
	lines = append(lines, "")

	result := m.lintDraft()
	lines = append(lines, ui.RenderResult(result))
	lines = append(lines, "")

	ok := result.Valid()
	if m.strict {
		ok = result.StrictValid()
	}
	if ok {
		lines = append(lines, m.helpLine("enter accept · e edit · q quit"))
	} else {
		lines = append(lines, m.helpLine("e edit · q quit"))
	}

	return strings.Join(lines, "\n")
}

// inputLine renders a single-line text field with cursor and placeholder
func (m Model) inputLine(value, placeholder string) string {
	cursorStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	if value == "" {
		placeholderStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray).Italic(true)
		return "  " + cursorStyle.Render("▌") + placeholderStyle.Render(" "+placeholder)
	}
	textStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	return "  " + textStyle.Render(value) + cursorStyle.Render("▌")
}

func (m Model) helpLine(text string) string {
	helpStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	return helpStyle.Render("  " + text)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
