package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// RenderViolation renders a single violation as a diagnostic line:
//
//	✗ [subject-too-long] subject is 80 characters, limit is 72: "..."
func RenderViolation(v models.Violation) string {
	color := SeverityColor(v.Severity)
	mark := MarkError()
	if v.Severity == models.SeverityWarning {
		mark = MarkWarn()
	}

	markStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(color)
	textStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	line := fmt.Sprintf("  %s %s %s",
		markStyle.Render(mark),
		ruleStyle.Render("["+v.Rule+"]"),
		textStyle.Render(v.Message),
	)
	if v.Span != "" {
		spanStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
		line += spanStyle.Render(fmt.Sprintf(": %q", v.Span))
	}
	return line
}

// RenderResult renders a full validation result, one line per violation,
// with a closing status line
func RenderResult(r models.ValidationResult) string {
	var lines []string
	for _, v := range r.Violations {
		lines = append(lines, RenderViolation(v))
	}

	okStyle := lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	switch {
	case len(r.Violations) == 0:
		lines = append(lines, okStyle.Render(fmt.Sprintf("  %s commit message is valid", MarkOK())))
	case r.Valid():
		lines = append(lines, okStyle.Render(fmt.Sprintf("  %s valid with %d warning(s)", MarkOK(), len(r.Warnings()))))
	default:
		lines = append(lines, failStyle.Render(fmt.Sprintf("  %s %d error(s), %d warning(s)", MarkError(), len(r.Errors()), len(r.Warnings()))))
	}

	return strings.Join(lines, "\n")
}

// RenderRangeSummary renders per-commit outcomes for a linted range
func RenderRangeSummary(results []models.RangeResult) string {
	hashStyle := lipgloss.NewStyle().Foreground(ColorCyan)
	subjStyle := lipgloss.NewStyle().Foreground(ColorWhite)
	okStyle := lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	var lines []string
	passed, warned, failed := 0, 0, 0

	for _, res := range results {
		var status string
		switch {
		case models.IsStatusPassed(res.Status):
			status = okStyle.Render(MarkOK())
			passed++
		case models.IsStatusWarned(res.Status):
			status = warnStyle.Render(MarkWarn())
			warned++
		default:
			status = failStyle.Render(MarkError())
			failed++
		}

		lines = append(lines, fmt.Sprintf("  %s %s %s",
			status,
			hashStyle.Render(res.Commit.Hash),
			subjStyle.Render(truncate(res.Commit.Subject(), 60)),
		))

		for _, v := range res.Result.Violations {
			lines = append(lines, "  "+RenderViolation(v))
		}
	}

	summary := fmt.Sprintf("  %d passed, %d warned, %d failed", passed, warned, failed)
	if failed > 0 {
		lines = append(lines, failStyle.Render(summary))
	} else if warned > 0 {
		lines = append(lines, warnStyle.Render(summary))
	} else {
		lines = append(lines, okStyle.Render(summary))
	}

	return strings.Join(lines, "\n")
}

// RenderTypeTable renders the configured commit types with descriptions
func RenderTypeTable(types []string) string {
	var lines []string
	for _, t := range types {
		typeStyle := lipgloss.NewStyle().Foreground(TypeColor(t)).Bold(true)
		descStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
		lines = append(lines, fmt.Sprintf("  %s  %s",
			typeStyle.Render(padRight(t, 10)),
			descStyle.Render(TypeDescription(t)),
		))
	}
	return strings.Join(lines, "\n")
}

// TypeDescription returns a short description for the standard commit types
func TypeDescription(t string) string {
	switch t {
	case "feat":
		return "a new feature"
	case "fix":
		return "a bug fix"
	case "docs":
		return "documentation only"
	case "style":
		return "formatting, no code change"
	case "refactor":
		return "code change that neither fixes a bug nor adds a feature"
	case "perf":
		return "performance improvement"
	case "test":
		return "adding or correcting tests"
	case "build":
		return "build system or external dependencies"
	case "ci":
		return "CI configuration"
	case "chore":
		return "maintenance, no production code change"
	case "revert":
		return "reverts a previous commit"
	default:
		return ""
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
