// Package app implements the interactive compose flow: a short wizard that
// walks type, scope, subject, body, and breaking detail, lints the draft
// live, and hands the finished message back to the caller.
package app

import (
	"strings"

	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/format"
	"github.com/wahlandcase/attuned.commitcheck/internal/lint"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the compose application state
type Model struct {
	// Configuration
	config *config.Config
	linter *lint.Linter
	strict bool

	// Navigation
	screen     Screen
	shouldQuit bool

	// Draft state
	typeIndex      int
	breaking       bool
	scope          string
	subject        string
	bodyLines      []string
	bodyCurrent    string
	breakingDetail string

	// Scope suggestions from previous runs
	recentScopes []string
	suggestIndex int

	// Finished message, set when the user accepts the preview
	output string

	// Window size
	width  int
	height int
}

// New creates a new compose model
func New(cfg *config.Config, strict bool) Model {
	return Model{
		config:       cfg,
		linter:       lint.New(cfg),
		strict:       strict,
		screen:       ScreenTypeSelect,
		recentScopes: loadRecentScopes(),
		suggestIndex: -1,
		width:        80,
		height:       24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Output returns the composed message and whether the user accepted it
func (m Model) Output() (string, bool) {
	return m.output, m.output != ""
}

// selectedType returns the currently highlighted type token
func (m Model) selectedType() string {
	types := m.config.Lint.Types
	if len(types) == 0 {
		return ""
	}
	return types[m.typeIndex%len(types)]
}

// draft assembles the in-progress message
func (m Model) draft() *models.CommitMessage {
	msg := &models.CommitMessage{
		Type:     m.selectedType(),
		Scope:    m.scope,
		Breaking: m.breaking,
		Subject:  m.subject,
		Body:     bodyParagraphs(m.bodyLines),
	}
	if m.breaking && strings.TrimSpace(m.breakingDetail) != "" {
		msg.Footers = append(msg.Footers, models.Footer{
			Key:   models.BreakingChangeKey,
			Value: strings.TrimSpace(m.breakingDetail),
		})
	}
	return msg
}

// draftText renders the draft in canonical form
func (m Model) draftText() string {
	return format.Canonical(m.draft())
}

// lintDraft lints the canonical draft
func (m Model) lintDraft() models.ValidationResult {
	return m.linter.Lint(m.draftText())
}

// bodyParagraphs groups entered lines into blank-line-delimited paragraphs
func bodyParagraphs(lines []string) []string {
	var paras []string
	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				paras = append(paras, strings.Join(current, "\n"))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paras = append(paras, strings.Join(current, "\n"))
	}
	return paras
}
