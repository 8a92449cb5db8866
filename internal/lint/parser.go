package lint

import (
	"regexp"
	"strings"

	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

// Header grammar: type, optional ! before or after the scope, colon, space,
// subject. The canonical marker position is after the scope but tools emit
// both, so both parse.
var headerRe = regexp.MustCompile(`^([A-Za-z]+)(!)?(?:\(([^()]*)\))?(!)?: ?(.*)$`)

// Footer trailer line: "Key: value" or "Key #value". BREAKING CHANGE is the
// only key allowed to contain a space.
var footerRe = regexp.MustCompile(`^(BREAKING CHANGE|[A-Za-z][A-Za-z0-9-]*)(: | #)(.*)$`)

// MalformedHeaderError indicates the first line does not match the
// conventional commit header grammar
type MalformedHeaderError struct {
	Line string
}

func (e *MalformedHeaderError) Error() string {
	return "malformed header, want \"type(scope)?!?: subject\": " + e.Line
}

// UnknownTypeError indicates the type token is not in the configured set
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return "unknown commit type: " + e.Type
}

// Parse parses a raw commit message into its structured form. Lines starting
// with # are dropped first, matching what git does with the default comment
// character before a message reaches the commit-msg hook.
//
// Parse fails only on header-level problems. Content rules (subject length,
// scope shape, footer keys) are checked by the rule table, not here.
func Parse(raw string, cfg *config.Config) (*models.CommitMessage, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, &MalformedHeaderError{Line: ""}
	}

	header := lines[0]
	m := headerRe.FindStringSubmatch(header)
	if m == nil {
		return nil, &MalformedHeaderError{Line: header}
	}

	typ, bangBefore, scope, bangAfter, subject := m[1], m[2], m[3], m[4], m[5]
	if !cfg.AllowsType(typ) {
		return nil, &UnknownTypeError{Type: typ}
	}

	msg := &models.CommitMessage{
		Type:     typ,
		Scope:    scope,
		Breaking: bangBefore == "!" || bangAfter == "!",
		Subject:  subject,
	}

	body, footers := splitBodyFooters(lines[1:])
	msg.Body = body
	msg.Footers = footers

	if msg.BreakingDetail() != "" {
		msg.Breaking = true
	}

	return msg, nil
}

// splitLines normalizes line endings, strips git comment lines, and trims
// trailing blank lines
func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, " \t"))
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitBodyFooters splits the lines after the header into body paragraphs
// and a footer block. The footer block is the last blank-line-delimited
// block in which every line is a trailer or a continuation of one.
func splitBodyFooters(rest []string) ([]string, []models.Footer) {
	blocks := paragraphs(rest)
	if len(blocks) == 0 {
		return nil, nil
	}

	last := blocks[len(blocks)-1]
	footers := parseFooterBlock(last)
	if footers == nil {
		return joinParagraphs(blocks), nil
	}
	return joinParagraphs(blocks[:len(blocks)-1]), footers
}

// paragraphs groups lines into blank-line-delimited blocks
func paragraphs(lines []string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func joinParagraphs(blocks [][]string) []string {
	var paras []string
	for _, b := range blocks {
		paras = append(paras, strings.Join(b, "\n"))
	}
	return paras
}

// parseFooterBlock parses a block as footers, returning nil if any line is
// neither a trailer nor an indented continuation
func parseFooterBlock(block []string) []models.Footer {
	var footers []models.Footer
	for _, line := range block {
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			// Continuation folds into the previous footer value
			if len(footers) == 0 {
				return nil
			}
			footers[len(footers)-1].Value += "\n" + strings.TrimLeft(line, " \t")
			continue
		}

		m := footerRe.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		key, sep, value := m[1], m[2], m[3]
		if sep == " #" {
			value = "#" + value
		}
		footers = append(footers, models.Footer{Key: key, Value: value})
	}
	return footers
}
