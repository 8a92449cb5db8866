// Package format serializes parsed commit messages back to canonical text.
package format

import (
	"strings"

	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

// Canonical renders a parsed message in canonical conventional commit form:
// header, blank-line-delimited body paragraphs, then the footer block. The
// output re-parses to an identical structure, so formatting is idempotent.
func Canonical(msg *models.CommitMessage) string {
	var b strings.Builder

	b.WriteString(msg.Header())

	for _, para := range msg.Body {
		b.WriteString("\n\n")
		b.WriteString(para)
	}

	if len(msg.Footers) > 0 {
		b.WriteString("\n\n")
		for i, f := range msg.Footers {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(f.Key)
			b.WriteString(": ")
			// Continuation lines are indented so the block re-parses
			b.WriteString(strings.ReplaceAll(f.Value, "\n", "\n "))
		}
	}

	b.WriteString("\n")
	return b.String()
}
