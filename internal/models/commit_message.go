package models

// BreakingChangeKey is the footer key that carries breaking change details.
// The Conventional Commits convention also accepts the hyphenated form.
const (
	BreakingChangeKey       = "BREAKING CHANGE"
	BreakingChangeHyphenKey = "BREAKING-CHANGE"
)

// Footer is a single trailer line from a commit message footer block.
// Keys need not be unique (multiple Co-authored-by lines are valid).
type Footer struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CommitMessage is a parsed conventional commit. It is built fresh per
// parse call and never mutated afterwards.
type CommitMessage struct {
	// Type is the change type token (feat, fix, docs, ...)
	Type string `json:"type"`
	// Scope is the optional scope token, empty if absent
	Scope string `json:"scope,omitempty"`
	// Breaking is true if the header carries a ! marker or a
	// BREAKING CHANGE footer is present
	Breaking bool `json:"breaking"`
	// Subject is the header text after the colon
	Subject string `json:"subject"`
	// Body holds blank-line-delimited paragraphs, may be empty
	Body []string `json:"body,omitempty"`
	// Footers are trailer lines in original order
	Footers []Footer `json:"footers,omitempty"`
}

// FooterValues returns all values for the given footer key
func (m *CommitMessage) FooterValues(key string) []string {
	var values []string
	for _, f := range m.Footers {
		if f.Key == key {
			values = append(values, f.Value)
		}
	}
	return values
}

// HasFooter reports whether any footer uses the given key
func (m *CommitMessage) HasFooter(key string) bool {
	for _, f := range m.Footers {
		if f.Key == key {
			return true
		}
	}
	return false
}

// BreakingDetail returns the value of the first BREAKING CHANGE footer
// (either spelling), or "" if none is present
func (m *CommitMessage) BreakingDetail() string {
	for _, f := range m.Footers {
		if f.Key == BreakingChangeKey || f.Key == BreakingChangeHyphenKey {
			return f.Value
		}
	}
	return ""
}

// Header returns the header line in canonical form: type(scope)!: subject
func (m *CommitMessage) Header() string {
	h := m.Type
	if m.Scope != "" {
		h += "(" + m.Scope + ")"
	}
	if m.Breaking && m.BreakingDetail() == "" {
		// Marker form only when no footer carries the detail
		h += "!"
	}
	return h + ": " + m.Subject
}
