package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/lint"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
)

func TestCanonical_HeaderOnly(t *testing.T) {
	msg := &models.CommitMessage{
		Type:    "feat",
		Scope:   "auth",
		Subject: "add passwordless sign-in",
	}

	assert.Equal(t, "feat(auth): add passwordless sign-in\n", Canonical(msg))
}

func TestCanonical_BreakingMarkerWithoutFooter(t *testing.T) {
	msg := &models.CommitMessage{
		Type:     "feat",
		Breaking: true,
		Subject:  "drop v1 endpoints",
	}

	assert.Equal(t, "feat!: drop v1 endpoints\n", Canonical(msg))
}

func TestCanonical_BreakingFooterSuppressesMarker(t *testing.T) {
	msg := &models.CommitMessage{
		Type:     "fix",
		Scope:    "api",
		Breaking: true,
		Subject:  "sanitize headers",
		Footers: []models.Footer{
			{Key: models.BreakingChangeKey, Value: "headers now rejected if malformed."},
		},
	}

	want := "fix(api): sanitize headers\n\nBREAKING CHANGE: headers now rejected if malformed.\n"
	assert.Equal(t, want, Canonical(msg))
}

func TestCanonical_BodyAndFooters(t *testing.T) {
	msg := &models.CommitMessage{
		Type:    "feat",
		Scope:   "auth",
		Subject: "add passwordless sign-in",
		Body:    []string{"First paragraph.", "Second paragraph\nsecond line."},
		Footers: []models.Footer{
			{Key: "Closes", Value: "#123"},
			{Key: "Co-authored-by", Value: "Jane Doe <jane@example.com>"},
		},
	}

	want := "feat(auth): add passwordless sign-in\n\n" +
		"First paragraph.\n\n" +
		"Second paragraph\nsecond line.\n\n" +
		"Closes: #123\n" +
		"Co-authored-by: Jane Doe <jane@example.com>\n"
	assert.Equal(t, want, Canonical(msg))
}

// Canonical output must re-parse to an identical structure, and formatting
// an already-canonical message must be a no-op.
func TestCanonical_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()

	raws := []string{
		"feat(auth): add passwordless sign-in",
		"fix!(api): sanitize headers\n\nBREAKING CHANGE: headers now rejected if malformed.",
		"feat: widen retry window\n\nLonger explanation\nacross two lines.\n\nCloses #42\nRefs: #7",
		"chore: bump deps\n\nCo-authored-by: Jane Doe <jane@example.com>\nCo-authored-by: Sam Lee <sam@example.com>",
	}

	for _, raw := range raws {
		msg, err := lint.Parse(raw, cfg)
		require.NoError(t, err, raw)

		canonical := Canonical(msg)
		reparsed, err := lint.Parse(canonical, cfg)
		require.NoError(t, err, canonical)
		assert.Equal(t, msg, reparsed, "round trip changed structure for %q", raw)

		assert.Equal(t, canonical, Canonical(reparsed), "canonical form not idempotent for %q", raw)
	}
}
