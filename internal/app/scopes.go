package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const scopesMaxAge = 90 * 24 * time.Hour
const scopesMax = 8

// scopeEntry is the persisted record of a scope used in compose
type scopeEntry struct {
	Scope  string    `json:"scope"`
	UsedAt time.Time `json:"used_at"`
}

func scopesPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attcc-scopes.json"), nil
}

// loadRecentScopes loads and prunes stale entries, most recent first
func loadRecentScopes() []string {
	path, err := scopesPath()
	if err != nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entries []scopeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}

	cutoff := time.Now().Add(-scopesMaxAge)
	var valid []scopeEntry
	for _, e := range entries {
		if e.UsedAt.After(cutoff) {
			valid = append(valid, e)
		}
	}

	// Rewrite file if we pruned anything
	if len(valid) != len(entries) {
		saveScopeEntries(valid)
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].UsedAt.After(valid[j].UsedAt)
	})

	var scopes []string
	for _, e := range valid {
		scopes = append(scopes, e.Scope)
		if len(scopes) == scopesMax {
			break
		}
	}
	return scopes
}

// recordScope upserts a scope with the current timestamp
func recordScope(scope string) {
	path, err := scopesPath()
	if err != nil {
		return
	}

	var entries []scopeEntry
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &entries)
	}

	found := false
	for i := range entries {
		if entries[i].Scope == scope {
			entries[i].UsedAt = time.Now()
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, scopeEntry{Scope: scope, UsedAt: time.Now()})
	}

	saveScopeEntries(entries)
}

func saveScopeEntries(entries []scopeEntry) {
	path, err := scopesPath()
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
