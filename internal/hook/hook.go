// Package hook installs and removes the commit-msg hook that runs attcc.
package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const hookName = "commit-msg"

// marker identifies hooks we wrote, so uninstall never touches a hook
// somebody else installed
const marker = "# managed by attcc"

// Script returns the hook script contents
func Script(strict bool) string {
	cmd := "attcc lint"
	if strict {
		cmd += " --strict"
	}
	return fmt.Sprintf("#!/bin/sh\n%s\nexec %s \"$1\"\n", marker, cmd)
}

// hookPath resolves the commit-msg hook path for a repository, following a
// "gitdir:" pointer when .git is a file (worktrees, submodules)
func hookPath(repoPath string) (string, error) {
	gitPath := filepath.Join(repoPath, ".git")

	info, err := os.Stat(gitPath)
	if err != nil {
		return "", fmt.Errorf("not a git repository: %s", repoPath)
	}

	gitDir := gitPath
	if !info.IsDir() {
		data, err := os.ReadFile(gitPath)
		if err != nil {
			return "", err
		}
		line := strings.TrimSpace(string(data))
		dir, ok := strings.CutPrefix(line, "gitdir: ")
		if !ok {
			return "", fmt.Errorf("unrecognized .git file in %s", repoPath)
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(repoPath, dir)
		}
		gitDir = dir
	}

	return filepath.Join(gitDir, "hooks", hookName), nil
}

// Installed reports whether an attcc-managed hook is present
func Installed(repoPath string) bool {
	path, err := hookPath(repoPath)
	if err != nil {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), marker)
}

// Install writes the commit-msg hook. An existing hook not managed by attcc
// is left alone unless force is set.
func Install(repoPath string, strict, force bool) error {
	path, err := hookPath(repoPath)
	if err != nil {
		return err
	}

	if data, err := os.ReadFile(path); err == nil {
		if !strings.Contains(string(data), marker) && !force {
			return fmt.Errorf("%s already has a %s hook, use --force to overwrite", repoPath, hookName)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(Script(strict)), 0755)
}

// Uninstall removes the hook if it is managed by attcc
func Uninstall(repoPath string) error {
	path, err := hookPath(repoPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !strings.Contains(string(data), marker) {
		return fmt.Errorf("%s hook in %s was not installed by attcc", hookName, repoPath)
	}

	return os.Remove(path)
}
