package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRepoRoot walks up from the current working directory to the
// enclosing repository root
func FindRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	path := cwd
	for {
		if IsGitRepo(path) {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", os.ErrNotExist
		}
		path = parent
	}
}

// DetectMainBranch determines if the repo uses "main" or "master"
func DetectMainBranch(repoPath string) (string, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return "", err
	}

	refs, err := repo.References()
	if err != nil {
		return "main", nil
	}

	hasRemoteMain := false
	hasRemoteMaster := false
	hasLocalMain := false
	hasLocalMaster := false

	refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if name == "refs/remotes/origin/main" {
			hasRemoteMain = true
		}
		if name == "refs/remotes/origin/master" {
			hasRemoteMaster = true
		}
		if name == "refs/heads/main" {
			hasLocalMain = true
		}
		if name == "refs/heads/master" {
			hasLocalMaster = true
		}
		return nil
	})

	// Prefer remote refs
	if hasRemoteMain {
		return "main", nil
	}
	if hasRemoteMaster {
		return "master", nil
	}

	if hasLocalMain {
		return "main", nil
	}
	if hasLocalMaster {
		return "master", nil
	}

	// Default to main
	return "main", nil
}

// FetchBranches fetches specified branches from origin using git CLI (to inherit SSH agent)
func FetchBranches(repoPath string, branches []string) error {
	args := append([]string{"fetch", "origin"}, branches...)
	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		outputStr := strings.TrimSpace(string(output))
		if strings.Contains(outputStr, "couldn't find remote ref") {
			return &RevisionNotFoundError{Revision: strings.Join(branches, ", ")}
		}
		if outputStr != "" {
			return &GitError{Command: "fetch", Output: outputStr}
		}
		return &GitError{Command: "fetch", Output: "Failed to fetch from remote (check network/auth)"}
	}

	return nil
}

// GitError provides better context for git command failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// RevisionNotFoundError indicates a revision could not be resolved
type RevisionNotFoundError struct {
	Revision string
}

func (e *RevisionNotFoundError) Error() string {
	return "revision not found: " + e.Revision
}
