package git

import (
	"github.com/wahlandcase/attuned.commitcheck/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitsBetween returns the commits reachable from head but not from base
// (base..head), with full messages for linting. Revisions may be branch
// names, tags, hashes, or anything else ResolveRevision accepts.
func CommitsBetween(repoPath, base, head string) ([]models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	baseHash, err := repo.ResolveRevision(plumbing.Revision(base))
	if err != nil {
		return nil, &RevisionNotFoundError{Revision: base}
	}

	headHash, err := repo.ResolveRevision(plumbing.Revision(head))
	if err != nil {
		return nil, &RevisionNotFoundError{Revision: head}
	}

	// Build set of commits reachable from base
	baseCommits := make(map[plumbing.Hash]bool)
	baseIter, err := repo.Log(&git.LogOptions{From: *baseHash})
	if err != nil {
		return nil, err
	}
	baseIter.ForEach(func(c *object.Commit) error {
		baseCommits[c.Hash] = true
		return nil
	})

	// Get commits from head that are not in base
	headIter, err := repo.Log(&git.LogOptions{From: *headHash})
	if err != nil {
		return nil, err
	}

	var commits []models.CommitInfo
	seen := make(map[plumbing.Hash]bool)
	err = headIter.ForEach(func(c *object.Commit) error {
		// Skip if already processed or reachable from base.
		// Don't stop iteration - merge commits have multiple parents
		// and we need to traverse all paths to find feature commits.
		if seen[c.Hash] || baseCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true

		hash := c.Hash.String()[:7]
		commits = append(commits, models.NewCommitInfo(hash, c.Message))
		return nil
	})

	if err != nil {
		return nil, err
	}

	return commits, nil
}
