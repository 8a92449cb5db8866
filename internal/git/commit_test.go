package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "Test Author",
		Email: "test@example.com",
		When:  time.Now(),
	}
}

// initTestRepo creates a repository with sequential commits and returns
// their hashes in commit order
func initTestRepo(t *testing.T, messages []string) (string, []plumbing.Hash) {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	var hashes []plumbing.Hash
	for i, msg := range messages {
		file := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(file, []byte(msg+"\n"), 0644))
		_, err = wt.Add("file.txt")
		require.NoError(t, err)

		hash, err := wt.Commit(msg, &gogit.CommitOptions{Author: testSignature()})
		require.NoError(t, err, "commit %d", i)
		hashes = append(hashes, hash)
	}

	return dir, hashes
}

func TestCommitsBetween(t *testing.T) {
	dir, hashes := initTestRepo(t, []string{
		"chore: initial commit",
		"feat(auth): add sign-in",
		"fix: handle empty input",
	})

	commits, err := CommitsBetween(dir, hashes[0].String(), "HEAD")
	require.NoError(t, err)

	require.Len(t, commits, 2, "base commit must be excluded")

	var messages []string
	for _, c := range commits {
		messages = append(messages, c.Subject())
		assert.Len(t, c.Hash, 7)
	}
	assert.Contains(t, messages, "feat(auth): add sign-in")
	assert.Contains(t, messages, "fix: handle empty input")
	assert.NotContains(t, messages, "chore: initial commit")
}

func TestCommitsBetween_SameRevision(t *testing.T) {
	dir, hashes := initTestRepo(t, []string{
		"chore: initial commit",
		"feat: add thing",
	})

	commits, err := CommitsBetween(dir, hashes[1].String(), "HEAD")
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestCommitsBetween_UnknownRevision(t *testing.T) {
	dir, _ := initTestRepo(t, []string{"chore: initial commit"})

	_, err := CommitsBetween(dir, "no-such-branch", "HEAD")
	var revErr *RevisionNotFoundError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, "no-such-branch", revErr.Revision)
}

func TestCommitsBetween_FullMessagePreserved(t *testing.T) {
	full := "feat(api): add endpoint\n\nBody paragraph.\n\nCloses #9\n"
	dir, hashes := initTestRepo(t, []string{
		"chore: initial commit",
		full,
	})

	commits, err := CommitsBetween(dir, hashes[0].String(), "HEAD")
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, full, commits[0].Message)
	assert.Equal(t, "feat(api): add endpoint", commits[0].Subject())
}

func TestIsGitRepo(t *testing.T) {
	dir, _ := initTestRepo(t, []string{"chore: initial commit"})

	assert.True(t, IsGitRepo(dir))
	assert.False(t, IsGitRepo(t.TempDir()))
}

func TestFindRepoRoot(t *testing.T) {
	dir, _ := initTestRepo(t, []string{"chore: initial commit"})

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	t.Chdir(nested)

	root, err := FindRepoRoot()
	require.NoError(t, err)

	// Compare resolved paths, t.TempDir may sit behind a symlink
	wantRoot, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestDetectMainBranch(t *testing.T) {
	dir, _ := initTestRepo(t, []string{"chore: initial commit"})

	branch, err := DetectMainBranch(dir)
	require.NoError(t, err)
	// go-git's default initial branch
	assert.Equal(t, "master", branch)
}
