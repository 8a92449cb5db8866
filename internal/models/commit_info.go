package models

// CommitInfo contains information about a git commit to be linted
type CommitInfo struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Message is the full raw commit message
	Message string
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, message string) CommitInfo {
	return CommitInfo{
		Hash:    hash,
		Message: message,
	}
}

// Subject returns the first line of the message, for display
func (c CommitInfo) Subject() string {
	for i := 0; i < len(c.Message); i++ {
		if c.Message[i] == '\n' {
			return c.Message[:i]
		}
	}
	return c.Message
}
