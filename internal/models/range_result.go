package models

// LintStatus represents the outcome of linting a single commit in a range
type LintStatus interface {
	isLintStatus()
}

type lintStatusPassed struct{}
type lintStatusWarned struct{ Count int }
type lintStatusFailed struct{ Count int }

func (lintStatusPassed) isLintStatus() {}
func (lintStatusWarned) isLintStatus() {}
func (lintStatusFailed) isLintStatus() {}

// Passed indicates the commit message linted clean
var Passed LintStatus = lintStatusPassed{}

// Warned creates a LintStatus for a commit with advisory findings only
func Warned(count int) LintStatus {
	return lintStatusWarned{Count: count}
}

// Failed creates a LintStatus for a commit with hard failures
func Failed(count int) LintStatus {
	return lintStatusFailed{Count: count}
}

// StatusFor derives a LintStatus from a validation result. In strict mode
// warnings count as failures.
func StatusFor(r ValidationResult, strict bool) LintStatus {
	errs := len(r.Errors())
	warns := len(r.Warnings())
	if r.Message == nil {
		return Failed(len(r.Violations))
	}
	if strict {
		if errs+warns > 0 {
			return Failed(errs + warns)
		}
		return Passed
	}
	if errs > 0 {
		return Failed(errs)
	}
	if warns > 0 {
		return Warned(warns)
	}
	return Passed
}

// RangeResult represents the lint outcome for a single commit in a range
type RangeResult struct {
	// Commit is the commit that was linted
	Commit CommitInfo
	// Result is the full validation result
	Result ValidationResult
	// Status summarizes the outcome
	Status LintStatus
}

// IsStatusPassed returns true if status is Passed
func IsStatusPassed(s LintStatus) bool {
	_, ok := s.(lintStatusPassed)
	return ok
}

// IsStatusWarned returns true if status is Warned
func IsStatusWarned(s LintStatus) bool {
	_, ok := s.(lintStatusWarned)
	return ok
}

// IsStatusFailed returns true if status is Failed
func IsStatusFailed(s LintStatus) bool {
	_, ok := s.(lintStatusFailed)
	return ok
}

// StatusCount returns the violation count carried by Warned or Failed statuses
func StatusCount(s LintStatus) int {
	if warned, ok := s.(lintStatusWarned); ok {
		return warned.Count
	}
	if failed, ok := s.(lintStatusFailed); ok {
		return failed.Count
	}
	return 0
}
