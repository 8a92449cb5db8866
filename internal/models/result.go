package models

// ValidationResult is the outcome of linting one raw message. A zero-length
// violation list implies success and a fully populated Message. On parse
// failure Message is nil and Violations holds the single parse violation.
type ValidationResult struct {
	// Message is the parsed commit, nil if the header did not parse
	Message *CommitMessage `json:"message,omitempty"`
	// Violations in the order the rules found them
	Violations []Violation `json:"violations"`
}

// Valid reports whether the message parsed and no rule produced an error.
// Warnings do not make a message invalid.
func (r ValidationResult) Valid() bool {
	return r.Message != nil && len(r.Errors()) == 0
}

// StrictValid reports whether the message is valid with warnings promoted
// to failures
func (r ValidationResult) StrictValid() bool {
	return r.Message != nil && len(r.Violations) == 0
}

// Errors returns only the error-severity violations
func (r ValidationResult) Errors() []Violation {
	var errs []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			errs = append(errs, v)
		}
	}
	return errs
}

// Warnings returns only the warning-severity violations
func (r ValidationResult) Warnings() []Violation {
	var warns []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarning {
			warns = append(warns, v)
		}
	}
	return warns
}
