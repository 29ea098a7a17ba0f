package domain

import "fmt"

// SuspiciousModificationError reports a modification that is inconsistent
// with authoritative state in a way that suggests tampering, a forged or
// stale client, or a broken invariant. It aborts the remainder of the batch
// it arrived in and must be surfaced to the caller.
type SuspiciousModificationError struct {
	StarID       int64
	Modification Modification
	Reason       string
}

// NewSuspicious builds a SuspiciousModificationError with a formatted reason.
func NewSuspicious(starID int64, mod Modification, format string, args ...any) *SuspiciousModificationError {
	return &SuspiciousModificationError{
		StarID:       starID,
		Modification: mod,
		Reason:       fmt.Sprintf(format, args...),
	}
}

func (e *SuspiciousModificationError) Error() string {
	kind := ModificationKind("<nil>")
	if e.Modification != nil {
		kind = e.Modification.Kind()
	}
	return fmt.Sprintf("star %d: suspicious %s modification: %s", e.StarID, kind, e.Reason)
}

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	StarID   int64
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// Warnings returns the subset of violations at warn severity.
func (r Result) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityWarn {
			out = append(out, v)
		}
	}
	return out
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	return "transaction blocked by rules"
}
