package domain

// Status is the terminal outcome of a test case.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// CaseResult represents one observed test case. A result is mutable only
// while it is the parser's current case; once finalized it is never changed.
type CaseResult struct {
	Suite   string  `json:"suite"`
	Name    string  `json:"name"`
	Seconds float64 `json:"seconds"`
	Status  Status  `json:"status"`
	Message string  `json:"message,omitempty"`
	Kind    string  `json:"kind,omitempty"`

	// Resolved tracks whether the failure was marked as reviewed in the viewer.
	Resolved bool `json:"resolved,omitempty"`
}
