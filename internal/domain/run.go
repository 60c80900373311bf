package domain

// RunMeta contains metadata about a converted test run
type RunMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	SkippedTests    int     `json:"skipped_tests"`
	Suites          int     `json:"suites"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted form of a test run
type RunOutput struct {
	Meta    RunMeta      `json:"meta"`
	Details []CaseResult `json:"details"`
}
