package domain

// Severities is the fixed ordering used by every severity-grouped report.
var Severities = []string{"BLOCKER", "CRITICAL", "MAJOR", "MINOR", "INFO"}

// TextRange locates an issue within its component file.
type TextRange struct {
	StartLine int `json:"startLine"`
}

// Issue is one finding from a SonarCloud issue export.
type Issue struct {
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Component string    `json:"component"`
	Rule      string    `json:"rule"`
	Message   string    `json:"message"`
	Effort    string    `json:"effort,omitempty"`
	Status    string    `json:"status,omitempty"`
	TextRange TextRange `json:"textRange"`
}

// IssueExport is the top-level shape of a SonarCloud issue export document.
type IssueExport struct {
	Issues []Issue `json:"issues"`
}

// LintIssue is one entry of a SwiftLint JSON report.
type LintIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Reason   string `json:"reason"`
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
}
