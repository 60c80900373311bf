package sonar

import (
	"fmt"
	"io"
	"strings"

	"swiftci/internal/domain"
)

// maxLintEntries caps the console listing; the remainder is summarized.
const maxLintEntries = 50

// LintWriter prints a SwiftLint JSON report as a SonarCloud-style listing.
type LintWriter struct{}

// NewLintWriter creates a new LintWriter
func NewLintWriter() *LintWriter {
	return &LintWriter{}
}

// Categorize maps a SwiftLint finding onto a SonarCloud category and level.
// Errors are bugs, security-ish rules are hotspots, everything else is a
// code smell.
func Categorize(issue domain.LintIssue) (category, level string) {
	rule := strings.ToLower(issue.RuleID)
	switch {
	case issue.Severity == "Error":
		return "BUG", "BLOCKER"
	case strings.Contains(rule, "security") || strings.Contains(rule, "auth"):
		return "SECURITY_HOTSPOT", "CRITICAL"
	default:
		return "CODE_SMELL", "MINOR"
	}
}

// Write prints at most 50 findings followed by a "more issues" notice when
// the report is longer.
func (lw *LintWriter) Write(w io.Writer, issues []domain.LintIssue) error {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found")
		return nil
	}

	shown := issues
	if len(shown) > maxLintEntries {
		shown = shown[:maxLintEntries]
	}

	for _, issue := range shown {
		category, level := Categorize(issue)

		file := issue.File
		if file == "" {
			file = "unknown"
		}
		reason := issue.Reason
		if reason == "" {
			reason = "No description"
		}
		ruleID := issue.RuleID
		if ruleID == "" {
			ruleID = "unknown"
		}

		fmt.Fprintf(w, "[%s] %s: %s:%d\n", category, level, file, issue.Line)
		fmt.Fprintf(w, "  Message: %s\n", reason)
		fmt.Fprintf(w, "  Rule: %s\n", ruleID)
		fmt.Fprintln(w)
	}

	if len(issues) > maxLintEntries {
		fmt.Fprintf(w, "\n... and %d more issues\n", len(issues)-maxLintEntries)
	}

	return nil
}
