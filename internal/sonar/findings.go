package sonar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"swiftci/internal/domain"
)

// Progress is notified as findings are written (e.g. a progress bar).
type Progress interface {
	Add(n int)
	Finish()
}

// FindingsWriter renders a SonarCloud issue export as a grouped plain-text
// findings report.
type FindingsWriter struct {
	projectKey string
	progress   Progress
}

// NewFindingsWriter creates a new FindingsWriter for the given project key.
func NewFindingsWriter(projectKey string) *FindingsWriter {
	return &FindingsWriter{projectKey: projectKey}
}

// SetProgress sets the progress reporter used while writing findings.
func (fw *FindingsWriter) SetProgress(p Progress) {
	fw.progress = p
}

// Write renders the report: a header, then one section per severity in the
// fixed BLOCKER..INFO order, each listing its issues in export order.
func (fw *FindingsWriter) Write(w io.Writer, issues []domain.Issue, generatedAt time.Time) error {
	fmt.Fprintf(w, "=== SonarCloud Findings Report ===\n")
	fmt.Fprintf(w, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Project: %s\n", fw.projectKey)
	fmt.Fprintf(w, "Total issues: %d\n\n", len(issues))

	bySeverity := make(map[string][]domain.Issue)
	for _, issue := range issues {
		severity := issue.Severity
		if severity == "" {
			severity = "UNKNOWN"
		}
		bySeverity[severity] = append(bySeverity[severity], issue)
	}

	rule := strings.Repeat("=", 50)
	for _, severity := range domain.Severities {
		group, ok := bySeverity[severity]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "\n%s\n", rule)
		fmt.Fprintf(w, "%s ISSUES (%d)\n", severity, len(group))
		fmt.Fprintf(w, "%s\n\n", rule)

		for _, issue := range group {
			fw.writeFinding(w, issue)
			if fw.progress != nil {
				fw.progress.Add(1)
			}
		}
	}
	if fw.progress != nil {
		fw.progress.Finish()
	}

	return nil
}

func (fw *FindingsWriter) writeFinding(w io.Writer, issue domain.Issue) {
	component := issue.Component
	if component == "" {
		component = "unknown"
	}
	// Components are exported as "<projectKey>:<path>".
	component = strings.Replace(component, fw.projectKey+":", "", 1)

	issueType := issue.Type
	if issueType == "" {
		issueType = "UNKNOWN"
	}
	ruleKey := issue.Rule
	if ruleKey == "" {
		ruleKey = "unknown"
	}
	message := issue.Message
	if message == "" {
		message = "No message"
	}

	fmt.Fprintf(w, "[%s] %s:%d\n", issueType, component, issue.TextRange.StartLine)
	fmt.Fprintf(w, "  Rule: %s\n", ruleKey)
	fmt.Fprintf(w, "  Message: %s\n", message)
	if issue.Effort != "" {
		fmt.Fprintf(w, "  Effort: %s\n", issue.Effort)
	}
	if issue.Status != "" && issue.Status != "OPEN" {
		fmt.Fprintf(w, "  Status: %s\n", issue.Status)
	}
	fmt.Fprintln(w)
}
