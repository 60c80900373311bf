package sonar

import (
	"fmt"
	"io"
	"sort"

	"swiftci/internal/domain"
)

// SummaryWriter prints issue counts grouped by type and by severity.
type SummaryWriter struct{}

// NewSummaryWriter creates a new SummaryWriter
func NewSummaryWriter() *SummaryWriter {
	return &SummaryWriter{}
}

// Write prints the type counts alphabetically, then the severity counts in
// the fixed BLOCKER..INFO order, skipping severities with no issues.
func (sw *SummaryWriter) Write(w io.Writer, issues []domain.Issue) error {
	types := make(map[string]int)
	severities := make(map[string]int)
	for _, issue := range issues {
		issueType := issue.Type
		if issueType == "" {
			issueType = "UNKNOWN"
		}
		severity := issue.Severity
		if severity == "" {
			severity = "UNKNOWN"
		}
		types[issueType]++
		severities[severity]++
	}

	var typeNames []string
	for name := range types {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)

	fmt.Fprintln(w, "By Type:")
	for _, name := range typeNames {
		fmt.Fprintf(w, "  - %s: %d\n", name, types[name])
	}

	fmt.Fprintln(w, "\nBy Severity:")
	for _, severity := range domain.Severities {
		if count, ok := severities[severity]; ok {
			fmt.Fprintf(w, "  - %s: %d\n", severity, count)
		}
	}

	return nil
}
