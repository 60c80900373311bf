package sonar

import (
	"encoding/json"
	"fmt"
	"os"

	"swiftci/internal/domain"
)

// LoadIssues reads a SonarCloud issue export document from path.
func LoadIssues(path string) (*domain.IssueExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read issues file: %w", err)
	}
	var export domain.IssueExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse issues: %w", err)
	}
	return &export, nil
}

// LoadLint reads a SwiftLint JSON report (a flat array of findings) from path.
func LoadLint(path string) ([]domain.LintIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read swiftlint file: %w", err)
	}
	var issues []domain.LintIssue
	if err := json.Unmarshal(data, &issues); err != nil {
		return nil, fmt.Errorf("parse swiftlint output: %w", err)
	}
	return issues, nil
}
