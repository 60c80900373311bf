package sonar

import (
	"strings"

	"swiftci/internal/domain"
)

// Filter narrows an issue list by severity, type and rule pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// BySeverity keeps only issues with the given severity (case-insensitive).
// An empty severity keeps everything.
func (f *Filter) BySeverity(issues []domain.Issue, severity string) []domain.Issue {
	if severity == "" {
		return issues
	}
	var filtered []domain.Issue
	for _, issue := range issues {
		if strings.EqualFold(issue.Severity, severity) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// ByType keeps only issues with the given type (case-insensitive).
// An empty type keeps everything.
func (f *Filter) ByType(issues []domain.Issue, issueType string) []domain.Issue {
	if issueType == "" {
		return issues
	}
	var filtered []domain.Issue
	for _, issue := range issues {
		if strings.EqualFold(issue.Type, issueType) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

// ByRule filters issues by rule key using wildcard matching.
// Supports patterns like "swift:*" or "*unused*"; a pattern without
// wildcards does a simple contains check.
func (f *Filter) ByRule(issues []domain.Issue, pattern string) []domain.Issue {
	if pattern == "" {
		return issues
	}

	var filtered []domain.Issue
	for _, issue := range issues {
		if matchRule(issue.Rule, pattern) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

func matchRule(rule, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return strings.Contains(rule, pattern)
	}

	// Every non-empty segment between wildcards must appear, in order.
	parts := strings.Split(pattern, "*")
	rest := rule
	for i, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		// An anchored first segment must match at the start.
		if i == 0 && !strings.HasPrefix(pattern, "*") && idx != 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	// An anchored last segment must match at the end.
	if last := parts[len(parts)-1]; last != "" && !strings.HasSuffix(pattern, "*") {
		return strings.HasSuffix(rule, last)
	}
	return true
}
