package sonar

import (
	"testing"

	"swiftci/internal/domain"
)

var filterIssues = []domain.Issue{
	{Rule: "swift:S100", Severity: "MAJOR", Type: "CODE_SMELL"},
	{Rule: "swift:S200", Severity: "MINOR", Type: "CODE_SMELL"},
	{Rule: "swiftlint:line_length", Severity: "MAJOR", Type: "BUG"},
}

func TestFilter_BySeverity(t *testing.T) {
	filter := NewFilter()

	t.Run("empty pattern keeps everything", func(t *testing.T) {
		got := filter.BySeverity(filterIssues, "")
		if len(got) != len(filterIssues) {
			t.Errorf("expected %d issues, got %d", len(filterIssues), len(got))
		}
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		got := filter.BySeverity(filterIssues, "major")
		if len(got) != 2 {
			t.Errorf("expected 2 issues, got %d", len(got))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		got := filter.BySeverity(filterIssues, "BLOCKER")
		if len(got) != 0 {
			t.Errorf("expected no issues, got %d", len(got))
		}
	})
}

func TestFilter_ByType(t *testing.T) {
	filter := NewFilter()
	got := filter.ByType(filterIssues, "BUG")
	if len(got) != 1 || got[0].Rule != "swiftlint:line_length" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestFilter_ByRule(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name    string
		pattern string
		want    int
	}{
		{name: "empty keeps everything", pattern: "", want: 3},
		{name: "prefix wildcard", pattern: "swift:*", want: 2},
		{name: "contains wildcard", pattern: "*line*", want: 1},
		{name: "plain substring", pattern: "S200", want: 1},
		{name: "anchored suffix", pattern: "*S100", want: 1},
		{name: "no match", pattern: "python:*", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.ByRule(filterIssues, tt.pattern)
			if len(got) != tt.want {
				t.Errorf("expected %d issues, got %d", tt.want, len(got))
			}
		})
	}
}
