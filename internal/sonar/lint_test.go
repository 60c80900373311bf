package sonar

import (
	"fmt"
	"strings"
	"testing"

	"swiftci/internal/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name         string
		issue        domain.LintIssue
		wantCategory string
		wantLevel    string
	}{
		{
			name:         "error severity is a bug",
			issue:        domain.LintIssue{Severity: "Error", RuleID: "force_cast"},
			wantCategory: "BUG",
			wantLevel:    "BLOCKER",
		},
		{
			name:         "security rule is a hotspot",
			issue:        domain.LintIssue{Severity: "Warning", RuleID: "insecure_security_check"},
			wantCategory: "SECURITY_HOTSPOT",
			wantLevel:    "CRITICAL",
		},
		{
			name:         "auth rule is a hotspot",
			issue:        domain.LintIssue{Severity: "Warning", RuleID: "hardcoded_auth_token"},
			wantCategory: "SECURITY_HOTSPOT",
			wantLevel:    "CRITICAL",
		},
		{
			name:         "anything else is a code smell",
			issue:        domain.LintIssue{Severity: "Warning", RuleID: "line_length"},
			wantCategory: "CODE_SMELL",
			wantLevel:    "MINOR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, level := Categorize(tt.issue)
			if category != tt.wantCategory || level != tt.wantLevel {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantCategory, tt.wantLevel, category, level)
			}
		})
	}
}

func TestLintWriter_Write(t *testing.T) {
	issues := []domain.LintIssue{
		{File: "Sources/App/Main.swift", Line: 12, Reason: "Line too long", RuleID: "line_length", Severity: "Warning"},
		{File: "Sources/App/Auth.swift", Line: 3, Reason: "Force cast", RuleID: "force_cast", Severity: "Error"},
	}

	var sb strings.Builder
	if err := NewLintWriter().Write(&sb, issues); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"[CODE_SMELL] MINOR: Sources/App/Main.swift:12",
		"  Message: Line too long",
		"  Rule: line_length",
		"[BUG] BLOCKER: Sources/App/Auth.swift:3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "more issues") {
		t.Error("short listing should not have a more-issues notice")
	}
}

func TestLintWriter_Write_Empty(t *testing.T) {
	var sb strings.Builder
	if err := NewLintWriter().Write(&sb, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(sb.String()) != "No issues found" {
		t.Errorf("unexpected output: %q", sb.String())
	}
}

func TestLintWriter_Write_CapsAtFifty(t *testing.T) {
	var issues []domain.LintIssue
	for i := 0; i < 75; i++ {
		issues = append(issues, domain.LintIssue{
			File:     fmt.Sprintf("File%d.swift", i),
			Line:     i,
			Reason:   "reason",
			RuleID:   "line_length",
			Severity: "Warning",
		})
	}

	var sb strings.Builder
	if err := NewLintWriter().Write(&sb, issues); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "File49.swift") {
		t.Error("entry 50 should be listed")
	}
	if strings.Contains(out, "File50.swift") {
		t.Error("entry 51 should not be listed")
	}
	if !strings.Contains(out, "... and 25 more issues") {
		t.Errorf("missing more-issues notice:\n%s", out)
	}
}
