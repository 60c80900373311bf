package parser

import (
	"strings"
	"testing"

	"swiftci/internal/domain"
)

func parseLog(t *testing.T, log string) *Run {
	t.Helper()
	run, err := NewSwiftLogParser().Parse(strings.NewReader(log))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return run
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Event
	}{
		{
			name: "suite started",
			line: "Test Suite 'FooTests' started at 2024-01-01 10:00:00",
			want: SuiteStarted{Name: "FooTests"},
		},
		{
			name: "case started",
			line: "Test Case '-[FooTests testBar]' started",
			want: CaseStarted{ClassName: "FooTests", MethodName: "testBar"},
		},
		{
			name: "case passed",
			line: "Test Case '-[FooTests testBar]' passed (0.013 seconds)",
			want: CasePassed{Seconds: 0.013},
		},
		{
			name: "case failed",
			line: "Test Case '-[FooTests testBar]' failed (1.5 seconds)",
			want: CaseFailed{Seconds: 1.5},
		},
		{
			name: "error detail",
			line: "/p/f.swift:10: error: -[Foo testB] : XCTAssertTrue failed",
			want: ErrorDetail{File: "/p/f.swift", Line: "10", Detail: "XCTAssertTrue failed"},
		},
		{
			name: "case skipped",
			line: "Test Case '-[FooTests testBar]' skipped",
			want: CaseSkipped{},
		},
		{
			name: "unrecognized line",
			line: "Compiling FooTests (12 sources)",
			want: nil,
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestClassify_BadDuration(t *testing.T) {
	for _, line := range []string{
		"Test Case '-[FooTests testBar]' passed (fast seconds)",
		"Test Case '-[FooTests testBar]' failed (n/a seconds)",
	} {
		if _, err := Classify(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestParse_PassedCase(t *testing.T) {
	run := parseLog(t, strings.Join([]string{
		"Test Suite 'FooTests' started",
		"Test Case '-[FooTests testBar]' started",
		"Test Case '-[FooTests testBar]' passed (0.01 seconds)",
	}, "\n"))

	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
	result := run.Results[0]
	if result.Status != domain.StatusPassed {
		t.Errorf("expected passed, got %s", result.Status)
	}
	if result.Seconds != 0.01 {
		t.Errorf("expected 0.01 seconds, got %v", result.Seconds)
	}
	if result.Suite != "FooTests" || result.Name != "testBar" {
		t.Errorf("unexpected identity: %s.%s", result.Suite, result.Name)
	}
}

func TestParse_FailedCaseKeepsLastDetail(t *testing.T) {
	run := parseLog(t, strings.Join([]string{
		"Test Case '-[FooTests testBar]' started",
		"/p/a.swift:5: error: -[FooTests testBar] : XCTAssertEqual failed",
		"/p/a.swift:9: error: -[FooTests testBar] : XCTAssertTrue failed",
		"Test Case '-[FooTests testBar]' failed (0.02 seconds)",
	}, "\n"))

	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
	result := run.Results[0]
	if result.Status != domain.StatusFailed {
		t.Errorf("expected failed, got %s", result.Status)
	}
	if result.Kind != "AssertionFailure" {
		t.Errorf("unexpected kind: %s", result.Kind)
	}
	want := "XCTAssertTrue failed at /p/a.swift:9"
	if result.Message != want {
		t.Errorf("expected %q, got %q", want, result.Message)
	}
}

func TestParse_FailedWithoutDetail(t *testing.T) {
	run := parseLog(t, strings.Join([]string{
		"Test Case '-[FooTests testBar]' started",
		"Test Case '-[FooTests testBar]' failed (0.02 seconds)",
	}, "\n"))

	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
	result := run.Results[0]
	if result.Status != domain.StatusFailed {
		t.Errorf("expected failed, got %s", result.Status)
	}
	if result.Message != "" || result.Kind != "" {
		t.Errorf("expected empty diagnostics, got %q/%q", result.Message, result.Kind)
	}
}

func TestParse_SkippedCase(t *testing.T) {
	run := parseLog(t, strings.Join([]string{
		"Test Case '-[FooTests testBar]' started",
		"Test Case '-[FooTests testBar]' skipped",
	}, "\n"))

	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
	if run.Results[0].Status != domain.StatusSkipped {
		t.Errorf("expected skipped, got %s", run.Results[0].Status)
	}
}

func TestParse_OrphanCaseDropped(t *testing.T) {
	run := parseLog(t, "Test Case '-[A b]' started")
	if len(run.Results) != 0 {
		t.Errorf("expected no results, got %d", len(run.Results))
	}
}

func TestParse_TerminalEventsWithoutOpenCase(t *testing.T) {
	// Terminal and diagnostic events without an open case are no-ops.
	run := parseLog(t, strings.Join([]string{
		"Test Case '-[FooTests testBar]' passed (0.01 seconds)",
		"Test Case '-[FooTests testBar]' failed (0.01 seconds)",
		"/p/a.swift:5: error: -[FooTests testBar] : XCTAssertEqual failed",
		"Test Case '-[FooTests testBar]' skipped",
	}, "\n"))
	if len(run.Results) != 0 {
		t.Errorf("expected no results, got %d", len(run.Results))
	}
}

func TestParse_RestartedCaseDiscardsOpenOne(t *testing.T) {
	run := parseLog(t, strings.Join([]string{
		"Test Case '-[FooTests testA]' started",
		"Test Case '-[FooTests testB]' started",
		"Test Case '-[FooTests testB]' passed (0.01 seconds)",
	}, "\n"))

	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
	if run.Results[0].Name != "testB" {
		t.Errorf("expected testB, got %s", run.Results[0].Name)
	}
}

func TestParse_NoiseLinesLeaveStateUnchanged(t *testing.T) {
	run := parseLog(t, strings.Join([]string{
		"Build settings from command line:",
		"Test Case '-[FooTests testBar]' started",
		"    some free-form diagnostic output",
		"Test Case '-[FooTests testBar]' passed (0.01 seconds)",
		"** TEST SUCCEEDED **",
	}, "\n"))

	if len(run.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(run.Results))
	}
}

func TestParse_BadDurationIsFatal(t *testing.T) {
	log := strings.Join([]string{
		"Test Case '-[FooTests testBar]' started",
		"Test Case '-[FooTests testBar]' passed (abc seconds)",
	}, "\n")
	if _, err := NewSwiftLogParser().Parse(strings.NewReader(log)); err == nil {
		t.Error("expected error for non-numeric duration")
	}
}

func TestParse_EndToEnd(t *testing.T) {
	run := parseLog(t, strings.Join([]string{
		"Test Suite 'Foo' started",
		"Test Case '-[Foo testA]' started",
		"Test Case '-[Foo testA]' passed (0.01 seconds)",
		"Test Case '-[Foo testB]' started",
		"/p/f.swift:10: error: -[Foo testB] : XCTAssertTrue failed",
		"Test Case '-[Foo testB]' failed (0.02 seconds)",
	}, "\n"))

	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}
	if run.Results[0].Status != domain.StatusPassed {
		t.Errorf("expected first case passed, got %s", run.Results[0].Status)
	}
	second := run.Results[1]
	if second.Status != domain.StatusFailed {
		t.Errorf("expected second case failed, got %s", second.Status)
	}
	if second.Message != "XCTAssertTrue failed at /p/f.swift:10" {
		t.Errorf("unexpected message: %q", second.Message)
	}
}
