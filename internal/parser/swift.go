package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"swiftci/internal/domain"
)

// SwiftLogParser parses xcodebuild/swift-test console output line by line.
// It keeps an implicit cursor over the currently open suite and test case;
// cases are finalized only by an explicit passed/failed/skipped event.
type SwiftLogParser struct{}

// NewSwiftLogParser creates a new SwiftLogParser
func NewSwiftLogParser() *SwiftLogParser {
	return &SwiftLogParser{}
}

// state is the mutable cursor of a single parse run. A new state is created
// per run and discarded afterwards; it is never shared.
type state struct {
	currentSuite string
	current      *domain.CaseResult
	results      []domain.CaseResult
}

// Parse consumes the log one line at a time and returns the finalized case
// results in log order. A case still open at end of input is dropped.
func (p *SwiftLogParser) Parse(r io.Reader) (*Run, error) {
	run := &Run{StartedAt: time.Now()}
	st := &state{}

	scanner := bufio.NewScanner(r)
	// Diagnostic lines can be long (multi-KB assertion dumps).
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		event, err := Classify(line)
		if err != nil {
			return nil, err
		}
		if event != nil {
			st.apply(event)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	run.Results = st.results
	return run, nil
}

// apply advances the cursor. Events that need an open case are no-ops when
// none is open; a suite start never closes a still-open case.
func (s *state) apply(event Event) {
	switch ev := event.(type) {
	case SuiteStarted:
		s.currentSuite = ev.Name
	case CaseStarted:
		// An already-open case is discarded unfinalized.
		s.current = &domain.CaseResult{
			Suite:  ev.ClassName,
			Name:   ev.MethodName,
			Status: domain.StatusPassed,
		}
	case CasePassed:
		if s.current == nil {
			return
		}
		s.current.Seconds = ev.Seconds
		s.finalize()
	case CaseFailed:
		if s.current == nil {
			return
		}
		s.current.Seconds = ev.Seconds
		s.current.Status = domain.StatusFailed
		s.finalize()
	case ErrorDetail:
		if s.current == nil {
			return
		}
		// Only the most recent detail line before the terminal event is kept.
		s.current.Kind = "AssertionFailure"
		s.current.Message = fmt.Sprintf("%s at %s:%s", ev.Detail, ev.File, ev.Line)
	case CaseSkipped:
		if s.current == nil {
			return
		}
		s.current.Status = domain.StatusSkipped
		s.finalize()
	}
}

func (s *state) finalize() {
	s.results = append(s.results, *s.current)
	s.current = nil
}
