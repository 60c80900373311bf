package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// Event is one recognized log line. Lines that match no pattern produce no
// event and leave the parser state untouched.
type Event interface {
	isEvent()
}

// SuiteStarted marks the beginning of a test suite.
type SuiteStarted struct {
	Name string
}

// CaseStarted marks the beginning of a test case.
type CaseStarted struct {
	ClassName  string
	MethodName string
}

// CasePassed finalizes the current case as passed.
type CasePassed struct {
	Seconds float64
}

// CaseFailed finalizes the current case as failed.
type CaseFailed struct {
	Seconds float64
}

// ErrorDetail carries an assertion failure diagnostic for the current case.
type ErrorDetail struct {
	File   string
	Line   string
	Detail string
}

// CaseSkipped finalizes the current case as skipped.
type CaseSkipped struct{}

func (SuiteStarted) isEvent() {}
func (CaseStarted) isEvent()  {}
func (CasePassed) isEvent()   {}
func (CaseFailed) isEvent()   {}
func (ErrorDetail) isEvent()  {}
func (CaseSkipped) isEvent()  {}

var (
	suiteStartedRe = regexp.MustCompile(`^Test Suite '(.+)' started`)
	caseStartedRe  = regexp.MustCompile(`^Test Case '-\[(.+) (.+)\]' started`)
	casePassedRe   = regexp.MustCompile(`^Test Case .+ passed \((.+) seconds\)`)
	caseFailedRe   = regexp.MustCompile(`^Test Case .+ failed \((.+) seconds\)`)
	errorDetailRe  = regexp.MustCompile(`^(.+):(\d+): error: (.+) : (.+)`)
	caseSkippedRe  = regexp.MustCompile(`^Test .+ skipped`)
)

// Classify matches a trimmed log line against the known patterns in priority
// order; the first pattern that matches wins. Returns (nil, nil) for lines
// that match nothing. A passed/failed line with a non-numeric duration is a
// parse error: duration parsing has no fallback.
func Classify(line string) (Event, error) {
	if m := suiteStartedRe.FindStringSubmatch(line); m != nil {
		return SuiteStarted{Name: m[1]}, nil
	}
	if m := caseStartedRe.FindStringSubmatch(line); m != nil {
		return CaseStarted{ClassName: m[1], MethodName: m[2]}, nil
	}
	if m := casePassedRe.FindStringSubmatch(line); m != nil {
		seconds, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse duration %q: %w", m[1], err)
		}
		return CasePassed{Seconds: seconds}, nil
	}
	if m := caseFailedRe.FindStringSubmatch(line); m != nil {
		seconds, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse duration %q: %w", m[1], err)
		}
		return CaseFailed{Seconds: seconds}, nil
	}
	if m := errorDetailRe.FindStringSubmatch(line); m != nil {
		return ErrorDetail{File: m[1], Line: m[2], Detail: m[4]}, nil
	}
	if caseSkippedRe.MatchString(line) {
		return CaseSkipped{}, nil
	}
	return nil, nil
}
