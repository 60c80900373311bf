package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"swiftci/internal/domain"
)

// Defaults used when a failed case carries no diagnostic line.
const (
	defaultFailureType    = "TestFailure"
	defaultFailureMessage = "Test failed"
	skippedMessage        = "Test skipped"
)

// JUnitTestSuites is the root element of a JUnit XML document.
type JUnitTestSuites struct {
	XMLName   xml.Name         `xml:"testsuites"`
	Name      string           `xml:"name,attr"`
	Tests     int              `xml:"tests,attr"`
	Failures  int              `xml:"failures,attr"`
	Errors    int              `xml:"errors,attr"`
	Time      float64          `xml:"time,attr"`
	Timestamp string           `xml:"timestamp,attr"`
	Suites    []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite is a collection of test cases sharing a class name.
type JUnitTestSuite struct {
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Time      float64         `xml:"time,attr"`
	Timestamp string          `xml:"timestamp,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase is a single test case.
type JUnitTestCase struct {
	ClassName string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure contains the failure details of a test case.
type JUnitFailure struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

// JUnitSkipped marks a skipped test case.
type JUnitSkipped struct {
	Message string `xml:"message,attr"`
}

// Builder aggregates finalized case results into a JUnit XML document.
type Builder struct {
	name string
}

// NewBuilder creates a Builder; name becomes the testsuites root name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Build groups results by suite, preserving first-seen suite order and
// within-suite insertion order, and computes the per-suite and document
// aggregates. The run start time is rendered once and reused for the root
// and every suite.
func (b *Builder) Build(results []domain.CaseResult, startedAt time.Time) *JUnitTestSuites {
	timestamp := startedAt.Format(time.RFC3339)

	doc := &JUnitTestSuites{
		Name:      b.name,
		Tests:     len(results),
		Errors:    0,
		Timestamp: timestamp,
	}

	index := make(map[string]int)
	for _, result := range results {
		i, ok := index[result.Suite]
		if !ok {
			i = len(doc.Suites)
			index[result.Suite] = i
			doc.Suites = append(doc.Suites, JUnitTestSuite{
				Name:      result.Suite,
				Timestamp: timestamp,
			})
		}
		suite := &doc.Suites[i]

		testCase := JUnitTestCase{
			ClassName: result.Suite,
			Name:      result.Name,
			Time:      result.Seconds,
		}
		switch result.Status {
		case domain.StatusFailed:
			failure := &JUnitFailure{
				Type:    result.Kind,
				Message: result.Message,
				Content: result.Message,
			}
			if failure.Type == "" {
				failure.Type = defaultFailureType
			}
			if failure.Message == "" {
				failure.Message = defaultFailureMessage
			}
			testCase.Failure = failure
			suite.Failures++
			doc.Failures++
		case domain.StatusSkipped:
			testCase.Skipped = &JUnitSkipped{Message: skippedMessage}
		}

		suite.Tests++
		suite.Time += result.Seconds
		doc.Time += result.Seconds
		suite.TestCases = append(suite.TestCases, testCase)
	}

	return doc
}

// Write renders the document as indented XML, prefixed with the standard
// XML header.
func (b *Builder) Write(w io.Writer, doc *JUnitTestSuites) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	// Encoder output does not end with a newline.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}
