package parser

import (
	"io"
	"time"

	"swiftci/internal/domain"
)

// Run is the outcome of one parse pass over a test log.
type Run struct {
	Results   []domain.CaseResult // finalized cases, in log order
	StartedAt time.Time           // when the parse run began
}

// LogParser converts a test-runner console log into finalized case results.
type LogParser interface {
	Parse(r io.Reader) (*Run, error)
}
