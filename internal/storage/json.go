package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"swiftci/internal/domain"
)

// BuildRunOutput computes the run meta from finalized case results. Details
// holds only the failed cases; passed and skipped cases contribute to the
// counts alone.
func BuildRunOutput(results []domain.CaseResult, startedAt time.Time) *domain.RunOutput {
	var passed, failed, skipped int
	var duration float64
	suites := make(map[string]bool)
	var details []domain.CaseResult

	for _, result := range results {
		suites[result.Suite] = true
		duration += result.Seconds
		switch result.Status {
		case domain.StatusFailed:
			failed++
			details = append(details, result)
		case domain.StatusSkipped:
			skipped++
		default:
			passed++
		}
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalTests:      len(results),
			PassedTests:     passed,
			FailedTests:     failed,
			SkippedTests:    skipped,
			Suites:          len(suites),
			DurationSeconds: duration,
			Timestamp:       startedAt.Format(time.RFC3339),
		},
		Details: details,
	}
}

// Save writes run results to the configured JSON run file.
func (s *JSONStorage) Save(results []domain.CaseResult, startedAt time.Time) error {
	return s.SaveOutput(BuildRunOutput(results, startedAt))
}

// Load reads the last run results from the configured JSON run file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetRunPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse run file: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON run file
// (e.g. after marking failures as resolved in the viewer).
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run results: %w", err)
	}
	path := s.cfg.GetRunPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run results: %w", err)
	}
	return nil
}
