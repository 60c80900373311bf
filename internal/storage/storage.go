package storage

import (
	"time"

	"swiftci/internal/config"
	"swiftci/internal/domain"
)

// Storage persists and loads converted run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.CaseResult, startedAt time.Time) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-state updates).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores run results in a JSON file under the configured run path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's run JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
