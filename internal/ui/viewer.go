package ui

import "swiftci/internal/domain"

// Viewer displays run results in an interactive TUI
type Viewer interface {
	View(run *domain.RunOutput) error
}
