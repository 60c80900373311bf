package commands

import (
	"os"

	"github.com/spf13/cobra"

	"swiftci/internal/config"
	"swiftci/internal/sonar"
)

// LintCommand handles the lint command
type LintCommand struct {
	config *config.Config
	writer *sonar.LintWriter
}

// NewLintCommand creates a new LintCommand
func NewLintCommand(cfg *config.Config, writer *sonar.LintWriter) *LintCommand {
	return &LintCommand{
		config: cfg,
		writer: writer,
	}
}

// Execute runs the command
func (lc *LintCommand) Execute(cmd *cobra.Command, args []string) error {
	issues, err := sonar.LoadLint(lc.config.GetLintPath())
	if err != nil {
		return err
	}
	return lc.writer.Write(os.Stdout, issues)
}
