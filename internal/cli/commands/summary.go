package commands

import (
	"os"

	"github.com/spf13/cobra"

	"swiftci/internal/config"
	"swiftci/internal/sonar"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	config *config.Config
	writer *sonar.SummaryWriter
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(cfg *config.Config, writer *sonar.SummaryWriter) *SummaryCommand {
	return &SummaryCommand{
		config: cfg,
		writer: writer,
	}
}

// Execute runs the command
func (sc *SummaryCommand) Execute(cmd *cobra.Command, args []string) error {
	export, err := sonar.LoadIssues(sc.config.GetIssuesPath())
	if err != nil {
		return err
	}
	return sc.writer.Write(os.Stdout, export.Issues)
}
