package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"swiftci/internal/config"
	"swiftci/internal/sonar"
	"swiftci/internal/ui"
)

// IssuesCommand handles the issues command
type IssuesCommand struct {
	config *config.Config
	filter *sonar.Filter
}

// NewIssuesCommand creates a new IssuesCommand
func NewIssuesCommand(cfg *config.Config, filter *sonar.Filter) *IssuesCommand {
	return &IssuesCommand{
		config: cfg,
		filter: filter,
	}
}

// Execute runs the command
func (ic *IssuesCommand) Execute(cmd *cobra.Command, args []string) error {
	export, err := sonar.LoadIssues(ic.config.GetIssuesPath())
	if err != nil {
		return err
	}

	issues := export.Issues
	issues = ic.filter.BySeverity(issues, ic.config.Flags.Severity)
	issues = ic.filter.ByType(issues, ic.config.Flags.Type)
	issues = ic.filter.ByRule(issues, ic.config.Flags.Rule)

	findingsPath := ic.config.GetFindingsPath()
	out, err := os.Create(findingsPath)
	if err != nil {
		return fmt.Errorf("open findings file: %w", err)
	}
	defer out.Close()

	writer := sonar.NewFindingsWriter(ic.config.GetProjectKey())
	writer.SetProgress(ui.NewProgressBar(len(issues), "Processing issues"))

	if err := writer.Write(out, issues, time.Now()); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close findings file: %w", err)
	}

	color.Green("✅ Successfully processed %d issues", len(issues))
	return nil
}
