package commands

import (
	"github.com/spf13/cobra"

	"swiftci/internal/cli"
	"swiftci/internal/config"
	"swiftci/internal/history"
	"swiftci/internal/parser"
	"swiftci/internal/sonar"
	"swiftci/internal/storage"
	"swiftci/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	JUnit    *JUnitCommand
	Issues   *IssuesCommand
	Summary  *SummaryCommand
	Lint     *LintCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	logParser := parser.NewSwiftLogParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	recorder := history.NewRecorder(cfg)
	filter := sonar.NewFilter()
	summaryWriter := sonar.NewSummaryWriter()
	lintWriter := sonar.NewLintWriter()
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		JUnit:    NewJUnitCommand(cfg, logParser, jsonStorage, formatter, recorder),
		Issues:   NewIssuesCommand(cfg, filter),
		Summary:  NewSummaryCommand(cfg, summaryWriter),
		Lint:     NewLintCommand(cfg, lintWriter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// JUnit command
	junitCmd := &cobra.Command{
		Use:     "junit",
		Short:   "Convert a Swift test log to JUnit XML",
		Long:    "Read a swift-test/xcodebuild console log from stdin and write a JUnit XML report",
		RunE:    c.JUnit.Execute,
		PreRunE: applyFlags,
	}
	junitCmd.Flags().StringVarP(&flags.Output, "output", "o", config.DefaultOutputXMLFile, "Output file path")
	junitCmd.Flags().StringVarP(&flags.SuiteName, "name", "n", config.DefaultSuitesName, "Name of the testsuites root element")
	junitCmd.Flags().BoolVar(&flags.Record, "record", false, "Record the run in the MySQL history table (connection from .env)")
	rootCmd.AddCommand(junitCmd)

	// Issues command
	issuesCmd := &cobra.Command{
		Use:     "issues",
		Short:   "Write a findings report from a SonarCloud issue export",
		Long:    "Read a SonarCloud issue export JSON and write a plain-text findings report grouped by severity",
		RunE:    c.Issues.Execute,
		PreRunE: applyFlags,
	}
	issuesCmd.Flags().StringVarP(&flags.SonarDir, "dir", "d", config.DefaultSonarDir, "Directory holding SonarCloud exports")
	issuesCmd.Flags().StringVarP(&flags.ProjectKey, "project", "p", "", "SonarCloud project key (defaults to SONAR_PROJECT_KEY)")
	issuesCmd.Flags().StringVarP(&flags.Severity, "severity", "s", "", "Only include issues with this severity (e.g. MAJOR)")
	issuesCmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Only include issues with this type (e.g. CODE_SMELL)")
	issuesCmd.Flags().StringVarP(&flags.Rule, "rule", "r", "", "Only include issues whose rule matches the pattern (supports wildcards, e.g. 'swift:*')")
	rootCmd.AddCommand(issuesCmd)

	// Summary command
	summaryCmd := &cobra.Command{
		Use:     "summary",
		Short:   "Print issue counts by type and severity",
		Long:    "Read a SonarCloud issue export JSON and print counts grouped by type and by severity",
		RunE:    c.Summary.Execute,
		PreRunE: applyFlags,
	}
	summaryCmd.Flags().StringVarP(&flags.SonarDir, "dir", "d", config.DefaultSonarDir, "Directory holding SonarCloud exports")
	rootCmd.AddCommand(summaryCmd)

	// Lint command
	lintCmd := &cobra.Command{
		Use:     "lint",
		Short:   "Print a SwiftLint report as a SonarCloud-style listing",
		Long:    "Read a SwiftLint JSON report and print a categorized console listing capped at 50 entries",
		RunE:    c.Lint.Execute,
		PreRunE: applyFlags,
	}
	lintCmd.Flags().StringVarP(&flags.SonarDir, "dir", "d", config.DefaultSonarDir, "Directory holding SwiftLint exports")
	rootCmd.AddCommand(lintCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last converted run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
