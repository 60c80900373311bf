package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swiftci/internal/cli"
	"swiftci/internal/cli/commands"
	"swiftci/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "swiftci",
		Short:   "Swift CI report processor",
		Long:    `CI helpers for Swift projects: convert swift-test console logs to JUnit XML, and reformat SonarCloud and SwiftLint exports into readable reports.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
