package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"swiftci/internal/config"
	"swiftci/internal/history"
	"swiftci/internal/parser"
	"swiftci/internal/report"
	"swiftci/internal/storage"
	"swiftci/internal/ui"
)

// JUnitCommand handles the junit command
type JUnitCommand struct {
	config    *config.Config
	parser    parser.LogParser
	storage   storage.Storage
	formatter *ui.Formatter
	recorder  *history.Recorder
}

// NewJUnitCommand creates a new JUnitCommand
func NewJUnitCommand(
	cfg *config.Config,
	logParser parser.LogParser,
	st storage.Storage,
	formatter *ui.Formatter,
	recorder *history.Recorder,
) *JUnitCommand {
	return &JUnitCommand{
		config:    cfg,
		parser:    logParser,
		storage:   st,
		formatter: formatter,
		recorder:  recorder,
	}
}

// Execute runs the command
func (jc *JUnitCommand) Execute(cmd *cobra.Command, args []string) error {
	run, err := jc.parser.Parse(os.Stdin)
	if err != nil {
		return err
	}

	builder := report.NewBuilder(jc.config.GetSuitesName())
	doc := builder.Build(run.Results, run.StartedAt)

	outPath := jc.config.GetOutputXMLPath()
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer out.Close()

	if err := builder.Write(out, doc); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	// Save run results so the failures viewer can pick them up
	if err := jc.storage.Save(run.Results, run.StartedAt); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	if jc.config.Flags.Record {
		meta := storage.BuildRunOutput(run.Results, run.StartedAt).Meta
		if err := jc.recorder.Record(meta); err != nil {
			return fmt.Errorf("failed to record run history: %w", err)
		}
	}

	color.Green("JUnit XML written to %s", outPath)

	// Print stats
	return jc.formatter.PrintRunStats()
}
