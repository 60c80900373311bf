package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"

	"swiftci/internal/config"
	"swiftci/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunStats reads and displays run statistics from the JSON run file
func (f *Formatter) PrintRunStats() error {
	runPath := f.config.GetRunPath()

	// Read JSON file
	data, err := os.ReadFile(runPath)
	if err != nil {
		return fmt.Errorf("failed to read run file: %w", err)
	}

	// Parse JSON
	var run domain.RunOutput
	if err := json.Unmarshal(data, &run); err != nil {
		return fmt.Errorf("failed to parse run file: %w", err)
	}

	meta := run.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Test Run Statistics                      ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	// Total Tests
	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Passed Tests
	fmt.Printf("│ %-31s │ ", "Passed Tests")
	color.Green("%-27d │\n", meta.PassedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Failed Tests
	fmt.Printf("│ %-31s │ ", "Failed Tests")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Skipped Tests
	fmt.Printf("│ %-31s │ ", "Skipped Tests")
	color.Yellow("%-27d │\n", meta.SkippedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Suites
	fmt.Printf("│ %-31s │ ", "Suites")
	color.White("%-27d │\n", meta.Suites)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Duration
	fmt.Printf("│ %-31s │ ", "Duration")
	durationStr := fmt.Sprintf("%.2fs", meta.DurationSeconds)
	color.White("%-27s │\n", durationStr)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Timestamp
	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed!")
	} else {
		color.Red("✗ %d test(s) failed across the run", meta.FailedTests)
		fmt.Println()
		f.printFailedCasesTree(run.Details)
	}

	return nil
}

// printFailedCasesTree prints failed cases grouped under their suites
func (f *Formatter) printFailedCasesTree(failures []domain.CaseResult) {
	if len(failures) == 0 {
		return
	}

	// Group failures by suite
	suiteMap := make(map[string][]domain.CaseResult)
	for _, failure := range failures {
		suiteMap[failure.Suite] = append(suiteMap[failure.Suite], failure)
	}

	// Sort suites for consistent output
	var suites []string
	for suite := range suiteMap {
		suites = append(suites, suite)
	}
	sort.Strings(suites)

	for _, suite := range suites {
		color.Cyan("%s", suite)
		cases := suiteMap[suite]
		for _, failure := range cases {
			color.Red("  |_%s (%.3fs)", failure.Name, failure.Seconds)
			if failure.Message != "" {
				color.Yellow("       %s", failure.Message)
			}
		}
	}
}
