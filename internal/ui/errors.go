package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"swiftci/internal/config"
	"swiftci/internal/domain"
	"swiftci/internal/storage"
)

// FailureViewer displays failed test cases in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the failed cases of a run in an interactive TUI
func (fv *FailureViewer) View(run *domain.RunOutput) error {
	if len(run.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	// Track resolved test cases (by index) - loaded from the run file
	resolved := make(map[int]bool)
	for i, failure := range run.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	// Function to save resolved status back to the run file
	saveResolvedStatus := func() error {
		for i := range run.Details {
			run.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(run)
	}

	// Create the application
	app := tview.NewApplication()

	// Create list for failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	// Function to get formatted text for a list item
	getListItemText := func(index int) string {
		failure := run.Details[index]
		testName := failure.Name
		if testName == "" {
			testName = fmt.Sprintf("Test %d", index+1)
		}

		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, testName)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, testName)
	}

	// Function to update list item display with resolved status
	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	// Add failed tests to the list with numbers and colors
	for i := range run.Details {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows suite and test case info)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for failure details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// Create simple flex layout: list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	// Count unresolved tests
	countUnresolved := func() int {
		count := 0
		for i := range run.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	// Create header text view (so we can update it)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	// Function to update header
	updateHeader := func() {
		unresolved := countUnresolved()
		headerText := fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ", len(run.Details), unresolved)
		headerView.SetText(headerText)
	}

	// Set initial header
	updateHeader()

	// Update details when selection changes
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(run.Details) {
			failure := run.Details[index]

			// Update stats header
			statsView.SetText(fv.formatFailureStats(failure, index+1))

			// Update failure details
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

	// Set up keyboard handlers for list
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(run.Details) {
					resolved[index] = !resolved[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveResolvedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	// Update details when list selection changes
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// Set initial details
	updateDetails()

	// Create main layout with title
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(
			tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
				return x, y, width, height
			}),
			1, 0, false,
		).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats a failed case for display using tview color tags ([red], [cyan], etc.)
func (fv *FailureViewer) formatFailureDetails(failure domain.CaseResult) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	// Test name
	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", failure.Name)

	// Enclosing suite
	fmt.Fprintf(w, "[cyan]Suite: %s[white]\n", failure.Suite)
	fmt.Fprintf(w, "[yellow]Duration: %.3fs[white]\n\n", failure.Seconds)

	// Failure kind
	if failure.Kind != "" {
		fmt.Fprintf(w, "[yellow]Kind:[white] %s\n\n", failure.Kind)
	}

	// Failure message
	if failure.Message != "" {
		fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n", failure.Message)
	} else {
		fmt.Fprintf(w, "[gray]No diagnostic line was captured for this failure.[white]\n")
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats formats the stats header for a failed case
func (fv *FailureViewer) formatFailureStats(failure domain.CaseResult, number int) string {
	var builder strings.Builder

	suite := failure.Suite
	if suite == "" {
		suite = "Unknown suite"
	}

	testCase := failure.Name
	if testCase == "" {
		testCase = fmt.Sprintf("Test %d", number)
	}

	builder.WriteString(fmt.Sprintf("[cyan]case:[white] [yellow]%s[white].[yellow]%s[white]", suite, testCase))
	builder.WriteString("\n")

	return builder.String()
}
