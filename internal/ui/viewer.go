package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"kcisum/internal/domain"
	"kcisum/internal/render"
)

// Viewer displays a failure summary interactively
type Viewer interface {
	View(summary *render.Summary) error
}

// FailureViewer displays recent boot failures in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View displays the summary rows in a list with details on the right
func (fv *FailureViewer) View(summary *render.Summary) error {
	if len(summary.Rows) == 0 {
		color.Green("✓ No boot failures since %s", summary.Cutoff.Format(time.RFC3339))
		return nil
	}

	app := tview.NewApplication()

	// Create list for failed boots (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, row := range summary.Rows {
		list.AddItem(listItemText(i, row), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s: %d failure(s) since %s | ↑↓ to navigate, → to view details, ← to go back, q to exit ",
			tview.Escape(summary.Title), len(summary.Rows), summary.Cutoff.Format(time.RFC3339)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(summary.Rows) {
			statsView.SetText(formatFailureStats(summary.Rows[index]))
			detailsView.SetText(formatFailureDetails(summary.Rows[index], summary.Records[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

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

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func listItemText(index int, row render.Row) string {
	return fmt.Sprintf("[yellow]%d.[white] %s [gray]%s", index+1, tview.Escape(row.Board), tview.Escape(row.Tree))
}

// formatFailureStats formats the one-line header above the details
func formatFailureStats(row render.Row) string {
	return fmt.Sprintf("[cyan]board:[white] [yellow]%s[white] [cyan]tree:[white] [yellow]%s[white]\n",
		tview.Escape(row.Board), tview.Escape(row.Tree))
}

// formatFailureDetails formats a failure using tview color tags
func formatFailureDetails(row render.Row, rec domain.Record) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ %s[white]\n\n", tview.Escape(row.Status))
	fmt.Fprintf(w, "[cyan]Board:[white]\t%s\n", tview.Escape(row.Board))
	fmt.Fprintf(w, "[cyan]KernelCI board:[white]\t%s\n", tview.Escape(rec.KCIBoard))
	fmt.Fprintf(w, "[cyan]Tree:[white]\t%s\n", tview.Escape(row.Tree))
	fmt.Fprintf(w, "[cyan]Version:[white]\t%s\n", tview.Escape(row.Version))
	fmt.Fprintf(w, "[cyan]Arch:[white]\t%s\n", tview.Escape(rec.Arch))
	fmt.Fprintf(w, "[cyan]Config:[white]\t%s\n", tview.Escape(row.Config))
	fmt.Fprintf(w, "[cyan]Lab:[white]\t%s\n", tview.Escape(rec.Lab))
	fmt.Fprintf(w, "[cyan]Published:[white]\t%s\n\n", tview.Escape(rec.Published))

	fmt.Fprintf(w, "[yellow]Boot log:[white]\n%s\n\n", tview.Escape(row.BootLog))
	fmt.Fprintf(w, "[yellow]Link:[white]\n%s\n", tview.Escape(row.Link))

	w.Flush()
	return builder.String()
}
