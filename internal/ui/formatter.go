package ui

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"kcisum/internal/render"
)

// Formatter formats and displays console output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out (stdout when nil)
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = os.Stdout
	}
	return &Formatter{out: out}
}

// PrintSummaryStats prints what was written for a generated summary
func (f *Formatter) PrintSummaryStats(summary *render.Summary, outputPath string) {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, color.CyanString("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.out, color.CyanString("║                      Boot Failure Summary                     ║"))
	fmt.Fprintln(f.out, color.CyanString("╚═══════════════════════════════════════════════════════════════╝"))
	fmt.Fprintln(f.out)

	w := tabwriter.NewWriter(f.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Records fetched\t%d\n", summary.Fetched)
	fmt.Fprintf(w, "Recent failures\t%s\n", color.RedString("%d", len(summary.Rows)))
	fmt.Fprintf(w, "Since\t%s\n", summary.Cutoff.Format(time.RFC3339))
	fmt.Fprintf(w, "Report\t%s\n", outputPath)
	w.Flush()

	fmt.Fprintln(f.out)
	if len(summary.Rows) == 0 {
		fmt.Fprintln(f.out, color.GreenString("✓ No boot failures since %s", summary.Cutoff.Format(time.RFC3339)))
		return
	}
	fmt.Fprintln(f.out, color.RedString("✗ %d boot failure(s) in the report", len(summary.Rows)))
}

// PrintFailureList prints the summary rows as a console table
func (f *Formatter) PrintFailureList(summary *render.Summary) {
	if len(summary.Rows) == 0 {
		fmt.Fprintln(f.out, color.GreenString("✓ No boot failures since %s", summary.Cutoff.Format(time.RFC3339)))
		return
	}

	fmt.Fprintln(f.out, color.GreenString("Found %d boot failure(s) since %s:", len(summary.Rows), summary.Cutoff.Format(time.RFC3339)))
	fmt.Fprintln(f.out)

	w := tabwriter.NewWriter(f.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BOARD\tTREE\tVERSION\tCONFIG\tSTATUS\tPUBLISHED")
	for i, row := range summary.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Board, row.Tree, row.Version, row.Config, row.Status, summary.Records[i].Published)
	}
	w.Flush()
}

// Warn prints a warning line
func (f *Formatter) Warn(format string, args ...interface{}) {
	fmt.Fprintln(f.out, color.YellowString(format, args...))
}

// Success prints a success line
func (f *Formatter) Success(format string, args ...interface{}) {
	fmt.Fprintln(f.out, color.GreenString("✓ "+format, args...))
}
