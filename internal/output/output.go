// Package output renders fetched records for the terminal.
//
// Every record is printed one field per line with a fixed label. Nothing here
// touches the network; formatters receive decoded records and write to an
// io.Writer so commands and tests choose the destination.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// DefaultTxLimit is how many embedded transactions are listed before the
// "…and N more" summary line.
const DefaultTxLimit = 5

const rule = "═══════════════════════════════════════════════════════"

var (
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// Formatter writes formatted output to a writer.
type Formatter interface {
	Format(w io.Writer) error
}

// DisableColors turns off color output (for non-TTY output and tests).
func DisableColors() {
	color.NoColor = true
}

// IsTerminal returns true if stdout is a terminal.
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// RenderRaw echoes a response body, pretty-printed when it is valid JSON.
func RenderRaw(w io.Writer, body []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err == nil {
		fmt.Fprintln(w, pretty.String())
		return
	}
	fmt.Fprintln(w, string(body))
}

// RenderFailure prints the single failure line for a fetch, e.g.
// "Failed to fetch block details: HTTP 404 Not Found".
func RenderFailure(w io.Writer, record string, err error) {
	fmt.Fprintf(w, "%s to fetch %s details: %v\n", red("Failed"), record, err)
}

// field writes "  Label:  value" with the label padded to a fixed column.
func field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s %v\n", cyan(fmt.Sprintf("%-15s", label+":")), value)
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, bold(title))
	fmt.Fprintln(w, rule)
}

// truncate returns at most limit items and how many were left out.
// A limit <= 0 keeps everything.
func truncate[T any](items []T, limit int) ([]T, int) {
	if limit <= 0 || len(items) <= limit {
		return items, 0
	}
	return items[:limit], len(items) - limit
}

func writeList(w io.Writer, lines []string, more int) {
	for _, line := range lines {
		fmt.Fprintf(w, "    %s\n", line)
	}
	if more > 0 {
		fmt.Fprintf(w, "    %s\n", dim(fmt.Sprintf("…and %d more", more)))
	}
}

func newTable(w io.Writer, columns ...interface{}) table.Table {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	return table.New(columns...).
		WithHeaderFormatter(headerFmt).
		WithWriter(w).
		WithPadding(2)
}

func yesNo(b bool) string {
	if b {
		return green("yes")
	}
	return "no"
}

func shorten(s string, width int) string {
	if len(s) <= width || width < 8 {
		return s
	}
	half := (width - 3) / 2
	return s[:half] + "..." + s[len(s)-half:]
}
