package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/spiffcs/prreport/internal/format"
	"github.com/spiffcs/prreport/internal/triage"
)

// TableFormatter renders the report as a terminal table, one row per
// classified pull request in display order.
type TableFormatter struct{}

// hyperlink creates a clickable terminal hyperlink using OSC 8 when stdout
// is a terminal.
func hyperlink(text, url string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return fmt.Sprintf("\033]8;;%s\033\\%s\033]8;;\033\\", url, text)
}

// truncateToWidth truncates a string to fit maxWidth display columns,
// accounting for wide runes.
func truncateToWidth(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// padRight pads a string with spaces to the target display width.
func padRight(s string, targetWidth int) string {
	w := runewidth.StringWidth(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

func categoryColor(cat triage.Category) *color.Color {
	switch cat {
	case triage.CategoryHighPriority:
		return color.New(color.FgRed, color.Bold)
	case triage.CategoryNeedsProlificCommentersApproval, triage.CategoryHasCommentsToFix:
		return color.New(color.FgYellow)
	case triage.CategoryNeedsMerging:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgCyan)
	}
}

// Format outputs classified pull requests as a table.
func (f *TableFormatter) Format(report *triage.Report, w io.Writer) error {
	if len(report.PRs) == 0 {
		fmt.Fprintln(w, "No open pull requests found.")
		return nil
	}

	const (
		colCategory  = 35
		colNumber    = 6
		colTitle     = 44
		colApprovals = 9
		colComments  = 8
	)

	fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
		padRight("Category", colCategory),
		padRight("PR", colNumber),
		padRight("Title", colTitle),
		padRight("Approvals", colApprovals),
		padRight("Comments", colComments),
		"Age")
	fmt.Fprintln(w, strings.Repeat("-", colCategory+colNumber+colTitle+colApprovals+colComments+14))

	for _, t := range report.PRs {
		if !t.Classified {
			continue
		}

		cat := categoryColor(t.Category).Sprint(padRight(t.Category.Display(), colCategory))
		number := padRight(fmt.Sprintf("#%d", t.PR.Number), colNumber)
		title := padRight(truncateToWidth(t.PR.Title, colTitle), colTitle)

		fmt.Fprintf(w, "%s  %s  %s  %s  %s  %s\n",
			cat,
			hyperlink(number, t.PR.HTMLURL),
			title,
			padRight(fmt.Sprintf("%d", t.Facts.ApprovalCount()), colApprovals),
			padRight(fmt.Sprintf("%d", t.Facts.TotalComments), colComments),
			format.Age(time.Since(t.PR.CreatedAt)))
	}

	return nil
}
