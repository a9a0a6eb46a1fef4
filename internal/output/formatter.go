// Package output renders triage reports in markdown, JSON, or table form.
package output

import (
	"fmt"
	"io"

	"github.com/spiffcs/prreport/internal/triage"
)

// Format represents the output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatTable    Format = "table"
)

// Formatter defines the interface for report renderers. Renderers consume
// the classifier's output; no classification logic lives here.
type Formatter interface {
	Format(report *triage.Report, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format.
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatMarkdown, "":
		return &MarkdownFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatTable:
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (use markdown, json, or table)", format)
	}
}
