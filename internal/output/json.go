package output

import (
	"encoding/json"
	"io"

	"github.com/spiffcs/prreport/internal/triage"
)

// JSONFormatter encodes the full triage report, including the unclassified
// fall-through pull requests that the markdown report omits.
type JSONFormatter struct {
	Pretty bool
}

// Format writes the report as JSON.
func (f *JSONFormatter) Format(report *triage.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
