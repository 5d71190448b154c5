package diagnostic

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var severityColors = map[DiagnosticSeverity]*color.Color{
	DiagnosticError:   color.New(color.FgRed, color.Bold),
	DiagnosticWarning: color.New(color.FgYellow),
	DiagnosticInfo:    color.New(color.FgCyan),
}

// Print writes every diagnostic on its own line, prefixed by its severity.
// Coloring follows color.NoColor.
func Print(w io.Writer, source string, d *Diagnostics) error {
	for _, diag := range d.All() {
		label := severityColors[diag.Severity].Sprint(diag.Severity.String())

		prefix := ""
		if source != "" {
			prefix = source + ": "
		}

		if _, err := fmt.Fprintf(w, "%s%s: %s\n", prefix, label, diag.String()); err != nil {
			return err
		}
	}

	return nil
}
