// Package output emits the result payload and a human summary.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/nbenliogludev/gp-intake-agent/internal/intake"
)

// WriteJSON writes the result array as indented JSON.
func WriteJSON(w io.Writer, results []intake.IntakeResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}

// WriteFile writes the same JSON payload to path.
func WriteFile(path string, results []intake.IntakeResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, results); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// SummaryTable renders a per-practice status table, meant for stderr so it
// never mixes with the JSON on stdout.
func SummaryTable(w io.Writer, results []intake.IntakeResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Practice", "Status", "Contact Email", "Checked At"})

	for _, r := range results {
		email := "-"
		if r.ContactEmail != nil {
			email = *r.ContactEmail
		}
		t.AppendRow(table.Row{r.Practice, string(r.Status), email, r.CheckedAt.Format("2006-01-02 15:04:05")})
	}
	t.Render()
}
