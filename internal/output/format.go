// Package output provides formatters for CLI and screen output.
package output

import (
	"fmt"
	"io"
	"strings"

	"itasks/internal/task"
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {TITLE}\n" (4-wide right-aligned number, two spaces, title)
func FormatTask(w io.Writer, num int, t task.Task) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(t.Title))
}

// FormatTaskDetail formats all fields of a task, one per line.
func FormatTaskDetail(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "id:          %s\n", t.ID)
	fmt.Fprintf(w, "title:       %s\n", normalizeText(t.Title))
	fmt.Fprintf(w, "description: %s\n", normalizeText(t.Description))
}

// FormatFieldErrors writes one "error: <field>: <message>" line per error.
func FormatFieldErrors(w io.Writer, errs []task.FieldError) {
	for _, e := range errs {
		fmt.Fprintf(w, "error: %s: %s\n", e.Field, e.Message)
	}
}

// normalizeText normalizes a field for single-line display.
// - Empty or whitespace-only values become "(untitled)"
// - Newlines and tabs are replaced with spaces
func normalizeText(s string) string {
	s = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(s)
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
