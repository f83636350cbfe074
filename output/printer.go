package output

import (
	"fmt"
	"io"
)

// Printer writes results in the selected format
type Printer struct {
	w       io.Writer
	format  Format
	console *ConsoleFormatter
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, format Format, showDetails bool) *Printer {
	return &Printer{
		w:       w,
		format:  format,
		console: NewConsoleFormatter(showDetails),
	}
}

// Format returns the selected output format
func (p *Printer) Format() Format {
	return p.format
}

// Print writes v as JSON or YAML, or the console rendering for table output
func (p *Printer) Print(v any, render func(*ConsoleFormatter) string) error {
	switch p.format {
	case FormatJSON:
		return WriteJSON(p.w, v)
	case FormatYAML:
		return WriteYAML(p.w, v)
	default:
		_, err := fmt.Fprintln(p.w, render(p.console))
		return err
	}
}
