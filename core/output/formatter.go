// Package output provides output formatting interfaces.
// This package produces human and machine-readable quote renderings.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"shipcost/core/types"
	"shipcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, quote *types.Quote) error
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[Format]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return errors.Newf(errors.TypeInput, "formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns a formatter for a format type
func (r *Registry) Get(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[format]
	return f, ok
}

// Global default registry with the stock formatters
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	_ = r.Register(&CLIFormatter{ShowDetails: true})
	_ = r.Register(&JSONFormatter{})
	return r
}()

// Get returns a formatter from the default registry
func Get(format Format) (Formatter, bool) {
	return defaultRegistry.Get(format)
}

// CLIFormatter renders a quote as a human-readable table
type CLIFormatter struct {
	// ShowDetails includes per-package lines
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the quote summary table
func (f *CLIFormatter) Render(w io.Writer, quote *types.Quote) error {
	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                    SHIPPING QUOTE SUMMARY                    │")
	fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────┤")

	if f.ShowDetails {
		for _, line := range quote.Lines {
			label := fmt.Sprintf("%s (%s kg @ %s/kg)",
				line.Mode, line.WeightKg.String(), line.RatePerKg.String())
			fmt.Fprintf(w, "│ %-40s %19s │\n",
				truncate(label, 40),
				fmt.Sprintf("%s %s", line.Amount.String(), line.Currency))
		}
		fmt.Fprintln(w, "├──────────────────────────────────────────────────────────────┤")
	}

	fmt.Fprintf(w, "│ %-40s %19s │\n",
		"TOTAL",
		fmt.Sprintf("%s %s", quote.Total.String(), quote.Currency))
	fmt.Fprintln(w, "└──────────────────────────────────────────────────────────────┘")

	return nil
}

// JSONFormatter renders a quote as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the quote as JSON
func (f *JSONFormatter) Render(w io.Writer, quote *types.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(quote)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
