// Package output provides output formatting for quote results.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"cover-quote/core/determinism"
	"cover-quote/core/quote"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Options controls how prices are displayed
type Options struct {
	// Precision is the number of decimal places shown for prices
	Precision int32

	// ShowCheapest marks the cheapest option of every cover in the cli table
	ShowCheapest bool
}

// Result contains the complete quote output
type Result struct {
	// RequestID identifies the request
	RequestID string `json:"request_id"`

	// RiskScore is the score the request was priced with
	RiskScore float64 `json:"risk_score"`

	// RiskQuotient is the normalized score shared by every price
	RiskQuotient float64 `json:"risk_quotient"`

	// Covers maps cover identifiers to their priced options
	Covers quote.Result `json:"-"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// CoverIDs returns the cover identifiers in sorted order
func (r *Result) CoverIDs() []string {
	return determinism.SortedKeys(r.Covers)
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the quote was generated
	Timestamp string `json:"timestamp" yaml:"timestamp"`

	// Fingerprint identifies the request inputs; equal requests share it
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`

	// Duration is how long generation took
	Duration string `json:"duration" yaml:"duration"`

	// Version is the tool version
	Version string `json:"version" yaml:"version"`
}

// CoverKind classifies a cover identifier
func CoverKind(id string) string {
	switch {
	case strings.HasPrefix(id, quote.BundleIdentifier):
		return "bundle"
	case strings.HasPrefix(id, quote.NamedItemIdentifier):
		return "named_item"
	default:
		return "unknown"
	}
}

// displayPrice rounds a price for display only
func displayPrice(price float64, precision int32) decimal.Decimal {
	return decimal.NewFromFloat(price).Round(precision)
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the cli, json and yaml formatters
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(&CLIFormatter{opts: opts})
	_ = r.Register(&JSONFormatter{opts: opts})
	_ = r.Register(&YAMLFormatter{opts: opts})
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) error {
	if _, exists := r.formatters[formatter.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", formatter.Format())
	}
	r.formatters[formatter.Format()] = formatter
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// GetAll returns all registered formatters ordered by format name
func (r *Registry) GetAll() []Formatter {
	all := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Format() < all[j].Format() })
	return all
}

// NewFormatter returns the formatter for format
func NewFormatter(format Format, opts Options) (Formatter, error) {
	f, ok := NewRegistry(opts).GetFormatter(format)
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (cli, json, yaml)", format)
	}
	return f, nil
}
