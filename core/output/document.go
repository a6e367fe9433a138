package output

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// document is the machine-readable shape shared by json and yaml
type document struct {
	RequestID    string          `json:"request_id" yaml:"request_id"`
	RiskScore    float64         `json:"risk_score" yaml:"risk_score"`
	RiskQuotient float64         `json:"risk_quotient" yaml:"risk_quotient"`
	Covers       []coverDocument `json:"covers" yaml:"covers"`
	Metadata     Metadata        `json:"metadata" yaml:"metadata"`
}

type coverDocument struct {
	ID     string          `json:"id" yaml:"id"`
	Kind   string          `json:"kind" yaml:"kind"`
	Quotes []quoteDocument `json:"quotes" yaml:"quotes"`
}

type quoteDocument struct {
	Value  int             `json:"value" yaml:"value"`
	Excess int             `json:"excess" yaml:"excess"`
	Price  decimal.Decimal `json:"price" yaml:"price"`
}

func newDocument(result *Result, precision int32) document {
	doc := document{
		RequestID:    result.RequestID,
		RiskScore:    result.RiskScore,
		RiskQuotient: result.RiskQuotient,
		Covers:       make([]coverDocument, 0, len(result.Covers)),
		Metadata:     result.Metadata,
	}
	for _, id := range result.CoverIDs() {
		cover := coverDocument{ID: id, Kind: CoverKind(id)}
		for _, row := range result.Covers[id].Rows() {
			cover.Quotes = append(cover.Quotes, quoteDocument{
				Value:  row.Value,
				Excess: row.Excess,
				Price:  displayPrice(row.Price, precision),
			})
		}
		doc.Covers = append(doc.Covers, cover)
	}
	return doc
}

// JSONFormatter renders results as indented JSON
type JSONFormatter struct {
	opts Options
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes result as JSON
func (f *JSONFormatter) Render(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(result, f.opts.Precision))
}

// YAMLFormatter renders results as YAML
type YAMLFormatter struct {
	opts Options
}

// Format returns FormatYAML
func (f *YAMLFormatter) Format() Format { return FormatYAML }

// Render writes result as YAML
func (f *YAMLFormatter) Render(w io.Writer, result *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(result, f.opts.Precision)); err != nil {
		return err
	}
	return enc.Close()
}
