package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cover-quote/core/quote"
)

func sampleResult() *Result {
	jewelry := quote.NewSet()
	jewelry.Add(quote.New(1000, 200, 240))
	jewelry.Add(quote.New(1000, 100, 270))
	jewelry.Add(quote.New(1000, 300, 210))

	general := quote.NewSet()
	general.Add(quote.New(2500, 200, 0.345))

	return &Result{
		RequestID:    "req-1",
		RiskScore:    250.75,
		RiskQuotient: quote.RiskQuotient(250.75),
		Covers: quote.Result{
			quote.NamedItemIdentifier + "Earrings:Jewelry:1000": jewelry,
			quote.BundleIdentifier + "General":                  general,
		},
		Metadata: Metadata{Timestamp: "2026-10-14T00:00:00Z", Duration: "1ms", Version: "test"},
	}
}

func render(t *testing.T, format Format, opts Options) string {
	t.Helper()
	f, err := NewFormatter(format, opts)
	require.NoError(t, err)
	assert.Equal(t, format, f.Format())

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleResult()))
	return buf.String()
}

func TestCoverKind(t *testing.T) {
	assert.Equal(t, "bundle", CoverKind("Bundle:General"))
	assert.Equal(t, "named_item", CoverKind("NamedItem:Phone:Electronics:200"))
	assert.Equal(t, "unknown", CoverKind("General"))
}

func TestCoverIDsSorted(t *testing.T) {
	assert.Equal(t, []string{"Bundle:General", "NamedItem:Earrings:Jewelry:1000"}, sampleResult().CoverIDs())
}

func TestJSONFormatter(t *testing.T) {
	out := render(t, FormatJSON, Options{Precision: 5})

	var doc struct {
		RequestID string `json:"request_id"`
		Covers    []struct {
			ID     string `json:"id"`
			Kind   string `json:"kind"`
			Quotes []struct {
				Value  int    `json:"value"`
				Excess int    `json:"excess"`
				Price  string `json:"price"`
			} `json:"quotes"`
		} `json:"covers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "req-1", doc.RequestID)
	require.Len(t, doc.Covers, 2)
	assert.Equal(t, "Bundle:General", doc.Covers[0].ID)
	assert.Equal(t, "bundle", doc.Covers[0].Kind)
	assert.Equal(t, "0.345", doc.Covers[0].Quotes[0].Price)

	item := doc.Covers[1]
	assert.Equal(t, "named_item", item.Kind)
	require.Len(t, item.Quotes, 3)
	assert.Equal(t, 100, item.Quotes[0].Excess)
	assert.Equal(t, "270", item.Quotes[0].Price)
	assert.Equal(t, 300, item.Quotes[2].Excess)
}

func TestJSONFormatterRoundsForDisplay(t *testing.T) {
	out := render(t, FormatJSON, Options{Precision: 1})
	assert.Contains(t, out, `"price": "0.3"`)
}

func TestYAMLFormatter(t *testing.T) {
	out := render(t, FormatYAML, Options{Precision: 5})

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "req-1", doc["request_id"])

	covers, ok := doc["covers"].([]interface{})
	require.True(t, ok)
	require.Len(t, covers, 2)
	first := covers[0].(map[string]interface{})
	assert.Equal(t, "Bundle:General", first["id"])
}

func TestCLIFormatter(t *testing.T) {
	out := render(t, FormatCLI, Options{Precision: 2, ShowCheapest: true})

	assert.Contains(t, out, "QUOTE OPTIONS")
	assert.Contains(t, out, "Bundle:General")
	assert.Contains(t, out, "NamedItem:Earrings:Jewelry:1000")
	assert.Contains(t, out, "0.35")
	assert.Contains(t, out, "210.00")
	assert.Contains(t, out, "← cheapest")
	assert.Contains(t, out, "request req-1")
}

func TestCLIFormatterWithoutCheapest(t *testing.T) {
	out := render(t, FormatCLI, Options{Precision: 2})
	assert.NotContains(t, out, "cheapest")
}

func TestUnknownFormat(t *testing.T) {
	_, err := NewFormatter("html", Options{})
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Options{})
	formats := []Format{}
	for _, f := range r.GetAll() {
		formats = append(formats, f.Format())
	}
	assert.Equal(t, []Format{FormatCLI, FormatJSON, FormatYAML}, formats)
	assert.Error(t, r.Register(&JSONFormatter{}))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestCLIFormatterReportsWriteErrors(t *testing.T) {
	f, err := NewFormatter(FormatCLI, Options{})
	require.NoError(t, err)
	assert.Error(t, f.Render(failingWriter{}, sampleResult()))
}
