package quote

import (
	"cover-quote/core/catalog"
	"cover-quote/internal/errors"
)

// Cover identifier prefixes used as Result keys
const (
	BundleIdentifier    = "Bundle:"
	NamedItemIdentifier = "NamedItem:"
)

// Result maps a cover identifier to its priced options
type Result map[string]*Set

// Generator enumerates and prices quotes from a catalog.
// It holds no per-request state and may be shared between goroutines.
type Generator struct {
	catalog *catalog.Catalog
}

// NewGenerator creates a generator over c, or over the default catalog when c is nil
func NewGenerator(c *catalog.Catalog) *Generator {
	if c == nil {
		c = catalog.Default()
	}
	return &Generator{catalog: c}
}

// Catalog returns the catalog quotes are drawn from
func (g *Generator) Catalog() *catalog.Catalog {
	return g.catalog
}

// GenerateQuotes prices every requested cover.
//
// Bundle covers are keyed "Bundle:<section>" and named items
// "NamedItem:<descriptor>", using the caller's strings unchanged. The request
// is rejected only when both lists are empty. The first invalid cover aborts
// the whole request and no partial result is returned.
func (g *Generator) GenerateQuotes(wriskScore float64, bundles, namedItems []string) (Result, error) {
	// negated so NaN is rejected too
	if !(wriskScore > 0) {
		return nil, errors.InvalidRequest("Invalid request: wrisk score has to be greater than zero!").
			WithContext("wrisk_score", wriskScore)
	}
	if len(bundles) == 0 && len(namedItems) == 0 {
		return nil, errors.InvalidRequest("Invalid request: no cover has been requested!")
	}

	riskQuotient := RiskQuotient(wriskScore)
	quotes := make(Result, len(bundles)+len(namedItems))

	for _, section := range bundles {
		set, err := g.GenerateBundleQuotes(section, riskQuotient)
		if err != nil {
			return nil, err
		}
		quotes[BundleIdentifier+section] = set
	}

	for _, item := range namedItems {
		set, err := g.GenerateNamedItemQuotes(item, riskQuotient)
		if err != nil {
			return nil, err
		}
		quotes[NamedItemIdentifier+item] = set
	}

	return quotes, nil
}

// GenerateBundleQuotes prices every (value, excess) combination of a bundle section
func (g *Generator) GenerateBundleQuotes(section string, riskQuotient float64) (*Set, error) {
	s := catalog.Section(section)
	values, ok := g.catalog.BundleValues(s)
	if !ok {
		return nil, errors.InvalidRequest("Invalid bundle request: can only request bundle for General or Jewelry sections!").
			WithContext("section", section)
	}
	multiplier, _ := g.catalog.Multiplier(s)
	excesses, _ := g.catalog.ExcessOptions(s)

	quotes := NewSet()
	for _, value := range values {
		for _, excess := range excesses {
			quotes.Add(priced(riskQuotient, multiplier, value, excess))
		}
	}
	return quotes, nil
}

// GenerateNamedItemQuotes prices a single item across its section's excess options.
// descriptor has the form name:section:value.
func (g *Generator) GenerateNamedItemQuotes(descriptor string, riskQuotient float64) (*Set, error) {
	item, err := ParseNamedItem(descriptor)
	if err != nil {
		return nil, err
	}
	if item.Value <= 0 {
		return nil, errors.InvalidRequest("Invalid named item request: item value has to be greater than zero!").
			WithContext("descriptor", descriptor)
	}
	multiplier, ok := g.catalog.Multiplier(item.Section)
	if !ok {
		return nil, errors.InvalidRequestf("Invalid named item request: section [%s] invalid!", item.Section).
			WithContext("descriptor", descriptor)
	}
	excesses, _ := g.catalog.ExcessOptions(item.Section)

	quotes := NewSet()
	for _, excess := range excesses {
		quotes.Add(priced(riskQuotient, multiplier, item.Value, excess))
	}
	return quotes, nil
}

// priced builds a quote and sets its price before it is handed out
func priced(riskQuotient, multiplier float64, value, excess int) Quote {
	q := Quote{value: value, excess: excess}
	q.price = CalculatePrice(riskQuotient, multiplier, float64(value), float64(excess))
	return q
}
