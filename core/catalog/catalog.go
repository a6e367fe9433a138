// Package catalog - Authoritative cover pricing catalog
// Defines the value tiers, excess tiers and multipliers per section.
// This is the source of truth for every quote.
package catalog

import "sort"

// Section identifies a cover section (category of insured items)
type Section string

const (
	General     Section = "General"
	Jewelry     Section = "Jewelry"
	Electronics Section = "Electronics"
	Bicycles    Section = "Bicycles"
)

// String returns string representation
func (s Section) String() string {
	return string(s)
}

// Entry is the catalog view of one section
type Entry struct {
	Section       Section
	BundleValues  []int
	ExcessOptions []int
	Multiplier    float64
	HasMultiplier bool
}

// Bundled reports whether the section can be quoted as a bundle
func (e Entry) Bundled() bool {
	return len(e.BundleValues) > 0
}

// Catalog holds the pricing parameters for every section.
// It is never mutated after construction and is safe for concurrent reads.
type Catalog struct {
	bundleValues  map[Section][]int
	excessOptions map[Section][]int
	multipliers   map[Section]float64
}

// NewCatalog creates a catalog from the given tiers. The maps are copied.
func NewCatalog(bundleValues, excessOptions map[Section][]int, multipliers map[Section]float64) *Catalog {
	c := &Catalog{
		bundleValues:  make(map[Section][]int, len(bundleValues)),
		excessOptions: make(map[Section][]int, len(excessOptions)),
		multipliers:   make(map[Section]float64, len(multipliers)),
	}
	for s, values := range bundleValues {
		c.bundleValues[s] = append([]int(nil), values...)
	}
	for s, values := range excessOptions {
		c.excessOptions[s] = append([]int(nil), values...)
	}
	for s, m := range multipliers {
		c.multipliers[s] = m
	}
	return c
}

var defaultCatalog = NewCatalog(
	map[Section][]int{
		General: {2500, 5000, 10000, 15000},
		Jewelry: {1000, 2000, 3000, 4000, 5000},
	},
	map[Section][]int{
		General:     {200, 300, 400},
		Jewelry:     {100, 200, 300},
		Electronics: {100, 200, 300, 400, 500},
		Bicycles:    {300, 400, 500},
	},
	map[Section]float64{
		General:     0.1,
		Jewelry:     2.0,
		Electronics: 1.0,
		Bicycles:    0.8,
	},
)

// Default returns the process-wide catalog
func Default() *Catalog {
	return defaultCatalog
}

// BundleValues returns the allowed bundle cover values for a section.
// ok is false when the section cannot be bundled.
func (c *Catalog) BundleValues(s Section) ([]int, bool) {
	values, ok := c.bundleValues[s]
	if !ok {
		return nil, false
	}
	return append([]int(nil), values...), true
}

// ExcessOptions returns the allowed excess values for a section
func (c *Catalog) ExcessOptions(s Section) ([]int, bool) {
	values, ok := c.excessOptions[s]
	if !ok {
		return nil, false
	}
	return append([]int(nil), values...), true
}

// Multiplier returns the pricing multiplier for a section
func (c *Catalog) Multiplier(s Section) (float64, bool) {
	m, ok := c.multipliers[s]
	return m, ok
}

// Entry returns everything the catalog knows about a section
func (c *Catalog) Entry(s Section) Entry {
	e := Entry{Section: s}
	e.BundleValues, _ = c.BundleValues(s)
	e.ExcessOptions, _ = c.ExcessOptions(s)
	e.Multiplier, e.HasMultiplier = c.Multiplier(s)
	return e
}

// Sections returns every known section in name order
func (c *Catalog) Sections() []Section {
	seen := make(map[Section]struct{})
	for s := range c.bundleValues {
		seen[s] = struct{}{}
	}
	for s := range c.excessOptions {
		seen[s] = struct{}{}
	}
	for s := range c.multipliers {
		seen[s] = struct{}{}
	}
	return sortedSections(seen)
}

// BundleSections returns the sections that can be bundled in name order
func (c *Catalog) BundleSections() []Section {
	seen := make(map[Section]struct{}, len(c.bundleValues))
	for s := range c.bundleValues {
		seen[s] = struct{}{}
	}
	return sortedSections(seen)
}

func sortedSections(set map[Section]struct{}) []Section {
	result := make([]Section, 0, len(set))
	for s := range set {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Stats returns catalog statistics
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{
		Sections:       len(c.Sections()),
		BundleSections: len(c.bundleValues),
	}
	for s, values := range c.bundleValues {
		stats.BundleOptions += len(values) * len(c.excessOptions[s])
	}
	for _, values := range c.excessOptions {
		stats.ExcessTiers += len(values)
	}
	return stats
}

// CatalogStats holds catalog statistics
type CatalogStats struct {
	Sections       int
	BundleSections int
	// BundleOptions is the number of (value, excess) pairs across all bundles
	BundleOptions int
	ExcessTiers   int
}
