package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogTiers(t *testing.T) {
	c := Default()

	values, ok := c.BundleValues(General)
	require.True(t, ok)
	assert.Equal(t, []int{2500, 5000, 10000, 15000}, values)

	values, ok = c.BundleValues(Jewelry)
	require.True(t, ok)
	assert.Equal(t, []int{1000, 2000, 3000, 4000, 5000}, values)

	excess, ok := c.ExcessOptions(Electronics)
	require.True(t, ok)
	assert.Equal(t, []int{100, 200, 300, 400, 500}, excess)

	m, ok := c.Multiplier(Bicycles)
	require.True(t, ok)
	assert.Equal(t, 0.8, m)
}

func TestUnknownSectionSignalsAbsence(t *testing.T) {
	c := Default()

	for _, s := range []Section{"", "Cars", "general"} {
		_, ok := c.BundleValues(s)
		assert.False(t, ok, "bundle %q", s)
		_, ok = c.ExcessOptions(s)
		assert.False(t, ok, "excess %q", s)
		_, ok = c.Multiplier(s)
		assert.False(t, ok, "multiplier %q", s)
	}

	// Electronics is priced but cannot be bundled
	_, ok := c.BundleValues(Electronics)
	assert.False(t, ok)
}

func TestLookupsReturnCopies(t *testing.T) {
	c := Default()

	values, _ := c.BundleValues(General)
	values[0] = 1
	excess, _ := c.ExcessOptions(General)
	excess[0] = 1

	values, _ = c.BundleValues(General)
	excess, _ = c.ExcessOptions(General)
	assert.Equal(t, 2500, values[0])
	assert.Equal(t, 200, excess[0])
}

func TestNewCatalogCopiesInput(t *testing.T) {
	bundles := map[Section][]int{General: {100}}
	c := NewCatalog(bundles, map[Section][]int{General: {10}}, map[Section]float64{General: 1})
	bundles[General][0] = 5

	values, _ := c.BundleValues(General)
	assert.Equal(t, []int{100}, values)
}

func TestSectionListings(t *testing.T) {
	c := Default()
	assert.Equal(t, []Section{Bicycles, Electronics, General, Jewelry}, c.Sections())
	assert.Equal(t, []Section{General, Jewelry}, c.BundleSections())
}

func TestStats(t *testing.T) {
	stats := Default().Stats()
	assert.Equal(t, 4, stats.Sections)
	assert.Equal(t, 2, stats.BundleSections)
	assert.Equal(t, 12+15, stats.BundleOptions)
	assert.Equal(t, 3+3+5+3, stats.ExcessTiers)
}

func TestEntry(t *testing.T) {
	e := Default().Entry(Jewelry)
	assert.True(t, e.Bundled())
	assert.True(t, e.HasMultiplier)
	assert.Equal(t, 2.0, e.Multiplier)

	e = Default().Entry("Cars")
	assert.False(t, e.Bundled())
	assert.False(t, e.HasMultiplier)
}
