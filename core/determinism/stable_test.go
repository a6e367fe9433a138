package determinism

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIsStable(t *testing.T) {
	g := NewIDGenerator("test")
	a := g.Generate("General", "200")
	assert.Equal(t, a, g.Generate("General", "200"))
	assert.Len(t, string(a), 16)

	// separators keep part boundaries significant
	assert.NotEqual(t, a, g.Generate("General2", "00"))
	assert.NotEqual(t, a, NewIDGenerator("other").Generate("General", "200"))
}

func TestRequestFingerprint(t *testing.T) {
	a := RequestFingerprint(250.75, []string{"Jewelry", "General"}, []string{"Phone:Electronics:200"})
	b := RequestFingerprint(250.75, []string{"General", "Jewelry"}, []string{"Phone:Electronics:200"})
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, RequestFingerprint(250.76, []string{"General", "Jewelry"}, []string{"Phone:Electronics:200"}))
	// the same string as a bundle or a named item is a different request
	assert.NotEqual(t,
		RequestFingerprint(1, []string{"General"}, nil),
		RequestFingerprint(1, nil, []string{"General"}))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"NamedItem:b": 1, "Bundle:General": 2, "Bundle:Jewelry": 3}
	assert.Equal(t, []string{"Bundle:General", "Bundle:Jewelry", "NamedItem:b"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
