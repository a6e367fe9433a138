// Package determinism provides primitives for deterministic output.
// Identical requests get identical fingerprints and identical ordering.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
)

// StableID is a hash-based identifier that is deterministic
type StableID string

// IDGenerator generates stable, deterministic IDs
type IDGenerator struct {
	namespace string
}

// NewIDGenerator creates an ID generator with a namespace
func NewIDGenerator(namespace string) *IDGenerator {
	return &IDGenerator{namespace: namespace}
}

// Generate creates a stable ID from inputs. Order of parts matters.
func (g *IDGenerator) Generate(parts ...string) StableID {
	h := sha256.New()
	h.Write([]byte(g.namespace))
	h.Write([]byte{0})
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return StableID(hex.EncodeToString(h.Sum(nil))[:16])
}

var requests = NewIDGenerator("quote-request")

// RequestFingerprint identifies a quote request by its inputs. Covers are
// hashed in a sorted, kind-tagged form so list order does not matter.
func RequestFingerprint(riskScore float64, bundles, namedItems []string) StableID {
	parts := make([]string, 0, 1+len(bundles)+len(namedItems))
	parts = append(parts, strconv.FormatFloat(riskScore, 'g', -1, 64))

	covers := make([]string, 0, len(bundles)+len(namedItems))
	for _, b := range bundles {
		covers = append(covers, "b\x1f"+b)
	}
	for _, n := range namedItems {
		covers = append(covers, "n\x1f"+n)
	}
	sort.Strings(covers)

	return requests.Generate(append(parts, covers...)...)
}

// SortedKeys returns the keys of a string-keyed map in sorted order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
