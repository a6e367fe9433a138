// Package quote prices bundle and named item covers against the catalog.
package quote

import (
	"fmt"
	"sort"
)

// Quote is one priced (value, excess) option of a cover.
// Identity is the (value, excess) pair; price takes no part in equality.
type Quote struct {
	value  int
	excess int
	price  float64
}

// New creates a priced quote
func New(value, excess int, price float64) Quote {
	return Quote{value: value, excess: excess, price: price}
}

// Excess returns the deductible of this option
func (q Quote) Excess() int {
	return q.excess
}

// Price returns the premium of this option
func (q Quote) Price() float64 {
	return q.price
}

// SameOption reports whether q and other share the same (value, excess) pair
func (q Quote) SameOption(other Quote) bool {
	return q.key() == other.key()
}

func (q Quote) String() string {
	return fmt.Sprintf("Quote{value=%d, excess=%d, price=%g}", q.value, q.excess, q.price)
}

type optionKey struct {
	value  int
	excess int
}

func (q Quote) key() optionKey {
	return optionKey{value: q.value, excess: q.excess}
}

// Row is the presentation form of a quote used by renderers
type Row struct {
	Value  int     `json:"value" yaml:"value"`
	Excess int     `json:"excess" yaml:"excess"`
	Price  float64 `json:"price" yaml:"price"`
}

// Set is a collection of quotes unique by (value, excess).
// The first quote added for a pair wins; later adds of the same pair,
// whatever their price, are ignored.
type Set struct {
	quotes map[optionKey]Quote
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{quotes: make(map[optionKey]Quote)}
}

// Add inserts q and reports whether it was new
func (s *Set) Add(q Quote) bool {
	if s.quotes == nil {
		s.quotes = make(map[optionKey]Quote)
	}
	if _, exists := s.quotes[q.key()]; exists {
		return false
	}
	s.quotes[q.key()] = q
	return true
}

// Len returns the number of options
func (s *Set) Len() int {
	return len(s.quotes)
}

// Contains reports whether an option with q's (value, excess) is present
func (s *Set) Contains(q Quote) bool {
	_, ok := s.quotes[q.key()]
	return ok
}

// Get returns the stored quote for q's (value, excess)
func (s *Set) Get(q Quote) (Quote, bool) {
	stored, ok := s.quotes[q.key()]
	return stored, ok
}

// Sorted returns the quotes ordered by value, then excess
func (s *Set) Sorted() []Quote {
	result := make([]Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		result = append(result, q)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].value != result[j].value {
			return result[i].value < result[j].value
		}
		return result[i].excess < result[j].excess
	})
	return result
}

// Rows returns the sorted quotes in presentation form
func (s *Set) Rows() []Row {
	sorted := s.Sorted()
	rows := make([]Row, len(sorted))
	for i, q := range sorted {
		rows[i] = Row{Value: q.value, Excess: q.excess, Price: q.price}
	}
	return rows
}

// Cheapest returns the lowest priced option. ok is false for an empty set.
func (s *Set) Cheapest() (q Quote, ok bool) {
	for _, candidate := range s.Sorted() {
		if !ok || candidate.price < q.price {
			q, ok = candidate, true
		}
	}
	return q, ok
}

// Equal reports whether both sets hold the same options at the same prices
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k, q := range s.quotes {
		o, ok := other.quotes[k]
		if !ok || o.price != q.price {
			return false
		}
	}
	return true
}
