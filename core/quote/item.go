package quote

import (
	"strconv"
	"strings"

	"cover-quote/core/catalog"
	"cover-quote/internal/errors"
)

const descriptorSeparator = ":"

// NamedItem is a parsed "name:section:value" descriptor
type NamedItem struct {
	Name    string
	Section catalog.Section
	Value   int
}

// ParseNamedItem parses a descriptor of the form name:section:value.
// Only the shape is checked here; value and section rules belong to the generator.
func ParseNamedItem(descriptor string) (NamedItem, error) {
	fields := strings.Split(descriptor, descriptorSeparator)
	if len(fields) != 3 {
		return NamedItem{}, malformedItem(descriptor)
	}
	value, err := strconv.Atoi(fields[2])
	if err != nil {
		return NamedItem{}, malformedItem(descriptor)
	}
	return NamedItem{
		Name:    fields[0],
		Section: catalog.Section(fields[1]),
		Value:   value,
	}, nil
}

// Descriptor returns the item in its name:section:value form
func (n NamedItem) Descriptor() string {
	return strings.Join([]string{n.Name, string(n.Section), strconv.Itoa(n.Value)}, descriptorSeparator)
}

func malformedItem(descriptor string) error {
	return errors.InvalidRequestf("Invalid named item request: item name is expected to be in format "+
		"[Name]:[Category]:[Value(integer)], actual item name: %s!", descriptor).
		WithContext("descriptor", descriptor)
}
