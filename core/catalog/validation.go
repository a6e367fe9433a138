// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
)

// MaxBundleSections is the number of sections that may offer bundle cover
const MaxBundleSections = 2

// ValidationRule is a catalog validation rule
type ValidationRule func(Entry) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateMultiplierPresent,
		validateBundleHasExcess,
		validatePositiveTiers,
		validateExcessBelowValue,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	if n := len(c.bundleValues); n > MaxBundleSections {
		errors = append(errors, fmt.Errorf("%d bundle sections defined, at most %d allowed", n, MaxBundleSections))
	}

	for _, s := range c.Sections() {
		entry := c.Entry(s)
		for _, rule := range rules {
			if err := rule(entry); err != nil {
				errors = append(errors, fmt.Errorf("%s: %w", s, err))
			}
		}
	}

	return errors
}

// validateMultiplierPresent ensures every priced section has a multiplier
func validateMultiplierPresent(e Entry) error {
	if (len(e.ExcessOptions) > 0 || e.Bundled()) && !e.HasMultiplier {
		return fmt.Errorf("section has tiers but no multiplier")
	}
	return nil
}

// validateBundleHasExcess ensures bundle sections can be enumerated
func validateBundleHasExcess(e Entry) error {
	if e.Bundled() && len(e.ExcessOptions) == 0 {
		return fmt.Errorf("bundle section has no excess options")
	}
	return nil
}

// validatePositiveTiers ensures values, excesses and multipliers are positive
func validatePositiveTiers(e Entry) error {
	for _, v := range e.BundleValues {
		if v <= 0 {
			return fmt.Errorf("bundle value %d must be greater than zero", v)
		}
	}
	for _, x := range e.ExcessOptions {
		if x <= 0 {
			return fmt.Errorf("excess %d must be greater than zero", x)
		}
	}
	if e.HasMultiplier && e.Multiplier <= 0 {
		return fmt.Errorf("multiplier %v must be greater than zero", e.Multiplier)
	}
	return nil
}

// validateExcessBelowValue keeps every bundle price positive: excess/value < 1
func validateExcessBelowValue(e Entry) error {
	if !e.Bundled() {
		return nil
	}
	smallest := e.BundleValues[0]
	for _, v := range e.BundleValues {
		if v < smallest {
			smallest = v
		}
	}
	for _, x := range e.ExcessOptions {
		if x >= smallest {
			return fmt.Errorf("excess %d is not below smallest bundle value %d", x, smallest)
		}
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errors := c.Validate(DefaultValidationRules())
	if len(errors) > 0 {
		panic(fmt.Sprintf("Catalog has %d validation errors: %v", len(errors), errors))
	}
}

func init() {
	defaultCatalog.MustValidate()
}
