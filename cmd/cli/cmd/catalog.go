// Package cmd - catalog command
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cover-quote/core/catalog"
)

// catalogCmd lists the pricing catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List sections, value tiers, excess tiers and multipliers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := catalog.Default()
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "%-12s %-10s %-32s %s\n", "SECTION", "MULTIPLIER", "BUNDLE VALUES", "EXCESS OPTIONS")
		for _, s := range c.Sections() {
			e := c.Entry(s)
			bundle := "-"
			if e.Bundled() {
				bundle = joinInts(e.BundleValues)
			}
			fmt.Fprintf(w, "%-12s %-10g %-32s %s\n", s, e.Multiplier, bundle, joinInts(e.ExcessOptions))
		}

		stats := c.Stats()
		fmt.Fprintf(w, "\n%d sections, %d bundle sections, %d bundle options\n",
			stats.Sections, stats.BundleSections, stats.BundleOptions)
	},
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
