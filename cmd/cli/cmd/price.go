// Package cmd - price command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cover-quote/core/catalog"
	"cover-quote/core/quote"
	"cover-quote/internal/config"
	"cover-quote/internal/errors"
)

var (
	priceRiskQuotient float64
	priceRiskScore    float64
	priceMultiplier   float64
	priceSection      string
	priceValue        int
	priceExcess       int
)

// priceCmd prices a single (value, excess) option
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a single value and excess",
	Long: `Price one option with riskQuotient * multiplier * value * (1 - excess/value).

The risk quotient is given directly or derived from --risk-score. The
multiplier is given directly or taken from the catalog with --section.

Examples:
  cover-quote price --risk-quotient 0.0015 --multiplier 0.1 --value 2500 --excess 200
  cover-quote price --risk-score 250.75 --section Jewelry --value 1000 --excess 100`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().Float64Var(&priceRiskQuotient, "risk-quotient", 0, "normalized risk quotient")
	priceCmd.Flags().Float64VarP(&priceRiskScore, "risk-score", "s", 0, "wrisk score, normalized into a risk quotient")
	priceCmd.Flags().Float64Var(&priceMultiplier, "multiplier", 0, "section multiplier")
	priceCmd.Flags().StringVar(&priceSection, "section", "", "take the multiplier from this catalog section")
	priceCmd.Flags().IntVar(&priceValue, "value", 0, "cover or item value")
	priceCmd.Flags().IntVar(&priceExcess, "excess", 0, "excess (deductible)")
	priceCmd.MarkFlagsMutuallyExclusive("risk-quotient", "risk-score")
	priceCmd.MarkFlagsMutuallyExclusive("multiplier", "section")
	_ = priceCmd.MarkFlagRequired("value")
}

func runPrice(cmd *cobra.Command, args []string) error {
	if priceValue <= 0 {
		return errors.InvalidRequest("Invalid price request: value has to be greater than zero!")
	}

	riskQuotient := priceRiskQuotient
	if cmd.Flags().Changed("risk-score") {
		riskQuotient = quote.RiskQuotient(priceRiskScore)
	}

	multiplier := priceMultiplier
	if priceSection != "" {
		m, ok := catalog.Default().Multiplier(catalog.Section(priceSection))
		if !ok {
			return errors.InvalidRequestf("Invalid price request: section [%s] invalid!", priceSection)
		}
		multiplier = m
	}

	price := quote.CalculatePrice(riskQuotient, multiplier, float64(priceValue), float64(priceExcess))
	precision := config.Get().Output.Precision
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", decimal.NewFromFloat(price).Round(precision).String())
	return nil
}
