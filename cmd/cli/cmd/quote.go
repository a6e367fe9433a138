// Package cmd - quote command
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cover-quote/core/engine"
	"cover-quote/core/output"
	"cover-quote/core/quote"
	"cover-quote/core/request"
	"cover-quote/internal/config"
	"cover-quote/internal/logging"
)

var (
	quoteRiskScore float64
	quoteBundles   []string
	quoteItems     []string
	quoteRequest   string
	quoteFormat    string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Generate quote options for bundle and named item covers",
	Long: `Generate every priced option for the requested covers.

Covers come from flags, a request file (.hcl or .json), or both. Flags add
to the lists of the request file and --risk-score overrides its score.

Examples:
  cover-quote quote --risk-score 250.75 --bundle Jewelry
  cover-quote quote --risk-score 300 --item Phone:Electronics:200 --item FujiBike:Bicycles:500
  cover-quote quote --request request.hcl --format yaml`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Float64VarP(&quoteRiskScore, "risk-score", "s", 0, "wrisk score of the customer")
	quoteCmd.Flags().StringArrayVarP(&quoteBundles, "bundle", "b", nil, "section to quote bundle cover for (repeatable)")
	quoteCmd.Flags().StringArrayVarP(&quoteItems, "item", "i", nil, "named item as name:section:value (repeatable)")
	quoteCmd.Flags().StringVarP(&quoteRequest, "request", "r", "", "request file (.hcl or .json)")
	quoteCmd.Flags().StringVarP(&quoteFormat, "format", "f", "", "output format (cli, json, yaml)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	req := &request.Request{}
	if quoteRequest != "" {
		loaded, err := request.Load(quoteRequest)
		if err != nil {
			return err
		}
		req = loaded
		logging.Debug("Request file loaded", zap.String("file", quoteRequest), zap.Int("covers", req.Covers()))
	}
	if cmd.Flags().Changed("risk-score") {
		req.RiskScore = quoteRiskScore
	}
	req.Bundles = append(req.Bundles, quoteBundles...)
	req.NamedItems = append(req.NamedItems, quoteItems...)

	format := quoteFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.NewFormatter(output.Format(format), output.Options{
		Precision:    cfg.Output.Precision,
		ShowCheapest: cfg.Output.ShowCheapest,
	})
	if err != nil {
		return err
	}

	e := engine.New(quote.NewGenerator(nil), logging.Named("engine"))
	result, err := e.Run(context.Background(), req)
	if err != nil {
		return err
	}

	return formatter.Render(cmd.OutOrStdout(), result)
}
