// Package main provides pinanalyze, a one-shot CLI over the analysis
// pipeline: it runs one batch of PINs and prints the result as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"PropertyTaxAnalyzer/pkg/analysis"
	"PropertyTaxAnalyzer/pkg/config"
	"PropertyTaxAnalyzer/pkg/fetch"
	"PropertyTaxAnalyzer/pkg/models"
)

var (
	township   string
	year       int
	taxRate    float64
	eqFactor   float64
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pinanalyze [PIN...]",
		Short: "Analyze assessment values and estimated taxes for a batch of PINs",
		Long: `pinanalyze fetches the current assessment for each PIN, locates the
valuation breakdown in the township's published commercial valuation report
and prints the aggregated analysis as JSON.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&township, "township", "t", "", "Township name (required)")
	rootCmd.Flags().IntVarP(&year, "year", "y", 0, "Report year (required)")
	rootCmd.Flags().Float64VarP(&taxRate, "rate", "r", 0, "Tax rate percentage (required)")
	rootCmd.Flags().Float64VarP(&eqFactor, "factor", "f", 1.0, "Equalization factor")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.MarkFlagRequired("township")
	rootCmd.MarkFlagRequired("year")
	rootCmd.MarkFlagRequired("rate")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.LoadConfig()
	analyzer := analysis.New(cfg, fetch.NewClient())

	result, err := analyzer.Run(cmd.Context(), models.AnalyzeRequest{
		Township: township,
		Year:     year,
		Pins:     args,
		TaxRate:  taxRate,
		EqFactor: eqFactor,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(result, "", "  ")
	} else {
		jsonData, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Println(string(jsonData))
	return nil
}
