package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/drainsight/internal/config"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "List the configured defect codes",
	RunE:  runTaxonomy,
}

func runTaxonomy(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	tax, err := loadTaxonomy(cfg.Engine.TaxonomyOverlayPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s %-16s %-6s %s\n", "CODE", "CATEGORY", "GRADE", "RISK")
	for _, code := range tax.Codes() {
		e, _ := tax.Lookup(code)
		fmt.Fprintf(out, "%-6s %-16s %-6d %s\n", e.Code, e.Category, e.DefaultGrade, e.RiskNarrative)
	}
	return nil
}
