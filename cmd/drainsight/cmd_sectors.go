package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakmere/drainsight/internal/config"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "List the configured sector threshold table",
	RunE:  runSectors,
}

func runSectors(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	table, err := loadSectors(cfg.Engine.ThresholdsPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-14s %-10s %-12s %s\n", "SECTOR", "MAX WL %", "BELLY %", "STANDARD")
	for _, id := range table.Sectors() {
		t := table.Lookup(id)
		fmt.Fprintf(out, "%-14s %-10.0f %-12.0f %s\n",
			t.Sector, t.MaxWaterLevel, t.BellyFailLevel, t.Standard)
	}
	return nil
}
