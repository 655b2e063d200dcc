// drainsight classifies CCTV sewer-survey observation exports into
// condition grades, adoptability verdicts and repair recommendations.
//
// Usage:
//
//	drainsight classify --input survey.yaml --sector utilities
//	drainsight sectors   [--thresholds thresholds.yaml]
//	drainsight taxonomy
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "drainsight",
	Short: "Condition classification for CCTV sewer surveys",
	Long: "Drainsight turns raw survey observation text into a defect\n" +
		"classification, severity grade, adoptability verdict and repair\n" +
		"recommendation under sector-specific condition standards.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(sectorsCmd)
	rootCmd.AddCommand(taxonomyCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
