package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oakmere/drainsight/internal/config"
	"github.com/oakmere/drainsight/internal/engine"
	"github.com/oakmere/drainsight/internal/logging"
	"github.com/oakmere/drainsight/internal/output"
	"github.com/oakmere/drainsight/internal/output/async"
	"github.com/oakmere/drainsight/internal/output/file"
	"github.com/oakmere/drainsight/internal/output/stdout"
	"github.com/oakmere/drainsight/internal/output/webhook"
	"github.com/oakmere/drainsight/internal/pipeline"
	"github.com/oakmere/drainsight/internal/source"

	// Register source implementations.
	_ "github.com/oakmere/drainsight/internal/source/csvsurvey"
	_ "github.com/oakmere/drainsight/internal/source/yamlsurvey"
)

var classifyFlags struct {
	input      string
	format     string
	sector     string
	out        string
	outPath    string
	webhookURL string
	verbosity  string
	pretty     bool
	workers    int
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify every section of a survey export",
	RunE:  runClassify,
}

func init() {
	cfg := config.Load()
	f := classifyCmd.Flags()
	f.StringVarP(&classifyFlags.input, "input", "i", cfg.Source.Path, "Survey export file (required)")
	f.StringVar(&classifyFlags.format, "format", cfg.Source.Format, "Input format: yaml or csv")
	f.StringVarP(&classifyFlags.sector, "sector", "s", cfg.Sector, "Client sector id")
	f.StringVarP(&classifyFlags.out, "output", "o", cfg.Output.Format, "Output: stdout, file or webhook")
	f.StringVar(&classifyFlags.outPath, "output-path", cfg.Output.Path, "NDJSON path for file output")
	f.StringVar(&classifyFlags.webhookURL, "webhook-url", cfg.Output.WebhookURL, "Endpoint for webhook output")
	f.StringVar(&classifyFlags.verbosity, "verbosity", cfg.Output.Verbosity, "Record detail: minimal, standard or full")
	f.BoolVar(&classifyFlags.pretty, "pretty", false, "Pretty-print stdout JSON")
	f.IntVar(&classifyFlags.workers, "workers", cfg.Engine.Workers, "Concurrent section classifications (0 = CPUs)")

	_ = classifyCmd.MarkFlagRequired("input")
}

func runClassify(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	logging.Init(classifyFlags.out == "stdout", logging.ParseLevel(cfg.Output.LogLevel))

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	verbosity := output.ParseVerbosity(classifyFlags.verbosity)
	var out output.Output
	switch classifyFlags.out {
	case "stdout":
		out = stdout.New(verbosity, classifyFlags.pretty)
	case "file":
		out, err = file.New(classifyFlags.outPath, verbosity)
		if err != nil {
			return err
		}
	case "webhook":
		if classifyFlags.webhookURL == "" {
			return fmt.Errorf("webhook output needs --webhook-url")
		}
		out = async.New(webhook.New(classifyFlags.webhookURL, verbosity))
	default:
		return fmt.Errorf("unknown output %q", classifyFlags.out)
	}

	ctor, err := source.Get(classifyFlags.format)
	if err != nil {
		return fmt.Errorf("%w (registered: %v)", err, source.Formats())
	}

	p := pipeline.New(ctor(), eng, out, classifyFlags.workers, logging.Component("pipeline"))
	defer p.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := p.Run(ctx, source.Config{
		Format: classifyFlags.format,
		Path:   classifyFlags.input,
	}, classifyFlags.sector)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "run %s: %d sections, %d records (%d split), worst grade %d\n",
		report.RunID, report.Sections, report.Records, report.Splits, report.WorstGrade)
	return nil
}

// buildEngine assembles the classification engine from the built-in
// reference tables plus any configured YAML overrides.
func buildEngine(cfg config.Config) (*engine.Engine, error) {
	tax, err := loadTaxonomy(cfg.Engine.TaxonomyOverlayPath)
	if err != nil {
		return nil, err
	}
	sectors, err := loadSectors(cfg.Engine.ThresholdsPath)
	if err != nil {
		return nil, err
	}
	return engine.New(tax, sectors, logging.Component("engine")), nil
}
