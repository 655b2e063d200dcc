// Package pipeline wires a survey source, the classification engine and an
// output destination into one batch run.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/oakmere/drainsight/internal/engine"
	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/output"
	"github.com/oakmere/drainsight/internal/source"
)

// Pipeline classifies every section of a survey and delivers the records.
type Pipeline struct {
	source  source.Source
	engine  *engine.Engine
	output  output.Output
	workers int
	log     *slog.Logger
}

// Report summarizes one pipeline run.
type Report struct {
	RunID      string `json:"run_id"`
	Sections   int    `json:"sections"`
	Records    int    `json:"records"`
	Splits     int    `json:"splits"`
	WorstGrade int    `json:"worst_grade"`
}

// New creates a Pipeline. workers bounds concurrent section
// classifications; 0 means one per CPU.
func New(src source.Source, eng *engine.Engine, out output.Output, workers int, logger *slog.Logger) *Pipeline {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{source: src, engine: eng, output: out, workers: workers, log: logger}
}

// Run reads the survey, classifies each section for the given sector and
// writes the records in section order. Sections are independent, so
// classification fans out across workers; output order is restored before
// writing.
func (p *Pipeline) Run(ctx context.Context, cfg source.Config, sectorID string) (Report, error) {
	runID, err := gonanoid.New()
	if err != nil {
		return Report{}, fmt.Errorf("pipeline: run id: %w", err)
	}

	sections, err := p.source.Read(ctx, cfg)
	if err != nil {
		return Report{}, fmt.Errorf("pipeline: read survey: %w", err)
	}
	p.log.Info("survey loaded", "run", runID, "sections", len(sections), "sector", sectorID)

	results := make([][]model.SectionClassification, len(sections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, sec := range sections {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.engine.ClassifySection(sec, sectorID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("pipeline: classify: %w", err)
	}

	report := Report{RunID: runID, Sections: len(sections)}
	for _, recs := range results {
		if len(recs) > 1 {
			report.Splits++
		}
		for _, rec := range recs {
			if err := p.output.Write(ctx, rec); err != nil {
				return report, fmt.Errorf("pipeline: output: %w", err)
			}
			report.Records++
			if rec.SeverityGrade > report.WorstGrade {
				report.WorstGrade = rec.SeverityGrade
			}
		}
	}
	p.log.Info("survey classified", "run", runID,
		"records", report.Records, "splits", report.Splits, "worst_grade", report.WorstGrade)
	return report, nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
