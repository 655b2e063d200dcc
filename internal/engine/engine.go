// Package engine orchestrates the parse → filter → grade → split →
// recommend pipeline that turns one section's raw observation strings into
// classification records.
package engine

import (
	"log/slog"
	"sort"

	"github.com/oakmere/drainsight/internal/engine/belly"
	"github.com/oakmere/drainsight/internal/engine/filter"
	"github.com/oakmere/drainsight/internal/engine/grading"
	"github.com/oakmere/drainsight/internal/engine/parser"
	"github.com/oakmere/drainsight/internal/engine/recommend"
	"github.com/oakmere/drainsight/internal/engine/splitter"
	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/sector"
)

// Engine classifies pipe sections against an injected taxonomy and sector
// threshold table. It is a pure function of its inputs: no internal state
// changes across calls, so one Engine may serve concurrent callers.
type Engine struct {
	tax       *taxonomy.Taxonomy
	sectors   *sector.Table
	parser    *parser.Parser
	filter    *filter.Filter
	grader    *grading.Grader
	splitter  *splitter.Splitter
	recommend *recommend.Generator
	log       *slog.Logger
}

// New creates an Engine over read-only reference tables. The logger is the
// caller-supplied diagnostic sink; nil falls back to slog.Default.
func New(tax *taxonomy.Taxonomy, sectors *sector.Table, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		tax:       tax,
		sectors:   sectors,
		parser:    parser.New(tax),
		filter:    filter.New(tax),
		grader:    grading.New(tax),
		splitter:  splitter.New(tax),
		recommend: recommend.New(tax),
		log:       logger,
	}
}

// ClassifySection classifies one section for the given sector. Returns one
// record, or two sibling records when the section mixes structural and
// service defects (service first, carrying the bare item id; structural
// second, carrying the letter-suffixed id).
func (e *Engine) ClassifySection(section model.Section, sectorID string) []model.SectionClassification {
	thresholds := e.sectors.Lookup(sectorID)

	var parsed []model.ParsedObservation
	for _, raw := range section.Observations {
		if obs := e.parser.Parse(raw); obs != nil {
			parsed = append(parsed, *obs)
		} else if raw != "" {
			e.log.Debug("observation carries no code, excluded from classification",
				"item", section.ItemNo, "text", raw)
		}
	}

	filtered := e.filter.Apply(parsed)
	bellyRes := e.analyzeBelly(filtered.Kept, thresholds)
	part := e.splitter.Partition(filtered.Kept)

	if !part.Split {
		rec := e.classifyRecord(splitter.ItemID(section.ItemNo, 0),
			part.Service, section.Overrides, section.LengthM, thresholds, bellyRes)
		return []model.SectionClassification{rec}
	}

	// The belly result rides with the service record: water level is a
	// service observation.
	pair := model.SplitSectionPair{
		Service: e.classifyRecord(splitter.ItemID(section.ItemNo, 0),
			part.Service, overridesFor(section.Overrides, model.Service), section.LengthM, thresholds, bellyRes),
		Structural: e.classifyRecord(splitter.ItemID(section.ItemNo, 1),
			part.Structural, overridesFor(section.Overrides, model.Structural), section.LengthM, thresholds, nil),
	}
	return pair.Records()
}

// overridesFor narrows a split section's overrides to the half that can
// carry them; the structural half never sees the service override and vice
// versa.
func overridesFor(o *model.OverrideGrades, cat model.Category) *model.OverrideGrades {
	if o == nil {
		return nil
	}
	n := *o
	switch cat {
	case model.Structural:
		n.Service = nil
	case model.Service:
		n.Structural = nil
	}
	return &n
}

func (e *Engine) classifyRecord(itemID string, observations []model.ParsedObservation,
	overrides *model.OverrideGrades, lengthM float64,
	thresholds model.SectorThresholds, bellyRes *model.BellyResult) model.SectionClassification {

	graded := e.grader.Grade(observations, overrides)
	for _, msg := range graded.Inconsistencies {
		e.log.Warn("override grade inconsistent with observation text, text evidence wins",
			"item", itemID, "detail", msg)
	}

	text, dominant := e.recommend.Compose(observations, graded.Kind, lengthM)

	rec := model.SectionClassification{
		ItemID:            itemID,
		DefectSummaryText: joinFullText(observations),
		Category:          graded.Category,
		SeverityGrade:     graded.Grade,
		SeverityBy:        model.CategoryGrades{Structural: graded.Structural, Service: graded.Service},
		Recommendation:    text,
		Adoptable:         recommend.Adoptability(graded.Category, graded.Grade),
		Belly:             bellyRes,
		RawObservations:   rawObservations(observations),
	}

	rec.SRM = model.SRMGrading{
		Category: graded.Category,
		Grade:    graded.Grade,
		Standard: thresholds.Standard,
	}
	if dominant != nil {
		rec.SRM.Code = dominant.Code
		rec.SRM.RiskNarrative = dominant.RiskNarrative
	}

	rec.RepairMethods = e.methodsFor(observations, e.tax.RepairMethods)
	rec.CleaningMethods = e.methodsFor(observations, e.tax.CleaningMethods)
	return rec
}

// analyzeBelly runs trend analysis when the section carries enough
// water-level readings with both meterage and a percentage figure.
func (e *Engine) analyzeBelly(kept []model.ParsedObservation, thresholds model.SectorThresholds) *model.BellyResult {
	var readings []belly.Reading
	for _, o := range kept {
		if o.Code != "WL" || o.MeterageStart == nil {
			continue
		}
		pct, ok := parser.FirstPercent(o.FullText)
		if !ok {
			continue
		}
		readings = append(readings, belly.Reading{Meterage: *o.MeterageStart, Percent: pct})
	}
	return belly.Analyze(readings, thresholds)
}

// methodsFor unions a method table over the record's distinct codes, sorted
// for deterministic output.
func (e *Engine) methodsFor(observations []model.ParsedObservation, lookup func(string) []string) []string {
	seen := make(map[string]bool)
	var methods []string
	for _, o := range observations {
		for _, m := range lookup(o.Code) {
			if !seen[m] {
				seen[m] = true
				methods = append(methods, m)
			}
		}
	}
	sort.Strings(methods)
	return methods
}

func joinFullText(observations []model.ParsedObservation) string {
	out := ""
	for i, o := range observations {
		if i > 0 {
			out += "; "
		}
		out += o.FullText
	}
	return out
}

func rawObservations(observations []model.ParsedObservation) []string {
	if len(observations) == 0 {
		return nil
	}
	raws := make([]string, len(observations))
	for i, o := range observations {
		raws[i] = o.FullText
	}
	return raws
}
