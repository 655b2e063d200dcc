package drainsight

import (
	"fmt"
	"log/slog"

	"github.com/oakmere/drainsight/internal/engine"
	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/sector"
)

// Public aliases for the engine's input and output shapes, so callers never
// import internal packages.
type (
	Section               = model.Section
	OverrideGrades        = model.OverrideGrades
	SectionClassification = model.SectionClassification
	SplitSectionPair      = model.SplitSectionPair
	DefectEntry           = model.DefectEntry
	SectorThresholds      = model.SectorThresholds
	Category              = model.Category
	Adoptability          = model.Adoptability
)

// Classifier is a survey-section classification engine. Create once with
// the reference tables loaded; safe for concurrent use.
type Classifier struct {
	engine  *engine.Engine
	tax     *taxonomy.Taxonomy
	sectors *sector.Table
}

// New creates a Classifier. Without options it carries the built-in defect
// taxonomy, method tables and sector thresholds. The only fatal condition
// is an empty taxonomy.
func New(opts ...Option) (*Classifier, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tax, err := taxonomy.New(o.entries, o.repair, o.cleaning)
	if err != nil {
		return nil, fmt.Errorf("drainsight: %w", err)
	}
	if o.overlay != nil {
		ov, err := taxonomy.ParseOverlay(o.overlay)
		if err != nil {
			return nil, fmt.Errorf("drainsight: %w", err)
		}
		if tax, err = tax.Merge(ov); err != nil {
			return nil, fmt.Errorf("drainsight: %w", err)
		}
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	sectors, err := sector.NewTable(o.thresholds, logger)
	if err != nil {
		return nil, fmt.Errorf("drainsight: %w", err)
	}

	return &Classifier{
		engine:  engine.New(tax, sectors, logger),
		tax:     tax,
		sectors: sectors,
	}, nil
}

// Classify classifies one section given its raw observation strings,
// optional override grades and the active sector. Returns one record, or
// two when the section mixes structural and service defects.
func (c *Classifier) Classify(observations []string, overrides *OverrideGrades, sectorID string, itemNo int) []SectionClassification {
	return c.ClassifySection(Section{
		ItemNo:       itemNo,
		Observations: observations,
		Overrides:    overrides,
	}, sectorID)
}

// ClassifySection classifies one section.
func (c *Classifier) ClassifySection(sec Section, sectorID string) []SectionClassification {
	return c.engine.ClassifySection(sec, sectorID)
}

// ClassifySectionPair classifies one section and surfaces the split shape
// explicitly: pair is non-nil only when the section yields both a service
// and a structural record. records always carries the full result,
// identical to ClassifySection.
func (c *Classifier) ClassifySectionPair(sec Section, sectorID string) (records []SectionClassification, pair *SplitSectionPair) {
	records = c.engine.ClassifySection(sec, sectorID)
	if len(records) == 2 {
		pair = &SplitSectionPair{Service: records[0], Structural: records[1]}
	}
	return records, pair
}

// ClassifyBatch classifies a slice of sections, one result slice per
// section in input order. Sections are independent; callers wanting
// parallelism may shard the batch across goroutines instead.
func (c *Classifier) ClassifyBatch(sections []Section, sectorID string) [][]SectionClassification {
	out := make([][]SectionClassification, len(sections))
	for i, sec := range sections {
		out[i] = c.engine.ClassifySection(sec, sectorID)
	}
	return out
}

// Codes returns the configured taxonomy codes.
func (c *Classifier) Codes() []string {
	return c.tax.Codes()
}

// Sectors returns the configured sector ids.
func (c *Classifier) Sectors() []string {
	return c.sectors.Sectors()
}
