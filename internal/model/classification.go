package model

// Adoptability is the verdict on whether a section meets the sector's
// standard for acceptance into a maintained network.
type Adoptability string

const (
	AdoptableYes         Adoptability = "Yes"
	AdoptableNo          Adoptability = "No"
	AdoptableConditional Adoptability = "Conditional"
)

// CategoryGrades holds the per-category severity result. A nil grade means
// no retained observation of that category was present.
type CategoryGrades struct {
	Structural *int `json:"structural"`
	Service    *int `json:"service"`
}

// SRMGrading is the taxonomy/threshold row actually used for the dominant
// classification, carried through for traceability.
type SRMGrading struct {
	Code          string   `json:"code"`
	Category      Category `json:"category"`
	Grade         int      `json:"grade"`
	RiskNarrative string   `json:"risk_narrative,omitempty"`
	Standard      string   `json:"standard,omitempty"` // citing standard, from the sector record
}

// SectionClassification is the engine's output: one per physical section,
// or one per sub-section when a mixed section is split. Constructed fresh on
// every classification call and never partially mutated.
type SectionClassification struct {
	// ItemID is the section identifier: the bare item number for service
	// (and unsplit) records, the number plus a letter suffix for the
	// structural half of a split ("12a").
	ItemID string `json:"item_id"`

	DefectSummaryText string         `json:"defect_summary"` // joined text actually retained after filtering
	Category          Category       `json:"category"`
	SeverityGrade     int            `json:"severity_grade"` // 0–5
	SeverityBy        CategoryGrades `json:"severity_by_category"`
	Recommendation    string         `json:"recommendation"`
	Adoptable         Adoptability   `json:"adoptable"`
	SRM               SRMGrading     `json:"srm_grading"`

	// Method lookups for the caller's pricing dialogs, keyed off the
	// distinct retained codes.
	RepairMethods   []string `json:"repair_methods,omitempty"`
	CleaningMethods []string `json:"cleaning_methods,omitempty"`

	// Belly analysis result, present when the section carried three or
	// more water-level readings.
	Belly *BellyResult `json:"belly,omitempty"`

	// RawObservations preserves the retained observation strings for
	// audit. Stripped at minimal output verbosity.
	RawObservations []string `json:"raw_observations,omitempty"`
}

// BellyResult is the outcome of rise-then-fall analysis over a section's
// water-level readings.
type BellyResult struct {
	HasBelly       bool    `json:"has_belly"`
	MaxWaterLevel  float64 `json:"max_water_level"` // percent
	FailsThreshold bool    `json:"fails_threshold"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// SplitSectionPair is produced when one section's text yields both
// structural and service codes. The caller owns persistence of both records
// as siblings.
type SplitSectionPair struct {
	Service    SectionClassification `json:"service"`
	Structural SectionClassification `json:"structural"`
}

// Records returns the pair as a slice, service first. Splitting is lossless:
// the union of the two records' defects equals the section's full filtered
// defect set.
func (p SplitSectionPair) Records() []SectionClassification {
	return []SectionClassification{p.Service, p.Structural}
}
