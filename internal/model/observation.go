package model

// ParsedObservation is the intermediate type produced by the parser and
// consumed by the filter and grading stages. One per raw observation string.
type ParsedObservation struct {
	Code          string   // taxonomy code, upper-cased ("CR", "DER")
	MeterageStart *float64 // metres from section start; nil when not stated
	MeterageEnd   *float64 // set only for running defects
	Description   string   // free text after the code
	FullText      string   // original string, preserved for audit and recommendation composition

	// Category flags are derived from the taxonomy at parse time and are
	// never set independently, so a code's declared category and its flags
	// cannot drift apart.
	IsStructural bool
	IsService    bool

	// Synthesized is true when the code was inferred from description
	// phrasing rather than present in the source text.
	Synthesized bool
}

// Ranged reports whether the observation is a running defect spanning a
// meterage interval.
func (o ParsedObservation) Ranged() bool {
	return o.MeterageStart != nil && o.MeterageEnd != nil
}

// Section is one physical pipe section as supplied by the caller: the raw
// observation strings plus optional externally sourced override grades.
type Section struct {
	ItemNo       int             `json:"item_no" yaml:"item_no"`
	Observations []string        `json:"observations" yaml:"observations"`
	Overrides    *OverrideGrades `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	LengthM      float64         `json:"length_m,omitempty" yaml:"length_m,omitempty"` // total surveyed length, 0 when unknown
}

// OverrideGrades carries grades assigned upstream (e.g. by the survey
// contractor's own software). A nil field means no override for that
// category. Overrides win on the numeric value only; the category itself is
// re-validated against the observation text.
type OverrideGrades struct {
	Structural  *int `json:"structural" yaml:"structural"`
	Service     *int `json:"service" yaml:"service"`
	Observation *int `json:"observation" yaml:"observation"`
}
