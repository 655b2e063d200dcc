package model

// Category is the defect classification axis used for grading and splitting.
type Category string

const (
	// Structural defects threaten pipe integrity: cracks, fractures,
	// displaced joints, deformation.
	Structural Category = "structural"
	// Service defects affect flow or operation without structural
	// compromise: deposits, obstructions, water level, roots.
	Service Category = "service"
	// Construction codes are survey metadata (manhole markers, node
	// references). They are never defects and never graded.
	Construction Category = "construction"
	// ObservationOnly marks a section whose retained content carries no
	// defect at all (line deviation, bends, or no coding present).
	ObservationOnly Category = "observation-only"
)

// DefectEntry is one immutable row of the defect taxonomy: everything the
// engine knows about a code before it sees site-specific text.
type DefectEntry struct {
	Code           string   `json:"code" yaml:"code"`
	Category       Category `json:"category" yaml:"category"`
	DefaultGrade   int      `json:"default_grade" yaml:"default_grade"` // 0–5
	RiskNarrative  string   `json:"risk_narrative" yaml:"risk_narrative"`
	Action         string   `json:"action" yaml:"action"` // recommended-action template
	ActionPriority int      `json:"action_priority" yaml:"action_priority"`

	// Junction codes are only reportable near a structural defect;
	// metadata codes are always excluded. Both flags drive the filter.
	IsJunction bool `json:"is_junction,omitempty" yaml:"is_junction,omitempty"`
	IsMetadata bool `json:"is_metadata,omitempty" yaml:"is_metadata,omitempty"`
}
