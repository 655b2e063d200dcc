package output

import (
	"testing"

	"github.com/oakmere/drainsight/internal/model"
)

func sampleRecord() model.SectionClassification {
	return model.SectionClassification{
		ItemID:        "12",
		Category:      model.Structural,
		SeverityGrade: 3,
		SRM: model.SRMGrading{
			Code:          "FC",
			Category:      model.Structural,
			Grade:         3,
			RiskNarrative: "Circumferential fracture. Wall fragments displaced; deterioration expected.",
		},
		Recommendation:  "Install a structural patch liner at the fracture.",
		RawObservations: []string{"FC 8.20m (circumferential fracture)"},
	}
}

func TestFormatClassification_Minimal(t *testing.T) {
	rec := FormatClassification(sampleRecord(), Minimal)

	if rec.RawObservations != nil {
		t.Errorf("RawObservations = %v, want stripped at minimal", rec.RawObservations)
	}
	if rec.SRM.RiskNarrative != "" {
		t.Errorf("RiskNarrative = %q, want stripped at minimal", rec.SRM.RiskNarrative)
	}
	// Verdict fields always survive.
	if rec.SeverityGrade != 3 || rec.Recommendation == "" {
		t.Errorf("verdict fields lost: %+v", rec)
	}
}

func TestFormatClassification_StandardAndFull(t *testing.T) {
	for _, v := range []Verbosity{Standard, Full} {
		rec := FormatClassification(sampleRecord(), v)
		if len(rec.RawObservations) != 1 {
			t.Errorf("verbosity %d: RawObservations = %v, want retained", v, rec.RawObservations)
		}
		if rec.SRM.RiskNarrative == "" {
			t.Errorf("verbosity %d: RiskNarrative stripped", v)
		}
	}
}

func TestFormatClassification_DoesNotMutateInput(t *testing.T) {
	in := sampleRecord()
	FormatClassification(in, Minimal)
	if in.RawObservations == nil || in.SRM.RiskNarrative == "" {
		t.Error("FormatClassification mutated its input")
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in   string
		want Verbosity
	}{
		{"minimal", Minimal},
		{"standard", Standard},
		{"full", Full},
		{"", Standard},
		{"bogus", Standard},
	}
	for _, tt := range tests {
		if got := ParseVerbosity(tt.in); got != tt.want {
			t.Errorf("ParseVerbosity(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
