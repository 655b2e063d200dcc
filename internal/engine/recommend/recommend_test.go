package recommend

import (
	"strings"
	"testing"

	"github.com/oakmere/drainsight/internal/engine/grading"
	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	tax, err := taxonomy.New(taxonomy.Default(), taxonomy.DefaultRepairMethods(), taxonomy.DefaultCleaningMethods())
	if err != nil {
		t.Fatalf("taxonomy.New() error: %v", err)
	}
	return New(tax)
}

func fptr(v float64) *float64 { return &v }

func TestCompose_LineDeviation(t *testing.T) {
	g := newTestGenerator(t)

	text, dominant := g.Compose(nil, grading.KindLineDeviation, 0)
	if !strings.Contains(text, "cleanse and resurvey") {
		t.Errorf("Compose() = %q, want cleanse-and-resurvey advice", text)
	}
	if dominant != nil {
		t.Errorf("dominant = %+v, want nil for observation-only", dominant)
	}
}

func TestCompose_NoCodingPresent(t *testing.T) {
	g := newTestGenerator(t)

	text, _ := g.Compose(nil, grading.KindNoCodingPresent, 0)
	if text != "No action required." {
		t.Errorf("Compose() = %q, want %q", text, "No action required.")
	}
}

func TestCompose_DominantByPriority(t *testing.T) {
	g := newTestGenerator(t)

	// CR (priority 58) outranks DER (priority 40): the repair instruction
	// wins over the cleaning one.
	observations := []model.ParsedObservation{
		{Code: "DER", FullText: "DER 3.5m light deposits"},
		{Code: "CR", FullText: "CR 3.2m crack"},
	}
	text, dominant := g.Compose(observations, grading.KindDefect, 0)
	if dominant == nil || dominant.Code != "CR" {
		t.Fatalf("dominant = %+v, want CR", dominant)
	}
	if !strings.HasPrefix(text, "Install a patch repair at the crack") {
		t.Errorf("Compose() = %q, want the CR action template", text)
	}
	if !strings.Contains(text, "codes CR, DER") {
		t.Errorf("Compose() = %q, want distinct codes listed", text)
	}
}

func TestCompose_SiteClause(t *testing.T) {
	g := newTestGenerator(t)

	observations := []model.ParsedObservation{
		{Code: "CR", MeterageStart: fptr(3.2), FullText: "CR 3.2m crack, 12% cross-sectional area loss"},
	}
	text, _ := g.Compose(observations, grading.KindDefect, 22.5)
	want := "Install a patch repair at the crack (codes CR; max 12%; at 3.20m; section length 22.5m)."
	if text != want {
		t.Errorf("Compose() = %q, want %q", text, want)
	}
}

func TestCompose_SiteClauseOmitsAbsentDetail(t *testing.T) {
	g := newTestGenerator(t)

	// No meterage, no percentage, no length: only the code survives.
	observations := []model.ParsedObservation{{Code: "CR", FullText: "CR crack"}}
	text, _ := g.Compose(observations, grading.KindDefect, 0)
	want := "Install a patch repair at the crack (codes CR)."
	if text != want {
		t.Errorf("Compose() = %q, want %q", text, want)
	}
}

func TestCompose_MaxPercentAcrossObservations(t *testing.T) {
	g := newTestGenerator(t)

	observations := []model.ParsedObservation{
		{Code: "DER", FullText: "DER 3.5m deposits, 15% cross-sectional area loss"},
		{Code: "DES", FullText: "DES 6.0m deposits, 40% cross-sectional area loss"},
	}
	text, _ := g.Compose(observations, grading.KindDefect, 0)
	if !strings.Contains(text, "max 40%") {
		t.Errorf("Compose() = %q, want the highest figure reported", text)
	}
}

func TestCompose_NoActionableCode(t *testing.T) {
	g := newTestGenerator(t)

	// Unknown codes carry no action template.
	observations := []model.ParsedObservation{{Code: "ZZ", FullText: "ZZ marking"}}
	text, dominant := g.Compose(observations, grading.KindDefect, 0)
	if text != "No action required." || dominant != nil {
		t.Errorf("Compose() = %q, %+v; want no-action fallback", text, dominant)
	}
}

func TestAdoptability(t *testing.T) {
	tests := []struct {
		category model.Category
		grade    int
		want     model.Adoptability
	}{
		{model.ObservationOnly, 0, model.AdoptableYes},
		{model.Structural, 1, model.AdoptableYes},
		{model.Service, 1, model.AdoptableYes},
		{model.Structural, 2, model.AdoptableConditional},
		{model.Service, 2, model.AdoptableConditional},
		{model.Structural, 3, model.AdoptableConditional},
		{model.Service, 3, model.AdoptableConditional},
		{model.Structural, 4, model.AdoptableNo},
		{model.Service, 4, model.AdoptableNo},
		{model.Structural, 5, model.AdoptableNo},
	}
	for _, tt := range tests {
		if got := Adoptability(tt.category, tt.grade); got != tt.want {
			t.Errorf("Adoptability(%q, %d) = %q, want %q", tt.category, tt.grade, got, tt.want)
		}
	}
}
