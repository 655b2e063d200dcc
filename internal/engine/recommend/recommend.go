// Package recommend composes the human-readable repair or cleaning
// instruction for a classified record and resolves its adoptability verdict.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oakmere/drainsight/internal/engine/grading"
	"github.com/oakmere/drainsight/internal/engine/parser"
	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
)

// Generator builds recommendation text from taxonomy action templates and
// site specifics extracted from the retained observations.
type Generator struct {
	tax *taxonomy.Taxonomy
}

// New creates a Generator over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Generator {
	return &Generator{tax: tax}
}

// Compose returns the recommendation for one record and the taxonomy entry
// that supplied the action template. When several codes are present, the
// entry with the highest action priority wins; the site clause appends
// distinct codes, the maximum percentage, meterage points and section
// length, omitting whatever the text did not provide.
func (g *Generator) Compose(observations []model.ParsedObservation, kind grading.ObservationKind, lengthM float64) (string, *model.DefectEntry) {
	switch kind {
	case grading.KindLineDeviation:
		return "No defect coding present; recommend cleanse and resurvey to confirm line and gradient.", nil
	case grading.KindNoCodingPresent:
		return "No action required.", nil
	}

	dominant := g.dominantEntry(observations)
	if dominant == nil {
		return "No action required.", nil
	}

	text := dominant.Action
	if clause := g.siteClause(observations, lengthM); clause != "" {
		text = text + " (" + clause + ")."
	} else {
		text += "."
	}
	return text, dominant
}

// dominantEntry picks the retained code with the highest action priority.
// Ties resolve to the higher default grade, then code order, keeping the
// result deterministic.
func (g *Generator) dominantEntry(observations []model.ParsedObservation) *model.DefectEntry {
	var best *model.DefectEntry
	for _, o := range observations {
		e, ok := g.tax.Lookup(o.Code)
		if !ok || e.Action == "" {
			continue
		}
		if best == nil || e.ActionPriority > best.ActionPriority ||
			(e.ActionPriority == best.ActionPriority && e.DefaultGrade > best.DefaultGrade) ||
			(e.ActionPriority == best.ActionPriority && e.DefaultGrade == best.DefaultGrade && e.Code < best.Code) {
			entry := e
			best = &entry
		}
	}
	return best
}

func (g *Generator) siteClause(observations []model.ParsedObservation, lengthM float64) string {
	var parts []string

	if codes := distinctCodes(observations); len(codes) > 0 {
		parts = append(parts, "codes "+strings.Join(codes, ", "))
	}

	maxPct, havePct := 0.0, false
	for _, o := range observations {
		if pct, ok := parser.FirstPercent(o.FullText); ok && (!havePct || pct > maxPct) {
			maxPct, havePct = pct, true
		}
	}
	if havePct {
		parts = append(parts, fmt.Sprintf("max %.0f%%", maxPct))
	}

	if points := meteragePoints(observations); len(points) > 0 {
		parts = append(parts, "at "+strings.Join(points, ", "))
	}

	if lengthM > 0 {
		parts = append(parts, fmt.Sprintf("section length %.1fm", lengthM))
	}

	return strings.Join(parts, "; ")
}

func distinctCodes(observations []model.ParsedObservation) []string {
	seen := make(map[string]bool, len(observations))
	var codes []string
	for _, o := range observations {
		if o.Code == "" || seen[o.Code] {
			continue
		}
		seen[o.Code] = true
		codes = append(codes, o.Code)
	}
	sort.Strings(codes)
	return codes
}

func meteragePoints(observations []model.ParsedObservation) []string {
	var metres []float64
	for _, o := range observations {
		if o.MeterageStart != nil {
			metres = append(metres, *o.MeterageStart)
		}
	}
	sort.Float64s(metres)
	points := make([]string, 0, len(metres))
	for _, m := range metres {
		points = append(points, fmt.Sprintf("%.2fm", m))
	}
	return points
}

// Adoptability maps a record's category and grade to the acceptance
// verdict. Pure function of (category, grade); sector thresholds influence
// grading upstream, never this mapping.
func Adoptability(category model.Category, grade int) model.Adoptability {
	switch {
	case grade == 0:
		return model.AdoptableYes
	case grade >= 4:
		return model.AdoptableNo
	case grade == 3:
		return model.AdoptableConditional
	case grade == 2 && category == model.Structural:
		return model.AdoptableConditional
	case grade >= 2 && category == model.Service:
		return model.AdoptableConditional
	default:
		return model.AdoptableYes
	}
}
