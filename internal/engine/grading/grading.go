// Package grading converts retained observations into section-level severity
// grades per category, applying percentage escalation and the standard's
// named overrides.
package grading

import (
	"fmt"
	"strings"

	"github.com/oakmere/drainsight/internal/engine/parser"
	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
)

// ObservationKind distinguishes the non-defect sub-cases a section can
// reduce to once no structural or service defect survives filtering.
type ObservationKind int

const (
	KindDefect          ObservationKind = iota // at least one graded defect present
	KindLineDeviation                          // line-deviation or bend observations only
	KindNoCodingPresent                        // declared "no coding present", or nothing retained at all
)

// Result is the grading outcome for one record's observation set.
type Result struct {
	Structural *int // nil when no structural observation retained
	Service    *int // nil when no service observation retained

	// Grade is the section severity: the maximum across category grades,
	// or 0 for observation-only sections.
	Grade    int
	Category model.Category
	Kind     ObservationKind

	// Inconsistencies records override grades that claimed a category the
	// text does not support. Recoverable: the text-derived category wins.
	Inconsistencies []string
}

// Grader computes severity grades from taxonomy defaults and description
// percentages.
type Grader struct {
	tax *taxonomy.Taxonomy
}

// New creates a Grader over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Grader {
	return &Grader{tax: tax}
}

// Grade computes the severity result for a set of retained observations.
// Override grades, when supplied, win on the numeric value for their
// category, but only when the text actually evidences that category; a
// stale upstream grade cannot relabel a section.
func (g *Grader) Grade(observations []model.ParsedObservation, overrides *model.OverrideGrades) Result {
	var res Result

	for _, o := range observations {
		entry, ok := g.tax.Lookup(o.Code)
		if !ok {
			continue
		}
		switch entry.Category {
		case model.Structural:
			grade := g.ObservationGrade(o)
			res.Structural = maxGrade(res.Structural, grade)
		case model.Service:
			grade := g.ObservationGrade(o)
			res.Service = maxGrade(res.Service, grade)
		}
	}

	g.applyOverrides(&res, overrides)

	// Named critical-risk rule: deformation with cross-sectional area loss
	// is grade 4 structural regardless of the computed or overridden value.
	if deformationWithAreaLoss(observations) {
		four := 4
		res.Structural = &four
	}

	if res.Structural == nil && res.Service == nil {
		res.Grade = 0
		res.Category = model.ObservationOnly
		res.Kind = observationKind(observations)
		return res
	}

	res.Kind = KindDefect
	if res.Structural != nil && (res.Service == nil || *res.Structural >= *res.Service) {
		res.Grade = *res.Structural
		res.Category = model.Structural
	} else {
		res.Grade = *res.Service
		res.Category = model.Service
	}
	return res
}

// ObservationGrade returns one observation's grade: the taxonomy default
// escalated by the first percentage figure in its description. ≥50% adds two
// grades, ≥30% one, ≥10% none; below 10% the defect is reduced one grade.
// Grades stay within 1–5.
func (g *Grader) ObservationGrade(o model.ParsedObservation) int {
	entry, ok := g.tax.Lookup(o.Code)
	if !ok {
		return 0
	}
	grade := entry.DefaultGrade
	pct, found := parser.FirstPercent(o.Description)
	if !found {
		pct, found = parser.FirstPercent(o.FullText)
	}
	if !found {
		return grade
	}
	switch {
	case pct >= 50:
		grade += 2
	case pct >= 30:
		grade++
	case pct >= 10:
		// unchanged
	default:
		grade--
	}
	if grade > 5 {
		grade = 5
	}
	if grade < 1 {
		grade = 1
	}
	return grade
}

func (g *Grader) applyOverrides(res *Result, overrides *model.OverrideGrades) {
	if overrides == nil {
		return
	}
	if overrides.Structural != nil {
		if res.Structural != nil {
			v := *overrides.Structural
			res.Structural = &v
		} else {
			res.Inconsistencies = append(res.Inconsistencies,
				fmt.Sprintf("structural override grade %d has no structural evidence in text", *overrides.Structural))
		}
	}
	if overrides.Service != nil {
		if res.Service != nil {
			v := *overrides.Service
			res.Service = &v
		} else {
			res.Inconsistencies = append(res.Inconsistencies,
				fmt.Sprintf("service override grade %d has no service evidence in text", *overrides.Service))
		}
	}
	if overrides.Observation != nil && *overrides.Observation != 0 &&
		res.Structural == nil && res.Service == nil {
		// Observation-only sections are always grade 0 under the standard.
		res.Inconsistencies = append(res.Inconsistencies,
			fmt.Sprintf("observation override grade %d ignored for observation-only section", *overrides.Observation))
	}
}

// deformationWithAreaLoss reports whether the retained text names both a
// deformation and a cross-sectional area loss.
func deformationWithAreaLoss(observations []model.ParsedObservation) bool {
	var hasDeformation, hasAreaLoss bool
	for _, o := range observations {
		text := strings.ToLower(o.FullText)
		if strings.Contains(text, "deformation") || strings.Contains(text, "deformity") ||
			strings.Contains(text, "deformed") {
			hasDeformation = true
		}
		if strings.Contains(text, "cross-sectional area loss") ||
			strings.Contains(text, "cross sectional area loss") {
			hasAreaLoss = true
		}
	}
	return hasDeformation && hasAreaLoss
}

// observationKind picks the non-defect sub-case: line deviation or bend
// observations get a cleanse-and-resurvey recommendation, a declared (or
// total) absence of coding gets none.
func observationKind(observations []model.ParsedObservation) ObservationKind {
	if len(observations) == 0 {
		return KindNoCodingPresent
	}
	lineDeviation := false
	for _, o := range observations {
		switch o.Code {
		case "LD", "LU", "LL", "LR", "LC":
			lineDeviation = true
		case "NCP":
			// declared no-coding state
		default:
			text := strings.ToLower(o.FullText)
			if strings.Contains(text, "line deviates") || strings.Contains(text, "bend") {
				lineDeviation = true
			}
		}
	}
	if lineDeviation {
		return KindLineDeviation
	}
	return KindNoCodingPresent
}

func maxGrade(current *int, grade int) *int {
	if current == nil || grade > *current {
		return &grade
	}
	return current
}
