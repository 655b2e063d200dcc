// Package filter applies the proximity and exclusion rules that decide which
// parsed observations a section's classification is allowed to see.
package filter

import (
	"fmt"
	"math"

	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
)

// JunctionProximity is the distance (metres) within which a junction is
// implicated by a structural defect and therefore worth reporting: a nearby
// fault may need cut-and-patch access through the junction. The boundary is
// inclusive.
const JunctionProximity = 0.7

// proximityEps absorbs float representation error so that a junction at
// exactly defect ± 0.7 lands inside the boundary.
const proximityEps = 1e-9

// Result is the retained observation subset plus the aggregate category
// flags the splitter and grading stages need.
type Result struct {
	Kept          []model.ParsedObservation
	HasStructural bool
	HasService    bool
}

// Filter drops metadata observations and out-of-range junctions.
type Filter struct {
	tax *taxonomy.Taxonomy
}

// New creates a Filter over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Filter {
	return &Filter{tax: tax}
}

// Apply filters one section's parsed observations. Rules, per observation:
// metadata codes (manhole markers) never survive; junction codes survive
// only within JunctionProximity of a structural defect; everything else
// passes through unchanged. Exact duplicate rows (same code, meterage and
// description) are collapsed to their first occurrence; survey exports
// routinely repeat rows at clip boundaries.
func (f *Filter) Apply(observations []model.ParsedObservation) Result {
	deduped := dedupe(observations)

	var res Result
	for _, o := range deduped {
		entry, known := f.tax.Lookup(o.Code)
		if known && entry.IsMetadata {
			continue
		}
		if known && entry.IsJunction {
			if !f.nearStructural(o, deduped) {
				continue
			}
		}
		res.Kept = append(res.Kept, o)
		if o.IsStructural {
			res.HasStructural = true
		}
		if o.IsService {
			res.HasService = true
		}
	}
	return res
}

// nearStructural reports whether a junction observation sits within the
// proximity boundary of any structural defect: for point defects the
// absolute distance, for ranged defects the span expanded by the boundary on
// each side.
func (f *Filter) nearStructural(junction model.ParsedObservation, all []model.ParsedObservation) bool {
	if junction.MeterageStart == nil {
		return false
	}
	at := *junction.MeterageStart
	for _, o := range all {
		if !o.IsStructural || o.MeterageStart == nil {
			continue
		}
		if o.Ranged() {
			if at >= *o.MeterageStart-JunctionProximity-proximityEps &&
				at <= *o.MeterageEnd+JunctionProximity+proximityEps {
				return true
			}
			continue
		}
		if math.Abs(at-*o.MeterageStart) <= JunctionProximity+proximityEps {
			return true
		}
	}
	return false
}

func dedupe(observations []model.ParsedObservation) []model.ParsedObservation {
	seen := make(map[string]bool, len(observations))
	out := make([]model.ParsedObservation, 0, len(observations))
	for _, o := range observations {
		key := dedupeKey(o)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, o)
	}
	return out
}

func dedupeKey(o model.ParsedObservation) string {
	start, end := math.NaN(), math.NaN()
	if o.MeterageStart != nil {
		start = *o.MeterageStart
	}
	if o.MeterageEnd != nil {
		end = *o.MeterageEnd
	}
	return fmt.Sprintf("%s|%v|%v|%s", o.Code, start, end, o.Description)
}
