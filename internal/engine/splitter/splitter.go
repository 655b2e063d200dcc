// Package splitter partitions a mixed section's retained observations into
// per-category classification inputs. A section carrying both structural and
// service defects becomes two sibling records: the service half keeps the
// original item identifier, the structural half gains a letter suffix.
package splitter

import (
	"strconv"

	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
)

// Partition is the result of splitting one section's observation set.
// Splitting is lossless: every retained observation lands in exactly one
// bucket.
type Partition struct {
	// Split is true when both defect categories were present and two
	// records must be emitted.
	Split bool

	// Service holds service defects plus non-junction observation codes.
	// When Split is false this is the whole retained set.
	Service []model.ParsedObservation

	// Structural holds structural defects plus any retained junctions (a
	// junction only survives filtering because of a nearby structural
	// defect, so it belongs with the structural record).
	Structural []model.ParsedObservation
}

// Splitter partitions observation sets by defect category.
type Splitter struct {
	tax *taxonomy.Taxonomy
}

// New creates a Splitter over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Splitter {
	return &Splitter{tax: tax}
}

// Partition divides the retained observations by category. Only when both
// structural and service defects are present does the section split; a
// single-category section passes through as one unmodified record.
func (s *Splitter) Partition(kept []model.ParsedObservation) Partition {
	var structural, service []model.ParsedObservation
	var hasStructural, hasService bool

	for _, o := range kept {
		switch {
		case o.IsStructural:
			hasStructural = true
			structural = append(structural, o)
		case o.IsService:
			hasService = true
			service = append(service, o)
		case s.isJunction(o.Code):
			structural = append(structural, o)
		default:
			service = append(service, o)
		}
	}

	if hasStructural && hasService {
		return Partition{Split: true, Service: service, Structural: structural}
	}
	return Partition{Service: kept}
}

// ItemID renders a section identifier: the bare item number for the primary
// record, a lowercase letter suffix for split sub-records ("12a" for the
// first split).
func ItemID(itemNo, splitIndex int) string {
	id := strconv.Itoa(itemNo)
	if splitIndex <= 0 {
		return id
	}
	// splitIndex 1 → "a"; wraps past "z" only if a section ever yields more
	// than 26 categories, which the taxonomy cannot produce.
	return id + string(rune('a'+(splitIndex-1)%26))
}

func (s *Splitter) isJunction(code string) bool {
	e, ok := s.tax.Lookup(code)
	return ok && e.IsJunction
}
