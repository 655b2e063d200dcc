package output

import (
	"context"

	"github.com/oakmere/drainsight/internal/model"
)

// Output defines the interface for classification record destinations.
type Output interface {
	Write(ctx context.Context, rec model.SectionClassification) error
	Close() error
}
