package multi

import (
	"context"
	"errors"

	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/output"
)

// Multi fans one classification record out to several destinations. A
// failing destination does not stop delivery to the rest; errors are
// joined and returned together.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi over the given outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

// Write delivers the record to every wrapped output.
func (m *Multi) Write(ctx context.Context, rec model.SectionClassification) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every wrapped output, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
