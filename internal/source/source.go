// Package source defines the interface for survey input readers: anything
// that can produce a batch of pipe sections with their raw observation
// strings. The binary/PDF survey formats are parsed upstream; readers here
// consume the already-textual exports.
package source

import (
	"context"

	"github.com/oakmere/drainsight/internal/model"
)

// Source reads survey sections from a configured location.
type Source interface {
	// Read loads the full set of sections for one survey.
	Read(ctx context.Context, cfg Config) ([]model.Section, error)
}

// Config holds format-specific reader settings.
type Config struct {
	Format string
	Path   string
}
