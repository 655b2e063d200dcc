package drainsight

import (
	"log/slog"

	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/sector"
)

type options struct {
	entries    []model.DefectEntry
	repair     map[string][]string
	cleaning   map[string][]string
	overlay    []byte
	thresholds []model.SectorThresholds
	logger     *slog.Logger
}

// Option configures a Classifier.
type Option func(*options)

// WithTaxonomy replaces the built-in defect taxonomy entirely.
func WithTaxonomy(entries []DefectEntry) Option {
	return func(o *options) { o.entries = entries }
}

// WithTaxonomyOverlayYAML amends the taxonomy with a YAML overlay document
// (entries and method lists replace same-code defaults).
func WithTaxonomyOverlayYAML(doc []byte) Option {
	return func(o *options) { o.overlay = doc }
}

// WithRepairMethods replaces the repair-method reference table.
func WithRepairMethods(methods map[string][]string) Option {
	return func(o *options) { o.repair = methods }
}

// WithCleaningMethods replaces the cleaning-method reference table.
func WithCleaningMethods(methods map[string][]string) Option {
	return func(o *options) { o.cleaning = methods }
}

// WithSectorThresholds replaces the built-in sector threshold table, e.g.
// with records from a persisted configuration store.
func WithSectorThresholds(thresholds []SectorThresholds) Option {
	return func(o *options) { o.thresholds = thresholds }
}

// WithLogger sets the diagnostic sink for recoverable inconsistencies and
// threshold fallbacks. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func defaultOptions() options {
	return options{
		entries:    taxonomy.Default(),
		repair:     taxonomy.DefaultRepairMethods(),
		cleaning:   taxonomy.DefaultCleaningMethods(),
		thresholds: sector.Default(),
	}
}
