package main

import (
	"fmt"
	"os"

	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/logging"
	"github.com/oakmere/drainsight/internal/sector"
)

// loadTaxonomy returns the built-in taxonomy, amended by the YAML overlay
// at path when one is configured.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	tax, err := taxonomy.New(taxonomy.Default(),
		taxonomy.DefaultRepairMethods(), taxonomy.DefaultCleaningMethods())
	if err != nil {
		return nil, err
	}
	if path == "" {
		return tax, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy overlay: %w", err)
	}
	overlay, err := taxonomy.ParseOverlay(data)
	if err != nil {
		return nil, err
	}
	return tax.Merge(overlay)
}

// loadSectors returns the sector threshold table from the YAML document at
// path, or the built-in defaults when no path is configured or the file is
// unreadable. A broken configuration store must not stop classification, so
// read failures degrade to the defaults with a logged warning.
func loadSectors(path string) (*sector.Table, error) {
	log := logging.Component("sector")
	records := sector.Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if parsed, perr := sector.ParseYAML(data); perr == nil {
				records = parsed
			} else {
				log.Warn("threshold table unreadable, using built-in defaults", "path", path, "error", perr)
			}
		} else {
			log.Warn("threshold table unreadable, using built-in defaults", "path", path, "error", err)
		}
	}
	return sector.NewTable(records, log)
}
