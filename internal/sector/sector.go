// Package sector holds the per-sector threshold table: the numeric limits a
// client sector's governing standard imposes on water level and belly
// severity. Thresholds are data, not code, so a standard revision is a
// configuration change.
package sector

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakmere/drainsight/internal/model"
)

// Table is a read-only sector threshold lookup. Unknown sectors fail closed
// to the most conservative configured record.
type Table struct {
	records      map[string]model.SectorThresholds
	conservative model.SectorThresholds
	log          *slog.Logger
}

// NewTable builds a Table from threshold records. The most conservative
// record (lowest belly-failure level, then lowest water level) becomes the
// fallback for unknown sector ids. Lookups on unknown sectors are reported
// through logger.
func NewTable(records []model.SectorThresholds, logger *slog.Logger) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("sector: no threshold records configured")
	}
	if logger == nil {
		logger = slog.Default()
	}
	m := make(map[string]model.SectorThresholds, len(records))
	conservative := records[0]
	for _, r := range records {
		id := strings.ToLower(r.Sector)
		if id == "" {
			return nil, fmt.Errorf("sector: threshold record with empty sector id")
		}
		if _, dup := m[id]; dup {
			return nil, fmt.Errorf("sector: duplicate threshold record for %q", id)
		}
		r.Sector = id
		m[id] = r
		if moreConservative(r, conservative) {
			conservative = r
		}
	}
	return &Table{records: m, conservative: conservative, log: logger}, nil
}

// Lookup returns the thresholds for a sector id (case-insensitive). A
// missing sector returns the most conservative configured record and logs
// that the fallback was used.
func (t *Table) Lookup(sector string) model.SectorThresholds {
	r, ok := t.records[strings.ToLower(sector)]
	if !ok {
		t.log.Warn("unknown sector, using conservative fallback thresholds",
			"sector", sector, "fallback", t.conservative.Sector)
		return t.conservative
	}
	return r
}

// Sectors returns the configured sector ids in sorted order.
func (t *Table) Sectors() []string {
	ids := make([]string, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Default returns the built-in sector threshold table. Values reflect the
// pass/fail lines each sector's standard draws, not a universal number.
func Default() []model.SectorThresholds {
	return []model.SectorThresholds{
		{Sector: "utilities", Standard: "WRc Sewerage Risk Management (SRM)",
			MaxWaterLevel: 20, BellyFailLevel: 20},
		{Sector: "adoption", Standard: "Sewers for Adoption / DCSG",
			MaxWaterLevel: 10, BellyFailLevel: 10},
		{Sector: "highways", Standard: "DMRB CD 535 highway drainage",
			MaxWaterLevel: 15, BellyFailLevel: 15},
		{Sector: "insurance", Standard: "ABI domestic drainage guidance",
			MaxWaterLevel: 25, BellyFailLevel: 25},
		{Sector: "construction", Standard: "NHBC Chapter 5.3 drainage below ground",
			MaxWaterLevel: 10, BellyFailLevel: 10},
		{Sector: "domestic", Standard: "BS EN 13508-2 domestic condition coding",
			MaxWaterLevel: 25, BellyFailLevel: 25},
	}
}

// ParseYAML decodes threshold records from a YAML document of the shape:
//
//	sectors:
//	  - sector: utilities
//	    standard: WRc SRM
//	    max_water_level: 20
//	    belly_fail_level: 20
func ParseYAML(data []byte) ([]model.SectorThresholds, error) {
	var doc struct {
		Sectors []model.SectorThresholds `yaml:"sectors"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sector: parse thresholds: %w", err)
	}
	if len(doc.Sectors) == 0 {
		return nil, fmt.Errorf("sector: thresholds document has no sectors")
	}
	return doc.Sectors, nil
}

func moreConservative(a, b model.SectorThresholds) bool {
	if a.BellyFailLevel != b.BellyFailLevel {
		return a.BellyFailLevel < b.BellyFailLevel
	}
	return a.MaxWaterLevel < b.MaxWaterLevel
}
