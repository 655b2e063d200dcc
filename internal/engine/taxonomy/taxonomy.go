package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakmere/drainsight/internal/model"
)

// Taxonomy holds the defect reference tables: one entry per code, plus the
// repair-method and cleaning-method lookups keyed by code. Loaded once at
// construction and never mutated, so concurrent reads are safe.
type Taxonomy struct {
	entries  map[string]model.DefectEntry
	repair   map[string][]string
	cleaning map[string][]string
}

// New creates a Taxonomy from a set of entries and method tables. An empty
// entry set is a configuration error: the engine cannot classify anything
// without a taxonomy, so this is the one fatal construction failure.
func New(entries []model.DefectEntry, repair, cleaning map[string][]string) (*Taxonomy, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy: no defect entries configured")
	}
	m := make(map[string]model.DefectEntry, len(entries))
	for _, e := range entries {
		code := strings.ToUpper(e.Code)
		if code == "" {
			return nil, fmt.Errorf("taxonomy: entry with empty code")
		}
		e.Code = code
		m[code] = e
	}
	return &Taxonomy{entries: m, repair: repair, cleaning: cleaning}, nil
}

// Lookup returns the entry for a code (case-insensitive).
func (t *Taxonomy) Lookup(code string) (model.DefectEntry, bool) {
	e, ok := t.entries[strings.ToUpper(code)]
	return e, ok
}

// Codes returns all known codes in sorted order.
func (t *Taxonomy) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for c := range t.entries {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// RepairMethods returns the repair methods applicable to a code, or nil.
func (t *Taxonomy) RepairMethods(code string) []string {
	return t.repair[strings.ToUpper(code)]
}

// CleaningMethods returns the cleaning methods applicable to a code, or nil.
func (t *Taxonomy) CleaningMethods(code string) []string {
	return t.cleaning[strings.ToUpper(code)]
}

// Overlay is the YAML shape for amending the built-in taxonomy: entries
// replace same-code defaults, method lists replace same-code defaults.
type Overlay struct {
	Entries  []model.DefectEntry `yaml:"entries"`
	Repair   map[string][]string `yaml:"repair_methods"`
	Cleaning map[string][]string `yaml:"cleaning_methods"`
}

// Merge applies an overlay on top of the built-in tables and returns a new
// Taxonomy. The receiver is not modified.
func (t *Taxonomy) Merge(o Overlay) (*Taxonomy, error) {
	entries := make([]model.DefectEntry, 0, len(t.entries)+len(o.Entries))
	seen := make(map[string]bool, len(o.Entries))
	for _, e := range o.Entries {
		seen[strings.ToUpper(e.Code)] = true
		entries = append(entries, e)
	}
	for code, e := range t.entries {
		if !seen[code] {
			entries = append(entries, e)
		}
	}

	repair := cloneMethods(t.repair)
	for code, ms := range o.Repair {
		repair[strings.ToUpper(code)] = ms
	}
	cleaning := cloneMethods(t.cleaning)
	for code, ms := range o.Cleaning {
		cleaning[strings.ToUpper(code)] = ms
	}
	return New(entries, repair, cleaning)
}

// ParseOverlay decodes a YAML overlay document.
func ParseOverlay(data []byte) (Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overlay{}, fmt.Errorf("taxonomy: parse overlay: %w", err)
	}
	return o, nil
}

func cloneMethods(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	return out
}
