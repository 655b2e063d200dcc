// Package yamlsurvey reads survey sections from a YAML export:
//
//	sections:
//	  - item_no: 1
//	    length_m: 45.2
//	    observations:
//	      - "DER 13.07m: Settled deposits, coarse, 5% cross-sectional area loss"
//	    overrides:
//	      structural: 4
package yamlsurvey

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/source"
)

func init() {
	source.Register("yaml", func() source.Source { return &Survey{} })
}

// Survey reads a YAML survey export from disk.
type Survey struct{}

type document struct {
	Sections []model.Section `yaml:"sections"`
}

// Read loads and decodes the survey file named by cfg.Path.
func (s *Survey) Read(ctx context.Context, cfg source.Config) ([]model.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("yamlsurvey: read %s: %w", cfg.Path, err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlsurvey: parse %s: %w", cfg.Path, err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("yamlsurvey: %s contains no sections", cfg.Path)
	}
	return doc.Sections, nil
}
