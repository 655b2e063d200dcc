// Package csvsurvey reads survey sections from a CSV export with one row
// per observation. Expected header: item_no,observation[,length_m]. Rows
// sharing an item_no are grouped into one section, preserving row order.
package csvsurvey

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/source"
)

func init() {
	source.Register("csv", func() source.Source { return &Survey{} })
}

// Survey reads a CSV survey export from disk.
type Survey struct{}

// Read loads and groups the survey rows in cfg.Path.
func (s *Survey) Read(ctx context.Context, cfg source.Config) ([]model.Section, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("csvsurvey: open %s: %w", cfg.Path, err)
	}
	defer f.Close()
	return parse(ctx, f, cfg.Path)
}

func parse(ctx context.Context, r io.Reader, name string) ([]model.Section, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // length_m column is optional

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csvsurvey: read header of %s: %w", name, err)
	}
	itemCol, obsCol, lenCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "item_no", "item":
			itemCol = i
		case "observation", "text":
			obsCol = i
		case "length_m", "length":
			lenCol = i
		}
	}
	if itemCol < 0 || obsCol < 0 {
		return nil, fmt.Errorf("csvsurvey: %s missing item_no/observation columns", name)
	}

	var order []int
	byItem := make(map[int]*model.Section)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvsurvey: read %s: %w", name, err)
		}
		if itemCol >= len(row) || obsCol >= len(row) {
			continue
		}
		itemNo, err := strconv.Atoi(strings.TrimSpace(row[itemCol]))
		if err != nil {
			continue // malformed row, skip rather than abort the batch
		}
		sec, ok := byItem[itemNo]
		if !ok {
			sec = &model.Section{ItemNo: itemNo}
			byItem[itemNo] = sec
			order = append(order, itemNo)
		}
		sec.Observations = append(sec.Observations, row[obsCol])
		if lenCol >= 0 && lenCol < len(row) {
			if l, err := strconv.ParseFloat(strings.TrimSpace(row[lenCol]), 64); err == nil && l > 0 {
				sec.LengthM = l
			}
		}
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("csvsurvey: %s contains no sections", name)
	}
	sections := make([]model.Section, 0, len(order))
	for _, itemNo := range order {
		sections = append(sections, *byItem[itemNo])
	}
	return sections, nil
}
