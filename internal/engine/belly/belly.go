// Package belly detects a sag in the pipe gradient from sequential
// water-level readings: a rise-then-fall percentage pattern along the
// section ("belly"), evaluated against the active sector's failure line.
package belly

import (
	"fmt"
	"sort"

	"github.com/oakmere/drainsight/internal/model"
)

// Reading is one water-level observation: percentage of bore at a meterage.
type Reading struct {
	Meterage float64
	Percent  float64
}

// MinReadings is the number of water-level readings required before trend
// analysis is meaningful.
const MinReadings = 3

// Analyze inspects the readings for a rise-then-fall pattern and, when one
// is found, compares the peak level against the sector's belly-failure
// threshold. Returns nil when fewer than MinReadings readings are supplied.
func Analyze(readings []Reading, thresholds model.SectorThresholds) *model.BellyResult {
	if len(readings) < MinReadings {
		return nil
	}

	ordered := make([]Reading, len(readings))
	copy(ordered, readings)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Meterage < ordered[j].Meterage })

	peak := 0
	for i, r := range ordered {
		if r.Percent > ordered[peak].Percent {
			peak = i
		}
	}

	res := &model.BellyResult{MaxWaterLevel: ordered[peak].Percent}

	last := len(ordered) - 1
	res.HasBelly = peak > 0 && peak < last &&
		ordered[peak].Percent > ordered[0].Percent &&
		ordered[peak].Percent > ordered[last].Percent
	if !res.HasBelly {
		return res
	}

	res.FailsThreshold = res.MaxWaterLevel > thresholds.BellyFailLevel
	if res.FailsThreshold {
		res.Recommendation = fmt.Sprintf(
			"Water level rises to %.0f%% mid-section before falling, exceeding the %.0f%% limit under %s; recommend excavation to correct the fall.",
			res.MaxWaterLevel, thresholds.BellyFailLevel, thresholds.Standard)
	} else {
		res.Recommendation = fmt.Sprintf(
			"Water level rises to %.0f%% mid-section before falling, within the %.0f%% tolerance under %s; monitor at the next survey.",
			res.MaxWaterLevel, thresholds.BellyFailLevel, thresholds.Standard)
	}
	return res
}
