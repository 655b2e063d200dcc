package model

// SectorThresholds is one row of the sector threshold table: the numeric
// limits a sector's governing standard imposes, plus the standard's name for
// citation in generated text. One record per sector id; a missing sector
// fails closed to the most conservative configured record.
type SectorThresholds struct {
	Sector         string  `json:"sector" yaml:"sector"`
	Standard       string  `json:"standard" yaml:"standard"`
	MaxWaterLevel  float64 `json:"max_water_level" yaml:"max_water_level"`   // percent of bore
	BellyFailLevel float64 `json:"belly_fail_level" yaml:"belly_fail_level"` // percent at belly peak
}
