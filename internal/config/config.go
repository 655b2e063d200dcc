package config

import (
	"os"
	"strconv"
)

// Config holds all drainsight configuration.
type Config struct {
	Sector string
	Source SourceConfig
	Engine EngineConfig
	Output OutputConfig
}

// SourceConfig selects and parameterizes the survey input reader.
type SourceConfig struct {
	Format string // "yaml" or "csv"
	Path   string
}

// EngineConfig points at the optional reference-data overrides. Empty paths
// mean the built-in tables are used.
type EngineConfig struct {
	ThresholdsPath      string // YAML sector threshold table
	TaxonomyOverlayPath string // YAML taxonomy overlay
	Workers             int    // concurrent section classifications; 0 = NumCPU
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format     string // "stdout", "file", "webhook"
	Path       string // file output path
	WebhookURL string
	Verbosity  string // "minimal", "standard", "full"
	LogLevel   string
}

// Load reads configuration from environment variables with sensible
// defaults. Flags layered on top by the CLI win over the environment.
func Load() Config {
	return Config{
		Sector: getenv("DRAINSIGHT_SECTOR", "utilities"),
		Source: SourceConfig{
			Format: getenv("DRAINSIGHT_SOURCE", "yaml"),
			Path:   os.Getenv("DRAINSIGHT_SOURCE_PATH"),
		},
		Engine: EngineConfig{
			ThresholdsPath:      os.Getenv("DRAINSIGHT_THRESHOLDS_PATH"),
			TaxonomyOverlayPath: os.Getenv("DRAINSIGHT_TAXONOMY_PATH"),
			Workers:             getenvInt("DRAINSIGHT_WORKERS", 0),
		},
		Output: OutputConfig{
			Format:     getenv("DRAINSIGHT_OUTPUT", "stdout"),
			Path:       getenv("DRAINSIGHT_OUTPUT_PATH", "classifications.ndjson"),
			WebhookURL: os.Getenv("DRAINSIGHT_WEBHOOK_URL"),
			Verbosity:  getenv("DRAINSIGHT_VERBOSITY", "standard"),
			LogLevel:   getenv("DRAINSIGHT_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
