package output

import "github.com/oakmere/drainsight/internal/model"

// Verbosity controls how much audit detail a destination receives.
type Verbosity int

const (
	Minimal  Verbosity = iota // grades and verdicts only, no raw survey text
	Standard                  // retain raw observations and narratives
	Full                      // retain everything
)

// ParseVerbosity maps a string to the Verbosity enum. Unknown strings
// default to Standard.
func ParseVerbosity(s string) Verbosity {
	switch s {
	case "minimal":
		return Minimal
	case "full":
		return Full
	default:
		return Standard
	}
}

// FormatClassification returns a copy of the record with fields stripped
// according to verbosity. At Minimal the raw survey text and the risk
// narrative are dropped (omitted from JSON via omitempty); grades, verdicts
// and recommendations always survive.
func FormatClassification(rec model.SectionClassification, verbosity Verbosity) model.SectionClassification {
	if verbosity == Minimal {
		rec.RawObservations = nil
		rec.SRM.RiskNarrative = ""
	}
	return rec
}
