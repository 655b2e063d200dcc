package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled survey observation for classification
// validation: the raw text as a contractor's export would carry it, plus
// the code, category and section grade the engine must produce.
type CorpusEntry struct {
	Raw              string `json:"raw"`
	ExpectedCode     string `json:"expected_code"`
	ExpectedCategory string `json:"expected_category"`
	ExpectedGrade    int    `json:"expected_grade"`
	Description      string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
