// Package parser turns free-text survey observations into structured
// records. Survey text is noisy: the same defect arrives as
// "CR 3.2m (crack at joint)", "CR crack at 3.2m" or an uncoded description,
// so parsing is an ordered cascade of strategies, most specific first, with
// first match winning.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
)

// Parser converts one observation string into a ParsedObservation. It
// consults the taxonomy to derive category flags and to synthesize codes
// from defect-bearing descriptions the source failed to code.
type Parser struct {
	tax *taxonomy.Taxonomy
}

// New creates a Parser over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Parser {
	return &Parser{tax: tax}
}

// candidate is a strategy's raw extraction before taxonomy enrichment.
type candidate struct {
	code  string
	start *float64
	end   *float64
	desc  string
}

// strategy is one pure pattern matcher. Returns nil when the text does not
// fit the pattern.
type strategy func(text string) *candidate

var (
	// CODE METERAGE (DESCRIPTION); also accepts "CODE 13.07m: desc".
	reCodeMeterage = regexp.MustCompile(`^([A-Za-z]{1,5})\s+(\d+(?:\.\d+)?)\s*m?\s*[:\-]?\s*\(?([^)]*)\)?\s*$`)
	// CODE (DESCRIPTION)
	reCodeParen = regexp.MustCompile(`^([A-Za-z]{1,5})\s*\((.+)\)\s*$`)
	// CODE DESCRIPTION from X to Y
	reCodeRange = regexp.MustCompile(`(?i)^([A-Za-z]{1,5})\s+(.*?)[\s,]*from\s+(\d+(?:\.\d+)?)\s*m?\s+to\s+(\d+(?:\.\d+)?)\s*m?\.?\s*$`)
	// CODE DESCRIPTION at X
	reCodePoint = regexp.MustCompile(`(?i)^([A-Za-z]{1,5})\s+(.*?)[\s,]*at\s+(\d+(?:\.\d+)?)\s*m?\b[.,]?\s*(.*)$`)
	// Fallback: leading 2–5 letter token as code, remainder as description.
	reCodeOnly = regexp.MustCompile(`^([A-Za-z]{2,5})\b[\s:,\-]*(.*)$`)

	// "at X" anywhere in an uncoded description, for synthesized codes.
	reAtMeterage = regexp.MustCompile(`(?i)\bat\s+(\d+(?:\.\d+)?)\s*m?\b`)

	rePercent = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
)

var strategies = []strategy{
	matchCodeMeterage,
	matchCodeParen,
	matchCodeRange,
	matchCodePoint,
	matchCodeOnly,
}

// Parse returns the structured record for one observation string, or nil
// when no code-like token can be isolated and no known defect phrasing is
// present. Parse never fails on malformed input; bad numerics simply fall
// through to the uncoded fallback.
func (p *Parser) Parse(raw string) *model.ParsedObservation {
	text := norm.NFKC.String(strings.TrimSpace(raw))
	if text == "" {
		return nil
	}

	for _, s := range strategies {
		c := s(text)
		if c == nil {
			continue
		}
		obs := p.build(*c, raw)
		if _, known := p.tax.Lookup(obs.Code); !known {
			// A code-shaped token the taxonomy does not recognise: see
			// whether the description names a defect we can code.
			if syn := p.synthesize(text, raw); syn != nil {
				return syn
			}
		}
		return obs
	}

	// No code token at all ("Deformity at 3.2m, ..."): synthesis is the
	// last chance to keep a structural defect out of the uncoded bin.
	return p.synthesize(text, raw)
}

// FirstPercent extracts the first percentage figure from text.
func FirstPercent(text string) (float64, bool) {
	m := rePercent.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p *Parser) build(c candidate, raw string) *model.ParsedObservation {
	obs := &model.ParsedObservation{
		Code:          strings.ToUpper(c.code),
		MeterageStart: c.start,
		MeterageEnd:   c.end,
		Description:   strings.TrimSpace(c.desc),
		FullText:      raw,
	}
	if e, ok := p.tax.Lookup(obs.Code); ok {
		obs.IsStructural = e.Category == model.Structural
		obs.IsService = e.Category == model.Service
	}
	return obs
}

// synthRules is the bounded exception list mapping defect phrasing to the
// taxonomy code the source data should have attached. Deliberately short:
// synthesis patches known upstream omissions, it is not a general NLP step.
var synthRules = []struct {
	phrase string
	code   string
}{
	{"deformity", "D"},
	{"deformation", "D"},
	{"deformed", "D"},
	{"open joint", "OJM"},
	{"displaced joint", "JDM"},
	{"joint displaced", "JDM"},
	{"fracture", "FC"},
	{"collapse", "X"},
	{"no coding present", "NCP"},
}

// synthesize builds an observation from uncoded defect phrasing, or nil when
// no known phrase is present.
func (p *Parser) synthesize(text, raw string) *model.ParsedObservation {
	lower := strings.ToLower(text)
	for _, r := range synthRules {
		if !strings.Contains(lower, r.phrase) {
			continue
		}
		if _, ok := p.tax.Lookup(r.code); !ok {
			continue
		}
		c := candidate{code: r.code, desc: text}
		if m := reAtMeterage.FindStringSubmatch(text); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				c.start = &v
			}
		}
		obs := p.build(c, raw)
		obs.Synthesized = true
		return obs
	}
	return nil
}

func matchCodeMeterage(text string) *candidate {
	m := reCodeMeterage.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	// A figure glued to '%' is a percentage, not a meterage; the point
	// strategy handles "WL 10% at 5.0m".
	if strings.HasPrefix(m[3], "%") {
		return nil
	}
	start, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil
	}
	return &candidate{code: m[1], start: &start, desc: m[3]}
}

func matchCodeParen(text string) *candidate {
	m := reCodeParen.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &candidate{code: m[1], desc: m[2]}
}

func matchCodeRange(text string) *candidate {
	m := reCodeRange.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	start, err1 := strconv.ParseFloat(m[3], 64)
	end, err2 := strconv.ParseFloat(m[4], 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	if end < start {
		start, end = end, start
	}
	return &candidate{code: m[1], start: &start, end: &end, desc: m[2]}
}

func matchCodePoint(text string) *candidate {
	m := reCodePoint.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	start, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return nil
	}
	desc := strings.TrimSpace(m[2])
	if rest := strings.TrimSpace(m[4]); rest != "" {
		if desc != "" {
			desc += ", "
		}
		desc += rest
	}
	return &candidate{code: m[1], start: &start, desc: desc}
}

func matchCodeOnly(text string) *candidate {
	m := reCodeOnly.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &candidate{code: m[1], desc: m[2]}
}
