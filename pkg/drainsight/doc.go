// Package drainsight classifies CCTV sewer-inspection observations into
// condition grades, adoptability verdicts and repair recommendations under
// sector-specific condition-classification standards.
//
// Quick start:
//
//	c, err := drainsight.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	recs := c.Classify([]string{
//	    "DER 13.07m: Settled deposits, coarse, 5% cross-sectional area loss",
//	}, nil, "utilities", 1)
//	fmt.Println(recs[0].SeverityGrade, recs[0].Adoptable)
//
// The Classifier is a pure function of its inputs: reference tables are
// loaded once at construction and never mutated, so one instance may serve
// concurrent callers. A section mixing structural and service defects
// yields two sibling records; see SectionClassification.ItemID.
package drainsight
