package csvsurvey

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oakmere/drainsight/internal/source"
)

func TestParse_GroupsByItem(t *testing.T) {
	csv := strings.Join([]string{
		`item_no,observation,length_m`,
		`1,"DER 13.07m: Settled deposits, coarse, 5% cross-sectional area loss",45.2`,
		`1,"WL 20.00m (water level 10%)",45.2`,
		`2,"CR 3.2m (crack)",`,
	}, "\n")

	sections, err := parse(context.Background(), strings.NewReader(csv), "survey.csv")
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].ItemNo != 1 || len(sections[0].Observations) != 2 {
		t.Errorf("sections[0] = %+v, want item 1 with 2 observations", sections[0])
	}
	if sections[0].LengthM != 45.2 {
		t.Errorf("sections[0].LengthM = %v, want 45.2", sections[0].LengthM)
	}
	if sections[1].ItemNo != 2 || len(sections[1].Observations) != 1 {
		t.Errorf("sections[1] = %+v, want item 2 with 1 observation", sections[1])
	}
}

func TestParse_PreservesFirstSeenOrder(t *testing.T) {
	csv := strings.Join([]string{
		`item_no,observation`,
		`5,"CR 1.0m (crack)"`,
		`2,"DER 2.0m (deposits)"`,
		`5,"WL 3.0m (water level 10%)"`,
	}, "\n")

	sections, err := parse(context.Background(), strings.NewReader(csv), "survey.csv")
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if len(sections) != 2 || sections[0].ItemNo != 5 || sections[1].ItemNo != 2 {
		t.Errorf("section order = %+v, want item 5 then item 2", sections)
	}
	if len(sections[0].Observations) != 2 {
		t.Errorf("item 5 observations = %v, want both rows grouped", sections[0].Observations)
	}
}

func TestParse_AlternateHeaderNames(t *testing.T) {
	csv := strings.Join([]string{
		`item,text,length`,
		`1,"CR 1.0m (crack)",12.0`,
	}, "\n")

	sections, err := parse(context.Background(), strings.NewReader(csv), "survey.csv")
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if len(sections) != 1 || sections[0].LengthM != 12.0 {
		t.Errorf("sections = %+v", sections)
	}
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	csv := strings.Join([]string{
		`item_no,observation`,
		`not-a-number,"CR 1.0m (crack)"`,
		`3,"DER 2.0m (deposits)"`,
	}, "\n")

	sections, err := parse(context.Background(), strings.NewReader(csv), "survey.csv")
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if len(sections) != 1 || sections[0].ItemNo != 3 {
		t.Errorf("sections = %+v, want only item 3", sections)
	}
}

func TestParse_MissingColumns(t *testing.T) {
	csv := "meterage,severity\n1.0,3\n"
	if _, err := parse(context.Background(), strings.NewReader(csv), "survey.csv"); err == nil {
		t.Fatal("parse() error = nil, want missing-columns rejection")
	}
}

func TestParse_NoDataRows(t *testing.T) {
	csv := "item_no,observation\n"
	if _, err := parse(context.Background(), strings.NewReader(csv), "survey.csv"); err == nil {
		t.Fatal("parse() error = nil, want no-sections rejection")
	}
}

func TestRead_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.csv")
	content := "item_no,observation\n1,\"CR 1.0m (crack)\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write survey: %v", err)
	}

	var s Survey
	sections, err := s.Read(context.Background(), source.Config{Format: "csv", Path: path})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
}

func TestRead_MissingFile(t *testing.T) {
	var s Survey
	if _, err := s.Read(context.Background(), source.Config{Path: filepath.Join(t.TempDir(), "absent.csv")}); err == nil {
		t.Fatal("Read() error = nil, want open failure")
	}
}

func TestRegistered(t *testing.T) {
	ctor, err := source.Get("csv")
	if err != nil {
		t.Fatalf("Get(csv) error: %v", err)
	}
	if _, ok := ctor().(*Survey); !ok {
		t.Error("registered csv constructor does not build a csvsurvey.Survey")
	}
}
