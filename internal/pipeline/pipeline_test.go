package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/oakmere/drainsight/internal/engine"
	"github.com/oakmere/drainsight/internal/engine/taxonomy"
	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/sector"
	"github.com/oakmere/drainsight/internal/source"
)

type stubSource struct {
	sections []model.Section
	err      error
}

func (s stubSource) Read(context.Context, source.Config) ([]model.Section, error) {
	return s.sections, s.err
}

type collector struct {
	mu     sync.Mutex
	recs   []model.SectionClassification
	closed bool
}

func (c *collector) Write(_ context.Context, rec model.SectionClassification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, rec)
	return nil
}

func (c *collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	tax, err := taxonomy.New(taxonomy.Default(), taxonomy.DefaultRepairMethods(), taxonomy.DefaultCleaningMethods())
	if err != nil {
		t.Fatalf("taxonomy.New() error: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sectors, err := sector.NewTable(sector.Default(), logger)
	if err != nil {
		t.Fatalf("sector.NewTable() error: %v", err)
	}
	return engine.New(tax, sectors, logger)
}

func surveySections() []model.Section {
	return []model.Section{
		{
			ItemNo:       1,
			Observations: []string{"DER 3.5m: light deposits, 5% cross-sectional area loss"},
		},
		{
			ItemNo: 2,
			Observations: []string{
				"DER 3.5m: light deposits, 15% cross-sectional area loss",
				"Deformity at 3.2m, 12% cross-sectional area loss",
			},
		},
		{
			ItemNo:       3,
			Observations: []string{"MH manhole reference 4001"},
		},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	out := &collector{}
	p := New(stubSource{sections: surveySections()}, newTestEngine(t), out, 4, discard())

	report, err := p.Run(context.Background(), source.Config{}, "utilities")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if report.RunID == "" {
		t.Error("RunID empty")
	}
	if report.Sections != 3 {
		t.Errorf("Sections = %d, want 3", report.Sections)
	}
	if report.Records != 4 {
		t.Errorf("Records = %d, want 4 (one section splits)", report.Records)
	}
	if report.Splits != 1 {
		t.Errorf("Splits = %d, want 1", report.Splits)
	}
	if report.WorstGrade != 4 {
		t.Errorf("WorstGrade = %d, want 4 from the deformation record", report.WorstGrade)
	}

	// Output order follows section order regardless of worker scheduling.
	wantIDs := []string{"1", "2", "2a", "3"}
	if len(out.recs) != len(wantIDs) {
		t.Fatalf("wrote %d records, want %d", len(out.recs), len(wantIDs))
	}
	for i, want := range wantIDs {
		if out.recs[i].ItemID != want {
			t.Errorf("recs[%d].ItemID = %q, want %q", i, out.recs[i].ItemID, want)
		}
	}
}

func TestRun_SingleWorkerSameResult(t *testing.T) {
	out := &collector{}
	p := New(stubSource{sections: surveySections()}, newTestEngine(t), out, 1, discard())

	report, err := p.Run(context.Background(), source.Config{}, "utilities")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.Records != 4 || report.Splits != 1 {
		t.Errorf("report = %+v, want 4 records with 1 split", report)
	}
}

func TestRun_SourceError(t *testing.T) {
	p := New(stubSource{err: errors.New("export unreadable")}, newTestEngine(t), &collector{}, 1, discard())

	if _, err := p.Run(context.Background(), source.Config{}, "utilities"); err == nil {
		t.Fatal("Run() error = nil, want source failure surfaced")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(stubSource{sections: surveySections()}, newTestEngine(t), &collector{}, 2, discard())
	if _, err := p.Run(ctx, source.Config{}, "utilities"); err == nil {
		t.Fatal("Run() error = nil, want cancellation surfaced")
	}
}

func TestClose(t *testing.T) {
	out := &collector{}
	p := New(stubSource{}, newTestEngine(t), out, 1, discard())
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !out.closed {
		t.Error("output not closed")
	}
}
