package async

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/oakmere/drainsight/internal/model"
)

type collector struct {
	mu     sync.Mutex
	recs   []model.SectionClassification
	err    error
	closed bool
}

func (c *collector) Write(_ context.Context, rec model.SectionClassification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.recs = append(c.recs, rec)
	return nil
}

func (c *collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.recs)
}

func TestWrite_DeliversAllOnClose(t *testing.T) {
	inner := &collector{}
	a := New(inner, WithBufferSize(4))

	for i := 0; i < 20; i++ {
		if err := a.Write(context.Background(), model.SectionClassification{ItemID: "x"}); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if got := inner.count(); got != 20 {
		t.Errorf("delivered = %d records, want all 20 drained before close", got)
	}
	if !inner.closed {
		t.Error("inner output not closed")
	}
}

func TestWrite_ErrorsReported(t *testing.T) {
	inner := &collector{err: errors.New("write failed")}
	var mu sync.Mutex
	var seen []error
	a := New(inner, WithOnError(func(err error) {
		mu.Lock()
		seen = append(seen, err)
		mu.Unlock()
	}))

	if err := a.Write(context.Background(), model.SectionClassification{ItemID: "x"}); err != nil {
		t.Fatalf("Write() error: %v (delivery errors surface via the callback)", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 1 {
		t.Errorf("error callback fired %d times, want 1", len(seen))
	}
}

func TestClose_Idempotent(t *testing.T) {
	a := New(&collector{})
	if err := a.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
}
