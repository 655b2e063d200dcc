package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oakmere/drainsight/internal/model"
	"github.com/oakmere/drainsight/internal/output"
)

const (
	defaultBufferSize   = 256
	defaultDrainTimeout = 5 * time.Second
)

// Option configures an Async wrapper.
type Option func(*Async)

// WithBufferSize sets the channel buffer capacity. Default: 256.
func WithBufferSize(n int) Option {
	return func(a *Async) { a.bufSize = n }
}

// WithOnError sets the callback invoked when the inner output's Write
// fails. Default: logs a warning via slog.
func WithOnError(f func(error)) Option {
	return func(a *Async) { a.errFunc = f }
}

// Async decouples record production from delivery via a buffered channel: a
// background goroutine drains the channel to the wrapped output, so a slow
// destination (e.g. a webhook) never stalls classification. Write blocks
// when the buffer is full; records are never dropped.
type Async struct {
	inner     output.Output
	ch        chan model.SectionClassification
	done      chan struct{}
	errFunc   func(error)
	bufSize   int
	closeOnce sync.Once
}

// New wraps an output in an async channel-based writer. The drain goroutine
// starts immediately.
func New(inner output.Output, opts ...Option) *Async {
	a := &Async{
		inner:   inner,
		bufSize: defaultBufferSize,
		errFunc: func(err error) { slog.Warn("async output write error", "error", err) },
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ch = make(chan model.SectionClassification, a.bufSize)
	a.done = make(chan struct{})
	go a.drain()
	return a
}

// Write queues the record for delivery, blocking when the buffer is full.
func (a *Async) Write(_ context.Context, rec model.SectionClassification) error {
	a.ch <- rec
	return nil
}

// Close stops accepting records, waits for the drain goroutine (bounded by
// a timeout), then closes the inner output.
func (a *Async) Close() error {
	var err error
	a.closeOnce.Do(func() {
		close(a.ch)
		select {
		case <-a.done:
		case <-time.After(defaultDrainTimeout):
			slog.Warn("async output drain timed out")
		}
		err = a.inner.Close()
	})
	return err
}

func (a *Async) drain() {
	defer close(a.done)
	for rec := range a.ch {
		if err := a.inner.Write(context.Background(), rec); err != nil {
			a.errFunc(err)
		}
	}
}
