package mock

import (
	"context"
	"sync"
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// Extractor is a configurable mock implementation of domain.TicketExtractor.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and retry behavior.
type Extractor struct {
	mu        sync.Mutex
	draft     *domain.BookingDraft
	err       error
	delay     time.Duration
	failures  int
	callCount int
}

// NewExtractor creates a new mock extractor.
// The extractor is configured using the builder pattern methods.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// WithDraft configures the extractor to return the given draft.
func (e *Extractor) WithDraft(d *domain.BookingDraft) *Extractor {
	e.draft = d
	return e
}

// WithError configures the extractor to return the given error.
func (e *Extractor) WithError(err error) *Extractor {
	e.err = err
	return e
}

// WithDelay configures the extractor to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (e *Extractor) WithDelay(d time.Duration) *Extractor {
	e.delay = d
	return e
}

// FailFirst configures the extractor to fail the first n calls with err
// and succeed afterwards. This is useful for testing retry behavior.
func (e *Extractor) FailFirst(n int, err error) *Extractor {
	e.failures = n
	e.err = err
	return e
}

// CallCount returns how many times Extract has been called.
func (e *Extractor) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.callCount
}

// Extract implements domain.TicketExtractor.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (*domain.BookingDraft, error) {
	e.mu.Lock()
	e.callCount++
	call := e.callCount
	e.mu.Unlock()

	if e.delay > 0 {
		select {
		case <-time.After(e.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if e.err != nil && (e.failures == 0 || call <= e.failures) {
		return nil, e.err
	}

	if e.draft != nil {
		return e.draft, nil
	}
	return &domain.BookingDraft{}, nil
}
