package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/logger"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/metrics"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/retry"
)

// ExtractionUseCase turns an uploaded ticket scan into a booking draft the
// operator can review before saving.
type ExtractionUseCase interface {
	// ExtractTicket runs the extractor over the scan. Failures are wrapped
	// in domain.ErrExtraction; an empty draft is also reported as a
	// failure so the UI never silently shows a blank form.
	ExtractTicket(ctx context.Context, data []byte, mimeType string) (*domain.BookingDraft, error)
}

type extractionUseCase struct {
	extractor domain.TicketExtractor
	metrics   *metrics.Metrics
	log       *logger.Logger
}

// NewExtractionUseCase creates an ExtractionUseCase. Metrics may be nil;
// a nil logger is replaced with a no-op one.
func NewExtractionUseCase(extractor domain.TicketExtractor, m *metrics.Metrics, log *logger.Logger) ExtractionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &extractionUseCase{
		extractor: extractor,
		metrics:   m,
		log:       log,
	}
}

func (uc *extractionUseCase) ExtractTicket(ctx context.Context, data []byte, mimeType string) (*domain.BookingDraft, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrExtraction)
	}

	start := time.Now()
	draft, err := retry.DoWithResult(ctx, func() (*domain.BookingDraft, error) {
		return uc.extractor.Extract(ctx, data, mimeType)
	}, retry.ExtractionConfig)
	elapsed := time.Since(start)

	if uc.metrics != nil {
		uc.metrics.ExtractionTime.Observe(elapsed.Seconds())
	}

	if err != nil {
		if uc.metrics != nil {
			uc.metrics.ErrorsCount.WithLabelValues("extract_ticket").Inc()
		}
		uc.log.Error().Err(err).Str("mime_type", mimeType).
			Dur("elapsed", elapsed).Msg("ticket extraction failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	if draft.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing recognizable in the file", domain.ErrExtraction)
	}

	if uc.metrics != nil {
		uc.metrics.TicketsExtracted.Inc()
	}
	uc.log.Info().Str("mime_type", mimeType).Dur("elapsed", elapsed).
		Str("pnr", draft.PNR).Int("segments", len(draft.Segments)).
		Msg("ticket extracted")
	return draft, nil
}
