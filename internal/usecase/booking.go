package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/logger"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/metrics"
)

// FileUpload carries a scanned ticket artifact alongside a booking write.
type FileUpload struct {
	Name        string
	Data        []byte
	ContentType string
}

// TicketFile is a stored ticket artifact returned for download.
type TicketFile struct {
	Name        string
	Data        []byte
	ContentType string
}

// BookingUseCase exposes the booking lifecycle and the list query built on
// top of the stored collection.
type BookingUseCase interface {
	// List filters, sorts and paginates the booking collection.
	List(ctx context.Context, filter *domain.SearchFilter, spec domain.SortSpec, page domain.Page) (SearchResult, error)

	// Get fetches one booking by id.
	Get(ctx context.Context, id string) (*domain.Booking, error)

	// Create validates and persists a new booking, storing the optional
	// ticket artifact first so the record references it from the start.
	Create(ctx context.Context, b domain.Booking, ticket *FileUpload) (domain.Booking, error)

	// Update validates and replaces an existing booking. A new ticket
	// artifact supersedes the previous one.
	Update(ctx context.Context, b domain.Booking, ticket *FileUpload) (domain.Booking, error)

	// UpdateStatus changes only the lifecycle status.
	UpdateStatus(ctx context.Context, id string, status domain.Status) error

	// SetReminder toggles the operator-managed reminder flag.
	SetReminder(ctx context.Context, id string, sent bool) error

	// Delete removes the booking and its ticket artifact.
	Delete(ctx context.Context, id string) error

	// DownloadTicket fetches the stored ticket artifact for a booking.
	DownloadTicket(ctx context.Context, id string) (TicketFile, error)

	// Journey classifies one booking's itinerary.
	Journey(ctx context.Context, id string) (JourneyInfo, error)
}

type bookingUseCase struct {
	store   domain.BookingStore
	files   domain.FileStore
	loc     *time.Location
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewBookingUseCase creates a BookingUseCase. A nil location defaults to
// UTC and a nil logger is replaced with a no-op one. Metrics may be nil.
func NewBookingUseCase(store domain.BookingStore, files domain.FileStore, loc *time.Location, log *logger.Logger, m *metrics.Metrics) BookingUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	return &bookingUseCase{
		store:   store,
		files:   files,
		loc:     loc,
		log:     log,
		metrics: m,
	}
}

func (uc *bookingUseCase) List(ctx context.Context, filter *domain.SearchFilter, spec domain.SortSpec, page domain.Page) (SearchResult, error) {
	bookings, err := uc.store.ListBookings(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("listing bookings: %w", err)
	}
	return Search(bookings, filter, spec, page), nil
}

func (uc *bookingUseCase) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return uc.store.GetBooking(ctx, id)
}

func (uc *bookingUseCase) Create(ctx context.Context, b domain.Booking, ticket *FileUpload) (domain.Booking, error) {
	b.SetDefaults()
	b.RecalculateProfit()
	if err := b.Validate(); err != nil {
		return domain.Booking{}, err
	}

	if ticket != nil {
		path, err := uc.files.UploadFile(ctx, ticket.Name, ticket.Data, ticket.ContentType)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("uploading ticket file: %w", err)
		}
		b.TicketFilePath = path
	}

	created, err := uc.store.InsertBooking(ctx, b)
	if err != nil {
		// The record never existed, so the uploaded artifact is orphaned.
		if b.TicketFilePath != "" {
			if rmErr := uc.files.RemoveFile(ctx, b.TicketFilePath); rmErr != nil {
				uc.log.Warn().Err(rmErr).Str("path", b.TicketFilePath).
					Msg("failed to remove orphaned ticket file")
			}
		}
		return domain.Booking{}, fmt.Errorf("inserting booking: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingsCreated.Inc()
	}
	uc.log.Info().Str("booking_id", created.ID).Str("pnr", created.PNR).
		Msg("booking created")
	return created, nil
}

func (uc *bookingUseCase) Update(ctx context.Context, b domain.Booking, ticket *FileUpload) (domain.Booking, error) {
	existing, err := uc.store.GetBooking(ctx, b.ID)
	if err != nil {
		return domain.Booking{}, err
	}

	b.SetDefaults()
	b.RecalculateProfit()
	if err := b.Validate(); err != nil {
		return domain.Booking{}, err
	}

	// Immutable fields always come from the stored record.
	b.CreatedAt = existing.CreatedAt
	if b.TicketFilePath == "" {
		b.TicketFilePath = existing.TicketFilePath
	}

	if ticket != nil {
		path, err := uc.files.UploadFile(ctx, ticket.Name, ticket.Data, ticket.ContentType)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("uploading ticket file: %w", err)
		}
		b.TicketFilePath = path
	}

	if err := uc.store.UpdateBooking(ctx, b); err != nil {
		return domain.Booking{}, fmt.Errorf("updating booking: %w", err)
	}

	if ticket != nil && existing.TicketFilePath != "" && existing.TicketFilePath != b.TicketFilePath {
		if err := uc.files.RemoveFile(ctx, existing.TicketFilePath); err != nil {
			uc.log.Warn().Err(err).Str("path", existing.TicketFilePath).
				Msg("failed to remove superseded ticket file")
		}
	}

	return b, nil
}

func (uc *bookingUseCase) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidBooking, status)
	}
	return uc.store.UpdateBookingStatus(ctx, id, status)
}

func (uc *bookingUseCase) SetReminder(ctx context.Context, id string, sent bool) error {
	return uc.store.UpdateBookingReminder(ctx, id, sent)
}

// Delete removes the ticket artifact before the record. If the artifact
// removal fails the record survives, so a retry can still find the path;
// the reverse order would leak files with no reference left to them.
func (uc *bookingUseCase) Delete(ctx context.Context, id string) error {
	b, err := uc.store.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if b.TicketFilePath != "" {
		if err := uc.files.RemoveFile(ctx, b.TicketFilePath); err != nil {
			return fmt.Errorf("removing ticket file: %w", err)
		}
	}

	if err := uc.store.DeleteBooking(ctx, id); err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingsDeleted.Inc()
	}
	uc.log.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}

func (uc *bookingUseCase) DownloadTicket(ctx context.Context, id string) (TicketFile, error) {
	b, err := uc.store.GetBooking(ctx, id)
	if err != nil {
		return TicketFile{}, err
	}
	if b.TicketFilePath == "" {
		return TicketFile{}, domain.NewNotFoundError("ticket file", id)
	}

	data, contentType, err := uc.files.GetFile(ctx, b.TicketFilePath)
	if err != nil {
		return TicketFile{}, fmt.Errorf("fetching ticket file: %w", err)
	}

	name := b.TicketFilePath
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return TicketFile{Name: name, Data: data, ContentType: contentType}, nil
}

func (uc *bookingUseCase) Journey(ctx context.Context, id string) (JourneyInfo, error) {
	b, err := uc.store.GetBooking(ctx, id)
	if err != nil {
		return JourneyInfo{}, err
	}
	return ClassifyJourney(b.Segments, uc.loc), nil
}
