package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// BookingStore implements domain.BookingStore on PostgreSQL.
type BookingStore struct {
	db *gorm.DB
}

// NewBookingStore creates a BookingStore.
func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

func (s *BookingStore) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var records []bookingRecord
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}

	bookings := make([]domain.Booking, 0, len(records))
	for _, r := range records {
		b, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (s *BookingStore) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var record bookingRecord
	err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("booking", id)
		}
		return nil, fmt.Errorf("querying booking %s: %w", id, err)
	}

	b, err := record.toDomain()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BookingStore) InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	record, err := newBookingRecord(b)
	if err != nil {
		return domain.Booking{}, err
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Booking{}, fmt.Errorf("inserting booking: %w", err)
	}
	return record.toDomain()
}

func (s *BookingStore) UpdateBooking(ctx context.Context, b domain.Booking) error {
	record, err := newBookingRecord(b)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Model(&bookingRecord{}).
		Where("id = ?", b.ID).
		Select("*").Omit("id", "created_at").
		Updates(record)
	if result.Error != nil {
		return fmt.Errorf("updating booking %s: %w", b.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("booking", b.ID)
	}
	return nil
}

func (s *BookingStore) UpdateBookingStatus(ctx context.Context, id string, status domain.Status) error {
	return s.updateColumn(ctx, id, "status", string(status))
}

func (s *BookingStore) UpdateBookingReminder(ctx context.Context, id string, sent bool) error {
	return s.updateColumn(ctx, id, "reminder_sent", sent)
}

func (s *BookingStore) RenameBookingCustomer(ctx context.Context, oldName, newName string) (int64, error) {
	return s.renameColumn(ctx, "customer_name", oldName, newName)
}

func (s *BookingStore) RenameBookingSupplier(ctx context.Context, oldName, newName string) (int64, error) {
	return s.renameColumn(ctx, "supplier_name", oldName, newName)
}

func (s *BookingStore) DeleteBooking(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&bookingRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting booking %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("booking", id)
	}
	return nil
}

func (s *BookingStore) updateColumn(ctx context.Context, id, column string, value any) error {
	result := s.db.WithContext(ctx).Model(&bookingRecord{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return fmt.Errorf("updating booking %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("booking", id)
	}
	return nil
}

func (s *BookingStore) renameColumn(ctx context.Context, column, oldName, newName string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&bookingRecord{}).
		Where(column+" = ?", oldName).
		Update(column, newName)
	if result.Error != nil {
		return 0, fmt.Errorf("renaming %s: %w", column, result.Error)
	}
	return result.RowsAffected, nil
}
