// Package mock provides test doubles for the ticket back-office system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses) and real
// state across multiple calls.
package mock

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// BookingStore is an in-memory implementation of domain.BookingStore.
// It keeps real state so multi-step flows (create, rename cascade, delete)
// behave like the database-backed store.
type BookingStore struct {
	mu       sync.Mutex
	bookings []domain.Booking
	err      error
}

// NewBookingStore creates an empty in-memory booking store.
func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// FailWith makes every subsequent operation return err. Pass nil to heal.
func (s *BookingStore) FailWith(err error) *BookingStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// Seed inserts bookings directly, bypassing defaulting and validation.
func (s *BookingStore) Seed(bookings ...domain.Booking) *BookingStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, bookings...)
	return s
}

// Len reports how many bookings are stored.
func (s *BookingStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *BookingStore) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	// Newest first, matching the database ordering
	out := make([]domain.Booking, 0, len(s.bookings))
	for i := len(s.bookings) - 1; i >= 0; i-- {
		out = append(out, s.bookings[i])
	}
	return out, nil
}

func (s *BookingStore) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	for _, b := range s.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, domain.NewNotFoundError("booking", id)
}

func (s *BookingStore) InsertBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.Booking{}, s.err
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *BookingStore) UpdateBooking(ctx context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			b.CreatedAt = s.bookings[i].CreatedAt
			s.bookings[i] = b
			return nil
		}
	}
	return domain.NewNotFoundError("booking", b.ID)
}

func (s *BookingStore) UpdateBookingStatus(ctx context.Context, id string, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return nil
		}
	}
	return domain.NewNotFoundError("booking", id)
}

func (s *BookingStore) UpdateBookingReminder(ctx context.Context, id string, sent bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].ReminderSent = sent
			return nil
		}
	}
	return domain.NewNotFoundError("booking", id)
}

func (s *BookingStore) RenameBookingCustomer(ctx context.Context, oldName, newName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}

	var n int64
	for i := range s.bookings {
		if s.bookings[i].CustomerName == oldName {
			s.bookings[i].CustomerName = newName
			n++
		}
	}
	return n, nil
}

func (s *BookingStore) RenameBookingSupplier(ctx context.Context, oldName, newName string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}

	var n int64
	for i := range s.bookings {
		if s.bookings[i].SupplierName == oldName {
			s.bookings[i].SupplierName = newName
			n++
		}
	}
	return n, nil
}

func (s *BookingStore) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("booking", id)
}

// CustomerStore is an in-memory implementation of domain.CustomerStore.
type CustomerStore struct {
	mu        sync.Mutex
	customers []domain.Customer
}

// NewCustomerStore creates an empty in-memory customer store.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{}
}

// Seed inserts customers directly.
func (s *CustomerStore) Seed(customers ...domain.Customer) *CustomerStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, customers...)
	return s
}

func (s *CustomerStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

func (s *CustomerStore) InsertCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.customers = append(s.customers, c)
	return c, nil
}

func (s *CustomerStore) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return nil
		}
	}
	return domain.NewNotFoundError("customer", c.ID)
}

func (s *CustomerStore) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("customer", id)
}

// SupplierStore is an in-memory implementation of domain.SupplierStore.
type SupplierStore struct {
	mu        sync.Mutex
	suppliers []domain.Supplier
}

// NewSupplierStore creates an empty in-memory supplier store.
func NewSupplierStore() *SupplierStore {
	return &SupplierStore{}
}

// Seed inserts suppliers directly.
func (s *SupplierStore) Seed(suppliers ...domain.Supplier) *SupplierStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append(s.suppliers, suppliers...)
	return s
}

func (s *SupplierStore) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out, nil
}

func (s *SupplierStore) InsertSupplier(ctx context.Context, sup domain.Supplier) (domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sup.ID == "" {
		sup.ID = uuid.NewString()
	}
	s.suppliers = append(s.suppliers, sup)
	return sup, nil
}

func (s *SupplierStore) UpdateSupplier(ctx context.Context, sup domain.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == sup.ID {
			s.suppliers[i] = sup
			return nil
		}
	}
	return domain.NewNotFoundError("supplier", sup.ID)
}

func (s *SupplierStore) DeleteSupplier(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("supplier", id)
}

// FileStore is an in-memory implementation of domain.FileStore.
type FileStore struct {
	mu    sync.Mutex
	files map[string][]byte
	types map[string]string
	err   error
}

// NewFileStore creates an empty in-memory file store.
func NewFileStore() *FileStore {
	return &FileStore{
		files: make(map[string][]byte),
		types: make(map[string]string),
	}
}

// FailWith makes every subsequent operation return err. Pass nil to heal.
func (s *FileStore) FailWith(err error) *FileStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// Has reports whether an artifact is stored under path.
func (s *FileStore) Has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok
}

func (s *FileStore) UploadFile(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}

	path := "tickets/" + uuid.NewString()
	if i := strings.LastIndex(name, "."); i >= 0 {
		path += name[i:]
	}
	s.files[path] = data
	s.types[path] = contentType
	return path, nil
}

func (s *FileStore) GetFile(ctx context.Context, path string) ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, "", s.err
	}

	data, ok := s.files[path]
	if !ok {
		return nil, "", domain.NewNotFoundError("ticket file", path)
	}
	return data, s.types[path], nil
}

func (s *FileStore) RemoveFile(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	delete(s.files, path)
	delete(s.types, path)
	return nil
}
