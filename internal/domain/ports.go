package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=domain

// BookingStore is the persistence collaborator for bookings. Implementations
// must return ErrNotFound (via errors.Is) for missing ids.
type BookingStore interface {
	// ListBookings returns every booking, most recently created first.
	ListBookings(ctx context.Context) ([]Booking, error)

	// GetBooking fetches one booking by id.
	GetBooking(ctx context.Context, id string) (*Booking, error)

	// InsertBooking persists a new booking and returns it with the
	// store-assigned id and creation timestamp filled in.
	InsertBooking(ctx context.Context, b Booking) (Booking, error)

	// UpdateBooking replaces the stored record wholesale, except for the
	// immutable id and creation timestamp.
	UpdateBooking(ctx context.Context, b Booking) error

	// UpdateBookingStatus is the status fast path: it touches no other field.
	UpdateBookingStatus(ctx context.Context, id string, status Status) error

	// UpdateBookingReminder is the reminder fast path.
	UpdateBookingReminder(ctx context.Context, id string, sent bool) error

	// RenameBookingCustomer bulk-updates the denormalized customer name on
	// every booking matching oldName, returning the number updated.
	RenameBookingCustomer(ctx context.Context, oldName, newName string) (int64, error)

	// RenameBookingSupplier bulk-updates the denormalized supplier name.
	RenameBookingSupplier(ctx context.Context, oldName, newName string) (int64, error)

	// DeleteBooking removes the booking record.
	DeleteBooking(ctx context.Context, id string) error
}

// CustomerStore is the persistence collaborator for customers.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	InsertCustomer(ctx context.Context, c Customer) (Customer, error)
	UpdateCustomer(ctx context.Context, c Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

// SupplierStore is the persistence collaborator for suppliers.
type SupplierStore interface {
	ListSuppliers(ctx context.Context) ([]Supplier, error)
	InsertSupplier(ctx context.Context, s Supplier) (Supplier, error)
	UpdateSupplier(ctx context.Context, s Supplier) error
	DeleteSupplier(ctx context.Context, id string) error
}

// FileStore holds binary ticket artifacts keyed by path.
type FileStore interface {
	// UploadFile stores the artifact and returns the path to reference it by.
	UploadFile(ctx context.Context, name string, data []byte, contentType string) (string, error)

	// GetFile fetches the artifact bytes and content type for download.
	GetFile(ctx context.Context, path string) ([]byte, string, error)

	// RemoveFile deletes the artifact. Removing a path that does not exist
	// is not an error: the delete flow must stay idempotent.
	RemoveFile(ctx context.Context, path string) error
}

// TicketExtractor turns a scanned ticket (image or PDF bytes) into a
// best-effort booking draft. It may fail entirely or return a partial draft.
type TicketExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType string) (*BookingDraft, error)
}
