package usecase

import (
	"context"
	"fmt"

	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/logger"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/retry"
)

// CascadeState reports what happened to the denormalized booking copies
// after a directory rename.
type CascadeState string

// Cascade states.
const (
	// CascadeSkipped means the name did not change, so no bookings needed touching
	CascadeSkipped CascadeState = "skipped"

	// CascadeApplied means the matching bookings were updated
	CascadeApplied CascadeState = "applied"

	// CascadeFailed means the rename itself succeeded but the booking
	// update failed after retries; the operator must re-run it
	CascadeFailed CascadeState = "failed"
)

// RenameResult describes a directory rename and its cascade.
type RenameResult struct {
	// Cascade is the outcome of the denormalized-copy update
	Cascade CascadeState `json:"cascade"`

	// BookingsUpdated is the number of bookings rewritten; zero unless applied
	BookingsUpdated int64 `json:"bookingsUpdated"`
}

// DirectoryUseCase manages customers and suppliers. Names are unique
// case-insensitively within each kind; renames cascade onto the
// denormalized names bookings carry.
type DirectoryUseCase interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, c domain.Customer) (RenameResult, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	CreateSupplier(ctx context.Context, s domain.Supplier) (domain.Supplier, error)
	UpdateSupplier(ctx context.Context, s domain.Supplier) (RenameResult, error)
	DeleteSupplier(ctx context.Context, id string) error
}

type directoryUseCase struct {
	customers domain.CustomerStore
	suppliers domain.SupplierStore
	bookings  domain.BookingStore
	log       *logger.Logger
}

// NewDirectoryUseCase creates a DirectoryUseCase. A nil logger is replaced
// with a no-op one.
func NewDirectoryUseCase(customers domain.CustomerStore, suppliers domain.SupplierStore, bookings domain.BookingStore, log *logger.Logger) DirectoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &directoryUseCase{
		customers: customers,
		suppliers: suppliers,
		bookings:  bookings,
		log:       log,
	}
}

func (uc *directoryUseCase) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return uc.customers.ListCustomers(ctx)
}

func (uc *directoryUseCase) CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := c.Validate(); err != nil {
		return domain.Customer{}, err
	}
	if err := uc.checkCustomerName(ctx, c.Name, ""); err != nil {
		return domain.Customer{}, err
	}
	return uc.customers.InsertCustomer(ctx, c)
}

func (uc *directoryUseCase) UpdateCustomer(ctx context.Context, c domain.Customer) (RenameResult, error) {
	if err := c.Validate(); err != nil {
		return RenameResult{}, err
	}

	existing, err := uc.findCustomer(ctx, c.ID)
	if err != nil {
		return RenameResult{}, err
	}
	if err := uc.checkCustomerName(ctx, c.Name, c.ID); err != nil {
		return RenameResult{}, err
	}

	if err := uc.customers.UpdateCustomer(ctx, c); err != nil {
		return RenameResult{}, fmt.Errorf("updating customer: %w", err)
	}

	if existing.Name == c.Name {
		return RenameResult{Cascade: CascadeSkipped}, nil
	}
	return uc.cascadeRename(ctx, "customer", existing.Name, c.Name, uc.bookings.RenameBookingCustomer), nil
}

func (uc *directoryUseCase) DeleteCustomer(ctx context.Context, id string) error {
	return uc.customers.DeleteCustomer(ctx, id)
}

func (uc *directoryUseCase) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return uc.suppliers.ListSuppliers(ctx)
}

func (uc *directoryUseCase) CreateSupplier(ctx context.Context, s domain.Supplier) (domain.Supplier, error) {
	if err := s.Validate(); err != nil {
		return domain.Supplier{}, err
	}
	if err := uc.checkSupplierName(ctx, s.Name, ""); err != nil {
		return domain.Supplier{}, err
	}
	return uc.suppliers.InsertSupplier(ctx, s)
}

func (uc *directoryUseCase) UpdateSupplier(ctx context.Context, s domain.Supplier) (RenameResult, error) {
	if err := s.Validate(); err != nil {
		return RenameResult{}, err
	}

	existing, err := uc.findSupplier(ctx, s.ID)
	if err != nil {
		return RenameResult{}, err
	}
	if err := uc.checkSupplierName(ctx, s.Name, s.ID); err != nil {
		return RenameResult{}, err
	}

	if err := uc.suppliers.UpdateSupplier(ctx, s); err != nil {
		return RenameResult{}, fmt.Errorf("updating supplier: %w", err)
	}

	if existing.Name == s.Name {
		return RenameResult{Cascade: CascadeSkipped}, nil
	}
	return uc.cascadeRename(ctx, "supplier", existing.Name, s.Name, uc.bookings.RenameBookingSupplier), nil
}

func (uc *directoryUseCase) DeleteSupplier(ctx context.Context, id string) error {
	return uc.suppliers.DeleteSupplier(ctx, id)
}

// cascadeRename pushes the new display name onto the bookings carrying the
// old one. The directory record is already renamed at this point; a cascade
// failure is reported, never rolled back, so the rename itself survives.
func (uc *directoryUseCase) cascadeRename(ctx context.Context, kind, oldName, newName string, rename func(context.Context, string, string) (int64, error)) RenameResult {
	updated, err := retry.DoWithResult(ctx, func() (int64, error) {
		return rename(ctx, oldName, newName)
	}, retry.CascadeConfig)
	if err != nil {
		uc.log.Error().Err(err).Str("kind", kind).
			Str("old_name", oldName).Str("new_name", newName).
			Msg("rename cascade failed")
		return RenameResult{Cascade: CascadeFailed}
	}

	uc.log.Info().Str("kind", kind).
		Str("old_name", oldName).Str("new_name", newName).
		Int64("bookings_updated", updated).
		Msg("rename cascaded to bookings")
	return RenameResult{Cascade: CascadeApplied, BookingsUpdated: updated}
}

// checkCustomerName enforces case-insensitive name uniqueness, ignoring the
// record being updated.
func (uc *directoryUseCase) checkCustomerName(ctx context.Context, name, selfID string) error {
	all, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return fmt.Errorf("listing customers: %w", err)
	}
	for _, c := range all {
		if c.ID != selfID && domain.SameName(c.Name, name) {
			return domain.NewDuplicateNameError("customer", name)
		}
	}
	return nil
}

func (uc *directoryUseCase) checkSupplierName(ctx context.Context, name, selfID string) error {
	all, err := uc.suppliers.ListSuppliers(ctx)
	if err != nil {
		return fmt.Errorf("listing suppliers: %w", err)
	}
	for _, s := range all {
		if s.ID != selfID && domain.SameName(s.Name, name) {
			return domain.NewDuplicateNameError("supplier", name)
		}
	}
	return nil
}

func (uc *directoryUseCase) findCustomer(ctx context.Context, id string) (domain.Customer, error) {
	all, err := uc.customers.ListCustomers(ctx)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("listing customers: %w", err)
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, domain.NewNotFoundError("customer", id)
}

func (uc *directoryUseCase) findSupplier(ctx context.Context, id string) (domain.Supplier, error) {
	all, err := uc.suppliers.ListSuppliers(ctx)
	if err != nil {
		return domain.Supplier{}, fmt.Errorf("listing suppliers: %w", err)
	}
	for _, s := range all {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Supplier{}, domain.NewNotFoundError("supplier", id)
}
