package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

type directoryMocks struct {
	customers *domain.MockCustomerStore
	suppliers *domain.MockSupplierStore
	bookings  *domain.MockBookingStore
}

func newDirectoryUseCase(t *testing.T) (DirectoryUseCase, directoryMocks) {
	ctrl := gomock.NewController(t)
	m := directoryMocks{
		customers: domain.NewMockCustomerStore(ctrl),
		suppliers: domain.NewMockSupplierStore(ctrl),
		bookings:  domain.NewMockBookingStore(ctrl),
	}
	return NewDirectoryUseCase(m.customers, m.suppliers, m.bookings, nil), m
}

func TestDirectoryUseCase_CreateCustomer(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	m.customers.EXPECT().ListCustomers(gomock.Any()).Return(nil, nil)
	m.customers.EXPECT().
		InsertCustomer(gomock.Any(), domain.Customer{Name: "Acme Travel"}).
		Return(domain.Customer{ID: "c1", Name: "Acme Travel"}, nil)

	created, err := uc.CreateCustomer(context.Background(), domain.Customer{Name: "Acme Travel"})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID)
}

func TestDirectoryUseCase_CreateCustomer_DuplicateName(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	m.customers.EXPECT().ListCustomers(gomock.Any()).
		Return([]domain.Customer{{ID: "c1", Name: "Acme Travel"}}, nil)

	_, err := uc.CreateCustomer(context.Background(), domain.Customer{Name: "  ACME travel "})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestDirectoryUseCase_CreateCustomer_EmptyName(t *testing.T) {
	uc, _ := newDirectoryUseCase(t)

	_, err := uc.CreateCustomer(context.Background(), domain.Customer{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestDirectoryUseCase_UpdateCustomer_RenameCascades(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	existing := domain.Customer{ID: "c1", Name: "Acme Travel"}
	renamed := domain.Customer{ID: "c1", Name: "Acme Holidays"}

	m.customers.EXPECT().ListCustomers(gomock.Any()).
		Return([]domain.Customer{existing}, nil).Times(2)
	m.customers.EXPECT().UpdateCustomer(gomock.Any(), renamed).Return(nil)
	m.bookings.EXPECT().
		RenameBookingCustomer(gomock.Any(), "Acme Travel", "Acme Holidays").
		Return(int64(7), nil)

	result, err := uc.UpdateCustomer(context.Background(), renamed)
	require.NoError(t, err)
	assert.Equal(t, CascadeApplied, result.Cascade)
	assert.Equal(t, int64(7), result.BookingsUpdated)
}

func TestDirectoryUseCase_UpdateCustomer_SameNameSkipsCascade(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	existing := domain.Customer{ID: "c1", Name: "Acme Travel", Phone: "011"}
	updated := domain.Customer{ID: "c1", Name: "Acme Travel", Phone: "077"}

	m.customers.EXPECT().ListCustomers(gomock.Any()).
		Return([]domain.Customer{existing}, nil).Times(2)
	m.customers.EXPECT().UpdateCustomer(gomock.Any(), updated).Return(nil)

	result, err := uc.UpdateCustomer(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, CascadeSkipped, result.Cascade)
	assert.Zero(t, result.BookingsUpdated)
}

func TestDirectoryUseCase_UpdateCustomer_CascadeFailureSurvivesRename(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	existing := domain.Customer{ID: "c1", Name: "Acme Travel"}
	renamed := domain.Customer{ID: "c1", Name: "Acme Holidays"}

	m.customers.EXPECT().ListCustomers(gomock.Any()).
		Return([]domain.Customer{existing}, nil).Times(2)
	m.customers.EXPECT().UpdateCustomer(gomock.Any(), renamed).Return(nil)
	m.bookings.EXPECT().
		RenameBookingCustomer(gomock.Any(), "Acme Travel", "Acme Holidays").
		Return(int64(0), errors.New("db down")).
		AnyTimes()

	result, err := uc.UpdateCustomer(context.Background(), renamed)
	require.NoError(t, err, "the rename itself must not be rolled back")
	assert.Equal(t, CascadeFailed, result.Cascade)
}

func TestDirectoryUseCase_UpdateCustomer_NotFound(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	m.customers.EXPECT().ListCustomers(gomock.Any()).Return(nil, nil)

	_, err := uc.UpdateCustomer(context.Background(), domain.Customer{ID: "ghost", Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryUseCase_UpdateCustomer_KeepingOwnNameIsNotADuplicate(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	existing := domain.Customer{ID: "c1", Name: "Acme Travel"}

	m.customers.EXPECT().ListCustomers(gomock.Any()).
		Return([]domain.Customer{existing}, nil).Times(2)
	m.customers.EXPECT().UpdateCustomer(gomock.Any(), existing).Return(nil)

	_, err := uc.UpdateCustomer(context.Background(), existing)
	assert.NoError(t, err)
}

func TestDirectoryUseCase_SupplierRenameCascades(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	existing := domain.Supplier{ID: "s1", Name: "Global Consolidators"}
	renamed := domain.Supplier{ID: "s1", Name: "Global Air"}

	m.suppliers.EXPECT().ListSuppliers(gomock.Any()).
		Return([]domain.Supplier{existing}, nil).Times(2)
	m.suppliers.EXPECT().UpdateSupplier(gomock.Any(), renamed).Return(nil)
	m.bookings.EXPECT().
		RenameBookingSupplier(gomock.Any(), "Global Consolidators", "Global Air").
		Return(int64(3), nil)

	result, err := uc.UpdateSupplier(context.Background(), renamed)
	require.NoError(t, err)
	assert.Equal(t, CascadeApplied, result.Cascade)
	assert.Equal(t, int64(3), result.BookingsUpdated)
}

func TestDirectoryUseCase_CreateSupplier_DuplicateName(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	m.suppliers.EXPECT().ListSuppliers(gomock.Any()).
		Return([]domain.Supplier{{ID: "s1", Name: "Global Air"}}, nil)

	_, err := uc.CreateSupplier(context.Background(), domain.Supplier{Name: "global air"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestDirectoryUseCase_Deletes(t *testing.T) {
	uc, m := newDirectoryUseCase(t)

	m.customers.EXPECT().DeleteCustomer(gomock.Any(), "c1").Return(nil)
	m.suppliers.EXPECT().DeleteSupplier(gomock.Any(), "s1").Return(nil)

	assert.NoError(t, uc.DeleteCustomer(context.Background(), "c1"))
	assert.NoError(t, uc.DeleteSupplier(context.Background(), "s1"))
}
