package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// CustomerStore implements domain.CustomerStore on PostgreSQL.
type CustomerStore struct {
	db *gorm.DB
}

// NewCustomerStore creates a CustomerStore.
func NewCustomerStore(db *gorm.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

func (s *CustomerStore) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var records []customerRecord
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, domain.Customer{ID: r.ID, Name: r.Name, Phone: r.Phone})
	}
	return customers, nil
}

func (s *CustomerStore) InsertCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	record := customerRecord{ID: c.ID, Name: c.Name, Phone: c.Phone}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Customer{}, fmt.Errorf("inserting customer: %w", err)
	}
	return c, nil
}

func (s *CustomerStore) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	result := s.db.WithContext(ctx).Model(&customerRecord{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{"name": c.Name, "phone": c.Phone})
	if result.Error != nil {
		return fmt.Errorf("updating customer %s: %w", c.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("customer", c.ID)
	}
	return nil
}

func (s *CustomerStore) DeleteCustomer(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&customerRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting customer %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("customer", id)
	}
	return nil
}

// SupplierStore implements domain.SupplierStore on PostgreSQL.
type SupplierStore struct {
	db *gorm.DB
}

// NewSupplierStore creates a SupplierStore.
func NewSupplierStore(db *gorm.DB) *SupplierStore {
	return &SupplierStore{db: db}
}

func (s *SupplierStore) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var records []supplierRecord
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("querying suppliers: %w", err)
	}

	suppliers := make([]domain.Supplier, 0, len(records))
	for _, r := range records {
		suppliers = append(suppliers, domain.Supplier{ID: r.ID, Name: r.Name, Contact: r.Contact})
	}
	return suppliers, nil
}

func (s *SupplierStore) InsertSupplier(ctx context.Context, sup domain.Supplier) (domain.Supplier, error) {
	if sup.ID == "" {
		sup.ID = uuid.NewString()
	}

	record := supplierRecord{ID: sup.ID, Name: sup.Name, Contact: sup.Contact}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return domain.Supplier{}, fmt.Errorf("inserting supplier: %w", err)
	}
	return sup, nil
}

func (s *SupplierStore) UpdateSupplier(ctx context.Context, sup domain.Supplier) error {
	result := s.db.WithContext(ctx).Model(&supplierRecord{}).
		Where("id = ?", sup.ID).
		Updates(map[string]any{"name": sup.Name, "contact": sup.Contact})
	if result.Error != nil {
		return fmt.Errorf("updating supplier %s: %w", sup.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("supplier", sup.ID)
	}
	return nil
}

func (s *SupplierStore) DeleteSupplier(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&supplierRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting supplier %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("supplier", id)
	}
	return nil
}
