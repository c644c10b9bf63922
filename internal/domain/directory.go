package domain

import (
	"fmt"
	"strings"
)

// Customer is a client of the agency. Bookings carry the customer's display
// name as a denormalized copy taken at assignment time, so renaming a
// customer cascades to matching bookings (see the directory use case).
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Validate checks the customer can be persisted.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidName)
	}
	return nil
}

// Supplier is a ticket source (consolidator or airline direct).
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// Validate checks the supplier can be persisted.
func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: supplier name is required", ErrInvalidName)
	}
	return nil
}

// NormalizeName folds a display name for uniqueness comparison: trimmed and
// case-insensitive. Uniqueness is an application-layer rule, not a storage
// constraint.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName reports whether two display names collide under the
// application-layer uniqueness rule.
func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}
