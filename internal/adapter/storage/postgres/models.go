package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// bookingRecord is the GORM model for bookings. Passengers and segments are
// stored as JSONB documents: they are always read and written with the
// parent record and never queried relationally.
type bookingRecord struct {
	ID             string         `gorm:"primaryKey;size:36"`
	Passengers     datatypes.JSON `gorm:"column:passengers"`
	Segments       datatypes.JSON `gorm:"column:segments"`
	PNR            string         `gorm:"column:pnr;size:32;index"`
	IssuedDate     string         `gorm:"column:issued_date;size:10;index"`
	Airline        string         `gorm:"column:airline;size:128"`
	CustomerName   string         `gorm:"column:customer_name;size:128;index"`
	SupplierName   string         `gorm:"column:supplier_name;size:128;index"`
	SalesPrice     float64        `gorm:"column:sales_price"`
	PurchasePrice  float64        `gorm:"column:purchase_price"`
	Profit         float64        `gorm:"column:profit"`
	IsDummy        bool           `gorm:"column:is_dummy"`
	Status         string         `gorm:"column:status;size:16"`
	ReminderSent   bool           `gorm:"column:reminder_sent"`
	TicketFilePath string         `gorm:"column:ticket_file_path;size:255"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (bookingRecord) TableName() string {
	return "bookings"
}

func newBookingRecord(b domain.Booking) (bookingRecord, error) {
	passengers, err := json.Marshal(b.Passengers)
	if err != nil {
		return bookingRecord{}, fmt.Errorf("encoding passengers: %w", err)
	}
	segments, err := json.Marshal(b.Segments)
	if err != nil {
		return bookingRecord{}, fmt.Errorf("encoding segments: %w", err)
	}

	return bookingRecord{
		ID:             b.ID,
		Passengers:     datatypes.JSON(passengers),
		Segments:       datatypes.JSON(segments),
		PNR:            b.PNR,
		IssuedDate:     b.IssuedDate,
		Airline:        b.Airline,
		CustomerName:   b.CustomerName,
		SupplierName:   b.SupplierName,
		SalesPrice:     b.SalesPrice,
		PurchasePrice:  b.PurchasePrice,
		Profit:         b.Profit,
		IsDummy:        b.IsDummy,
		Status:         string(b.Status),
		ReminderSent:   b.ReminderSent,
		TicketFilePath: b.TicketFilePath,
		CreatedAt:      b.CreatedAt,
	}, nil
}

func (r bookingRecord) toDomain() (domain.Booking, error) {
	b := domain.Booking{
		ID:             r.ID,
		PNR:            r.PNR,
		IssuedDate:     r.IssuedDate,
		Airline:        r.Airline,
		CustomerName:   r.CustomerName,
		SupplierName:   r.SupplierName,
		SalesPrice:     r.SalesPrice,
		PurchasePrice:  r.PurchasePrice,
		Profit:         r.Profit,
		IsDummy:        r.IsDummy,
		Status:         domain.Status(r.Status),
		ReminderSent:   r.ReminderSent,
		TicketFilePath: r.TicketFilePath,
		CreatedAt:      r.CreatedAt,
	}

	if len(r.Passengers) > 0 {
		if err := json.Unmarshal(r.Passengers, &b.Passengers); err != nil {
			return domain.Booking{}, fmt.Errorf("decoding passengers for booking %s: %w", r.ID, err)
		}
	}
	if len(r.Segments) > 0 {
		if err := json.Unmarshal(r.Segments, &b.Segments); err != nil {
			return domain.Booking{}, fmt.Errorf("decoding segments for booking %s: %w", r.ID, err)
		}
	}
	return b, nil
}

type customerRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"column:name;size:128;index"`
	Phone     string `gorm:"column:phone;size:32"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (customerRecord) TableName() string {
	return "customers"
}

type supplierRecord struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"column:name;size:128;index"`
	Contact   string `gorm:"column:contact;size:128"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (supplierRecord) TableName() string {
	return "suppliers"
}

// ticketFileRecord holds uploaded ticket scans keyed by their path.
type ticketFileRecord struct {
	Path        string `gorm:"primaryKey;size:255"`
	Data        []byte `gorm:"column:data;type:bytea"`
	ContentType string `gorm:"column:content_type;size:64"`
	CreatedAt   time.Time
}

func (ticketFileRecord) TableName() string {
	return "ticket_files"
}
