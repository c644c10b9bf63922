package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "acme travel", NormalizeName("  Acme Travel "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("Acme Travel", "ACME TRAVEL"))
	assert.True(t, SameName(" Acme Travel", "acme travel "))
	assert.False(t, SameName("Acme Travel", "Acme Tours"))
}

func TestDraft_MergeInto(t *testing.T) {
	b := Booking{
		PNR:        "KEEP01",
		Airline:    "SriLankan",
		IssuedDate: "2024-05-01",
		Passengers: []Passenger{{Name: "PERERA/JOHN MR"}},
	}

	// Absent draft fields leave existing state untouched.
	d := &BookingDraft{Airline: "Emirates"}
	d.MergeInto(&b)

	assert.Equal(t, "Emirates", b.Airline)
	assert.Equal(t, "KEEP01", b.PNR)
	assert.Equal(t, "2024-05-01", b.IssuedDate)
	assert.Len(t, b.Passengers, 1)

	// Present collections replace wholesale.
	d = &BookingDraft{
		Passengers: []Passenger{{Name: "SILVA/ANNA MS"}, {Name: "SILVA/NIMAL MR"}},
		Segments:   []FlightSegment{{Origin: "CMB", Destination: "SIN", DepartureDate: "2024-07-01"}},
		PNR:        "XY99ZZ",
	}
	d.MergeInto(&b)

	assert.Equal(t, "XY99ZZ", b.PNR)
	assert.Len(t, b.Passengers, 2)
	assert.Len(t, b.Segments, 1)

	// Nil draft is a no-op.
	var nilDraft *BookingDraft
	assert.True(t, nilDraft.IsEmpty())
	nilDraft.MergeInto(&b)
	assert.Equal(t, "XY99ZZ", b.PNR)
}
