package domain

// BookingDraft is the best-effort structured result of extracting a scanned
// ticket. Every field is optional: the extractor returns whatever it could
// read, and absent fields must never overwrite state the operator already
// entered.
type BookingDraft struct {
	Passengers []Passenger     `json:"passengers,omitempty"`
	Segments   []FlightSegment `json:"segments,omitempty"`
	PNR        string          `json:"pnr,omitempty"`
	Airline    string          `json:"airline,omitempty"`
	IssuedDate string          `json:"issuedDate,omitempty"`
}

// IsEmpty reports whether the extractor found nothing usable.
func (d *BookingDraft) IsEmpty() bool {
	if d == nil {
		return true
	}
	return len(d.Passengers) == 0 && len(d.Segments) == 0 &&
		d.PNR == "" && d.Airline == "" && d.IssuedDate == ""
}

// MergeInto copies the draft's present fields onto the booking, leaving
// fields the draft does not carry untouched. The extraction endpoint only
// returns the draft; clients call this when folding an extraction result
// into a booking form that already holds operator input.
func (d *BookingDraft) MergeInto(b *Booking) {
	if d == nil {
		return
	}
	if len(d.Passengers) > 0 {
		b.Passengers = d.Passengers
	}
	if len(d.Segments) > 0 {
		b.Segments = d.Segments
	}
	if d.PNR != "" {
		b.PNR = d.PNR
	}
	if d.Airline != "" {
		b.Airline = d.Airline
	}
	if d.IssuedDate != "" {
		b.IssuedDate = d.IssuedDate
	}
}
