package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jslanka/ticket-backoffice/internal/domain"
)

// parseDraft decodes the model's reply into a booking draft. Models wrap
// JSON in markdown fences often enough that stripping them first is part
// of the contract.
func parseDraft(text string) (*domain.BookingDraft, error) {
	cleaned := stripFences(text)

	var draft domain.BookingDraft
	if err := json.Unmarshal([]byte(cleaned), &draft); err != nil {
		return nil, fmt.Errorf("parsing extraction reply: %w", err)
	}

	normalizeDraft(&draft)
	return &draft, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, and trims whitespace.
func stripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 && !strings.HasPrefix(s, "{") {
		// Drop a language tag such as "json" on the fence line.
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// normalizeDraft tidies model output: uppercased codes and locator, known
// passenger types only.
func normalizeDraft(d *domain.BookingDraft) {
	d.PNR = strings.ToUpper(strings.TrimSpace(d.PNR))
	d.Airline = strings.TrimSpace(d.Airline)
	d.IssuedDate = strings.TrimSpace(d.IssuedDate)

	for i := range d.Segments {
		d.Segments[i].Origin = strings.ToUpper(strings.TrimSpace(d.Segments[i].Origin))
		d.Segments[i].Destination = strings.ToUpper(strings.TrimSpace(d.Segments[i].Destination))
		d.Segments[i].FlightNo = strings.ToUpper(strings.TrimSpace(d.Segments[i].FlightNo))
	}

	for i := range d.Passengers {
		d.Passengers[i].Name = strings.TrimSpace(d.Passengers[i].Name)
		switch d.Passengers[i].Type {
		case domain.PassengerAdult, domain.PassengerChild, domain.PassengerInfant:
		default:
			d.Passengers[i].Type = domain.PassengerAdult
		}
	}
}
