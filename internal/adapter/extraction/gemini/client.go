// Package gemini implements ticket extraction against the Gemini
// generateContent REST API: the scanned ticket is sent inline with a fixed
// prompt and the model's JSON reply is parsed into a booking draft.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jslanka/ticket-backoffice/internal/domain"
	"github.com/jslanka/ticket-backoffice/internal/infrastructure/logger"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModel is the model used when the configuration names none.
const DefaultModel = "gemini-1.5-flash"

// DefaultTimeout bounds one extraction call.
const DefaultTimeout = 30 * time.Second

// extractionPrompt instructs the model to return bare JSON matching the
// draft shape. The date and time formats mirror the domain's storage
// formats so the reply maps straight onto a draft.
const extractionPrompt = `Extract the flight ticket details from this document.
Respond with only a JSON object, no markdown, using this exact shape:
{
  "passengers": [{"name": "SURNAME/FIRSTNAME TITLE", "eTicketNo": "", "type": "ADT"}],
  "segments": [{"origin": "CMB", "destination": "DXB", "departureDate": "YYYY-MM-DD", "departureTime": "HH:MM", "arrivalDate": "YYYY-MM-DD", "arrivalTime": "HH:MM", "flightNo": ""}],
  "pnr": "",
  "airline": "",
  "issuedDate": "YYYY-MM-DD"
}
Omit any field you cannot read. Use 24-hour times.`

// Config holds the client configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls the Gemini API and implements domain.TicketExtractor.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a Client. Zero config fields fall back to the
// defaults; a nil logger is replaced with a no-op one.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.WithComponent("gemini"),
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Extract implements domain.TicketExtractor.
func (c *Client) Extract(ctx context.Context, data []byte, mimeType string) (*domain.BookingDraft, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: extractionPrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(data),
				}},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gemini: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var gen generateResponse
	if err := json.Unmarshal(body, &gen); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if gen.Error != nil {
		return nil, fmt.Errorf("gemini error %d: %s", gen.Error.Code, gen.Error.Message)
	}
	if len(gen.Candidates) == 0 || len(gen.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	text := gen.Candidates[0].Content.Parts[0].Text
	draft, err := parseDraft(text)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Dur("elapsed", time.Since(start)).
		Int("segments", len(draft.Segments)).
		Msg("extraction response parsed")
	return draft, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
