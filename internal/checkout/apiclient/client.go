// Package apiclient implements the checkout collaborators against the
// AdventureHub HTTP API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/checkout"
	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

const DefaultTimeout = 15 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ checkout.TripLookup        = (*Client)(nil)
	_ checkout.BankAccountSource = (*Client)(nil)
	_ checkout.Uploader          = (*Client)(nil)
	_ checkout.BookingCreator    = (*Client)(nil)
	_ checkout.BookingTracker    = (*Client)(nil)
)

func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: strings.TrimRight(cfg.BaseURL, "/"), http: hc}
}

// StatusError is a non-2xx answer that is neither 400 nor 404.
type StatusError struct {
	Status  int
	Message string
}

func (e StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	var trip models.Trip
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(id), nil, "", &trip, "trip", id)
	return trip, err
}

func (c *Client) ActiveBankAccounts(ctx context.Context) ([]models.BankAccount, error) {
	var accounts []models.BankAccount
	err := c.do(ctx, http.MethodGet, "/api/bank-accounts?active=true", nil, "", &accounts, "bank account", "")
	return accounts, err
}

func (c *Client) Upload(ctx context.Context, file checkout.ProofFile) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(fileHeader(file))
	if err != nil {
		return "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var out struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/upload", &buf, mw.FormDataContentType(), &out, "upload", ""); err != nil {
		return "", err
	}
	if !out.Success || out.URL == "" {
		return "", fmt.Errorf("api: upload returned no url")
	}
	return out.URL, nil
}

func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.Booking{}, err
	}
	var b models.Booking
	err = c.do(ctx, http.MethodPost, "/api/bookings", bytes.NewReader(body), "application/json", &b, "booking", "")
	return b, err
}

func (c *Client) GetBooking(ctx context.Context, id string) (models.Booking, error) {
	var b models.Booking
	err := c.do(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil, "", &b, "booking", id)
	return b, err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any, resource, id string) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, out)
	}

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	msg := eb.Error
	if msg == "" {
		msg = eb.Message
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.NotFoundError{Resource: resource, ID: id}
	case http.StatusBadRequest:
		return domain.ValidationError{Msg: msg}
	default:
		return StatusError{Status: resp.StatusCode, Message: msg}
	}
}

func fileHeader(f checkout.ProofFile) textproto.MIMEHeader {
	name := f.Name
	if name == "" {
		name = "proof"
	}
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename=%q`, name)},
		"Content-Type":        {ct},
	}
}
