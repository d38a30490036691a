package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mpictdev01/adventure-hub/internal/checkout"
	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/"})
}

func TestGetTrip(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/trips/bromo-sunrise":
			json.NewEncoder(w).Encode(models.Trip{ID: "bromo-sunrise", Badge: models.BadgeOpenTrip, Price: "IDR 1.2M"})
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"trip not found","code":"not_found"}`))
		}
	})

	trip, err := c.GetTrip(context.Background(), "bromo-sunrise")
	require.NoError(t, err)
	assert.Equal(t, "IDR 1.2M", trip.Price)

	_, err = c.GetTrip(context.Background(), "nope")
	assert.True(t, domain.IsNotFound(err))
}

func TestActiveBankAccounts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bank-accounts", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		w.Write([]byte(`[{"id":"bca","bankName":"BCA","accountNumber":"123","accountName":"PT AH","isActive":true}]`))
	})

	accounts, err := c.ActiveBankAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "BCA", accounts[0].BankName)
}

func TestUpload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "proof.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "png-bytes", string(data))
		w.Write([]byte(`{"success":true,"url":"/uploads/1-abc.png"}`))
	})

	got, err := c.Upload(context.Background(), checkout.ProofFile{Name: "proof.png", ContentType: "image/png", Data: []byte("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/1-abc.png", got)
}

func TestUploadFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"disk full"}`))
	})

	_, err := c.Upload(context.Background(), checkout.ProofFile{Name: "p.png", ContentType: "image/png", Data: []byte("x")})
	var se StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "disk full", se.Message)
}

func TestCreateBooking(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req models.CreateBookingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.CustomerName == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"customerName: wajib diisi","code":"validation_error"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Booking{
			ID:            "BKG-1-ABCDE",
			TotalPrice:    req.TotalPrice,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentUnpaid,
		})
	})

	b, err := c.CreateBooking(context.Background(), models.CreateBookingRequest{CustomerName: "Dewi", TotalPrice: 2_350_000})
	require.NoError(t, err)
	assert.Equal(t, "BKG-1-ABCDE", b.ID)
	assert.Equal(t, int64(2_350_000), b.TotalPrice)

	_, err = c.CreateBooking(context.Background(), models.CreateBookingRequest{})
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "wajib diisi")
}

func TestGetBookingNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(Config{BaseURL: srv.URL})
	srv.Close()

	_, err := c.GetBooking(context.Background(), "BKG-1")
	require.Error(t, err)
	assert.False(t, domain.IsNotFound(err))
}
