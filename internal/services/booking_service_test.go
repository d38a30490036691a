package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/events"
	"github.com/Mpictdev01/adventure-hub/internal/services/mocks"
)

var fixedNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func validCreateRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		TripID:       "bromo-sunrise",
		TripName:     "Bromo Sunrise",
		CustomerName: "  Dewi   Lestari ",
		Email:        "dewi@example.com",
		Phone:        "081234567890",
		Date:         "2026-10-29",
		Guests:       2,
		TotalPrice:   2_350_000,
		PricePerPax:  1_200_000,
		Participants: []models.Participant{
			{FullName: "Dewi Lestari", IDNumber: "3201", Phone: "0812"},
			{FullName: "Andi", IDNumber: "3202", Phone: "0813"},
		},
		Status:        "Confirmed",
		PaymentStatus: "Paid",
		PaymentMethod: "Bank Transfer - BCA",
	}
}

func TestNewBookingID(t *testing.T) {
	id := NewBookingID(fixedNow)
	assert.Regexp(t, regexp.MustCompile(`^BKG-1792058400000-[0-9A-F]{5}$`), id)
	assert.NotEqual(t, id, NewBookingID(fixedNow))
}

func TestBookingServiceCreate(t *testing.T) {
	repo := new(mocks.MockBookingStore)
	pub := new(mocks.MockPublisher)
	svc := BookingService{Repo: repo, Events: pub, Now: clock}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b models.Booking) bool {
		return b.Status == domain.StatusPending && b.PaymentStatus == domain.PaymentUnpaid && b.Version == 1
	})).Return(nil)
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Name == events.BookingCreated
	})).Return(nil)

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "Dewi Lestari", b.CustomerName)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
	assert.Equal(t, int64(2_350_000), b.TotalPrice)
	assert.Equal(t, fixedNow, b.CreatedAt)
	assert.Len(t, b.Participants, 2)

	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestBookingServiceCreateDefaults(t *testing.T) {
	repo := new(mocks.MockBookingStore)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := BookingService{Repo: repo, Now: clock}

	req := validCreateRequest()
	req.Date = ""
	req.Guests = 0
	req.Participants = nil
	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", b.Date)
	assert.Equal(t, 1, b.Guests)
	assert.NotNil(t, b.Participants)
}

func TestBookingServiceCreateValidation(t *testing.T) {
	svc := BookingService{Repo: new(mocks.MockBookingStore), Now: clock}

	tests := []struct {
		name  string
		edit  func(*models.CreateBookingRequest)
		field string
	}{
		{"missing trip", func(r *models.CreateBookingRequest) { r.TripID = " " }, "tripId"},
		{"missing name", func(r *models.CreateBookingRequest) { r.CustomerName = "" }, "customerName"},
		{"missing email", func(r *models.CreateBookingRequest) { r.Email = "" }, "email"},
		{"missing phone", func(r *models.CreateBookingRequest) { r.Phone = "" }, "phone"},
		{"negative total", func(r *models.CreateBookingRequest) { r.TotalPrice = -1 }, "totalPrice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.edit(&req)
			_, err := svc.Create(context.Background(), req)
			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestBookingServiceCreateRepoError(t *testing.T) {
	repo := new(mocks.MockBookingStore)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	svc := BookingService{Repo: repo, Now: clock}

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.Error(t, err)
	assert.False(t, domain.IsValidation(err))
}

func TestBookingServiceDelete(t *testing.T) {
	repo := new(mocks.MockBookingStore)
	repo.On("Delete", mock.Anything, "BKG-1").Return(true, nil)
	repo.On("Delete", mock.Anything, "BKG-2").Return(false, nil)
	pub := new(mocks.MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker gone"))
	svc := BookingService{Repo: repo, Events: pub, Now: clock}

	assert.NoError(t, svc.Delete(context.Background(), "BKG-1"))
	assert.True(t, domain.IsNotFound(svc.Delete(context.Background(), "BKG-2")))
	pub.AssertNumberOfCalls(t, "Publish", 1)
}
