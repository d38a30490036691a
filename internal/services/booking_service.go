package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/events"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

type BookingService struct {
	Repo   BookingStore
	Events events.Publisher
	Now    func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// NewBookingID returns BKG-<unix ms>-<5 upper-case alphanumerics>.
func NewBookingID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:5]
	return fmt.Sprintf("BKG-%d-%s", now.UnixMilli(), suffix)
}

// Create persists a new booking. Client-supplied status fields are ignored:
// every booking starts Pending/Unpaid.
func (s BookingService) Create(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error) {
	req.TripID = strings.TrimSpace(req.TripID)
	req.CustomerName = utils.NormalizeSpace(req.CustomerName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	switch {
	case req.TripID == "":
		return models.Booking{}, domain.ValidationError{Field: "tripId", Msg: "wajib diisi"}
	case req.CustomerName == "":
		return models.Booking{}, domain.ValidationError{Field: "customerName", Msg: "wajib diisi"}
	case req.Email == "":
		return models.Booking{}, domain.ValidationError{Field: "email", Msg: "wajib diisi"}
	case req.Phone == "":
		return models.Booking{}, domain.ValidationError{Field: "phone", Msg: "wajib diisi"}
	case req.TotalPrice < 0:
		return models.Booking{}, domain.ValidationError{Field: "totalPrice", Msg: "tidak boleh negatif"}
	case req.PricePerPax < 0:
		return models.Booking{}, domain.ValidationError{Field: "pricePerPax", Msg: "tidak boleh negatif"}
	}

	now := s.now()
	initial := domain.InitialReconciliation()
	b := models.Booking{
		ID:                NewBookingID(now),
		TripID:            req.TripID,
		TripName:          req.TripName,
		TripImage:         req.TripImage,
		TripLocation:      req.TripLocation,
		CustomerName:      req.CustomerName,
		Email:             req.Email,
		Phone:             req.Phone,
		Date:              utils.FirstNonEmpty(strings.TrimSpace(req.Date), utils.FormatDate(now)),
		Guests:            req.Guests,
		TotalPrice:        req.TotalPrice,
		PricePerPax:       req.PricePerPax,
		Participants:      req.Participants,
		Status:            initial.Status,
		PaymentStatus:     initial.PaymentStatus,
		PaymentMethod:     req.PaymentMethod,
		ProofOfPaymentURL: req.ProofOfPaymentURL,
		Version:           1,
		CreatedAt:         now,
	}
	if b.Guests < 1 {
		b.Guests = 1
	}
	if b.Participants == nil {
		b.Participants = []models.Participant{}
	}

	if err := s.Repo.Create(ctx, b); err != nil {
		return models.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	reqID := utils.RequestIDFrom(ctx)
	utils.LogEvent(reqID, "booking", "create", fmt.Sprintf("booking_id=%s trip_id=%s guests=%d total=%d", b.ID, b.TripID, b.Guests, b.TotalPrice))
	events.Emit(ctx, s.Events, reqID, events.NewBookingEvent(events.BookingCreated, b, now))
	return b, nil
}

func (s BookingService) Get(ctx context.Context, id string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "wajib diisi"}
	}
	return s.Repo.GetByID(ctx, id)
}

func (s BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.List(ctx)
}

// Delete is the admin hard delete. It is not a status transition.
func (s BookingService) Delete(ctx context.Context, id string) error {
	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if !ok {
		return domain.NotFoundError{Resource: "booking", ID: id}
	}
	reqID := utils.RequestIDFrom(ctx)
	utils.LogEvent(reqID, "booking", "delete", "booking_id="+id)
	events.Emit(ctx, s.Events, reqID, events.Event{Name: events.BookingDeleted, BookingID: id, OccurredAt: s.now()})
	return nil
}
