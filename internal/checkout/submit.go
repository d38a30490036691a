package checkout

import (
	"context"
	"strings"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/pricing"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

// PaymentOutcome is what the payment step hands to submission.
type PaymentOutcome struct {
	ProofURL      string
	PaymentMethod string
}

// Confirmation is the thank-you view. BookingID is the server id.
type Confirmation struct {
	BookingID string
	Booking   models.Booking
}

// Submitter turns the finished draft into exactly one server booking.
type Submitter struct {
	Bookings BookingCreator
	Store    *Store
}

// Submit creates the booking and resets the draft on success. On failure the
// draft is kept so a retry needs no re-entry.
func (s *Submitter) Submit(ctx context.Context, outcome PaymentOutcome) (Confirmation, error) {
	req, err := BuildCreateRequest(s.Store.Get(), outcome)
	if err != nil {
		return Confirmation{}, err
	}
	booking, err := s.Bookings.CreateBooking(ctx, req)
	if err != nil {
		utils.LogEvent("", "checkout", "create_booking", "failed: "+err.Error())
		return Confirmation{}, TransientError{Op: "create booking", Err: err}
	}
	s.Store.Reset()
	utils.LogEvent("", "checkout", "create_booking", "created "+booking.ID)
	return Confirmation{BookingID: booking.ID, Booking: booking}, nil
}

// BuildCreateRequest maps a draft onto the create-booking body. It only
// checks structure; business rules belong to the step gates.
func BuildCreateRequest(d Draft, outcome PaymentOutcome) (models.CreateBookingRequest, error) {
	switch {
	case strings.TrimSpace(d.TripID) == "":
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "tripId"}
	case d.MainBooker == nil:
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "mainBooker"}
	case strings.TrimSpace(d.MainBooker.FullName) == "":
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "mainBooker.fullName"}
	case strings.TrimSpace(d.MainBooker.Email) == "":
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "mainBooker.email"}
	case strings.TrimSpace(d.MainBooker.Phone) == "":
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "mainBooker.phone"}
	case d.SelectedSlot == nil || strings.TrimSpace(d.SelectedSlot.Date) == "":
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "date"}
	case d.ParticipantCount < MinParticipants:
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "participantCount"}
	}

	total := pricing.NewBreakdown(d.PricePerPax, d.ParticipantCount).Total
	if total < 0 {
		return models.CreateBookingRequest{}, IncompleteDraftError{Field: "totalPrice"}
	}
	initial := domain.InitialReconciliation()
	return models.CreateBookingRequest{
		TripID:            d.TripID,
		TripName:          d.TripName,
		TripImage:         d.TripImage,
		TripLocation:      d.TripLocation,
		CustomerName:      d.MainBooker.FullName,
		Email:             d.MainBooker.Email,
		Phone:             d.MainBooker.Phone,
		Date:              d.SelectedSlot.Date,
		Guests:            d.ParticipantCount,
		TotalPrice:        total,
		PricePerPax:       d.PricePerPax,
		Participants:      append([]models.Participant(nil), d.Participants...),
		Status:            string(initial.Status),
		PaymentStatus:     string(initial.PaymentStatus),
		PaymentMethod:     outcome.PaymentMethod,
		ProofOfPaymentURL: outcome.ProofURL,
	}, nil
}

// TrackBooking is the read-only lookup by server id.
func TrackBooking(ctx context.Context, tracker BookingTracker, id string) (models.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "please enter a booking id"}
	}
	b, err := tracker.GetBooking(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, TransientError{Op: "track booking", Err: err}
	}
	return b, nil
}
