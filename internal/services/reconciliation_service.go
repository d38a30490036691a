package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/events"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

// ReconciliationService applies admin payment actions to bookings.
type ReconciliationService struct {
	Repo   BookingStore
	Events events.Publisher
	Now    func() time.Time
}

// Apply runs one transition. Unknown actions and unknown ids perform no
// write. Without a version the last write wins; with one, a stale version
// is a conflict.
func (s ReconciliationService) Apply(ctx context.Context, id string, req models.ReconcileRequest) (models.Booking, error) {
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		return models.Booking{}, err
	}
	target, err := action.Target()
	if err != nil {
		return models.Booking{}, err
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if current.Status == domain.StatusCancelled {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "booking sudah dibatalkan"}
	}
	if req.Version != nil && *req.Version != current.Version {
		return models.Booking{}, staleVersion(*req.Version, current.Version)
	}

	ok, err := s.Repo.UpdateReconciliation(ctx, id, target, req.Version)
	if err != nil {
		return models.Booking{}, fmt.Errorf("update booking %s: %w", id, err)
	}
	if !ok {
		latest, gerr := s.Repo.GetByID(ctx, id)
		if gerr != nil {
			return models.Booking{}, gerr
		}
		if req.Version != nil {
			return models.Booking{}, staleVersion(*req.Version, latest.Version)
		}
		return models.Booking{}, domain.NotFoundError{Resource: "booking", ID: id}
	}

	updated, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}

	reqID := utils.RequestIDFrom(ctx)
	utils.LogEvent(reqID, "reconciliation", action.String(), fmt.Sprintf("booking_id=%s %s/%s -> %s/%s",
		id, current.Status, current.PaymentStatus, updated.Status, updated.PaymentStatus))
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	events.Emit(ctx, s.Events, reqID, events.NewBookingEvent(action.EventName(), updated, now))
	return updated, nil
}

func staleVersion(sent, current int64) error {
	return domain.ConflictError{
		Resource: "booking",
		Msg:      fmt.Sprintf("versi %d sudah usang (sekarang %d), muat ulang data", sent, current),
	}
}
