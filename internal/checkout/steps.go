package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

// Step is one of the four linear wizard pages.
type Step int

const (
	StepSlot Step = iota + 1
	StepDetails
	StepReview
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepSlot:
		return "slot"
	case StepDetails:
		return "details"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

const (
	MinParticipants = 1
	MaxParticipants = 10

	// PrivateLeadDays is the minimum notice for a custom private-trip date.
	PrivateLeadDays = 3
)

// Wizard gates transitions between steps and writes derived fields into the
// shared Store.
type Wizard struct {
	store *Store
	trip  *TripContext
	now   func() time.Time
}

type WizardOption func(*Wizard)

// WithClock overrides time.Now, used for the private-trip lead time.
func WithClock(now func() time.Time) WizardOption {
	return func(w *Wizard) { w.now = now }
}

func NewWizard(store *Store, opts ...WizardOption) *Wizard {
	w := &Wizard{store: store, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Store() *Store { return w.store }

// LoadTrip fetches the trip and enters its checkout.
func (w *Wizard) LoadTrip(ctx context.Context, lookup TripLookup, tripID string) (TripContext, error) {
	trip, err := lookup.GetTrip(ctx, tripID)
	if err != nil {
		if domain.IsNotFound(err) {
			return TripContext{}, err
		}
		return TripContext{}, TransientError{Op: "load trip", Err: err}
	}
	tc := NewTripContext(trip, w.now())
	w.SetTrip(tc)
	return tc, nil
}

// SetTrip copies the trip snapshot into the draft. Entering another trip's
// checkout starts from an empty draft; re-entering the same trip keeps it.
func (w *Wizard) SetTrip(tc TripContext) {
	if cur := w.store.Get(); cur.TripID != "" && cur.TripID != tc.ID {
		w.store.Reset()
	}
	w.trip = &tc
	w.store.Update(WithTrip(tc.ID, tc.Name, tc.Image, tc.Location))
}

func (w *Wizard) Trip() (TripContext, bool) {
	if w.trip == nil {
		return TripContext{}, false
	}
	return *w.trip, true
}

// MinPrivateDate is the earliest date a private trip can be booked for.
func (w *Wizard) MinPrivateDate() time.Time {
	return utils.StartOfDay(w.now()).AddDate(0, 0, PrivateLeadDays)
}

// SelectSlot picks one of the open trip's slots.
func (w *Wizard) SelectSlot(slotID string) error {
	tc, err := w.requireTrip()
	if err != nil {
		return err
	}
	if tc.Kind != OpenTrip {
		return domain.ValidationError{Field: "slot", Msg: "private trips are booked by date"}
	}
	slot, ok := tc.Slot(slotID)
	if !ok {
		return domain.ValidationError{Field: "slot", Msg: "unknown slot " + slotID}
	}
	if !slot.Selectable() {
		return domain.ValidationError{Field: "slot", Msg: "this slot is fully booked"}
	}
	w.store.Update(WithSlot(&slot))
	return nil
}

// SelectPrivateDate stores a custom date as the private pseudo-slot.
func (w *Wizard) SelectPrivateDate(date time.Time) error {
	tc, err := w.requireTrip()
	if err != nil {
		return err
	}
	if tc.Kind != PrivateTrip {
		return domain.ValidationError{Field: "date", Msg: "open trips are booked by slot"}
	}
	if date.IsZero() {
		return domain.ValidationError{Field: "date", Msg: "please select your preferred departure date"}
	}
	day := utils.StartOfDay(date.In(w.now().Location()))
	if day.Before(w.MinPrivateDate()) {
		return domain.ValidationError{
			Field: "date",
			Msg:   fmt.Sprintf("private trips need at least %d days notice (earliest %s)", PrivateLeadDays, utils.FormatDisplayDate(w.MinPrivateDate())),
		}
	}
	slot := tc.privateSlot(day)
	w.store.Update(WithSelectedDate(&day), WithSlot(&slot))
	return nil
}

// SetParticipantCount accepts counts in [MinParticipants, MaxParticipants].
func (w *Wizard) SetParticipantCount(n int) error {
	if n < MinParticipants || n > MaxParticipants {
		return domain.ValidationError{
			Field: "participantCount",
			Msg:   fmt.Sprintf("must be between %d and %d", MinParticipants, MaxParticipants),
		}
	}
	w.store.Update(WithParticipantCount(n))
	return nil
}

// IncrementParticipants and DecrementParticipants clamp at the bounds.
func (w *Wizard) IncrementParticipants() int {
	n := w.store.Get().ParticipantCount
	if n < MaxParticipants {
		n++
		w.store.Update(WithParticipantCount(n))
	}
	return n
}

func (w *Wizard) DecrementParticipants() int {
	n := w.store.Get().ParticipantCount
	if n > MinParticipants {
		n--
		w.store.Update(WithParticipantCount(n))
	}
	return n
}

// CompleteSlotStep is the step 1 → 2 gate.
func (w *Wizard) CompleteSlotStep() (Step, error) {
	if err := w.checkSlotStep(); err != nil {
		return StepSlot, err
	}
	return StepDetails, nil
}

// Enter checks that every step before target still holds. It returns the step
// the customer may actually be on, which is earlier than target when a prior
// invariant broke (e.g. a bookmarked step 3 URL with an empty draft).
func (w *Wizard) Enter(target Step) (Step, error) {
	if target < StepSlot || target > StepPayment {
		return StepSlot, domain.ValidationError{Field: "step", Msg: "unknown step"}
	}
	if _, err := w.requireTrip(); err != nil {
		return StepSlot, err
	}
	checks := []func() error{w.checkSlotStep, w.checkDetailsStep}
	for i, check := range checks {
		s := Step(i + 1)
		if s >= target {
			break
		}
		if err := check(); err != nil {
			return s, err
		}
	}
	return target, nil
}

// Back is always allowed and never clears later data.
func (w *Wizard) Back(from Step) Step {
	if from <= StepSlot {
		return StepSlot
	}
	return from - 1
}

func (w *Wizard) requireTrip() (TripContext, error) {
	if w.trip == nil {
		return TripContext{}, ErrNoTripContext
	}
	if w.store.Get().TripID != w.trip.ID {
		return TripContext{}, ErrNoTripContext
	}
	return *w.trip, nil
}

func (w *Wizard) checkSlotStep() error {
	tc, err := w.requireTrip()
	if err != nil {
		return err
	}
	d := w.store.Get()
	if d.ParticipantCount < MinParticipants || d.ParticipantCount > MaxParticipants {
		return domain.ValidationError{Field: "participantCount", Msg: "invalid participant count"}
	}
	if tc.Kind == PrivateTrip {
		if d.SelectedDate == nil || d.SelectedSlot == nil || d.SelectedSlot.ID != PrivateSlotID {
			return domain.ValidationError{Field: "date", Msg: "please select your preferred departure date"}
		}
		if utils.StartOfDay(*d.SelectedDate).Before(w.MinPrivateDate()) {
			return domain.ValidationError{Field: "date", Msg: "selected date no longer meets the minimum lead time"}
		}
		return nil
	}
	if d.SelectedSlot == nil {
		return domain.ValidationError{Field: "slot", Msg: "please select a trip slot"}
	}
	if !d.SelectedSlot.Selectable() {
		return domain.ValidationError{Field: "slot", Msg: "this slot is fully booked"}
	}
	return nil
}

func (w *Wizard) checkDetailsStep() error {
	d := w.store.Get()
	if err := validateMainBooker(d.MainBooker); err != nil {
		return err
	}
	if len(d.Participants) != d.ParticipantCount {
		return domain.ValidationError{Field: "participants", Msg: "participant details do not match participant count"}
	}
	for i, p := range d.Participants {
		if err := validateParticipant(i, p); err != nil {
			return err
		}
	}
	return nil
}
