package checkout

import (
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/pricing"
)

// Review is the read-only recap shown on step 3.
type Review struct {
	TripName         string
	TripLocation     string
	TripKind         TripKind
	Slot             SlotInfo
	ParticipantCount int
	MainBooker       models.Participant
	Participants     []ReviewParticipant
	PricePerPax      int64
	Breakdown        pricing.Breakdown
}

type ReviewParticipant struct {
	Name  string
	Phone string
}

// EditSection is an edit affordance on the review page.
type EditSection int

const (
	EditTripAndDate EditSection = iota
	EditParticipants
)

// Review builds the recap; steps 1 and 2 must hold.
func (w *Wizard) Review() (Review, error) {
	if _, err := w.Enter(StepReview); err != nil {
		return Review{}, err
	}
	tc, _ := w.Trip()
	d := w.store.Get()
	r := Review{
		TripName:         d.TripName,
		TripLocation:     d.TripLocation,
		TripKind:         tc.Kind,
		Slot:             *d.SelectedSlot,
		ParticipantCount: d.ParticipantCount,
		MainBooker:       *d.MainBooker,
		PricePerPax:      d.PricePerPax,
		Breakdown:        pricing.NewBreakdown(d.PricePerPax, d.ParticipantCount),
	}
	for _, p := range d.Participants {
		r.Participants = append(r.Participants, ReviewParticipant{Name: p.FullName, Phone: p.Phone})
	}
	return r, nil
}

// Edit routes back to the step owning a section without touching the draft.
func (w *Wizard) Edit(section EditSection) Step {
	if section == EditParticipants {
		return StepDetails
	}
	return StepSlot
}

// ConfirmReview is the step 3 → 4 transition; it only re-checks steps 1-2.
func (w *Wizard) ConfirmReview() (Step, error) {
	return w.Enter(StepPayment)
}
