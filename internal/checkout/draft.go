// Package checkout holds the customer-side booking lifecycle: the persisted
// draft, the four gated wizard steps, the bank-transfer payment workflow and
// the final booking submission.
package checkout

import (
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/pricing"
)

type SlotStatus string

const (
	SlotNormal      SlotStatus = "normal"
	SlotFillingFast SlotStatus = "filling-fast"
	SlotWeekend     SlotStatus = "weekend"
	SlotFullyBooked SlotStatus = "fully-booked"
)

const (
	// PrivateSlotID marks the pseudo-slot synthesized for a private trip date.
	PrivateSlotID = "private-slot"
	// PrivateSlotSpots is the nominal capacity of a private-trip pseudo-slot.
	PrivateSlotSpots = 99
)

// SlotInfo is a bookable date/price/availability row.
type SlotInfo struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	DisplayDate string     `json:"displayDate"`
	Price       int64      `json:"price"`
	SpotsLeft   int        `json:"spotsLeft"`
	Status      SlotStatus `json:"status"`
	Label       string     `json:"label,omitempty"`
}

func (s SlotInfo) Selectable() bool {
	return s.Status != SlotFullyBooked
}

// Draft is one in-progress checkout.
type Draft struct {
	TripID       string
	TripName     string
	TripImage    string
	TripLocation string

	// SelectedDate is only set for private trips.
	SelectedDate *time.Time
	SelectedSlot *SlotInfo

	ParticipantCount int
	PricePerPax      int64
	MainBooker       *models.Participant
	Participants     []models.Participant

	// BookingID is the client correlation id (ADVHUB...), not the server id.
	BookingID     string
	PaymentMethod string
}

// EmptyDraft is the state after reset.
func EmptyDraft() Draft {
	return Draft{ParticipantCount: MinParticipants}
}

// TotalPrice is always derived, never stored.
func (d Draft) TotalPrice() int64 {
	return pricing.TotalPrice(d.PricePerPax, d.ParticipantCount)
}

func (d Draft) clone() Draft {
	out := d
	if d.SelectedDate != nil {
		t := *d.SelectedDate
		out.SelectedDate = &t
	}
	if d.SelectedSlot != nil {
		s := *d.SelectedSlot
		out.SelectedSlot = &s
	}
	if d.MainBooker != nil {
		m := *d.MainBooker
		out.MainBooker = &m
	}
	if d.Participants != nil {
		out.Participants = append([]models.Participant(nil), d.Participants...)
	}
	return out
}

// Change is a partial update applied by Store.Update.
type Change func(*Draft)

func WithTrip(id, name, image, location string) Change {
	return func(d *Draft) {
		d.TripID = id
		d.TripName = name
		d.TripImage = image
		d.TripLocation = location
	}
}

// WithSlot stores the slot and derives pricePerPax from it; nil clears both.
func WithSlot(slot *SlotInfo) Change {
	return func(d *Draft) {
		if slot == nil {
			d.SelectedSlot = nil
			d.PricePerPax = 0
			return
		}
		s := *slot
		d.SelectedSlot = &s
		d.PricePerPax = s.Price
	}
}

func WithSelectedDate(t *time.Time) Change {
	return func(d *Draft) {
		if t == nil {
			d.SelectedDate = nil
			return
		}
		v := *t
		d.SelectedDate = &v
	}
}

func WithParticipantCount(n int) Change {
	return func(d *Draft) { d.ParticipantCount = n }
}

func WithPricePerPax(p int64) Change {
	return func(d *Draft) { d.PricePerPax = p }
}

func WithMainBooker(p *models.Participant) Change {
	return func(d *Draft) {
		if p == nil {
			d.MainBooker = nil
			return
		}
		v := *p
		d.MainBooker = &v
	}
}

func WithParticipants(ps []models.Participant) Change {
	return func(d *Draft) {
		d.Participants = append([]models.Participant(nil), ps...)
	}
}

func WithBookingID(id string) Change {
	return func(d *Draft) { d.BookingID = id }
}

func WithPaymentMethod(m string) Change {
	return func(d *Draft) { d.PaymentMethod = m }
}
