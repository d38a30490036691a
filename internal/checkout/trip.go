package checkout

import (
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/pricing"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

type TripKind int

const (
	OpenTrip TripKind = iota
	PrivateTrip
)

func (k TripKind) String() string {
	if k == PrivateTrip {
		return string(models.BadgePrivateTrip)
	}
	return string(models.BadgeOpenTrip)
}

// TripContext is the trip data the wizard works from once step 1 is entered.
type TripContext struct {
	ID        string
	Name      string
	Image     string
	Location  string
	Kind      TripKind
	BasePrice int64
	Slots     []SlotInfo
}

// NewTripContext derives base price and, for open trips, the sample slots.
func NewTripContext(trip models.Trip, now time.Time) TripContext {
	tc := TripContext{
		ID:        trip.ID,
		Name:      trip.Title,
		Image:     trip.ImageURL,
		Location:  trip.Location,
		Kind:      OpenTrip,
		BasePrice: pricing.ParsePrice(trip.Price),
	}
	if trip.Badge == models.BadgePrivateTrip {
		tc.Kind = PrivateTrip
		return tc
	}
	tc.Slots = sampleSlots(trip, tc.BasePrice, now)
	return tc
}

// Slot returns the slot with the given id.
func (tc TripContext) Slot(id string) (SlotInfo, bool) {
	for _, s := range tc.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return SlotInfo{}, false
}

// sampleSlots seeds three departures around the base price: the catalog date
// (or two weeks out), a nearly full one a week later, and a pricier weekend.
func sampleSlots(trip models.Trip, base int64, now time.Time) []SlotInfo {
	today := utils.StartOfDay(now)

	first := today.AddDate(0, 0, 14)
	firstRaw, firstDisplay := utils.FormatDate(first), utils.FormatDisplayDate(first)
	if trip.Date != "" {
		firstRaw, firstDisplay = trip.Date, trip.Date
	}

	second := today.AddDate(0, 0, 21)

	weekend := today.AddDate(0, 0, 28)
	for weekend.Weekday() != time.Saturday {
		weekend = weekend.AddDate(0, 0, 1)
	}

	return []SlotInfo{
		{
			ID:          "slot-1",
			Date:        firstRaw,
			DisplayDate: firstDisplay,
			Price:       base,
			SpotsLeft:   8,
			Status:      SlotNormal,
		},
		{
			ID:          "slot-2",
			Date:        utils.FormatDate(second),
			DisplayDate: utils.FormatDisplayDate(second),
			Price:       base,
			SpotsLeft:   3,
			Status:      SlotFillingFast,
			Label:       "Only 3 spots left",
		},
		{
			ID:          "slot-3",
			Date:        utils.FormatDate(weekend),
			DisplayDate: utils.FormatDisplayDate(weekend),
			Price:       base + base/10,
			SpotsLeft:   10,
			Status:      SlotWeekend,
		},
	}
}

// privateSlot builds the pseudo-slot stored for a private trip date.
func (tc TripContext) privateSlot(date time.Time) SlotInfo {
	return SlotInfo{
		ID:          PrivateSlotID,
		Date:        utils.FormatDate(date),
		DisplayDate: utils.FormatDisplayDate(date),
		Price:       tc.BasePrice,
		SpotsLeft:   PrivateSlotSpots,
		Status:      SlotNormal,
	}
}
