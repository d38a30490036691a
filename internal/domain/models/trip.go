package models

// TripBadge distinguishes scheduled group departures from custom-date trips.
type TripBadge string

const (
	BadgeOpenTrip    TripBadge = "Open Trip"
	BadgePrivateTrip TripBadge = "Private Trip"
)

// Trip is the catalog entry as served by GET /api/trips/:id. Price is free text
// ("IDR 1.2M", "IDR 850K", ...).
type Trip struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	Badge    TripBadge `json:"badge"`
	Price    string    `json:"price"`
	Date     string    `json:"date,omitempty"`
	ImageURL string    `json:"imageUrl"`
}
