package checkout

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

// Store is the single source of truth for the in-progress checkout. Every
// step receives the same *Store; nothing in this package keeps a global draft.
// Two processes sharing one Storage race with last-write-wins per mutation.
type Store struct {
	mu      sync.Mutex
	draft   Draft
	storage Storage
}

// NewStore loads a previously persisted draft from storage. A missing or
// unreadable draft starts empty; read errors are logged, never returned.
func NewStore(storage Storage) *Store {
	s := &Store{draft: EmptyDraft(), storage: storage}
	if storage == nil {
		return s
	}
	raw, ok, err := storage.Get(DraftKey)
	if err != nil {
		utils.LogEvent("", "checkout", "load_draft", "storage read failed: "+err.Error())
		return s
	}
	if !ok {
		return s
	}
	d, err := UnmarshalDraft(raw)
	if err != nil {
		utils.LogEvent("", "checkout", "load_draft", "discarding malformed draft: "+err.Error())
		return s
	}
	s.draft = d
	return s
}

func (s *Store) Get() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

// Update shallow-merges changes into the draft and persists it once the draft
// belongs to a trip. No validation happens here.
func (s *Store) Update(changes ...Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, apply := range changes {
		apply(&s.draft)
	}
	s.persistLocked()
}

// Reset empties the draft and clears durable storage.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = EmptyDraft()
	if s.storage == nil {
		return
	}
	if err := s.storage.Remove(DraftKey); err != nil {
		utils.LogEvent("", "checkout", "reset_draft", "storage remove failed: "+err.Error())
	}
}

func (s *Store) TotalPrice() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.TotalPrice()
}

func (s *Store) persistLocked() {
	if s.storage == nil || s.draft.TripID == "" {
		return
	}
	raw, err := MarshalDraft(s.draft)
	if err != nil {
		utils.LogEvent("", "checkout", "save_draft", "encode failed: "+err.Error())
		return
	}
	if err := s.storage.Set(DraftKey, raw); err != nil {
		utils.LogEvent("", "checkout", "save_draft", "storage write failed: "+err.Error())
	}
}

// draftRecord is the stored form. SelectedDate travels as YYYY-MM-DD and is
// parsed back explicitly on load.
type draftRecord struct {
	TripID           string               `json:"tripId"`
	TripName         string               `json:"tripName"`
	TripImage        string               `json:"tripImage"`
	TripLocation     string               `json:"tripLocation"`
	SelectedDate     *string              `json:"selectedDate"`
	SelectedSlot     *SlotInfo            `json:"selectedSlot"`
	ParticipantCount int                  `json:"participantCount"`
	PricePerPax      int64                `json:"pricePerPax"`
	MainBooker       *models.Participant  `json:"mainBooker"`
	Participants     []models.Participant `json:"participants"`
	BookingID        *string              `json:"bookingId"`
	PaymentMethod    *string              `json:"paymentMethod"`
}

func MarshalDraft(d Draft) ([]byte, error) {
	rec := draftRecord{
		TripID:           d.TripID,
		TripName:         d.TripName,
		TripImage:        d.TripImage,
		TripLocation:     d.TripLocation,
		SelectedSlot:     d.SelectedSlot,
		ParticipantCount: d.ParticipantCount,
		PricePerPax:      d.PricePerPax,
		MainBooker:       d.MainBooker,
		Participants:     d.Participants,
	}
	if rec.Participants == nil {
		rec.Participants = []models.Participant{}
	}
	if d.SelectedDate != nil {
		v := utils.FormatDate(*d.SelectedDate)
		rec.SelectedDate = &v
	}
	if d.BookingID != "" {
		rec.BookingID = &d.BookingID
	}
	if d.PaymentMethod != "" {
		rec.PaymentMethod = &d.PaymentMethod
	}
	return json.Marshal(rec)
}

// UnmarshalDraft decodes a stored draft and normalizes it: a participant count
// below MinParticipants is raised to MinParticipants, and an empty
// participants list loads as nil, the same as EmptyDraft. Any draft that
// MarshalDraft wrote from a valid Draft round-trips exactly.
func UnmarshalDraft(raw []byte) (Draft, error) {
	var rec draftRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Draft{}, err
	}
	d := Draft{
		TripID:           rec.TripID,
		TripName:         rec.TripName,
		TripImage:        rec.TripImage,
		TripLocation:     rec.TripLocation,
		SelectedSlot:     rec.SelectedSlot,
		ParticipantCount: rec.ParticipantCount,
		PricePerPax:      rec.PricePerPax,
		MainBooker:       rec.MainBooker,
		Participants:     rec.Participants,
	}
	if d.ParticipantCount < MinParticipants {
		d.ParticipantCount = MinParticipants
	}
	// "participants":[] and a missing key both mean no participants yet.
	if len(d.Participants) == 0 {
		d.Participants = nil
	}
	if rec.SelectedDate != nil && *rec.SelectedDate != "" {
		t, err := parseStoredDate(*rec.SelectedDate)
		if err != nil {
			return Draft{}, fmt.Errorf("selectedDate: %w", err)
		}
		d.SelectedDate = &t
	}
	if rec.BookingID != nil {
		d.BookingID = *rec.BookingID
	}
	if rec.PaymentMethod != nil {
		d.PaymentMethod = *rec.PaymentMethod
	}
	return d, nil
}

// parseStoredDate also accepts full RFC 3339 timestamps written by older clients.
func parseStoredDate(s string) (time.Time, error) {
	if t, err := utils.ParseDate(s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return utils.StartOfDay(t.In(time.Local)), nil
}
