package models

import (
	"time"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
)

// Participant is one guest on a booking. Email and emergency contact are only
// filled for the main booker.
type Participant struct {
	FullName              string `json:"fullName"`
	IDNumber              string `json:"idNumber"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email,omitempty"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty"`
}

// Booking is the persisted, server-owned record created once at the end of checkout.
type Booking struct {
	ID                string               `json:"id"`
	TripID            string               `json:"tripId"`
	TripName          string               `json:"tripName"`
	TripImage         string               `json:"tripImage"`
	TripLocation      string               `json:"tripLocation"`
	CustomerName      string               `json:"customerName"`
	Email             string               `json:"email"`
	Phone             string               `json:"phone"`
	Date              string               `json:"date"`
	Guests            int                  `json:"guests"`
	TotalPrice        int64                `json:"totalPrice"`
	PricePerPax       int64                `json:"pricePerPax"`
	Participants      []Participant        `json:"participants"`
	Status            domain.BookingStatus `json:"status"`
	PaymentStatus     domain.PaymentStatus `json:"paymentStatus"`
	PaymentMethod     string               `json:"paymentMethod"`
	ProofOfPaymentURL string               `json:"proofOfPaymentUrl"`
	Version           int64                `json:"version"`
	CreatedAt         time.Time            `json:"createdAt"`
}

func (b Booking) Reconciliation() domain.Reconciliation {
	return domain.Reconciliation{Status: b.Status, PaymentStatus: b.PaymentStatus}
}

// CreateBookingRequest is the body of POST /api/bookings.
type CreateBookingRequest struct {
	TripID            string        `json:"tripId"`
	TripName          string        `json:"tripName"`
	TripImage         string        `json:"tripImage"`
	TripLocation      string        `json:"tripLocation"`
	CustomerName      string        `json:"customerName"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Date              string        `json:"date"`
	Guests            int           `json:"guests"`
	TotalPrice        int64         `json:"totalPrice"`
	PricePerPax       int64         `json:"pricePerPax"`
	Participants      []Participant `json:"participants"`
	Status            string        `json:"status,omitempty"`
	PaymentStatus     string        `json:"paymentStatus,omitempty"`
	PaymentMethod     string        `json:"paymentMethod"`
	ProofOfPaymentURL string        `json:"proofOfPaymentUrl"`
}

// ReconcileRequest is the body of PUT /api/bookings/:id. Version is optional;
// when set the write is rejected if the booking moved on in the meantime.
type ReconcileRequest struct {
	Action  string `json:"action"`
	Version *int64 `json:"version,omitempty"`
}
