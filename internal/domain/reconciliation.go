package domain

import (
	"fmt"
	"strings"
)

// BookingStatus is the customer-facing lifecycle state of a persisted booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks whether an admin has verified the transfer proof.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentUnpaid || s == PaymentPaid
}

// Reconciliation is the (status, paymentStatus) pair owned by the server.
type Reconciliation struct {
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// InitialReconciliation is the state every booking is created in.
func InitialReconciliation() Reconciliation {
	return Reconciliation{Status: StatusPending, PaymentStatus: PaymentUnpaid}
}

// Action is an admin-triggered reconciliation transition.
type Action int

const (
	ActionConfirmPayment Action = iota + 1
	ActionRevokePayment
)

func (a Action) String() string {
	switch a {
	case ActionConfirmPayment:
		return "confirm_payment"
	case ActionRevokePayment:
		return "revoke_payment"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction converts the wire action string. Anything other than the two
// supported actions is a validation error and must not reach the store.
func ParseAction(raw string) (Action, error) {
	switch strings.TrimSpace(raw) {
	case "confirm_payment":
		return ActionConfirmPayment, nil
	case "revoke_payment":
		return ActionRevokePayment, nil
	}
	return 0, ValidationError{Field: "action", Msg: fmt.Sprintf("invalid action %q", raw)}
}

// Target returns the state the action writes. The write does not depend on the
// current state: confirming an already confirmed booking rewrites the same values.
func (a Action) Target() (Reconciliation, error) {
	switch a {
	case ActionConfirmPayment:
		return Reconciliation{Status: StatusConfirmed, PaymentStatus: PaymentPaid}, nil
	case ActionRevokePayment:
		return Reconciliation{Status: StatusPending, PaymentStatus: PaymentUnpaid}, nil
	}
	return Reconciliation{}, ValidationError{Field: "action", Msg: "invalid action " + a.String()}
}

// EventName is the lifecycle event published after the action is applied.
func (a Action) EventName() string {
	switch a {
	case ActionConfirmPayment:
		return "booking.payment_confirmed"
	case ActionRevokePayment:
		return "booking.payment_revoked"
	}
	return ""
}
