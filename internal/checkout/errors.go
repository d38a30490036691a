package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrNoTripContext       = errors.New("trip context missing, restart from slot selection")
	ErrMethodUnavailable   = errors.New("payment method is not available yet")
	ErrSubmissionInFlight  = errors.New("payment proof submission already in progress")
	ErrSubmitDisabled      = errors.New("attach a proof of payment before submitting")
	ErrFieldLocked         = errors.New("field follows the main booker while \"same as main booker\" is on")
	ErrInvalidPaymentState = errors.New("action not allowed in current payment step")
)

// TransientError wraps a failed call to a remote collaborator. The draft is
// untouched, so the same action can simply be retried.
type TransientError struct {
	Op  string
	Err error
}

func (e TransientError) Error() string {
	return fmt.Sprintf("%s failed, please try again: %v", e.Op, e.Err)
}

func (e TransientError) Unwrap() error { return e.Err }

func IsTransient(err error) bool {
	var target TransientError
	return errors.As(err, &target)
}

// IncompleteDraftError means submission was reached with a draft that the
// step gates should have rejected. It is a bug upstream, not a user error.
type IncompleteDraftError struct {
	Field string
}

func (e IncompleteDraftError) Error() string {
	return "incomplete booking draft: " + e.Field
}
