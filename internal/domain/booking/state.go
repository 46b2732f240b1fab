package booking

import (
	"time"

	"github.com/peershare/service-rental/internal/domain"
)

// State is a query filter classifying bookings against a reference instant.
// CURRENT, PAST and FUTURE partition bookings by their time window; WAITING
// and REJECTED select on approval status and are independent of time.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState converts a filter token to a State. Unrecognized tokens are a
// validation error; there is no default match.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(s), nil
	default:
		return "", domain.NewValidationError("unknown_state", "Unknown state: "+s)
	}
}

// Matches reports whether the booking belongs to this state relative to now.
// Callers must snapshot now once per query so all bookings in a list are
// classified against the same instant.
func (s State) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StateCurrent:
		return b.Start().Before(now) && b.End().After(now)
	case StatePast:
		return b.End().Before(now)
	case StateFuture:
		return b.Start().After(now)
	case StateWaiting:
		return b.Status() == StatusWaiting
	case StateRejected:
		return b.Status() == StatusRejected
	default:
		return false
	}
}
