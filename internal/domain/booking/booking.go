package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/peershare/service-rental/internal/domain"
)

// Booking is the aggregate root for the booking domain: a time-bounded
// reservation of an item by a booker, carrying an approval status.
type Booking struct {
	id       uuid.UUID
	start    time.Time
	end      time.Time
	status   Status
	bookerID uuid.UUID
	itemID   uuid.UUID
	version  int64

	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking with status=WAITING. The time window is
// validated against now: the end must not be before now, the end must not be
// before the start, and the start must not be before now, checked in that
// order. The checks apply at creation only.
func NewBooking(bookerID, itemID uuid.UUID, start, end, now time.Time) (*Booking, error) {
	if bookerID == uuid.Nil {
		return nil, domain.NewValidationError("booker_required", "booker ID is required")
	}
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item_required", "item ID is required")
	}
	if end.Before(now) {
		return nil, domain.NewValidationError("invalid_time_range", "booking end must not be in the past")
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("invalid_time_range", "booking end must not be before its start")
	}
	if start.Before(now) {
		return nil, domain.NewValidationError("invalid_time_range", "booking start must not be in the past")
	}

	return &Booking{
		id:        uuid.New(),
		start:     start,
		end:       end,
		status:    StatusWaiting,
		bookerID:  bookerID,
		itemID:    itemID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	start, end time.Time,
	status Status,
	bookerID, itemID uuid.UUID,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		start:     start,
		end:       end,
		status:    status,
		bookerID:  bookerID,
		itemID:    itemID,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Start returns the start of the reserved time window.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the reserved time window.
func (b *Booking) End() time.Time { return b.end }

// Status returns the current approval status.
func (b *Booking) Status() Status { return b.status }

// BookerID returns the requesting user's ID.
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }

// ItemID returns the reserved item's ID.
func (b *Booking) ItemID() uuid.UUID { return b.itemID }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() { b.version++ }

// Approve transitions the booking from WAITING to APPROVED.
func (b *Booking) Approve() error {
	if !b.status.CanTransitionTo(StatusApproved) {
		return domain.NewInvalidStateError(string(b.status), string(StatusApproved))
	}
	b.status = StatusApproved
	b.updatedAt = time.Now().UTC()
	return nil
}

// Reject transitions the booking from WAITING to REJECTED.
func (b *Booking) Reject() error {
	if !b.status.CanTransitionTo(StatusRejected) {
		return domain.NewInvalidStateError(string(b.status), string(StatusRejected))
	}
	b.status = StatusRejected
	b.updatedAt = time.Now().UTC()
	return nil
}
