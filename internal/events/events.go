package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicRentalEvents carries all events emitted by this service.
const TopicRentalEvents = "rental.events"

// Event type identifiers.
const (
	BookingRequested = "rental.booking.requested"
	BookingApproved  = "rental.booking.approved"
	BookingRejected  = "rental.booking.rejected"
	CommentAdded     = "rental.comment.added"
)

// BookingRequestedEvent is published when a booker requests a reservation.
type BookingRequestedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ItemID     uuid.UUID `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingDecidedEvent is published when an owner approves or rejects a
// booking; the event type distinguishes the outcome.
type BookingDecidedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	ItemID     uuid.UUID `json:"item_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CommentAddedEvent is published when a renter leaves a comment on an item.
type CommentAddedEvent struct {
	CommentID  uuid.UUID `json:"comment_id"`
	ItemID     uuid.UUID `json:"item_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
