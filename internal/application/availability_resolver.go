package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	bookingDomain "github.com/peershare/service-rental/internal/domain/booking"
)

// AvailabilityResolver derives an item's booking-adjacent facts from the
// booking set: the most recent past booking, the nearest future booking,
// and whether a user is eligible to comment.
type AvailabilityResolver struct {
	bookings bookingDomain.Repository
}

// NewAvailabilityResolver creates a new AvailabilityResolver.
func NewAvailabilityResolver(bookings bookingDomain.Repository) *AvailabilityResolver {
	return &AvailabilityResolver{bookings: bookings}
}

// LastAndNext returns the item's most recent booking that ended before now
// and its nearest booking starting after now. Either may be nil.
func (r *AvailabilityResolver) LastAndNext(ctx context.Context, itemID uuid.UUID, now time.Time) (*bookingDomain.Booking, *bookingDomain.Booking, error) {
	last, err := r.bookings.FindLastByItemID(ctx, itemID, now)
	if err != nil {
		return nil, nil, err
	}
	next, err := r.bookings.FindNextByItemID(ctx, itemID, now)
	if err != nil {
		return nil, nil, err
	}
	return last, next, nil
}

// CanComment reports whether the user has a booking of the item that ended
// before now, which is the precondition for leaving a comment.
func (r *AvailabilityResolver) CanComment(ctx context.Context, userID, itemID uuid.UUID, now time.Time) (bool, error) {
	completed, err := r.bookings.FindCompletedByBooker(ctx, userID, itemID, now)
	if err != nil {
		return false, err
	}
	return completed != nil, nil
}
