package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for booking aggregates.
// The Find* single-booking queries return (nil, nil) when no booking
// matches; FindByID returns a not-found error instead.
type Repository interface {
	// Save persists a new booking.
	Save(ctx context.Context, b *Booking) error

	// Update persists changes to an existing booking using optimistic
	// locking; it returns a conflict error when the booking was modified
	// concurrently.
	Update(ctx context.Context, b *Booking) error

	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindAllByBookerID retrieves all bookings made by the given user,
	// ordered by end descending.
	FindAllByBookerID(ctx context.Context, bookerID uuid.UUID) ([]*Booking, error)

	// FindAllByOwnerID retrieves all bookings on items owned by the given
	// user, ordered by end descending. Ownership is resolved through the
	// item catalog, not stored on the booking.
	FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*Booking, error)

	// FindLastByItemID retrieves the item's booking with the greatest end
	// strictly before now.
	FindLastByItemID(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error)

	// FindNextByItemID retrieves the item's booking with the least start
	// strictly after now.
	FindNextByItemID(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error)

	// FindCompletedByBooker retrieves a booking by the given user on the
	// given item that ended before now, if any.
	FindCompletedByBooker(ctx context.Context, bookerID, itemID uuid.UUID, now time.Time) (*Booking, error)
}
