package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/peershare/service-rental/internal/domain"
)

// Item is the aggregate root for the item domain: something a user has
// listed for others to book.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID

	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates a new Item listing owned by ownerID. An item may answer
// an open item request, linked through requestID.
func NewItem(ownerID uuid.UUID, name, description string, available bool, requestID *uuid.UUID) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewValidationError("owner_required", "owner ID is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("name_required", "item name is required")
	}
	if description == "" {
		return nil, domain.NewValidationError("description_required", "item description is required")
	}

	now := time.Now().UTC()
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructItem rebuilds an Item from persistence data (no validation).
func ReconstructItem(
	id, ownerID uuid.UUID,
	name, description string,
	available bool,
	requestID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// OwnerID returns the listing user's ID.
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }

// Name returns the item name.
func (i *Item) Name() string { return i.name }

// Description returns the item description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item is open for booking.
func (i *Item) Available() bool { return i.available }

// RequestID returns the item request this listing answers, or nil.
func (i *Item) RequestID() *uuid.UUID { return i.requestID }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// Patch applies a partial update. Nil fields keep their current value.
func (i *Item) Patch(name, description *string, available *bool) {
	if name != nil {
		i.name = *name
	}
	if description != nil {
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	i.updatedAt = time.Now().UTC()
}
