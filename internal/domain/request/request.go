package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/peershare/service-rental/internal/domain"
)

// ItemRequest is a user's ask for an item nobody has listed yet. Owners
// can answer it by listing an item linked to the request.
type ItemRequest struct {
	id          uuid.UUID
	requesterID uuid.UUID
	description string
	created     time.Time
}

// NewItemRequest creates a new ItemRequest by requesterID.
func NewItemRequest(requesterID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	if description == "" {
		return nil, domain.NewValidationError("description_required", "request description is required")
	}
	return &ItemRequest{
		id:          uuid.New(),
		requesterID: requesterID,
		description: description,
		created:     now,
	}, nil
}

// ReconstructItemRequest rebuilds an ItemRequest from persistence data.
func ReconstructItemRequest(id, requesterID uuid.UUID, description string, created time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		requesterID: requesterID,
		description: description,
		created:     created,
	}
}

// ID returns the request's unique identifier.
func (r *ItemRequest) ID() uuid.UUID { return r.id }

// RequesterID returns the asking user's ID.
func (r *ItemRequest) RequesterID() uuid.UUID { return r.requesterID }

// Description returns what is being asked for.
func (r *ItemRequest) Description() string { return r.description }

// Created returns the creation timestamp.
func (r *ItemRequest) Created() time.Time { return r.created }
