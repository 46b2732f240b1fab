package request

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for item requests.
type Repository interface {
	// Save persists a new item request.
	Save(ctx context.Context, r *ItemRequest) error

	// FindByID retrieves an item request by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*ItemRequest, error)

	// FindByRequesterID retrieves all requests made by the given user,
	// ordered by creation ascending.
	FindByRequesterID(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequest, error)

	// FindAllExcludingRequester retrieves all requests made by other users,
	// ordered by creation ascending.
	FindAllExcludingRequester(ctx context.Context, requesterID uuid.UUID) ([]*ItemRequest, error)
}
