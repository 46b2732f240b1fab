package item

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for item aggregates.
type Repository interface {
	// Save persists the item, inserting on first save and updating
	// on subsequent saves.
	Save(ctx context.Context, i *Item) error

	// FindByID retrieves an item by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByOwnerID retrieves all items listed by the given user,
	// ordered by creation ascending.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*Item, error)

	// FindByRequestID retrieves all items answering the given item request.
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*Item, error)

	// Search retrieves available items whose name or description contains
	// the given text, case-insensitively.
	Search(ctx context.Context, text string) ([]*Item, error)
}

// CommentRepository defines the append-only persistence contract for comments.
type CommentRepository interface {
	// Save persists a new comment.
	Save(ctx context.Context, c *Comment) error

	// FindByItemID retrieves all comments on the given item, ordered by
	// creation ascending.
	FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*Comment, error)
}
