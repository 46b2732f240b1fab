package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for user aggregates.
type Repository interface {
	// Save persists the user, inserting on first save and updating
	// on subsequent saves.
	Save(ctx context.Context, u *User) error

	// FindByID retrieves a user by their unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail retrieves a user by email, or (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll retrieves all users ordered by creation ascending.
	FindAll(ctx context.Context) ([]*User, error)

	// Delete removes the user with the given identifier.
	Delete(ctx context.Context, id uuid.UUID) error
}
