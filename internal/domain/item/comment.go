package item

import (
	"time"

	"github.com/google/uuid"

	"github.com/peershare/service-rental/internal/domain"
)

// Comment is feedback left on an item by a user who completed a booking
// of it. Comments are append-only.
type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

// NewComment creates a new Comment on itemID authored by authorID.
func NewComment(authorID, itemID uuid.UUID, text string, now time.Time) (*Comment, error) {
	if text == "" {
		return nil, domain.NewValidationError("text_required", "comment text is required")
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id, itemID, authorID uuid.UUID, text string, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

// ID returns the comment's unique identifier.
func (c *Comment) ID() uuid.UUID { return c.id }

// ItemID returns the commented item's ID.
func (c *Comment) ItemID() uuid.UUID { return c.itemID }

// AuthorID returns the commenting user's ID.
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }

// Text returns the comment text.
func (c *Comment) Text() string { return c.text }

// Created returns the creation timestamp.
func (c *Comment) Created() time.Time { return c.created }
