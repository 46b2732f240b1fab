package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peershare/service-rental/internal/domain"
	bookingDomain "github.com/peershare/service-rental/internal/domain/booking"
	itemDomain "github.com/peershare/service-rental/internal/domain/item"
	"github.com/peershare/service-rental/internal/events"
	"github.com/peershare/service-rental/internal/metrics"
)

// CreateItemRequest holds the data needed to list a new item.
type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *uuid.UUID
}

// UpdateItemRequest holds a partial item update; nil fields are untouched.
type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// BookingBriefDTO is the compact booking view attached to an item for its
// owner (last and next bookings).
type BookingBriefDTO struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}

// CommentDTO is the response representation of a comment.
type CommentDTO struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// ItemDTO is the response representation of an item. LastBooking and
// NextBooking are populated only when the viewer is the item's owner.
type ItemDTO struct {
	ID          uuid.UUID        `json:"id"`
	OwnerID     uuid.UUID        `json:"owner_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	RequestID   *uuid.UUID       `json:"request_id,omitempty"`
	LastBooking *BookingBriefDTO `json:"last_booking,omitempty"`
	NextBooking *BookingBriefDTO `json:"next_booking,omitempty"`
	Comments    []CommentDTO     `json:"comments"`
}

// ItemService manages item listings and their booking-derived read model.
type ItemService struct {
	items     itemDomain.Repository
	comments  itemDomain.CommentRepository
	users     UserDirectory
	resolver  *AvailabilityResolver
	publisher *events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.Repository,
	comments itemDomain.CommentRepository,
	users UserDirectory,
	resolver *AvailabilityResolver,
	publisher *events.Publisher,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:     items,
		comments:  comments,
		users:     users,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create lists a new item owned by ownerID.
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.Info("item listed",
		zap.String("item_id", it.ID().String()),
		zap.String("owner_id", ownerID.String()),
	)
	result := toItemDTO(it)
	return &result, nil
}

// Update applies a partial update to an item. Only the owner may edit.
func (s *ItemService) Update(ctx context.Context, callerID, itemID uuid.UUID, req UpdateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, callerID); err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID() != callerID {
		return nil, domain.NewForbiddenError("access_denied", "cannot edit another user's item")
	}

	it.Patch(req.Name, req.Description, req.Available)
	if err := s.items.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	result := toItemDTO(it)
	return &result, nil
}

// GetByID retrieves an item with its comments. When the caller owns the
// item, the view also carries its last and next bookings.
func (s *ItemService) GetByID(ctx context.Context, callerID, itemID uuid.UUID) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, callerID, it)
}

// ListOwn retrieves the caller's items, paginated, each enriched with
// comments and (being the owner) last/next bookings.
func (s *ItemService) ListOwn(ctx context.Context, callerID uuid.UUID, from, size int) ([]ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, callerID); err != nil {
		return nil, err
	}

	all, err := s.items.FindByOwnerID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	page := domain.Paginate(all, from, size)
	dtos := make([]ItemDTO, 0, len(page))
	for _, it := range page {
		dto, err := s.enrich(ctx, callerID, it)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

// Search retrieves available items matching the text. A blank query
// matches nothing.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]ItemDTO, error) {
	if text == "" {
		return []ItemDTO{}, nil
	}

	found, err := s.items.Search(ctx, text)
	if err != nil {
		return nil, err
	}

	page := domain.Paginate(found, from, size)
	dtos := make([]ItemDTO, 0, len(page))
	for _, it := range page {
		dtos = append(dtos, toItemDTO(it))
	}
	return dtos, nil
}

// AddComment records a comment on an item by a user with a completed
// booking of it.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID uuid.UUID, text string) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.now()
	eligible, err := s.resolver.CanComment(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, domain.NewValidationError("comment_not_allowed", "user has no completed booking of this item")
	}

	c, err := itemDomain.NewComment(authorID, itemID, text, now)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	metrics.IncCommentAdded()
	s.publishEvent(ctx, events.CommentAdded, events.CommentAddedEvent{
		CommentID:  c.ID(),
		ItemID:     itemID,
		AuthorID:   authorID,
		OccurredAt: time.Now().UTC(),
	})

	return &CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: author.Name(),
		Created:    c.Created(),
	}, nil
}

// enrich builds the item read model: comments for everyone, last/next
// bookings for the owner only.
func (s *ItemService) enrich(ctx context.Context, callerID uuid.UUID, it *itemDomain.Item) (*ItemDTO, error) {
	dto := toItemDTO(it)

	if callerID == it.OwnerID() {
		last, next, err := s.resolver.LastAndNext(ctx, it.ID(), s.now())
		if err != nil {
			return nil, err
		}
		dto.LastBooking = toBookingBrief(last)
		dto.NextBooking = toBookingBrief(next)
	}

	comments, err := s.comments.FindByItemID(ctx, it.ID())
	if err != nil {
		return nil, err
	}
	for _, c := range comments {
		author, err := s.users.FindByID(ctx, c.AuthorID())
		if err != nil {
			return nil, err
		}
		dto.Comments = append(dto.Comments, CommentDTO{
			ID:         c.ID(),
			Text:       c.Text(),
			AuthorName: author.Name(),
			Created:    c.Created(),
		})
	}
	return &dto, nil
}

func (s *ItemService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	ce, err := events.NewCloudEvent("service-rental", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.publisher.PublishEvent(ctx, events.TopicRentalEvents, ce); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func toItemDTO(it *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		RequestID:   it.RequestID(),
		Comments:    []CommentDTO{},
	}
}

func toBookingBrief(bk *bookingDomain.Booking) *BookingBriefDTO {
	if bk == nil {
		return nil
	}
	return &BookingBriefDTO{
		ID:       bk.ID(),
		BookerID: bk.BookerID(),
		Start:    bk.Start(),
		End:      bk.End(),
		Status:   bk.Status().String(),
	}
}
