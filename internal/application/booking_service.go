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
	userDomain "github.com/peershare/service-rental/internal/domain/user"
	"github.com/peershare/service-rental/internal/events"
	"github.com/peershare/service-rental/internal/metrics"
)

// UserDirectory resolves user records by id. Satisfied by the user repository.
type UserDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}

// ItemCatalog resolves item records by id. Satisfied by the item repository.
type ItemCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*itemDomain.Item, error)
}

// CreateBookingRequest holds the data needed to request a reservation.
type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// BookerDTO is the booker snapshot embedded in a booking response.
type BookerDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// BookedItemDTO is the item snapshot embedded in a booking response.
type BookedItemDTO struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
}

// BookingDTO is the response representation of a booking, enriched with
// the resolved booker and item snapshots. The snapshots are a read-model
// join, not stored on the booking.
type BookingDTO struct {
	ID     uuid.UUID     `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status string        `json:"status"`
	Booker BookerDTO     `json:"booker"`
	Item   BookedItemDTO `json:"item"`
}

// BookingService orchestrates the booking lifecycle and the derived
// booking list views.
type BookingService struct {
	repo      bookingDomain.Repository
	users     UserDirectory
	items     ItemCatalog
	publisher *events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.Repository,
	users UserDirectory,
	items ItemCatalog,
	publisher *events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		users:     users,
		items:     items,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create requests a reservation of an item by bookerID. The booking is
// persisted with status WAITING and awaits the owner's decision.
func (s *BookingService) Create(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available() {
		return nil, domain.NewValidationError("item_unavailable", "item is not available for booking")
	}

	bk, err := bookingDomain.NewBooking(bookerID, req.ItemID, req.Start, req.End, s.now())
	if err != nil {
		return nil, err
	}

	if it.OwnerID() == bookerID {
		return nil, domain.NewForbiddenError("self_booking_forbidden", "owner cannot book their own item")
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.logger.Info("booking requested",
		zap.String("booking_id", bk.ID().String()),
		zap.String("item_id", it.ID().String()),
		zap.String("booker_id", bookerID.String()),
	)

	evt := events.BookingRequestedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		OwnerID:    it.OwnerID(),
		BookerID:   bookerID,
		Start:      bk.Start(),
		End:        bk.End(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.BookingRequested, evt)

	result := toBookingDTO(bk, booker, it)
	return &result, nil
}

// Decide lets the item's owner approve or reject a WAITING booking.
// Both outcomes are terminal: once decided, further decisions fail.
func (s *BookingService) Decide(ctx context.Context, ownerID, bookingID uuid.UUID, approve bool) (*BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}

	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if it.OwnerID() != ownerID {
		return nil, domain.NewForbiddenError("access_denied", "user has no access to this booking")
	}

	if approve {
		err = bk.Approve()
	} else {
		err = bk.Reject()
	}
	if err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	metrics.IncOwnerDecision(bk.Status().String())
	s.logger.Info("booking decided",
		zap.String("booking_id", bk.ID().String()),
		zap.String("status", bk.Status().String()),
	)

	eventType := events.BookingRejected
	if approve {
		eventType = events.BookingApproved
	}
	evt := events.BookingDecidedEvent{
		BookingID:  bk.ID(),
		ItemID:     it.ID(),
		OwnerID:    ownerID,
		BookerID:   bk.BookerID(),
		Status:     bk.Status().String(),
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, eventType, evt)

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk, booker, it)
	return &result, nil
}

// GetByID retrieves a single booking. The caller must be the booker or the
// item's owner; existence is checked before access, so a missing booking
// reads as not found for any caller.
func (s *BookingService) GetByID(ctx context.Context, userID, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if userID != bk.BookerID() && userID != it.OwnerID() {
		return nil, domain.NewForbiddenError("access_denied", "user has no access to this booking")
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk, booker, it)
	return &result, nil
}

// ListByBooker returns the user's own bookings filtered by state, ordered
// by end descending, paginated with from/size.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID uuid.UUID, state string, from, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, bookerID); err != nil {
		return nil, err
	}
	raw, err := s.repo.FindAllByBookerID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	return s.filterAndPage(ctx, raw, state, from, size)
}

// ListByOwner returns bookings on the user's items filtered by state,
// ordered by end descending, paginated with from/size.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID uuid.UUID, state string, from, size int) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	raw, err := s.repo.FindAllByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.filterAndPage(ctx, raw, state, from, size)
}

// filterAndPage classifies each booking against a single now snapshot,
// keeps the store ordering, and applies skip/take pagination.
func (s *BookingService) filterAndPage(ctx context.Context, raw []*bookingDomain.Booking, state string, from, size int) ([]BookingDTO, error) {
	st, err := bookingDomain.ParseState(state)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := make([]*bookingDomain.Booking, 0, len(raw))
	for _, bk := range raw {
		if st.Matches(bk, now) {
			filtered = append(filtered, bk)
		}
	}

	page := domain.Paginate(filtered, from, size)
	dtos := make([]BookingDTO, 0, len(page))
	for _, bk := range page {
		booker, err := s.users.FindByID(ctx, bk.BookerID())
		if err != nil {
			return nil, err
		}
		it, err := s.items.FindByID(ctx, bk.ItemID())
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, toBookingDTO(bk, booker, it))
	}
	return dtos, nil
}

func (s *BookingService) publishEvent(ctx context.Context, eventType string, data interface{}) {
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

func toBookingDTO(bk *bookingDomain.Booking, booker *userDomain.User, it *itemDomain.Item) BookingDTO {
	return BookingDTO{
		ID:     bk.ID(),
		Start:  bk.Start(),
		End:    bk.End(),
		Status: bk.Status().String(),
		Booker: BookerDTO{
			ID:    booker.ID(),
			Name:  booker.Name(),
			Email: booker.Email(),
		},
		Item: BookedItemDTO{
			ID:        it.ID(),
			OwnerID:   it.OwnerID(),
			Name:      it.Name(),
			Available: it.Available(),
		},
	}
}
