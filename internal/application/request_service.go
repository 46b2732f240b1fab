package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peershare/service-rental/internal/domain"
	itemDomain "github.com/peershare/service-rental/internal/domain/item"
	requestDomain "github.com/peershare/service-rental/internal/domain/request"
)

// RequestItemDTO is an item listed in answer to a request.
type RequestItemDTO struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
}

// ItemRequestDTO is the response representation of an item request,
// enriched with the items answering it.
type ItemRequestDTO struct {
	ID          uuid.UUID        `json:"id"`
	RequesterID uuid.UUID        `json:"requester_id"`
	Description string           `json:"description"`
	Created     time.Time        `json:"created"`
	Items       []RequestItemDTO `json:"items"`
}

// RequestService manages item requests.
type RequestService struct {
	repo   requestDomain.Repository
	items  itemDomain.Repository
	users  UserDirectory
	logger *zap.Logger
	now    func() time.Time
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	repo requestDomain.Repository,
	items itemDomain.Repository,
	users UserDirectory,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		repo:   repo,
		items:  items,
		users:  users,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create records a new item request by requesterID.
func (s *RequestService) Create(ctx context.Context, requesterID uuid.UUID, description string) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	r, err := requestDomain.NewItemRequest(requesterID, description, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save item request: %w", err)
	}

	s.logger.Info("item request created",
		zap.String("request_id", r.ID().String()),
		zap.String("requester_id", requesterID.String()),
	)
	return &ItemRequestDTO{
		ID:          r.ID(),
		RequesterID: r.RequesterID(),
		Description: r.Description(),
		Created:     r.Created(),
		Items:       []RequestItemDTO{},
	}, nil
}

// ListOwn retrieves the caller's requests, oldest first, with the items
// answering each.
func (s *RequestService) ListOwn(ctx context.Context, userID uuid.UUID) ([]ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.repo.FindByRequesterID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, requests)
}

// ListOthers retrieves other users' requests, oldest first, paginated.
func (s *RequestService) ListOthers(ctx context.Context, userID uuid.UUID, from, size int) ([]ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.repo.FindAllExcludingRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, domain.Paginate(requests, from, size))
}

// GetByID retrieves a single request with the items answering it.
func (s *RequestService) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	r, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	dto, err := s.enrich(ctx, r)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

func (s *RequestService) enrichAll(ctx context.Context, requests []*requestDomain.ItemRequest) ([]ItemRequestDTO, error) {
	dtos := make([]ItemRequestDTO, 0, len(requests))
	for _, r := range requests {
		dto, err := s.enrich(ctx, r)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (s *RequestService) enrich(ctx context.Context, r *requestDomain.ItemRequest) (ItemRequestDTO, error) {
	dto := ItemRequestDTO{
		ID:          r.ID(),
		RequesterID: r.RequesterID(),
		Description: r.Description(),
		Created:     r.Created(),
		Items:       []RequestItemDTO{},
	}

	answers, err := s.items.FindByRequestID(ctx, r.ID())
	if err != nil {
		return ItemRequestDTO{}, err
	}
	for _, it := range answers {
		dto.Items = append(dto.Items, RequestItemDTO{
			ID:          it.ID(),
			OwnerID:     it.OwnerID(),
			Name:        it.Name(),
			Description: it.Description(),
			Available:   it.Available(),
		})
	}
	return dto, nil
}
