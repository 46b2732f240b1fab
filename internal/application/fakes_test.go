package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/peershare/service-rental/internal/domain"
	bookingDomain "github.com/peershare/service-rental/internal/domain/booking"
	itemDomain "github.com/peershare/service-rental/internal/domain/item"
	requestDomain "github.com/peershare/service-rental/internal/domain/request"
	userDomain "github.com/peershare/service-rental/internal/domain/user"
)

// fakeUserRepo is an in-memory user.Repository.
type fakeUserRepo struct {
	users map[uuid.UUID]*userDomain.User
	order []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*userDomain.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) error {
	if _, exists := r.users[u.ID()]; !exists {
		r.order = append(r.order, u.ID())
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	for _, id := range r.order {
		if r.users[id].Email() == email {
			return r.users[id], nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*userDomain.User, error) {
	out := make([]*userDomain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id])
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeItemRepo is an in-memory item.Repository.
type fakeItemRepo struct {
	items map[uuid.UUID]*itemDomain.Item
	order []uuid.UUID
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*itemDomain.Item)}
}

func (r *fakeItemRepo) Save(_ context.Context, it *itemDomain.Item) error {
	if _, exists := r.items[it.ID()]; !exists {
		r.order = append(r.order, it.ID())
	}
	r.items[it.ID()] = it
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*itemDomain.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("item", id.String())
	}
	return it, nil
}

func (r *fakeItemRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, id := range r.order {
		if r.items[id].OwnerID() == ownerID {
			out = append(out, r.items[id])
		}
	}
	return out, nil
}

func (r *fakeItemRepo) FindByRequestID(_ context.Context, requestID uuid.UUID) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, id := range r.order {
		rid := r.items[id].RequestID()
		if rid != nil && *rid == requestID {
			out = append(out, r.items[id])
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Search(_ context.Context, text string) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, id := range r.order {
		it := r.items[id]
		if it.Available() && (containsFold(it.Name(), text) || containsFold(it.Description(), text)) {
			out = append(out, it)
		}
	}
	return out, nil
}

// fakeCommentRepo is an in-memory item.CommentRepository.
type fakeCommentRepo struct {
	comments []*itemDomain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo { return &fakeCommentRepo{} }

func (r *fakeCommentRepo) Save(_ context.Context, c *itemDomain.Comment) error {
	r.comments = append(r.comments, c)
	return nil
}

func (r *fakeCommentRepo) FindByItemID(_ context.Context, itemID uuid.UUID) ([]*itemDomain.Comment, error) {
	var out []*itemDomain.Comment
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeBookingRepo is an in-memory booking.Repository. Owner queries resolve
// ownership through the item repo, mirroring the SQL join.
type fakeBookingRepo struct {
	bookings map[uuid.UUID]*bookingDomain.Booking
	items    *fakeItemRepo
}

func newFakeBookingRepo(items *fakeItemRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*bookingDomain.Booking),
		items:    items,
	}
}

func (r *fakeBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) error {
	r.bookings[b.ID()] = copyBooking(b)
	return nil
}

// Update applies the same version guard as the SQL implementation: the
// stored row must still carry the version the caller read.
func (r *fakeBookingRepo) Update(_ context.Context, b *bookingDomain.Booking) error {
	stored, ok := r.bookings[b.ID()]
	if !ok || stored.Version() != b.Version()-1 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	r.bookings[b.ID()] = copyBooking(b)
	return nil
}

// FindByID returns a detached copy; mutations only land through Update.
func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking", id.String())
	}
	return copyBooking(b), nil
}

func (r *fakeBookingRepo) FindAllByBookerID(_ context.Context, bookerID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		if b.BookerID() == bookerID {
			out = append(out, b)
		}
	}
	sortByEndDesc(out)
	return out, nil
}

func (r *fakeBookingRepo) FindAllByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		it, err := r.items.FindByID(ctx, b.ItemID())
		if err != nil {
			continue
		}
		if it.OwnerID() == ownerID {
			out = append(out, b)
		}
	}
	sortByEndDesc(out)
	return out, nil
}

func (r *fakeBookingRepo) FindLastByItemID(_ context.Context, itemID uuid.UUID, now time.Time) (*bookingDomain.Booking, error) {
	var last *bookingDomain.Booking
	for _, b := range r.bookings {
		if b.ItemID() != itemID || !b.End().Before(now) {
			continue
		}
		if last == nil || b.End().After(last.End()) {
			last = b
		}
	}
	return last, nil
}

func (r *fakeBookingRepo) FindNextByItemID(_ context.Context, itemID uuid.UUID, now time.Time) (*bookingDomain.Booking, error) {
	var next *bookingDomain.Booking
	for _, b := range r.bookings {
		if b.ItemID() != itemID || !b.Start().After(now) {
			continue
		}
		if next == nil || b.Start().Before(next.Start()) {
			next = b
		}
	}
	return next, nil
}

func (r *fakeBookingRepo) FindCompletedByBooker(_ context.Context, bookerID, itemID uuid.UUID, now time.Time) (*bookingDomain.Booking, error) {
	for _, b := range r.bookings {
		if b.BookerID() == bookerID && b.ItemID() == itemID && b.End().Before(now) {
			return b, nil
		}
	}
	return nil, nil
}

// fakeRequestRepo is an in-memory request.Repository.
type fakeRequestRepo struct {
	requests []*requestDomain.ItemRequest
}

func newFakeRequestRepo() *fakeRequestRepo { return &fakeRequestRepo{} }

func (r *fakeRequestRepo) Save(_ context.Context, req *requestDomain.ItemRequest) error {
	r.requests = append(r.requests, req)
	return nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*requestDomain.ItemRequest, error) {
	for _, req := range r.requests {
		if req.ID() == id {
			return req, nil
		}
	}
	return nil, domain.NewNotFoundError("item request", id.String())
}

func (r *fakeRequestRepo) FindByRequesterID(_ context.Context, requesterID uuid.UUID) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, req := range r.requests {
		if req.RequesterID() == requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) FindAllExcludingRequester(_ context.Context, requesterID uuid.UUID) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, req := range r.requests {
		if req.RequesterID() != requesterID {
			out = append(out, req)
		}
	}
	return out, nil
}

func copyBooking(b *bookingDomain.Booking) *bookingDomain.Booking {
	return bookingDomain.ReconstructBooking(
		b.ID(), b.Start(), b.End(), b.Status(), b.BookerID(), b.ItemID(),
		b.Version(), b.CreatedAt(), b.UpdatedAt(),
	)
}

func sortByEndDesc(bookings []*bookingDomain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].End().After(bookings[j].End())
	})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
