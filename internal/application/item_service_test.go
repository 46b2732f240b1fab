package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peershare/service-rental/internal/domain"
	bookingDomain "github.com/peershare/service-rental/internal/domain/booking"
	userDomain "github.com/peershare/service-rental/internal/domain/user"
)

var itemNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type itemFixture struct {
	svc      *ItemService
	users    *fakeUserRepo
	items    *fakeItemRepo
	comments *fakeCommentRepo
	bookings *fakeBookingRepo

	owner *userDomain.User
	other *userDomain.User
}

func newItemFixture(t *testing.T) *itemFixture {
	t.Helper()

	users := newFakeUserRepo()
	items := newFakeItemRepo()
	comments := newFakeCommentRepo()
	bookings := newFakeBookingRepo(items)

	owner, err := userDomain.NewUser("Olga", "olga@example.com")
	require.NoError(t, err)
	other, err := userDomain.NewUser("Boris", "boris@example.com")
	require.NoError(t, err)
	require.NoError(t, users.Save(context.Background(), owner))
	require.NoError(t, users.Save(context.Background(), other))

	svc := NewItemService(items, comments, users, NewAvailabilityResolver(bookings), nil, zap.NewNop())
	svc.now = func() time.Time { return itemNow }

	return &itemFixture{
		svc:      svc,
		users:    users,
		items:    items,
		comments: comments,
		bookings: bookings,
		owner:    owner,
		other:    other,
	}
}

func (f *itemFixture) createItem(t *testing.T, name string, available bool) *ItemDTO {
	t.Helper()
	dto, err := f.svc.Create(context.Background(), f.owner.ID(), CreateItemRequest{
		Name:        name,
		Description: name + " description",
		Available:   available,
	})
	require.NoError(t, err)
	return dto
}

func TestItemService_Create(t *testing.T) {
	f := newItemFixture(t)
	dto := f.createItem(t, "Drill", true)

	assert.Equal(t, "Drill", dto.Name)
	assert.Equal(t, f.owner.ID(), dto.OwnerID)
	assert.True(t, dto.Available)
	assert.Empty(t, dto.Comments)
}

func TestItemService_Create_UnknownOwner(t *testing.T) {
	f := newItemFixture(t)
	_, err := f.svc.Create(context.Background(), uuid.New(), CreateItemRequest{
		Name:        "Drill",
		Description: "cordless drill",
		Available:   true,
	})
	assert.True(t, domain.IsNotFound(err))
}

func TestItemService_Update_OwnerOnly(t *testing.T) {
	f := newItemFixture(t)
	dto := f.createItem(t, "Drill", true)

	name := "Hammer drill"
	updated, err := f.svc.Update(context.Background(), f.owner.ID(), dto.ID, UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Hammer drill", updated.Name)
	assert.Equal(t, dto.Description, updated.Description)

	_, err = f.svc.Update(context.Background(), f.other.ID(), dto.ID, UpdateItemRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
}

func TestItemService_Update_PartialFields(t *testing.T) {
	f := newItemFixture(t)
	dto := f.createItem(t, "Drill", true)

	available := false
	updated, err := f.svc.Update(context.Background(), f.owner.ID(), dto.ID, UpdateItemRequest{Available: &available})
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.Equal(t, "Drill", updated.Name)
}

func TestItemService_GetByID_OwnerSeesLastAndNext(t *testing.T) {
	f := newItemFixture(t)
	dto := f.createItem(t, "Drill", true)

	last := seedItemBooking(t, f, dto.ID, itemNow.Add(-4*time.Hour), itemNow.Add(-2*time.Hour))
	next := seedItemBooking(t, f, dto.ID, itemNow.Add(2*time.Hour), itemNow.Add(4*time.Hour))
	// A farther future booking must not displace the nearest one.
	seedItemBooking(t, f, dto.ID, itemNow.Add(6*time.Hour), itemNow.Add(8*time.Hour))

	asOwner, err := f.svc.GetByID(context.Background(), f.owner.ID(), dto.ID)
	require.NoError(t, err)
	require.NotNil(t, asOwner.LastBooking)
	require.NotNil(t, asOwner.NextBooking)
	assert.Equal(t, last.ID(), asOwner.LastBooking.ID)
	assert.Equal(t, next.ID(), asOwner.NextBooking.ID)

	asOther, err := f.svc.GetByID(context.Background(), f.other.ID(), dto.ID)
	require.NoError(t, err)
	assert.Nil(t, asOther.LastBooking)
	assert.Nil(t, asOther.NextBooking)
}

func TestItemService_ListOwn(t *testing.T) {
	f := newItemFixture(t)
	f.createItem(t, "Drill", true)
	f.createItem(t, "Saw", true)
	f.createItem(t, "Ladder", false)

	got, err := f.svc.ListOwn(context.Background(), f.owner.ID(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	rest, err := f.svc.ListOwn(context.Background(), f.owner.ID(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	none, err := f.svc.ListOwn(context.Background(), f.other.ID(), 0, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestItemService_Search(t *testing.T) {
	f := newItemFixture(t)
	f.createItem(t, "Cordless Drill", true)
	f.createItem(t, "Hand saw", true)
	f.createItem(t, "Broken drill", false)

	got, err := f.svc.Search(context.Background(), "dRiLl", 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cordless Drill", got[0].Name)
}

func TestItemService_Search_BlankMatchesNothing(t *testing.T) {
	f := newItemFixture(t)
	f.createItem(t, "Drill", true)

	got, err := f.svc.Search(context.Background(), "", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestItemService_AddComment_RequiresCompletedBooking(t *testing.T) {
	f := newItemFixture(t)
	dto := f.createItem(t, "Drill", true)

	_, err := f.svc.AddComment(context.Background(), f.other.ID(), dto.ID, "great drill")
	require.Error(t, err)
	assert.Equal(t, "comment_not_allowed", domain.CodeOf(err))

	seedItemBooking(t, f, dto.ID, itemNow.Add(-4*time.Hour), itemNow.Add(-2*time.Hour))

	comment, err := f.svc.AddComment(context.Background(), f.other.ID(), dto.ID, "great drill")
	require.NoError(t, err)
	assert.Equal(t, "great drill", comment.Text)
	assert.Equal(t, "Boris", comment.AuthorName)
}

func TestItemService_AddComment_FutureBookingDoesNotQualify(t *testing.T) {
	f := newItemFixture(t)
	dto := f.createItem(t, "Drill", true)
	seedItemBooking(t, f, dto.ID, itemNow.Add(2*time.Hour), itemNow.Add(4*time.Hour))

	_, err := f.svc.AddComment(context.Background(), f.other.ID(), dto.ID, "looks promising")
	require.Error(t, err)
	assert.Equal(t, "comment_not_allowed", domain.CodeOf(err))
}

func TestItemService_GetByID_CommentsWithAuthorNames(t *testing.T) {
	f := newItemFixture(t)
	dto := f.createItem(t, "Drill", true)
	seedItemBooking(t, f, dto.ID, itemNow.Add(-4*time.Hour), itemNow.Add(-2*time.Hour))

	_, err := f.svc.AddComment(context.Background(), f.other.ID(), dto.ID, "great drill")
	require.NoError(t, err)

	got, err := f.svc.GetByID(context.Background(), f.other.ID(), dto.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "great drill", got.Comments[0].Text)
	assert.Equal(t, "Boris", got.Comments[0].AuthorName)
}

func seedItemBooking(t *testing.T, f *itemFixture, itemID uuid.UUID, start, end time.Time) *bookingDomain.Booking {
	t.Helper()
	bk := bookingDomain.ReconstructBooking(
		uuid.New(), start, end, bookingDomain.StatusApproved, f.other.ID(), itemID, 1, start, start,
	)
	require.NoError(t, f.bookings.Save(context.Background(), bk))
	return bk
}
