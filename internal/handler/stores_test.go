package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/peershare/service-rental/internal/domain"
	itemDomain "github.com/peershare/service-rental/internal/domain/item"
	requestDomain "github.com/peershare/service-rental/internal/domain/request"
	userDomain "github.com/peershare/service-rental/internal/domain/user"
	"github.com/peershare/service-rental/internal/middleware"
)

// The remaining repository methods on memUsers and memItems, completing
// the contracts the user, item and request services run against.

func (m memUsers) Save(_ context.Context, u *userDomain.User) error {
	m[u.ID()] = u
	return nil
}

func (m memUsers) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	for _, u := range m {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m memUsers) FindAll(_ context.Context) ([]*userDomain.User, error) {
	out := make([]*userDomain.User, 0, len(m))
	for _, u := range m {
		out = append(out, u)
	}
	return out, nil
}

func (m memUsers) Delete(_ context.Context, id uuid.UUID) error {
	delete(m, id)
	return nil
}

func (m memItems) Save(_ context.Context, it *itemDomain.Item) error {
	m[it.ID()] = it
	return nil
}

func (m memItems) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, it := range m {
		if it.OwnerID() == ownerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m memItems) FindByRequestID(_ context.Context, requestID uuid.UUID) ([]*itemDomain.Item, error) {
	var out []*itemDomain.Item
	for _, it := range m {
		rid := it.RequestID()
		if rid != nil && *rid == requestID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m memItems) Search(_ context.Context, text string) ([]*itemDomain.Item, error) {
	needle := strings.ToLower(text)
	var out []*itemDomain.Item
	for _, it := range m {
		if it.Available() &&
			(strings.Contains(strings.ToLower(it.Name()), needle) ||
				strings.Contains(strings.ToLower(it.Description()), needle)) {
			out = append(out, it)
		}
	}
	return out, nil
}

type memComments struct {
	comments []*itemDomain.Comment
}

func (m *memComments) Save(_ context.Context, c *itemDomain.Comment) error {
	m.comments = append(m.comments, c)
	return nil
}

func (m *memComments) FindByItemID(_ context.Context, itemID uuid.UUID) ([]*itemDomain.Comment, error) {
	var out []*itemDomain.Comment
	for _, c := range m.comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memRequests struct {
	requests []*requestDomain.ItemRequest
}

func (m *memRequests) Save(_ context.Context, r *requestDomain.ItemRequest) error {
	m.requests = append(m.requests, r)
	return nil
}

func (m *memRequests) FindByID(_ context.Context, id uuid.UUID) (*requestDomain.ItemRequest, error) {
	for _, r := range m.requests {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, domain.NewNotFoundError("item request", id.String())
}

func (m *memRequests) FindByRequesterID(_ context.Context, requesterID uuid.UUID) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, r := range m.requests {
		if r.RequesterID() == requesterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRequests) FindAllExcludingRequester(_ context.Context, requesterID uuid.UUID) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, r := range m.requests {
		if r.RequesterID() != requesterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, asUser uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if asUser != uuid.Nil {
		req.Header.Set(middleware.UserIDHeader, asUser.String())
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
