package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/peershare/service-rental/internal/application"
	"github.com/peershare/service-rental/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListByBooker)
		bookings.GET("/owner", h.ListByOwner)
		bookings.GET("/:id", h.GetByID)
		bookings.PATCH("/:id", h.Decide)
	}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := requireUser(c)
	if !ok {
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), bookerID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Decide handles PATCH /bookings/:id?approved=true|false. The approved
// token is part of the external contract and must be exactly "true" or
// "false"; anything else is rejected rather than silently ignored.
func (h *BookingHandler) Decide(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var approve bool
	switch c.Query("approved") {
	case "true":
		approve = true
	case "false":
		approve = false
	default:
		response.BadRequest(c, "approved must be \"true\" or \"false\"")
		return
	}

	result, err := h.service.Decide(c.Request.Context(), ownerID, bookingID, approve)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetByID handles GET /bookings/:id.
func (h *BookingHandler) GetByID(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), userID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListByBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	bookerID, ok := requireUser(c)
	if !ok {
		return
	}
	from, size, ok := parsePagination(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", "ALL")
	result, err := h.service.ListByBooker(c.Request.Context(), bookerID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListByOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := requireUser(c)
	if !ok {
		return
	}
	from, size, ok := parsePagination(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", "ALL")
	result, err := h.service.ListByOwner(c.Request.Context(), ownerID, state, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
