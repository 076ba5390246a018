package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brisastudio/studio-booking-backend/internal/booking"
	"github.com/brisastudio/studio-booking-backend/internal/notify"
	"github.com/brisastudio/studio-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
	links   *notify.WhatsApp
}

func NewHandler(service booking.Service, links *notify.WhatsApp) *Handler {
	return &Handler{service: service, links: links}
}

// AvailableSlots handles GET /available-slots?date=YYYY-MM-DD&duration=45.
func (h *Handler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")

	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if err != nil {
		response.Error(c, booking.ErrInvalidDuration)
		return
	}

	slots, err := h.service.AvailableSlots(c.Request.Context(), date, duration)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Create handles POST /book.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request body"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		CustomerName: body.CustomerName,
		Phone:        body.Phone,
		ServiceID:    body.ServiceID,
		Date:         body.Date,
		StartTime:    body.StartTime,
		Notes:        body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking:      NewBookingResponse(b),
		WhatsAppLink: h.links.BookingLink(b),
	})
}

// ListByPhone handles GET /bookings?phone=...
func (h *Handler) ListByPhone(c *gin.Context) {
	bookings, err := h.service.ListByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

// Cancel handles DELETE /bookings/:id.
func (h *Handler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
