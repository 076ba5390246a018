package http

import (
	"time"

	"github.com/brisastudio/studio-booking-backend/internal/booking"
	"github.com/brisastudio/studio-booking-backend/internal/schedule"
)

// CreateBookingBody is the POST /book payload. Field-presence errors are
// left to the service so the rejection reasons keep their documented
// order ("missing required fields" before "invalid service" and so on).
type CreateBookingBody struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	ServiceID    string `json:"service_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	Notes        string `json:"notes"`
}

type BookingResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone,omitempty"`
	ServiceID    string    `json:"service_id"`
	ServiceName  string    `json:"service_name"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		Date:         b.Date,
		StartTime:    schedule.FormatClock(b.StartMin),
		EndTime:      schedule.FormatClock(b.EndMin),
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
	}
}

// CreateBookingResponse adds the owner-notification link to the created
// booking.
type CreateBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	WhatsAppLink string          `json:"whatsapp_link,omitempty"`
}
