package booking

import (
	"net/http"
	"time"

	"github.com/brisastudio/studio-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotTaken       = apperror.New(http.StatusConflict, "time slot already booked")
	ErrMissingFields   = apperror.New(http.StatusBadRequest, "missing required fields")
	ErrInvalidDate     = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidTime     = apperror.New(http.StatusBadRequest, "invalid time, expected HH:MM")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be a positive number of minutes")
	ErrInvalidPhone    = apperror.New(http.StatusBadRequest, "invalid phone number")
	ErrUnknownService  = apperror.New(http.StatusBadRequest, "invalid service")
	ErrClosed          = apperror.New(http.StatusBadRequest, "studio is closed on this date")
	ErrOutsideHours    = apperror.New(http.StatusBadRequest, "requested time is outside business hours")
)

// Booking is a confirmed appointment. Start and end are minutes since
// midnight on Date; the [StartMin, EndMin) intervals of two bookings on
// the same date never overlap. Bookings are immutable once created.
type Booking struct {
	ID           string
	CustomerName string
	Phone        string
	ServiceID    string
	ServiceName  string
	Date         string // YYYY-MM-DD
	StartMin     int
	EndMin       int
	Notes        string
	CreatedAt    time.Time
}

// Interval is a half-open [Start, End) time range within a single day.
type Interval struct {
	Start int
	End   int
}

// Interval returns the booking's occupied time range.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartMin, End: b.EndMin}
}
