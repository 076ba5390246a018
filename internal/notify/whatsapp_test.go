package notify

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brisastudio/studio-booking-backend/internal/booking"
)

func sampleBooking() *booking.Booking {
	return &booking.Booking{
		ID:           "b1",
		CustomerName: "Maria Silva",
		Phone:        "11988887777",
		ServiceName:  "Lash Lifting",
		Date:         "2025-01-06",
		StartMin:     10 * 60,
		EndMin:       11 * 60,
		Notes:        "first visit",
	}
}

func TestBookingLink(t *testing.T) {
	w := NewWhatsApp("+55 (11) 97777-0000")
	require.True(t, w.Enabled())

	link := w.BookingLink(sampleBooking())
	require.True(t, strings.HasPrefix(link, "https://wa.me/5511977770000?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")

	assert.Contains(t, msg, "Maria Silva")
	assert.Contains(t, msg, "Telefone: 11988887777")
	assert.Contains(t, msg, "Lash Lifting")
	assert.Contains(t, msg, "Data: 06/01/2025")
	assert.Contains(t, msg, "Horário: 10:00 - 11:00")
	assert.Contains(t, msg, "Obs: first visit")
}

func TestBookingLinkOmitsEmptyFields(t *testing.T) {
	w := NewWhatsApp("5511977770000")

	b := sampleBooking()
	b.Phone = ""
	b.Notes = ""

	u, err := url.Parse(w.BookingLink(b))
	require.NoError(t, err)
	msg := u.Query().Get("text")

	assert.NotContains(t, msg, "Telefone")
	assert.NotContains(t, msg, "Obs")
}

func TestBookingLinkDisabledWithoutNumber(t *testing.T) {
	w := NewWhatsApp("")
	assert.False(t, w.Enabled())
	assert.Empty(t, w.BookingLink(sampleBooking()))

	w = NewWhatsApp("---")
	assert.False(t, w.Enabled())
}
