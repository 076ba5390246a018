// Package notify builds the WhatsApp handoff link the studio owner
// receives for each new booking.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/brisastudio/studio-booking-backend/internal/booking"
	"github.com/brisastudio/studio-booking-backend/internal/schedule"
)

// WhatsApp renders wa.me links targeting the studio's contact number.
// The zero-configured value (empty number) renders no links.
type WhatsApp struct {
	phone string
}

// NewWhatsApp strips non-digits from the configured number.
func NewWhatsApp(phone string) *WhatsApp {
	return &WhatsApp{phone: booking.NormalizePhone(phone)}
}

// Enabled reports whether a studio contact number is configured.
func (w *WhatsApp) Enabled() bool {
	return w.phone != ""
}

// BookingLink returns a wa.me URL whose prefilled message describes the
// booking, or "" when no contact number is configured.
func (w *WhatsApp) BookingLink(b *booking.Booking) string {
	if !w.Enabled() {
		return ""
	}

	var msg strings.Builder
	msg.WriteString("Olá! Nova solicitação de agendamento:\n\n")
	fmt.Fprintf(&msg, "Cliente: %s\n", b.CustomerName)
	if b.Phone != "" {
		fmt.Fprintf(&msg, "Telefone: %s\n", b.Phone)
	}
	fmt.Fprintf(&msg, "Serviço: %s\n", b.ServiceName)
	fmt.Fprintf(&msg, "Data: %s\n", formatDateBR(b.Date))
	fmt.Fprintf(&msg, "Horário: %s - %s\n",
		schedule.FormatClock(b.StartMin), schedule.FormatClock(b.EndMin))
	if b.Notes != "" {
		fmt.Fprintf(&msg, "Obs: %s\n", b.Notes)
	}

	return "https://wa.me/" + w.phone + "?text=" + url.QueryEscape(msg.String())
}

// formatDateBR turns YYYY-MM-DD into DD/MM/YYYY for the message body.
func formatDateBR(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
