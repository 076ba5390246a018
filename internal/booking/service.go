package booking

import (
	"context"
	"strings"

	"github.com/brisastudio/studio-booking-backend/internal/catalog"
	"github.com/brisastudio/studio-booking-backend/internal/pkg/datelock"
	"github.com/brisastudio/studio-booking-backend/internal/schedule"
)

// CreateRequest carries the caller-supplied fields of a new booking.
// StartTime is an HH:MM string; the service duration fixes the end time.
type CreateRequest struct {
	CustomerName string
	Phone        string
	ServiceID    string
	Date         string
	StartTime    string
	Notes        string
}

type Service interface {
	// AvailableSlots lists free HH:MM start times on a date for an
	// appointment of the given duration. An empty result is a normal
	// outcome (closed day or fully booked), not an error.
	AvailableSlots(ctx context.Context, date string, durationMin int) ([]string, error)

	// Create validates and commits a booking. Concurrent overlapping
	// requests for the same date are serialized; at most one succeeds and
	// the rest fail with ErrSlotTaken.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	ListByPhone(ctx context.Context, phone string) ([]*Booking, error)
	Cancel(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	catalog *catalog.Catalog
	week    schedule.Week
	locks   *datelock.KeyedMutex
}

func NewService(repo Repository, cat *catalog.Catalog, week schedule.Week) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		week:    week,
		locks:   datelock.New(),
	}
}

func (s *service) AvailableSlots(ctx context.Context, date string, durationMin int) ([]string, error) {
	if !schedule.ValidDate(date) {
		return nil, ErrInvalidDate
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	win, open := s.week.WindowFor(date)
	if !open {
		return []string{}, nil
	}

	existing, err := s.repo.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	booked := make([]Interval, len(existing))
	for i, b := range existing {
		booked[i] = b.Interval()
	}

	free := FreeSlots(win, durationMin, booked)
	slots := make([]string, len(free))
	for i, t := range free {
		slots[i] = schedule.FormatClock(t)
	}
	return slots, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" || req.ServiceID == "" || req.Date == "" || req.StartTime == "" {
		return nil, ErrMissingFields
	}
	if !schedule.ValidDate(req.Date) {
		return nil, ErrInvalidDate
	}
	start, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTime
	}

	svc, ok := s.catalog.Get(req.ServiceID)
	if !ok {
		return nil, ErrUnknownService
	}

	win, open := s.week.WindowFor(req.Date)
	if !open {
		return nil, ErrClosed
	}

	end := start + svc.DurationMin
	if start < win.Open || end > win.Close {
		return nil, ErrOutsideHours
	}

	// The conflict check and insert must act as one atomic unit per date,
	// otherwise two racing requests could both pass the check. The keyed
	// mutex serializes commits for the date; the storage exclusion
	// constraint backstops the same invariant across processes.
	unlock := s.locks.Lock(req.Date)
	defer unlock()

	existing, err := s.repo.ListForDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	requested := Interval{Start: start, End: end}
	for _, b := range existing {
		if Overlaps(requested, b.Interval()) {
			return nil, ErrSlotTaken
		}
	}

	b := &Booking{
		CustomerName: name,
		Phone:        NormalizePhone(req.Phone),
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		Date:         req.Date,
		StartMin:     start,
		EndMin:       end,
		Notes:        strings.TrimSpace(req.Notes),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) ListByPhone(ctx context.Context, phone string) ([]*Booking, error) {
	normalized := NormalizePhone(phone)
	if normalized == "" {
		return nil, ErrInvalidPhone
	}
	return s.repo.ListByPhone(ctx, normalized)
}

func (s *service) Cancel(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// NormalizePhone strips every non-digit character.
func NormalizePhone(phone string) string {
	var sb strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
