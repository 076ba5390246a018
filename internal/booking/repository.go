package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create persists a booking and fills in the storage-assigned id and
	// creation timestamp. A row violating the per-date overlap exclusion
	// constraint is reported as ErrSlotTaken.
	Create(ctx context.Context, b *Booking) error

	// ListForDate returns every booking on the date, ordered by start time.
	ListForDate(ctx context.Context, date string) ([]*Booking, error)

	// ListByPhone returns bookings for a normalized phone number, ordered
	// by date and start time.
	ListByPhone(ctx context.Context, phone string) ([]*Booking, error)

	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var bookingColumns = []string{
	"id", "customer_name", "phone", "service_id", "service_name",
	"date", "start_min", "end_min", "notes", "created_at",
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("customer_name", "phone", "service_id", "service_name",
			"date", "start_min", "end_min", "notes").
		Values(b.CustomerName, b.Phone, b.ServiceID, b.ServiceName,
			b.Date, b.StartMin, b.EndMin, b.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		// The bookings table carries an EXCLUDE constraint over
		// (date, int4range(start_min, end_min)), so a commit that lost a
		// race still surfaces as a plain conflict.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			return ErrSlotTaken
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListForDate(ctx context.Context, date string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_min ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListByPhone(ctx context.Context, phone string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings").
		Where(squirrel.Eq{"phone": phone}).
		OrderBy("date ASC", "start_min ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings by phone query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) queryBookings(ctx context.Context, query string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.CustomerName, &b.Phone, &b.ServiceID, &b.ServiceName,
			&b.Date, &b.StartMin, &b.EndMin, &b.Notes, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read bookings failed: %w", err)
	}
	return bookings, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
