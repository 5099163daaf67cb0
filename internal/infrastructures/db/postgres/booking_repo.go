package postgres

import (
	"context"
	"fmt"

	"github.com/comeltrans/comeltrans/internal/domain/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*BookingRepository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &BookingRepository{db: pool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *BookingRepository) Close() {
	r.db.Close()
}

func (r *BookingRepository) Insert(ctx context.Context, booking models.Booking) (models.Booking, error) {
	const query = `
		INSERT INTO bookings (
			user_id,
			route_name,
			status,
			total_amount_rub,
			passenger_count,
			departure_date,
			return_date,
			contact_phone,
			contact_email
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.UserID,
		booking.RouteName,
		booking.Status,
		booking.TotalAmountRub,
		booking.PassengerCount,
		booking.DepartureDate,
		booking.ReturnDate,
		booking.ContactPhone,
		booking.ContactEmail,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return models.Booking{}, fmt.Errorf("insert booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	const query = `
		SELECT
			id,
			user_id,
			route_name,
			status,
			total_amount_rub,
			passenger_count,
			departure_date,
			return_date,
			COALESCE(contact_phone, ''),
			COALESCE(contact_email, ''),
			created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query bookings by user: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.RouteName,
			&b.Status,
			&b.TotalAmountRub,
			&b.PassengerCount,
			&b.DepartureDate,
			&b.ReturnDate,
			&b.ContactPhone,
			&b.ContactEmail,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
