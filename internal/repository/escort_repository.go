package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

const escortBookingColumns = `
	id, booking_id, user_id, full_name, contact_number, email_id,
	escort_service_type, vip_service_type, request_date, request_time,
	start_date, end_date, start_time, end_time, location, primary_location,
	special_requests, additional_notes, additional_locations, status,
	created_at, updated_at`

type EscortRepository struct {
	pool *pgxpool.Pool
}

func NewEscortRepository(pool *pgxpool.Pool) *EscortRepository {
	return &EscortRepository{pool: pool}
}

func (r *EscortRepository) Create(ctx context.Context, b models.EscortBooking) (models.EscortBooking, error) {
	const query = `
		INSERT INTO escort_bookings (
			booking_id, user_id, full_name, contact_number, email_id,
			escort_service_type, vip_service_type, request_date, request_time,
			start_date, end_date, start_time, end_time, location,
			primary_location, special_requests, additional_notes,
			additional_locations, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		b.BookingID, b.UserID, b.FullName, b.ContactNumber, b.EmailID,
		b.EscortServiceType, b.VIPServiceType, b.RequestDate, b.RequestTime,
		b.StartDate, b.EndDate, b.StartTime, b.EndTime, b.Location,
		b.PrimaryLocation, b.SpecialRequests, b.AdditionalNotes,
		b.AdditionalLocations, b.Status,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.EscortBooking{}, err
	}
	return b, nil
}

func (r *EscortRepository) List(ctx context.Context, status string) ([]models.EscortBooking, error) {
	query := `SELECT` + escortBookingColumns + ` FROM escort_bookings`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	return r.queryBookings(ctx, query, args...)
}

func (r *EscortRepository) ListByUser(ctx context.Context, userID int64) ([]models.EscortBooking, error) {
	query := `SELECT` + escortBookingColumns + `
		FROM escort_bookings WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryBookings(ctx, query, userID)
}

func (r *EscortRepository) queryBookings(ctx context.Context, query string, args ...any) ([]models.EscortBooking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.EscortBooking, 0)
	for rows.Next() {
		b, err := scanEscortBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanEscortBooking(row pgx.Row) (models.EscortBooking, error) {
	var b models.EscortBooking
	err := row.Scan(
		&b.ID, &b.BookingID, &b.UserID, &b.FullName, &b.ContactNumber,
		&b.EmailID, &b.EscortServiceType, &b.VIPServiceType, &b.RequestDate,
		&b.RequestTime, &b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime,
		&b.Location, &b.PrimaryLocation, &b.SpecialRequests, &b.AdditionalNotes,
		&b.AdditionalLocations, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}
