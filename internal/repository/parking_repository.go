package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

const parkingBookingColumns = `
	id, user_id, booking_code, customer_name, parking_id, parking_name,
	marina_name, location_name, full_address, start_date, end_date,
	start_time, end_time, check_in, check_out, duration_hours, total_amount,
	currency, payment_status, transaction_id, booking_status, notes,
	created_at, updated_at`

type ParkingRepository struct {
	pool *pgxpool.Pool
}

func NewParkingRepository(pool *pgxpool.Pool) *ParkingRepository {
	return &ParkingRepository{pool: pool}
}

// Create inserts the booking and stamps its display code (BK-001 style)
// from the generated id in the same transaction.
func (r *ParkingRepository) Create(ctx context.Context, b models.ParkingBooking) (models.ParkingBooking, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return models.ParkingBooking{}, err
	}
	defer tx.Rollback(ctx)

	const insert = `
		INSERT INTO boat_parking_bookings (
			user_id, customer_name, parking_id, parking_name, marina_name,
			location_name, full_address, start_date, end_date, start_time,
			end_time, check_in, check_out, duration_hours, total_amount,
			currency, payment_status, transaction_id, booking_status, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING id, created_at, updated_at
	`
	row := tx.QueryRow(ctx, insert,
		b.UserID, b.CustomerName, b.ParkingID, b.ParkingName, b.MarinaName,
		b.LocationName, b.FullAddress, b.StartDate, b.EndDate, b.StartTime,
		b.EndTime, b.CheckIn, b.CheckOut, b.DurationHours, b.TotalAmount,
		b.Currency, b.PaymentStatus, b.TransactionID, b.BookingStatus, b.Notes,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.ParkingBooking{}, err
	}

	code := fmt.Sprintf("BK-%03d", b.ID)
	if _, err := tx.Exec(ctx,
		`UPDATE boat_parking_bookings SET booking_code = $2 WHERE id = $1`, b.ID, code,
	); err != nil {
		return models.ParkingBooking{}, err
	}
	b.BookingCode = &code

	if err := tx.Commit(ctx); err != nil {
		return models.ParkingBooking{}, err
	}
	return b, nil
}

func (r *ParkingRepository) GetForUser(ctx context.Context, id int64, userID int64) (models.ParkingBooking, error) {
	query := `SELECT` + parkingBookingColumns + `
		FROM boat_parking_bookings WHERE id = $1 AND user_id = $2`

	b, err := scanParkingBooking(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ParkingBooking{}, ErrBookingNotFound
		}
		return models.ParkingBooking{}, err
	}
	return b, nil
}

// ListByUser filters a user's parking bookings by payment status and/or
// booking status when those are non-empty.
func (r *ParkingRepository) ListByUser(ctx context.Context, userID int64, paymentStatus string, bookingStatus string) ([]models.ParkingBooking, error) {
	query := `SELECT` + parkingBookingColumns + `
		FROM boat_parking_bookings WHERE user_id = $1`
	args := []any{userID}

	if paymentStatus != "" {
		args = append(args, paymentStatus)
		query += fmt.Sprintf(` AND payment_status = $%d`, len(args))
	}
	if bookingStatus != "" {
		args = append(args, bookingStatus)
		query += fmt.Sprintf(` AND booking_status = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.ParkingBooking, 0)
	for rows.Next() {
		b, err := scanParkingBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListPlaces returns parking places newest first; status narrows the
// result when non-empty.
func (r *ParkingRepository) ListPlaces(ctx context.Context, status string) ([]models.ParkingPlace, error) {
	query := `
		SELECT id, parking_name, marina_name, status, short_description,
			parking_type, location_name, full_address, total_spots,
			max_boat_length, pricing_model, base_price, currency,
			minimum_booking, amenities, policy_notes, cover_image,
			gallery_images, created_at, updated_at
		FROM parking_places`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	places := make([]models.ParkingPlace, 0)
	for rows.Next() {
		var p models.ParkingPlace
		if err := rows.Scan(
			&p.ID, &p.ParkingName, &p.MarinaName, &p.Status, &p.ShortDescription,
			&p.ParkingType, &p.LocationName, &p.FullAddress, &p.TotalSpots,
			&p.MaxBoatLength, &p.PricingModel, &p.BasePrice, &p.Currency,
			&p.MinimumBooking, &p.Amenities, &p.PolicyNotes, &p.CoverImage,
			&p.GalleryImages, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func scanParkingBooking(row pgx.Row) (models.ParkingBooking, error) {
	var b models.ParkingBooking
	err := row.Scan(
		&b.ID, &b.UserID, &b.BookingCode, &b.CustomerName, &b.ParkingID,
		&b.ParkingName, &b.MarinaName, &b.LocationName, &b.FullAddress,
		&b.StartDate, &b.EndDate, &b.StartTime, &b.EndTime, &b.CheckIn,
		&b.CheckOut, &b.DurationHours, &b.TotalAmount, &b.Currency,
		&b.PaymentStatus, &b.TransactionID, &b.BookingStatus, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}
