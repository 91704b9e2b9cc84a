package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

var ErrJetNotFound = errors.New("jet not found")

const jetColumns = `
	id, manufacturer, model, passenger_capacity, range_km, cruise_speed_kmh,
	price_per_hour, price_per_trip, description, images, jet_type, status,
	created_at, updated_at`

const jetBookingColumns = `
	id, booking_id, user_id, jet_id, manufacturer, model, passenger_name,
	contact_number, email_id, departure, destination, trip_date, trip_time,
	return_date, return_time, passengers, jet_type, fare, payment_method,
	payment_status, booking_status, created_at, updated_at`

type JetRepository struct {
	pool *pgxpool.Pool
}

func NewJetRepository(pool *pgxpool.Pool) *JetRepository {
	return &JetRepository{pool: pool}
}

func (r *JetRepository) Create(ctx context.Context, j models.Jet) (models.Jet, error) {
	const query = `
		INSERT INTO jets (
			manufacturer, model, passenger_capacity, range_km, cruise_speed_kmh,
			price_per_hour, price_per_trip, description, images, jet_type, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		j.Manufacturer, j.Model, j.PassengerCapacity, j.RangeKm, j.CruiseSpeedKmh,
		j.PricePerHour, j.PricePerTrip, j.Description, j.Images, j.JetType, j.Status,
	)
	if err := row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return models.Jet{}, err
	}
	return j, nil
}

func (r *JetRepository) GetByID(ctx context.Context, id int64) (models.Jet, error) {
	query := `SELECT` + jetColumns + ` FROM jets WHERE id = $1`

	j, err := scanJet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Jet{}, ErrJetNotFound
		}
		return models.Jet{}, err
	}
	return j, nil
}

// List returns jets ordered by manufacturer and model; status narrows
// the result when non-empty.
func (r *JetRepository) List(ctx context.Context, status string) ([]models.Jet, error) {
	query := `SELECT` + jetColumns + ` FROM jets`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY manufacturer ASC, model ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jets := make([]models.Jet, 0)
	for rows.Next() {
		j, err := scanJet(rows)
		if err != nil {
			return nil, err
		}
		jets = append(jets, j)
	}
	return jets, rows.Err()
}

func (r *JetRepository) CreateBooking(ctx context.Context, b models.JetBooking) (models.JetBooking, error) {
	const query = `
		INSERT INTO jet_bookings (
			booking_id, user_id, jet_id, manufacturer, model, passenger_name,
			contact_number, email_id, departure, destination, trip_date, trip_time,
			return_date, return_time, passengers, jet_type, fare, payment_method,
			payment_status, booking_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		b.BookingID, b.UserID, b.JetID, b.Manufacturer, b.Model, b.PassengerName,
		b.ContactNumber, b.EmailID, b.Departure, b.Destination, b.TripDate, b.TripTime,
		b.ReturnDate, b.ReturnTime, b.Passengers, b.JetType, b.Fare, b.PaymentMethod,
		b.PaymentStatus, b.BookingStatus,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.JetBooking{}, err
	}
	return b, nil
}

func (r *JetRepository) ListBookingsByUser(ctx context.Context, userID int64) ([]models.JetBooking, error) {
	query := `SELECT` + jetBookingColumns + `
		FROM jet_bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.JetBooking, 0)
	for rows.Next() {
		var b models.JetBooking
		if err := rows.Scan(
			&b.ID, &b.BookingID, &b.UserID, &b.JetID, &b.Manufacturer, &b.Model,
			&b.PassengerName, &b.ContactNumber, &b.EmailID, &b.Departure, &b.Destination,
			&b.TripDate, &b.TripTime, &b.ReturnDate, &b.ReturnTime, &b.Passengers,
			&b.JetType, &b.Fare, &b.PaymentMethod, &b.PaymentStatus, &b.BookingStatus,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanJet(row pgx.Row) (models.Jet, error) {
	var j models.Jet
	err := row.Scan(
		&j.ID, &j.Manufacturer, &j.Model, &j.PassengerCapacity, &j.RangeKm,
		&j.CruiseSpeedKmh, &j.PricePerHour, &j.PricePerTrip, &j.Description,
		&j.Images, &j.JetType, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}
