package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

type TransitRepository struct {
	pool *pgxpool.Pool
}

func NewTransitRepository(pool *pgxpool.Pool) *TransitRepository {
	return &TransitRepository{pool: pool}
}

func (r *TransitRepository) ListVehicles(ctx context.Context) ([]models.TransitVehicle, error) {
	const query = `
		SELECT id, brand, model, seats, price_per_day, image_url, status, created_at
		FROM transit_vehicles ORDER BY brand ASC, model ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]models.TransitVehicle, 0)
	for rows.Next() {
		var v models.TransitVehicle
		if err := rows.Scan(
			&v.ID, &v.Brand, &v.Model, &v.Seats, &v.PricePerDay,
			&v.ImageURL, &v.Status, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *TransitRepository) CreateTripBooking(ctx context.Context, b models.TransitTripBooking) (models.TransitTripBooking, error) {
	const query = `
		INSERT INTO transit_trip_bookings (
			trip_id, user_id, brand, model, passenger_name, contact_number,
			email_id, pickup_address, drop_address, trip_date, trip_time,
			driver_details, driver_contact_number, fare, payment_method,
			payment_status, trip_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17
		)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		b.TripID, b.UserID, b.Brand, b.Model, b.PassengerName, b.ContactNumber,
		b.EmailID, b.PickupAddress, b.DropAddress, b.TripDate, b.TripTime,
		b.DriverDetails, b.DriverContactNumber, b.Fare, b.PaymentMethod,
		b.PaymentStatus, b.TripStatus,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.TransitTripBooking{}, err
	}
	return b, nil
}

func (r *TransitRepository) ListTripBookingsByUser(ctx context.Context, userID int64) ([]models.TransitTripBooking, error) {
	const query = `
		SELECT id, trip_id, user_id, brand, model, passenger_name, contact_number,
			email_id, pickup_address, drop_address, trip_date, trip_time,
			driver_details, driver_contact_number, fare, payment_method,
			payment_status, trip_status, created_at, updated_at
		FROM transit_trip_bookings WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.TransitTripBooking, 0)
	for rows.Next() {
		var b models.TransitTripBooking
		if err := rows.Scan(
			&b.ID, &b.TripID, &b.UserID, &b.Brand, &b.Model, &b.PassengerName,
			&b.ContactNumber, &b.EmailID, &b.PickupAddress, &b.DropAddress,
			&b.TripDate, &b.TripTime, &b.DriverDetails, &b.DriverContactNumber,
			&b.Fare, &b.PaymentMethod, &b.PaymentStatus, &b.TripStatus,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
