package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

var ErrChaletNotFound = errors.New("chalet not found")

const chaletColumns = `
	id, name, title, description, address, price_per_night, bedrooms,
	bathrooms, max_guests, image_url, amenities_json, status, created_at, updated_at`

type ChaletRepository struct {
	pool *pgxpool.Pool
}

func NewChaletRepository(pool *pgxpool.Pool) *ChaletRepository {
	return &ChaletRepository{pool: pool}
}

func (r *ChaletRepository) Create(ctx context.Context, c models.Chalet) (models.Chalet, error) {
	const query = `
		INSERT INTO chalets (
			name, title, description, address, price_per_night, bedrooms,
			bathrooms, max_guests, image_url, amenities_json, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		c.Name, c.Title, c.Description, c.Address, c.PricePerNight, c.Bedrooms,
		c.Bathrooms, c.MaxGuests, c.ImageURL, c.AmenitiesJSON, c.Status,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return models.Chalet{}, err
	}
	return c, nil
}

func (r *ChaletRepository) GetByID(ctx context.Context, id int64) (models.Chalet, error) {
	query := `SELECT` + chaletColumns + ` FROM chalets WHERE id = $1`

	c, err := scanChalet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Chalet{}, ErrChaletNotFound
		}
		return models.Chalet{}, err
	}
	return c, nil
}

func (r *ChaletRepository) List(ctx context.Context) ([]models.Chalet, error) {
	query := `SELECT` + chaletColumns + ` FROM chalets ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chalets := make([]models.Chalet, 0)
	for rows.Next() {
		c, err := scanChalet(rows)
		if err != nil {
			return nil, err
		}
		chalets = append(chalets, c)
	}
	return chalets, rows.Err()
}

func (r *ChaletRepository) CreateBooking(ctx context.Context, b models.ChaletBooking) (models.ChaletBooking, error) {
	const query = `
		INSERT INTO chalet_bookings (
			chalet_id, customer_id, check_in_date, check_out_date, guest_name,
			contact_number, email_id, total_amount, booking_status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	row := r.pool.QueryRow(ctx, query,
		b.ChaletID, b.CustomerID, b.CheckInDate, b.CheckOutDate, b.GuestName,
		b.ContactNumber, b.EmailID, b.TotalAmount, b.BookingStatus, b.Notes,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		return models.ChaletBooking{}, err
	}
	return b, nil
}

func (r *ChaletRepository) ListBookingsByCustomer(ctx context.Context, customerID int64) ([]models.ChaletBooking, error) {
	const query = `
		SELECT id, chalet_id, customer_id, check_in_date, check_out_date,
			guest_name, contact_number, email_id, total_amount, booking_status,
			notes, created_at
		FROM chalet_bookings WHERE customer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.ChaletBooking, 0)
	for rows.Next() {
		var b models.ChaletBooking
		if err := rows.Scan(
			&b.ID, &b.ChaletID, &b.CustomerID, &b.CheckInDate, &b.CheckOutDate,
			&b.GuestName, &b.ContactNumber, &b.EmailID, &b.TotalAmount,
			&b.BookingStatus, &b.Notes, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanChalet(row pgx.Row) (models.Chalet, error) {
	var c models.Chalet
	err := row.Scan(
		&c.ID, &c.Name, &c.Title, &c.Description, &c.Address, &c.PricePerNight,
		&c.Bedrooms, &c.Bathrooms, &c.MaxGuests, &c.ImageURL, &c.AmenitiesJSON,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}
