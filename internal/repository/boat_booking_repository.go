package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

const boatBookingColumns = `
	id, order_id, boat_id, boat_name, boat_image_url, boat_address,
	customer_id, customer_name, customer_contact, customer_email,
	booking_date, start_time, end_time, captain_name, captain_image_url,
	destination_name, destination_price, destination_time, pick_up_address,
	subtotal, discount_amount, coupon_code, total_amount, price_per_hour,
	transaction_type, transaction_id, payment_status, items_json,
	booking_status, created_at, updated_at`

type BoatBookingRepository struct {
	pool *pgxpool.Pool
}

func NewBoatBookingRepository(pool *pgxpool.Pool) *BoatBookingRepository {
	return &BoatBookingRepository{pool: pool}
}

func (r *BoatBookingRepository) Create(ctx context.Context, b models.BoatBooking) (models.BoatBooking, error) {
	const query = `
		INSERT INTO boat_booking_transactions (
			order_id, boat_id, boat_name, boat_image_url, boat_address,
			customer_id, customer_name, customer_contact, customer_email,
			booking_date, start_time, end_time, captain_name, captain_image_url,
			destination_name, destination_price, destination_time, pick_up_address,
			subtotal, discount_amount, coupon_code, total_amount, price_per_hour,
			transaction_type, transaction_id, payment_status, items_json, booking_status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
		)
		RETURNING id, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		b.OrderID, b.BoatID, b.BoatName, b.BoatImageURL, b.BoatAddress,
		b.CustomerID, b.CustomerName, b.CustomerContact, b.CustomerEmail,
		b.BookingDate, b.StartTime, b.EndTime, b.CaptainName, b.CaptainImageURL,
		b.DestinationName, b.DestinationPrice, b.DestinationTime, b.PickUpAddress,
		b.Subtotal, b.DiscountAmount, b.CouponCode, b.TotalAmount, b.PricePerHour,
		b.TransactionType, b.TransactionID, b.PaymentStatus, b.ItemsJSON, b.BookingStatus,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.BoatBooking{}, err
	}
	return b, nil
}

func (r *BoatBookingRepository) GetForCustomer(ctx context.Context, id int64, customerID int64) (models.BoatBooking, error) {
	query := `SELECT` + boatBookingColumns + `
		FROM boat_booking_transactions WHERE id = $1 AND customer_id = $2`

	b, err := scanBoatBooking(r.pool.QueryRow(ctx, query, id, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.BoatBooking{}, ErrBookingNotFound
		}
		return models.BoatBooking{}, err
	}
	return b, nil
}

func (r *BoatBookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]models.BoatBooking, error) {
	query := `SELECT` + boatBookingColumns + `
		FROM boat_booking_transactions WHERE customer_id = $1
		ORDER BY booking_date DESC`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]models.BoatBooking, 0)
	for rows.Next() {
		b, err := scanBoatBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func scanBoatBooking(row pgx.Row) (models.BoatBooking, error) {
	var b models.BoatBooking
	err := row.Scan(
		&b.ID, &b.OrderID, &b.BoatID, &b.BoatName, &b.BoatImageURL, &b.BoatAddress,
		&b.CustomerID, &b.CustomerName, &b.CustomerContact, &b.CustomerEmail,
		&b.BookingDate, &b.StartTime, &b.EndTime, &b.CaptainName, &b.CaptainImageURL,
		&b.DestinationName, &b.DestinationPrice, &b.DestinationTime, &b.PickUpAddress,
		&b.Subtotal, &b.DiscountAmount, &b.CouponCode, &b.TotalAmount, &b.PricePerHour,
		&b.TransactionType, &b.TransactionID, &b.PaymentStatus, &b.ItemsJSON,
		&b.BookingStatus, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}
