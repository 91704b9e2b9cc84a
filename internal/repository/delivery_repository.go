package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

const deliveryOrderColumns = `
	id, booking_id, user_id, delivery_type, pickup_city, drop_off_city,
	pickup_country, destination_country, destination_city, origin_port,
	destination_port, container_type, car_type, approximate_value,
	dimensions, weight, pick_up_address, delivery_address, full_name,
	contact_details, email_id, schedule_date, time_slot_index, payment_type,
	status, created_at, updated_at`

type DeliveryRepository struct {
	pool *pgxpool.Pool
}

func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{pool: pool}
}

func (r *DeliveryRepository) CreateOrder(ctx context.Context, o models.DeliveryOrder) (models.DeliveryOrder, error) {
	const query = `
		INSERT INTO delivery_orders (
			booking_id, user_id, delivery_type, pickup_city, drop_off_city,
			pickup_country, destination_country, destination_city, origin_port,
			destination_port, container_type, car_type, approximate_value,
			dimensions, weight, pick_up_address, delivery_address, full_name,
			contact_details, email_id, schedule_date, time_slot_index,
			payment_type, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		o.BookingID, o.UserID, o.DeliveryType, o.PickupCity, o.DropOffCity,
		o.PickupCountry, o.DestinationCountry, o.DestinationCity, o.OriginPort,
		o.DestinationPort, o.ContainerType, o.CarType, o.ApproximateValue,
		o.Dimensions, o.Weight, o.PickUpAddress, o.DeliveryAddress, o.FullName,
		o.ContactDetails, o.EmailID, o.ScheduleDate, o.TimeSlotIndex,
		o.PaymentType, o.Status,
	)
	if err := row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return models.DeliveryOrder{}, err
	}
	return o, nil
}

func (r *DeliveryRepository) GetOrder(ctx context.Context, id int64) (models.DeliveryOrder, error) {
	query := `SELECT` + deliveryOrderColumns + ` FROM delivery_orders WHERE id = $1`

	o, err := scanDeliveryOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DeliveryOrder{}, ErrOrderNotFound
		}
		return models.DeliveryOrder{}, err
	}
	return o, nil
}

// ListOrders returns every order, or only one user's when userID is set.
func (r *DeliveryRepository) ListOrders(ctx context.Context, userID *int64) ([]models.DeliveryOrder, error) {
	query := `SELECT` + deliveryOrderColumns + ` FROM delivery_orders`
	args := []any{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.DeliveryOrder, 0)
	for rows.Next() {
		o, err := scanDeliveryOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *DeliveryRepository) ListLocations(ctx context.Context, deliveryType string, country string) ([]models.DeliveryLocation, error) {
	query := `
		SELECT id, delivery_type, country_name, country_code, city_name,
			port_name, car_type, is_pickup, is_dropoff, is_active, sort_order
		FROM delivery_selection_configs
		WHERE delivery_type = $1 AND is_active = TRUE
	`
	args := []any{deliveryType}
	if country != "" {
		query += ` AND country_name = $2`
		args = append(args, country)
	}
	query += ` ORDER BY sort_order ASC, city_name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]models.DeliveryLocation, 0)
	for rows.Next() {
		var l models.DeliveryLocation
		if err := rows.Scan(
			&l.ID, &l.DeliveryType, &l.CountryName, &l.CountryCode, &l.CityName,
			&l.PortName, &l.CarType, &l.IsPickup, &l.IsDropoff, &l.IsActive, &l.SortOrder,
		); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *DeliveryRepository) CreateLocation(ctx context.Context, l models.DeliveryLocation) (models.DeliveryLocation, error) {
	const query = `
		INSERT INTO delivery_selection_configs (
			delivery_type, country_name, country_code, city_name, port_name,
			car_type, is_pickup, is_dropoff, is_active, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	row := r.pool.QueryRow(ctx, query,
		l.DeliveryType, l.CountryName, l.CountryCode, l.CityName, l.PortName,
		l.CarType, l.IsPickup, l.IsDropoff, l.IsActive, l.SortOrder,
	)
	if err := row.Scan(&l.ID); err != nil {
		return models.DeliveryLocation{}, err
	}
	return l, nil
}

func scanDeliveryOrder(row pgx.Row) (models.DeliveryOrder, error) {
	var o models.DeliveryOrder
	err := row.Scan(
		&o.ID, &o.BookingID, &o.UserID, &o.DeliveryType, &o.PickupCity,
		&o.DropOffCity, &o.PickupCountry, &o.DestinationCountry,
		&o.DestinationCity, &o.OriginPort, &o.DestinationPort, &o.ContainerType,
		&o.CarType, &o.ApproximateValue, &o.Dimensions, &o.Weight,
		&o.PickUpAddress, &o.DeliveryAddress, &o.FullName, &o.ContactDetails,
		&o.EmailID, &o.ScheduleDate, &o.TimeSlotIndex, &o.PaymentType,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}
