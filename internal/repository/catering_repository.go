package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

type CateringRepository struct {
	pool *pgxpool.Pool
}

func NewCateringRepository(pool *pgxpool.Pool) *CateringRepository {
	return &CateringRepository{pool: pool}
}

func (r *CateringRepository) CreateCaterer(ctx context.Context, cat models.Caterer) (models.Caterer, error) {
	const query = `
		INSERT INTO caterers (name, address, image_url, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, cat.Name, cat.Address, cat.ImageURL, cat.Rating)
	if err := row.Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
		return models.Caterer{}, err
	}
	return cat, nil
}

func (r *CateringRepository) ListCaterers(ctx context.Context) ([]models.Caterer, error) {
	const query = `
		SELECT id, name, address, image_url, rating, created_at, updated_at
		FROM caterers ORDER BY created_at DESC, id DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	caterers := make([]models.Caterer, 0)
	for rows.Next() {
		var cat models.Caterer
		if err := rows.Scan(
			&cat.ID, &cat.Name, &cat.Address, &cat.ImageURL, &cat.Rating,
			&cat.CreatedAt, &cat.UpdatedAt,
		); err != nil {
			return nil, err
		}
		caterers = append(caterers, cat)
	}
	return caterers, rows.Err()
}

func (r *CateringRepository) CreateMenuItem(ctx context.Context, item models.CatererMenuItem) (models.CatererMenuItem, error) {
	const query = `
		INSERT INTO caterer_menu_items (
			caterer_id, name, description, preparation_mins, price, image_url, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		item.CatererID, item.Name, item.Description, item.PreparationMins,
		item.Price, item.ImageURL, item.SortOrder,
	)
	if err := row.Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return models.CatererMenuItem{}, err
	}
	return item, nil
}

// ListMenuItems returns menu items in display order; a non-nil catererID
// narrows the result to one caterer.
func (r *CateringRepository) ListMenuItems(ctx context.Context, catererID *int64) ([]models.CatererMenuItem, error) {
	query := `
		SELECT id, caterer_id, name, description, preparation_mins, price,
			image_url, sort_order, created_at, updated_at
		FROM caterer_menu_items`
	args := []any{}
	if catererID != nil {
		query += ` WHERE caterer_id = $1`
		args = append(args, *catererID)
	}
	query += ` ORDER BY sort_order ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.CatererMenuItem, 0)
	for rows.Next() {
		var item models.CatererMenuItem
		if err := rows.Scan(
			&item.ID, &item.CatererID, &item.Name, &item.Description,
			&item.PreparationMins, &item.Price, &item.ImageURL, &item.SortOrder,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CateringRepository) CreateOrder(ctx context.Context, o models.CateringOrder) (models.CateringOrder, error) {
	const query = `
		INSERT INTO catering_orders (
			user_id, caterer_id, address_id, no_of_persons, status, subtotal,
			discount_amount, coupon_code, total, payment_method, payment_status,
			transaction_id, queries, items_ordered
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`
	row := r.pool.QueryRow(ctx, query,
		o.UserID, o.CatererID, o.AddressID, o.NoOfPersons, o.Status, o.Subtotal,
		o.DiscountAmount, o.CouponCode, o.Total, o.PaymentMethod, o.PaymentStatus,
		o.TransactionID, o.Queries, o.ItemsOrdered,
	)
	if err := row.Scan(&o.ID, &o.CreatedAt); err != nil {
		return models.CateringOrder{}, err
	}
	return o, nil
}

func (r *CateringRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]models.CateringOrder, error) {
	const query = `
		SELECT id, user_id, caterer_id, address_id, no_of_persons, status,
			subtotal, discount_amount, coupon_code, total, payment_method,
			payment_status, transaction_id, queries, items_ordered, created_at
		FROM catering_orders WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.CateringOrder, 0)
	for rows.Next() {
		var o models.CateringOrder
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.CatererID, &o.AddressID, &o.NoOfPersons,
			&o.Status, &o.Subtotal, &o.DiscountAmount, &o.CouponCode, &o.Total,
			&o.PaymentMethod, &o.PaymentStatus, &o.TransactionID, &o.Queries,
			&o.ItemsOrdered, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
