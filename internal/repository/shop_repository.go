package repository

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrNoValidItems    = errors.New("no valid items")
	ErrShopOrderNotFound = errors.New("shop order not found")
)

// OrderLine is the client's view of one requested line item; prices are
// always looked up server-side.
type OrderLine struct {
	ItemID   int64
	Quantity int
}

type ShopRepository struct {
	pool *pgxpool.Pool
}

func NewShopRepository(pool *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{pool: pool}
}

func (r *ShopRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT category_name FROM app_shop
		WHERE category_name IS NOT NULL AND category_name != ''
		ORDER BY category_name ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		categories = append(categories, name)
	}
	return categories, rows.Err()
}

func (r *ShopRepository) ListItems(ctx context.Context, category string) ([]models.ShopItem, error) {
	query := `SELECT id, name, description, price, image_url, category_name FROM app_shop`
	args := []any{}
	if category != "" {
		query += ` WHERE category_name = $1`
		args = append(args, category)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.ShopItem, 0)
	for rows.Next() {
		var i models.ShopItem
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.ImageURL, &i.CategoryName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *ShopRepository) GetItem(ctx context.Context, id int64) (models.ShopItem, error) {
	const query = `SELECT id, name, description, price, image_url, category_name FROM app_shop WHERE id = $1`

	var i models.ShopItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Description, &i.Price, &i.ImageURL, &i.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ShopItem{}, ErrItemNotFound
		}
		return models.ShopItem{}, err
	}
	return i, nil
}

func (r *ShopRepository) RelatedItems(ctx context.Context, category string, excludeID int64, limit int) ([]models.ShopItem, error) {
	const query = `
		SELECT id, name, description, price, image_url, category_name
		FROM app_shop WHERE category_name = $1 AND id != $2
		ORDER BY id ASC LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, category, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.ShopItem, 0)
	for rows.Next() {
		var i models.ShopItem
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.ImageURL, &i.CategoryName); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *ShopRepository) CreateItem(ctx context.Context, i models.ShopItem) (models.ShopItem, error) {
	const query = `
		INSERT INTO app_shop (name, description, price, image_url, category_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	row := r.pool.QueryRow(ctx, query, i.Name, i.Description, i.Price, i.ImageURL, i.CategoryName)
	if err := row.Scan(&i.ID); err != nil {
		return models.ShopItem{}, err
	}
	return i, nil
}

// CreateOrder places an order and its line items in one transaction, so
// a failure partway leaves no half-written order. Lines referencing
// unknown items or with quantity < 1 are skipped, matching the lenient
// client contract; an order with zero surviving lines is rejected.
func (r *ShopRepository) CreateOrder(ctx context.Context, userID *int64, lines []OrderLine) (models.ShopOrder, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return models.ShopOrder{}, err
	}
	defer tx.Rollback(ctx)

	var total float64
	items := make([]models.ShopOrderItem, 0, len(lines))

	for _, line := range lines {
		if line.ItemID < 1 || line.Quantity < 1 {
			continue
		}

		var name string
		var price float64
		err := tx.QueryRow(ctx,
			`SELECT name, price FROM app_shop WHERE id = $1`, line.ItemID,
		).Scan(&name, &price)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return models.ShopOrder{}, err
		}

		total += price * float64(line.Quantity)
		items = append(items, models.ShopOrderItem{
			ItemID:      line.ItemID,
			ProductName: name,
			Quantity:    line.Quantity,
			UnitPrice:   price,
		})
	}

	if len(items) == 0 {
		return models.ShopOrder{}, ErrNoValidItems
	}

	order := models.ShopOrder{
		UserID: userID,
		Total:  math.Round(total*1000) / 1000,
		Status: "placed",
	}

	row := tx.QueryRow(ctx,
		`INSERT INTO shop_orders (user_id, total, status) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		order.UserID, order.Total, order.Status,
	)
	if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
		return models.ShopOrder{}, err
	}

	for i := range items {
		items[i].OrderID = order.ID
		items[i].LineTotal = items[i].UnitPrice * float64(items[i].Quantity)
		if err := tx.QueryRow(ctx,
			`INSERT INTO shop_order_items (order_id, item_id, product_name, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			items[i].OrderID, items[i].ItemID, items[i].ProductName,
			items[i].Quantity, items[i].UnitPrice,
		).Scan(&items[i].ID); err != nil {
			return models.ShopOrder{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.ShopOrder{}, err
	}

	order.Items = items
	return order, nil
}

func (r *ShopRepository) ListOrders(ctx context.Context, userID *int64) ([]models.ShopOrder, error) {
	query := `SELECT id, user_id, total, status, created_at FROM shop_orders`
	args := []any{}
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.ShopOrder, 0)
	for rows.Next() {
		var o models.ShopOrder
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *ShopRepository) GetOrderWithItems(ctx context.Context, id int64) (models.ShopOrder, error) {
	var o models.ShopOrder
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, total, status, created_at FROM shop_orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ShopOrder{}, ErrShopOrderNotFound
		}
		return models.ShopOrder{}, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, item_id, product_name, quantity, unit_price
		 FROM shop_order_items WHERE order_id = $1 ORDER BY id ASC`, id,
	)
	if err != nil {
		return models.ShopOrder{}, err
	}
	defer rows.Close()

	o.Items = make([]models.ShopOrderItem, 0)
	for rows.Next() {
		var it models.ShopOrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return models.ShopOrder{}, err
		}
		it.LineTotal = it.UnitPrice * float64(it.Quantity)
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}
