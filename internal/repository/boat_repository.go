package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"marinahub/api/internal/models"
)

var ErrBoatNotFound = errors.New("boat not found")

const boatColumns = `
	id, boat_name, vendor_name, category_name, sub_category_name, status,
	capacity, price_per_hour, price_per_hour_currency, price_per_day,
	price_per_day_currency, primary_image_url, lat, long, length_meters,
	year_built, description, amenities, created_at, updated_at`

type BoatRepository struct {
	pool *pgxpool.Pool
}

func NewBoatRepository(pool *pgxpool.Pool) *BoatRepository {
	return &BoatRepository{pool: pool}
}

func (r *BoatRepository) Create(ctx context.Context, b models.Boat) (models.Boat, error) {
	const query = `
		INSERT INTO boats (
			boat_name, vendor_name, category_name, sub_category_name, status,
			capacity, price_per_hour, price_per_hour_currency, price_per_day,
			price_per_day_currency, primary_image_url, lat, long, length_meters,
			year_built, description, amenities
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17
		)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		b.BoatName, b.VendorName, b.CategoryName, b.SubCategoryName, b.Status,
		b.Capacity, b.PricePerHour, b.PricePerHourCurrency, b.PricePerDay,
		b.PricePerDayCurrency, b.PrimaryImageURL, b.Lat, b.Long, b.LengthMeters,
		b.YearBuilt, b.Description, b.Amenities,
	)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.Boat{}, err
	}
	return b, nil
}

func (r *BoatRepository) GetByID(ctx context.Context, id int64) (models.Boat, error) {
	query := `SELECT` + boatColumns + ` FROM boats WHERE id = $1`

	b, err := scanBoat(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Boat{}, ErrBoatNotFound
		}
		return models.Boat{}, err
	}
	return b, nil
}

// List returns boats newest first; category and subCategory narrow the
// result when non-empty.
func (r *BoatRepository) List(ctx context.Context, category string, subCategory string) ([]models.Boat, error) {
	query := `SELECT` + boatColumns + ` FROM boats WHERE 1=1`
	args := []any{}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(` AND category_name = $%d`, len(args))
	}
	if subCategory != "" {
		args = append(args, subCategory)
		query += fmt.Sprintf(` AND sub_category_name = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boats := make([]models.Boat, 0)
	for rows.Next() {
		b, err := scanBoat(rows)
		if err != nil {
			return nil, err
		}
		boats = append(boats, b)
	}
	return boats, rows.Err()
}

func (r *BoatRepository) Categories(ctx context.Context) ([]models.BoatCategory, error) {
	const query = `
		SELECT id, category_name, image, status, created_at, updated_at
		FROM boat_categories ORDER BY category_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.BoatCategory, 0)
	for rows.Next() {
		var cat models.BoatCategory
		if err := rows.Scan(
			&cat.ID, &cat.CategoryName, &cat.Image, &cat.Status,
			&cat.CreatedAt, &cat.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

// SubCategoryNames returns the distinct non-empty sub-category names of
// the boats filed under category, alphabetically.
func (r *BoatRepository) SubCategoryNames(ctx context.Context, category string) ([]string, error) {
	const query = `
		SELECT DISTINCT TRIM(sub_category_name)
		FROM boats
		WHERE category_name = $1
		  AND sub_category_name IS NOT NULL
		  AND TRIM(sub_category_name) <> ''
		ORDER BY 1 ASC`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func scanBoat(row pgx.Row) (models.Boat, error) {
	var b models.Boat
	err := row.Scan(
		&b.ID, &b.BoatName, &b.VendorName, &b.CategoryName, &b.SubCategoryName,
		&b.Status, &b.Capacity, &b.PricePerHour, &b.PricePerHourCurrency,
		&b.PricePerDay, &b.PricePerDayCurrency, &b.PrimaryImageURL, &b.Lat,
		&b.Long, &b.LengthMeters, &b.YearBuilt, &b.Description, &b.Amenities,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}
