package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"verduleria/models"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// GetAllProducts lists the catalog, optionally narrowed by a case-insensitive
// name search and an exact category match.
func (r *ProductRepository) GetAllProducts(ctx context.Context, search, category string) ([]models.Product, error) {
	query := `SELECT id, name, category, unit, price, promo_qty, promo_price, image, created_at, updated_at
	          FROM products`
	conditions := []string{}
	args := []interface{}{}

	if search != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(name) LIKE $%d", len(args)+1))
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	if category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, category)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category, name"

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Unit, &p.Price, &p.PromoQty, &p.PromoPrice, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := models.DB.Query(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := models.DB.QueryRow(ctx,
		`SELECT id, name, category, unit, price, promo_qty, promo_price, image, created_at, updated_at
		 FROM products WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Category, &p.Unit, &p.Price, &p.PromoQty, &p.PromoPrice, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now()
	return models.DB.QueryRow(ctx,
		`INSERT INTO products (name, category, unit, price, promo_qty, promo_price, image, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		product.Name, product.Category, product.Unit, product.Price,
		product.PromoQty, product.PromoPrice, product.Image, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	tag, err := models.DB.Exec(ctx,
		`UPDATE products SET name = $1, category = $2, unit = $3, price = $4,
		        promo_qty = $5, promo_price = $6, image = $7, updated_at = $8
		 WHERE id = $9`,
		product.Name, product.Category, product.Unit, product.Price,
		product.PromoQty, product.PromoPrice, product.Image, time.Now(), product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	tag, err := models.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
