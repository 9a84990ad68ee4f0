package repositories

import (
	"context"
	"errors"
	"fmt"

	"verduleria/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// MaxDailyNumber returns the highest daily number already assigned for the
// given date, 0 when the day has no orders yet.
func (r *OrderRepository) MaxDailyNumber(ctx context.Context, orderDate string) (int, error) {
	var max int
	err := models.DB.QueryRow(ctx,
		`SELECT COALESCE(MAX(daily_number), 0) FROM orders WHERE order_date = $1`,
		orderDate,
	).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// InsertOrder writes the order header and all items in one transaction. A
// unique violation on (order_date, daily_number) is reported as
// models.ErrDuplicateDailyNumber so the allocator can retry; any other
// failure rolls everything back.
func (r *OrderRepository) InsertOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO orders (
			daily_number, order_date, customer_name, phone, place,
			pickup_time, delivery_address, payment_method, note, total, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		order.DailyNumber, order.OrderDate, order.CustomerName, order.Phone, order.Place,
		order.PickupTime, order.DeliveryAddress, order.PaymentMethod, order.Note,
		order.Total, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrDuplicateDailyNumber
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_name, quantity, unit, unit_price, line_total)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			items[i].OrderID, items[i].ProductName, items[i].Quantity,
			items[i].Unit, items[i].UnitPrice, items[i].LineTotal,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, status string) error {
	tag, err := models.DB.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`,
		status, orderID,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID int) (*models.Order, error) {
	var o models.Order
	err := models.DB.QueryRow(ctx,
		`SELECT id, daily_number, to_char(order_date, 'YYYY-MM-DD'), customer_name, phone, place,
		        pickup_time, delivery_address, payment_method, note, total, status, created_at
		 FROM orders WHERE id = $1`,
		orderID,
	).Scan(
		&o.ID, &o.DailyNumber, &o.OrderDate, &o.CustomerName, &o.Phone, &o.Place,
		&o.PickupTime, &o.DeliveryAddress, &o.PaymentMethod, &o.Note, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	rows, err := models.DB.Query(ctx,
		`SELECT id, order_id, product_name, quantity, unit, unit_price, line_total
		 FROM order_items WHERE order_id = $1 ORDER BY id`,
		o.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &it.Unit, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &o, nil
}

// ListOrders returns recent orders for the admin panel, optionally filtered
// by status, newest first.
func (r *OrderRepository) ListOrders(ctx context.Context, status string, limit int) ([]models.Order, error) {
	query := `SELECT id, daily_number, to_char(order_date, 'YYYY-MM-DD'), customer_name, phone, place,
	                 pickup_time, delivery_address, payment_method, note, total, status, created_at
	          FROM orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.DailyNumber, &o.OrderDate, &o.CustomerName, &o.Phone, &o.Place,
			&o.PickupTime, &o.DeliveryAddress, &o.PaymentMethod, &o.Note, &o.Total, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// DeleteOrder removes one order; its items go with it via ON DELETE CASCADE.
func (r *OrderRepository) DeleteOrder(ctx context.Context, orderID int) error {
	tag, err := models.DB.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) DeleteAllOrders(ctx context.Context) error {
	_, err := models.DB.Exec(ctx, `DELETE FROM orders`)
	if err != nil {
		return fmt.Errorf("delete all orders: %w", err)
	}
	return nil
}
