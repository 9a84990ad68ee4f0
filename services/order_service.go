package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"verduleria/models"
	"verduleria/utils"
)

// maxAllocationAttempts bounds the read-then-insert retry loop for daily
// order numbers. Exhausting it means pathological contention or a storage
// fault, surfaced as ErrAllocationExhausted.
const maxAllocationAttempts = 3

// OrderStore is the persistence surface the order service needs. InsertOrder
// must write the header and all items atomically and report a collision on
// (order_date, daily_number) as models.ErrDuplicateDailyNumber.
type OrderStore interface {
	MaxDailyNumber(ctx context.Context, orderDate string) (int, error)
	InsertOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error
	UpdateStatus(ctx context.Context, orderID int, status string) error
	GetOrderByID(ctx context.Context, orderID int) (*models.Order, error)
}

type OrderService struct {
	store OrderStore
	carts *CartService
	email *models.EmailService
	now   func() time.Time
}

func NewOrderService(store OrderStore) *OrderService {
	svc := &OrderService{
		store: store,
		carts: NewCartService(),
		now:   time.Now,
	}

	if email, err := models.NewEmailService(); err == nil {
		svc.email = email
	} else {
		log.Println("Owner e-mail notifications disabled:", err)
	}

	return svc
}

// CreateOrder re-prices the cart, reserves the next daily number and persists
// the order header plus all items as one unit. The cart total is always
// recomputed here; client-supplied totals are never trusted.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CheckoutRequest, cart models.Cart) (*models.Order, error) {
	if len(cart.Lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	total, err := s.carts.Total(cart)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lineTotal, err := PriceLine(line.Quantity, line.UnitPrice, line.PromoQty, line.PromoPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Unit:        line.Unit,
			UnitPrice:   line.UnitPrice,
			LineTotal:   lineTotal,
		})
	}

	now := s.now()
	order := &models.Order{
		OrderDate:     now.Format("2006-01-02"),
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Place:         req.Place,
		PaymentMethod: req.PaymentMethod,
		Total:         total,
		Status:        models.OrderStatusPending,
		CreatedAt:     now,
	}
	if req.PaymentMethod == "" {
		order.PaymentMethod = "Sin especificar"
	}
	if req.Place == models.PlacePickup && req.PickupTime != "" {
		order.PickupTime = &req.PickupTime
	}
	if req.Place == models.PlaceDelivery {
		order.DeliveryAddress = &req.DeliveryAddress
	}
	if req.Note != "" {
		order.Note = &req.Note
	}

	if err := s.allocateAndInsert(ctx, order, items); err != nil {
		return nil, err
	}
	order.Items = items

	if s.email != nil {
		summary := utils.BuildOrderSummary(order)
		if err := s.email.SendOrderNotification(order, summary); err != nil {
			log.Println("Failed to send owner notification e-mail:", err)
		}
	}

	return order, nil
}

// allocateAndInsert implements the daily sequence allocation: read the
// current max for the day, try to insert max+1 and rely on the unique index
// to reject concurrent duplicates, retrying with a fresh candidate. The read
// alone is not atomic; the unique constraint at write time is what enforces
// uniqueness.
func (s *OrderService) allocateAndInsert(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		maxNumber, err := s.store.MaxDailyNumber(ctx, order.OrderDate)
		if err != nil {
			return fmt.Errorf("read daily number: %w", err)
		}
		order.DailyNumber = maxNumber + 1

		err = s.store.InsertOrder(ctx, order, items)
		if err == nil {
			return nil
		}
		if errors.Is(err, models.ErrDuplicateDailyNumber) {
			continue
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return models.ErrAllocationExhausted
}

// MarkFulfilled moves an order from pending to fulfilled. The transition is
// monotonic; there is no way back to pending.
func (s *OrderService) MarkFulfilled(ctx context.Context, orderID int) (*models.Order, error) {
	if err := s.store.UpdateStatus(ctx, orderID, models.OrderStatusFulfilled); err != nil {
		return nil, err
	}
	return s.store.GetOrderByID(ctx, orderID)
}
