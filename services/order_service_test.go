package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"verduleria/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrderStore emulates the storage collaborator, including the unique
// constraint on (order_date, daily_number): an insert with an already-used
// pair fails with ErrDuplicateDailyNumber, and a failed insert writes nothing.
type fakeOrderStore struct {
	mu     sync.Mutex
	nextID int
	orders map[int]*models.Order
	items  map[int][]models.OrderItem
	used   map[string]bool

	failItems      bool
	alwaysConflict bool
	insertCalls    int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders: map[int]*models.Order{},
		items:  map[int][]models.OrderItem{},
		used:   map[string]bool{},
	}
}

func (f *fakeOrderStore) MaxDailyNumber(ctx context.Context, orderDate string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	max := 0
	for _, o := range f.orders {
		if o.OrderDate == orderDate && o.DailyNumber > max {
			max = o.DailyNumber
		}
	}
	return max, nil
}

func (f *fakeOrderStore) InsertOrder(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.insertCalls++

	if f.alwaysConflict {
		return models.ErrDuplicateDailyNumber
	}

	key := fmt.Sprintf("%s|%d", order.OrderDate, order.DailyNumber)
	if f.used[key] {
		return models.ErrDuplicateDailyNumber
	}
	if f.failItems {
		return errors.New("insert order item: connection reset")
	}

	f.nextID++
	order.ID = f.nextID
	stored := *order
	f.orders[order.ID] = &stored
	f.items[order.ID] = items
	f.used[key] = true
	return nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, orderID int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[orderID]
	if !ok {
		return models.ErrNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderStore) GetOrderByID(ctx context.Context, orderID int) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.orders[orderID]
	if !ok {
		return nil, models.ErrNotFound
	}
	out := *o
	out.Items = f.items[orderID]
	return &out, nil
}

func newTestOrderService(store OrderStore) *OrderService {
	return &OrderService{
		store: store,
		carts: NewCartService(),
		now:   func() time.Time { return time.Date(2025, 11, 3, 10, 30, 0, 0, time.Local) },
	}
}

func testCheckoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		CustomerName: "Marta",
		Phone:        "1155550000",
		Place:        models.PlacePickup,
		PickupTime:   "18:00",
	}
}

func testCart() models.Cart {
	return models.Cart{Lines: []models.CartLine{
		{Name: "Manzanas", Unit: models.UnitKg, Quantity: d("3"), UnitPrice: d("800"), PromoQty: dp("2"), PromoPrice: dp("1400")},
		{Name: "Huevos", Unit: models.UnitEach, Quantity: d("12"), UnitPrice: d("150")},
	}}
}

func TestCreateOrder_PersistsHeaderAndItems(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	order, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), testCart())
	require.NoError(t, err)

	assert.Equal(t, 1, order.DailyNumber)
	assert.Equal(t, "2025-11-03", order.OrderDate)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	// 2200 for the apples plus 1800 for the eggs, recomputed server-side.
	assert.True(t, order.Total.Equal(d("4000")), "got %s", order.Total)

	require.Len(t, store.items[order.ID], 2)
	assert.True(t, store.items[order.ID][0].LineTotal.Equal(d("2200")))
	assert.True(t, store.items[order.ID][1].LineTotal.Equal(d("1800")))
}

func TestCreateOrder_SequentialNumbersSameDay(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	for want := 1; want <= 3; want++ {
		order, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), testCart())
		require.NoError(t, err)
		assert.Equal(t, want, order.DailyNumber)
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	_, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), models.Cart{})
	assert.ErrorIs(t, err, models.ErrEmptyCart)
	assert.Zero(t, store.insertCalls, "empty cart must not touch the store")
}

func TestCreateOrder_ConcurrentCheckoutsGetDistinctNumbers(t *testing.T) {
	// With 3 concurrent callers a goroutine can lose the race at most twice,
	// so the retry budget guarantees all of them land on {1, 2, 3}.
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	const n = 3
	var wg sync.WaitGroup
	results := make(chan int, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), testCart())
			if err != nil {
				errs <- err
				return
			}
			results <- order.DailyNumber
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got := map[int]bool{}
	for num := range results {
		assert.False(t, got[num], "duplicate daily number %d", num)
		got[num] = true
	}
	for want := 1; want <= n; want++ {
		assert.True(t, got[want], "missing daily number %d", want)
	}
}

func TestCreateOrder_HighContentionNeverDuplicates(t *testing.T) {
	// Under heavier contention some callers may exhaust their retries, but
	// the numbers that were assigned are still unique and contiguous from 1.
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	const n = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	assigned := []int{}

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), testCart())
			if err != nil {
				assert.ErrorIs(t, err, models.ErrAllocationExhausted)
				return
			}
			mu.Lock()
			assigned = append(assigned, order.DailyNumber)
			mu.Unlock()
		}()
	}
	wg.Wait()

	seen := map[int]bool{}
	for _, num := range assigned {
		assert.False(t, seen[num], "duplicate daily number %d", num)
		seen[num] = true
	}
	for want := 1; want <= len(assigned); want++ {
		assert.True(t, seen[want], "daily numbers not contiguous: missing %d", want)
	}
}

func TestCreateOrder_AllocationExhausted(t *testing.T) {
	store := newFakeOrderStore()
	store.alwaysConflict = true
	svc := newTestOrderService(store)

	_, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), testCart())
	assert.ErrorIs(t, err, models.ErrAllocationExhausted)
	assert.Equal(t, maxAllocationAttempts, store.insertCalls)
}

func TestCreateOrder_FailedInsertLeavesNothingVisible(t *testing.T) {
	store := newFakeOrderStore()
	store.failItems = true
	svc := newTestOrderService(store)

	_, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), testCart())
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrAllocationExhausted)

	assert.Empty(t, store.orders, "no order row may survive a failed insert")
	max, err := store.MaxDailyNumber(context.Background(), "2025-11-03")
	require.NoError(t, err)
	assert.Zero(t, max)
}

func TestCreateOrder_DeliveryFields(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	req := models.CheckoutRequest{
		CustomerName:    "Jorge",
		Phone:           "1144440000",
		Place:           models.PlaceDelivery,
		DeliveryAddress: "Av. Rivadavia 1234",
		Note:            "tocar timbre",
	}

	order, err := svc.CreateOrder(context.Background(), req, testCart())
	require.NoError(t, err)

	require.NotNil(t, order.DeliveryAddress)
	assert.Equal(t, "Av. Rivadavia 1234", *order.DeliveryAddress)
	assert.Nil(t, order.PickupTime)
	require.NotNil(t, order.Note)
	assert.Equal(t, "tocar timbre", *order.Note)
	assert.Equal(t, "Sin especificar", order.PaymentMethod)
}

func TestMarkFulfilled(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	order, err := svc.CreateOrder(context.Background(), testCheckoutRequest(), testCart())
	require.NoError(t, err)

	updated, err := svc.MarkFulfilled(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusFulfilled, updated.Status)
}

func TestMarkFulfilled_NotFound(t *testing.T) {
	store := newFakeOrderStore()
	svc := newTestOrderService(store)

	_, err := svc.MarkFulfilled(context.Background(), 999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
