package orderControllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	cartControllers "github.com/Biomedionics123/Biomedionics/controllers/cart"
	orderControllers "github.com/Biomedionics123/Biomedionics/controllers/order"
	"github.com/Biomedionics123/Biomedionics/models"
	"github.com/Biomedionics123/Biomedionics/store"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id string, price float64, stock int) models.Product {
	product := models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Stock:    stock,
		Currency: models.CurrencyUSD,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

var testCustomer = models.CustomerDetails{
	Name:    "Jane Doe",
	Email:   "jane@example.com",
	Address: "1 Clinic Road, Lahore",
}

func TestPlaceOrder(t *testing.T) {
	db := setupOrderTestDB(t)
	product := seedProduct(t, db, "p1", 4999.99, 5)
	const sid = "checkout-session"

	_, err := cartControllers.AddToCart(db, sid, product, 3)
	assert.NoError(t, err)
	_, err = cartControllers.AddToCart(db, sid, product, 10) // clamped to 5 total
	assert.NoError(t, err)

	order, err := orderControllers.PlaceOrder(db, sid, testCustomer)
	assert.NoError(t, err)
	assert.NotNil(t, order)

	t.Run("Order snapshot and total", func(t *testing.T) {
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.False(t, order.ReviewSubmitted)
		assert.Len(t, order.Items, 1)
		assert.Equal(t, 5, order.Items[0].Quantity)
		assert.Equal(t, 4999.99*5, order.Total)
		assert.Equal(t, models.CurrencyUSD, order.Currency)
		assert.Equal(t, "Jane Doe", order.CustomerDetails.Name)
	})

	t.Run("Stock decremented by purchased quantity", func(t *testing.T) {
		var p models.Product
		assert.NoError(t, db.First(&p, "id = ?", product.ID).Error)
		assert.Equal(t, 0, p.Stock)
	})

	t.Run("Cart is empty afterwards", func(t *testing.T) {
		items, err := cartControllers.Items(db, sid)
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("One NewOrder notification emitted", func(t *testing.T) {
		var notifications []models.Notification
		assert.NoError(t, db.Find(&notifications).Error)
		assert.Len(t, notifications, 1)
		assert.Equal(t, models.NotificationNewOrder, notifications[0].Type)
		assert.Equal(t, "New Order Received: "+order.ID, notifications[0].Subject)
		assert.Equal(t, testCustomer.Email, notifications[0].From)
		assert.Contains(t, notifications[0].Body, "Jane Doe")
		assert.Contains(t, notifications[0].Body, "(x5)")
		assert.False(t, notifications[0].IsRead)
	})

	t.Run("Order is persisted and trackable", func(t *testing.T) {
		var stored models.Order
		assert.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
		assert.Len(t, stored.Items, 1)
	})
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupOrderTestDB(t)

	order, err := orderControllers.PlaceOrder(db, "empty-session", testCustomer)
	assert.ErrorIs(t, err, orderControllers.ErrEmptyCart)
	assert.Nil(t, order)
}

func TestPlaceOrderRequiresCustomerDetails(t *testing.T) {
	db := setupOrderTestDB(t)
	product := seedProduct(t, db, "p1", 10, 5)
	_, err := cartControllers.AddToCart(db, "s", product, 1)
	assert.NoError(t, err)

	_, err = orderControllers.PlaceOrder(db, "s", models.CustomerDetails{Name: "x", Email: "", Address: "y"})
	assert.Error(t, err)
}

func TestPlaceOrderIsAtomicOnInsufficientStock(t *testing.T) {
	db := setupOrderTestDB(t)
	product := seedProduct(t, db, "p1", 10, 5)
	const sid = "racing-session"

	_, err := cartControllers.AddToCart(db, sid, product, 5)
	assert.NoError(t, err)

	// Stock shrinks after the cart was filled, e.g. an admin edit.
	assert.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).Update("stock", 2).Error)

	order, err := orderControllers.PlaceOrder(db, sid, testCustomer)
	assert.Error(t, err)
	assert.Nil(t, order)

	// Nothing happened: stock, cart, orders and notifications all untouched.
	var p models.Product
	assert.NoError(t, db.First(&p, "id = ?", product.ID).Error)
	assert.Equal(t, 2, p.Stock)

	items, _ := cartControllers.Items(db, sid)
	assert.Len(t, items, 1)

	var orderCount, notifCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.Notification{}).Count(&notifCount)
	assert.Equal(t, int64(0), orderCount)
	assert.Equal(t, int64(0), notifCount)
}

func TestOrderStatusTransitions(t *testing.T) {
	db := setupOrderTestDB(t)
	product := seedProduct(t, db, "p1", 10, 5)
	_, err := cartControllers.AddToCart(db, "s", product, 1)
	assert.NoError(t, err)
	order, err := orderControllers.PlaceOrder(db, "s", testCustomer)
	assert.NoError(t, err)

	t.Run("Walks the one-way flow", func(t *testing.T) {
		for _, status := range []models.OrderStatus{
			models.OrderStatusProcessing,
			models.OrderStatusShipped,
			models.OrderStatusCompleted,
		} {
			assert.NoError(t, orderControllers.UpdateStatus(db, order.ID, status))
		}
	})

	t.Run("Rejects transitions out of a terminal status", func(t *testing.T) {
		err := orderControllers.UpdateStatus(db, order.ID, models.OrderStatusCancelled)
		assert.ErrorIs(t, err, orderControllers.ErrInvalidTransition)
	})
}

func TestOrderStatusSkipAndCancel(t *testing.T) {
	db := setupOrderTestDB(t)
	product := seedProduct(t, db, "p1", 10, 5)
	_, err := cartControllers.AddToCart(db, "s", product, 1)
	assert.NoError(t, err)
	order, err := orderControllers.PlaceOrder(db, "s", testCustomer)
	assert.NoError(t, err)

	t.Run("Rejects skipping a stage", func(t *testing.T) {
		err := orderControllers.UpdateStatus(db, order.ID, models.OrderStatusShipped)
		assert.ErrorIs(t, err, orderControllers.ErrInvalidTransition)
	})

	t.Run("Cancel is reachable from a non-terminal status", func(t *testing.T) {
		assert.NoError(t, orderControllers.UpdateStatus(db, order.ID, models.OrderStatusProcessing))
		assert.NoError(t, orderControllers.UpdateStatus(db, order.ID, models.OrderStatusCancelled))
	})

	t.Run("Cancelled is terminal", func(t *testing.T) {
		err := orderControllers.UpdateStatus(db, order.ID, models.OrderStatusProcessing)
		assert.ErrorIs(t, err, orderControllers.ErrInvalidTransition)
	})

	t.Run("Unknown order id is not found", func(t *testing.T) {
		err := orderControllers.UpdateStatus(db, "order_missing", models.OrderStatusProcessing)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
