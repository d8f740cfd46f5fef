package cartControllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	cartControllers "github.com/Biomedionics123/Biomedionics/controllers/cart"
	"github.com/Biomedionics123/Biomedionics/models"
	"github.com/Biomedionics123/Biomedionics/store"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id string, stock int, currency models.Currency) models.Product {
	product := models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    100.0,
		Stock:    stock,
		Currency: currency,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestAddToCartClampsToStockHeadroom(t *testing.T) {
	db := setupCartTestDB(t)
	product := seedProduct(t, db, "p1", 5, models.CurrencyUSD)
	const sid = "session-1"

	t.Run("Adds requested quantity within stock", func(t *testing.T) {
		item, err := cartControllers.AddToCart(db, sid, product, 3)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("Clamps a second add to remaining headroom", func(t *testing.T) {
		item, err := cartControllers.AddToCart(db, sid, product, 10)
		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, 5, item.Quantity) // headroom was 2
	})

	t.Run("Add with no headroom is a no-op, not an error", func(t *testing.T) {
		item, err := cartControllers.AddToCart(db, sid, product, 1)
		assert.NoError(t, err)
		assert.Nil(t, item)

		items, err := cartControllers.Items(db, sid)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("Cart line never exceeds catalog stock", func(t *testing.T) {
		items, _ := cartControllers.Items(db, sid)
		for _, item := range items {
			var p models.Product
			assert.NoError(t, db.First(&p, "id = ?", item.ProductID).Error)
			assert.LessOrEqual(t, item.Quantity, p.Stock)
		}
	})
}

func TestAddToCartZeroStockProduct(t *testing.T) {
	db := setupCartTestDB(t)
	product := seedProduct(t, db, "sold-out", 0, models.CurrencyUSD)

	item, err := cartControllers.AddToCart(db, "s", product, 2)
	assert.NoError(t, err)
	assert.Nil(t, item)

	items, _ := cartControllers.Items(db, "s")
	assert.Empty(t, items)
}

func TestAddToCartRejectsMixedCurrencies(t *testing.T) {
	db := setupCartTestDB(t)
	usd := seedProduct(t, db, "usd-1", 5, models.CurrencyUSD)
	pkr := seedProduct(t, db, "pkr-1", 5, models.CurrencyPKR)
	const sid = "session-2"

	_, err := cartControllers.AddToCart(db, sid, usd, 1)
	assert.NoError(t, err)

	_, err = cartControllers.AddToCart(db, sid, pkr, 1)
	assert.ErrorIs(t, err, cartControllers.ErrMixedCurrency)

	items, _ := cartControllers.Items(db, sid)
	assert.Len(t, items, 1)
}

func TestUpdateQuantity(t *testing.T) {
	db := setupCartTestDB(t)
	product := seedProduct(t, db, "p2", 4, models.CurrencyUSD)
	const sid = "session-3"

	_, err := cartControllers.AddToCart(db, sid, product, 2)
	assert.NoError(t, err)

	t.Run("Clamps quantity to current stock", func(t *testing.T) {
		assert.NoError(t, cartControllers.UpdateQuantity(db, sid, product.ID, 99))
		items, _ := cartControllers.Items(db, sid)
		assert.Len(t, items, 1)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("Zero quantity removes the line", func(t *testing.T) {
		assert.NoError(t, cartControllers.UpdateQuantity(db, sid, product.ID, 0))
		items, _ := cartControllers.Items(db, sid)
		assert.Empty(t, items)
	})

	t.Run("Negative quantity removes the line", func(t *testing.T) {
		_, err := cartControllers.AddToCart(db, sid, product, 1)
		assert.NoError(t, err)
		assert.NoError(t, cartControllers.UpdateQuantity(db, sid, product.ID, -3))
		items, _ := cartControllers.Items(db, sid)
		assert.Empty(t, items)
	})
}

func TestCartTotalAndInsertionOrder(t *testing.T) {
	db := setupCartTestDB(t)
	first := seedProduct(t, db, "a1", 10, models.CurrencyUSD)
	second := seedProduct(t, db, "b2", 10, models.CurrencyUSD)
	const sid = "session-4"

	_, err := cartControllers.AddToCart(db, sid, first, 2)
	assert.NoError(t, err)
	_, err = cartControllers.AddToCart(db, sid, second, 1)
	assert.NoError(t, err)

	items, err := cartControllers.Items(db, sid)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "a1", items[0].ProductID)
	assert.Equal(t, "b2", items[1].ProductID)
	assert.Equal(t, 300.0, cartControllers.Total(items))
}

func TestCartsAreSessionScoped(t *testing.T) {
	db := setupCartTestDB(t)
	product := seedProduct(t, db, "p3", 10, models.CurrencyUSD)

	_, err := cartControllers.AddToCart(db, "alice", product, 2)
	assert.NoError(t, err)
	_, err = cartControllers.AddToCart(db, "bob", product, 5)
	assert.NoError(t, err)

	aliceItems, _ := cartControllers.Items(db, "alice")
	bobItems, _ := cartControllers.Items(db, "bob")
	assert.Equal(t, 2, aliceItems[0].Quantity)
	assert.Equal(t, 5, bobItems[0].Quantity)
}
