package orderControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cartControllers "github.com/Ilya88556/ecom-api/controllers/cart"
	delivery "github.com/Ilya88556/ecom-api/gateways/delivery"
	"github.com/Ilya88556/ecom-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Area{},
		&models.City{},
		&models.DeliveryAddress{},
		&models.Delivery{},
	))
	return db
}

func deliveryFactory() *delivery.Factory {
	return delivery.NewFactory(delivery.NewNovaPoshta("http://unused", "key"))
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{Email: "buyer@example.com", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string) *models.Product {
	t.Helper()

	category := models.Category{Name: "Default " + name, IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		IsActive:   true,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func seedAddress(t *testing.T, db *gorm.DB, carrier models.Carrier) *models.DeliveryAddress {
	t.Helper()

	area := models.Area{Name: "Kyivska", IsActive: true}
	require.NoError(t, db.Create(&area).Error)
	city := models.City{AreaID: area.ID, Name: "Kyiv", IsActive: true}
	require.NoError(t, db.Create(&city).Error)

	address := models.DeliveryAddress{
		Carrier:     carrier,
		AddressLine: "Khreshchatyk 1",
		CityID:      city.ID,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&address).Error)
	return &address
}

func fillCart(t *testing.T, db *gorm.DB, userID uint, items map[uint]int) {
	t.Helper()
	for productID, quantity := range items {
		_, err := cartControllers.AddItemToCart(db, userID, productID, quantity)
		require.NoError(t, err)
	}
}

func TestCheckoutCart(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	kettle := seedProduct(t, db, "Kettle", "799.00")
	mug := seedProduct(t, db, "Mug", "120.50")
	address := seedAddress(t, db, models.CarrierPickup)

	fillCart(t, db, user.ID, map[uint]int{kettle.ID: 2, mug.ID: 1})

	order, err := CheckoutCart(db, deliveryFactory(), user.ID, address.ID)
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.NotNil(t, order.UserID)
	assert.Equal(t, user.ID, *order.UserID)

	require.Len(t, order.Items, 2)
	quantities := map[uint]int{}
	for _, item := range order.Items {
		require.NotNil(t, item.ProductID)
		quantities[*item.ProductID] = item.Quantity
	}
	assert.Equal(t, 2, quantities[kettle.ID])
	assert.Equal(t, 1, quantities[mug.ID])

	require.Len(t, order.Deliveries, 1)
	assert.Equal(t, address.ID, order.Deliveries[0].DeliveryAddressID)
	assert.Empty(t, order.Deliveries[0].TrackingNumber)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&cart).Error)
	assert.Equal(t, models.CartStatusOrdered, cart.Status)
}

func TestCheckoutWithoutCart(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	address := seedAddress(t, db, models.CarrierPickup)

	_, err := CheckoutCart(db, deliveryFactory(), user.ID, address.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	address := seedAddress(t, db, models.CarrierPickup)

	_, err := cartControllers.GetOrCreateUserCart(db, user.ID)
	require.NoError(t, err)

	_, err = CheckoutCart(db, deliveryFactory(), user.ID, address.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutUnknownAddressRollsBack(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	kettle := seedProduct(t, db, "Kettle", "799.00")

	fillCart(t, db, user.ID, map[uint]int{kettle.ID: 1})

	_, err := CheckoutCart(db, deliveryFactory(), user.ID, 999)
	assert.ErrorIs(t, err, ErrDeliveryAddressNotFound)

	// nothing committed: no orders, cart still active
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&cart).Error)
	assert.Equal(t, models.CartStatusActive, cart.Status)
}

func TestCheckoutInactiveAddress(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	kettle := seedProduct(t, db, "Kettle", "799.00")
	address := seedAddress(t, db, models.CarrierPickup)

	require.NoError(t, db.Model(address).Update("is_active", false).Error)
	fillCart(t, db, user.ID, map[uint]int{kettle.ID: 1})

	_, err := CheckoutCart(db, deliveryFactory(), user.ID, address.ID)
	assert.ErrorIs(t, err, ErrDeliveryAddressNotFound)
}

func TestCancelOrder(t *testing.T) {
	cancellable := []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusPaid,
	}
	terminal := []models.OrderStatus{
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCanceled,
		models.OrderStatusReturned,
		models.OrderStatusFailed,
	}

	for _, status := range cancellable {
		t.Run(string(status), func(t *testing.T) {
			db := openTestDB(t)
			order := models.Order{Status: status}
			require.NoError(t, db.Create(&order).Error)

			canceled, err := CancelOrder(db, &order)
			require.NoError(t, err)
			assert.Equal(t, models.OrderStatusCanceled, canceled.Status)
		})
	}

	for _, status := range terminal {
		t.Run(string(status), func(t *testing.T) {
			db := openTestDB(t)
			order := models.Order{Status: status}
			require.NoError(t, db.Create(&order).Error)

			_, err := CancelOrder(db, &order)
			assert.ErrorIs(t, err, ErrInvalidStateTransition)

			var fresh models.Order
			require.NoError(t, db.First(&fresh, order.ID).Error)
			assert.Equal(t, status, fresh.Status)
		})
	}
}
