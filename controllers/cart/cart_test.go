package cartControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

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
	))
	return db
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

func TestAddItemCreatesActiveCart(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Kettle", "799.00")

	cart, err := AddItemToCart(db, user.ID, product.ID, 2)
	require.NoError(t, err)

	assert.Equal(t, models.CartStatusActive, cart.Status)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddItemIncrementsExistingRow(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Mug", "120.00")

	_, err := AddItemToCart(db, user.ID, product.ID, 1)
	require.NoError(t, err)
	cart, err := AddItemToCart(db, user.ID, product.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestUserHasSingleActiveCart(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)

	first, err := GetOrCreateUserCart(db, user.ID)
	require.NoError(t, err)
	second, err := GetOrCreateUserCart(db, user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateItemQuantity(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Lamp", "450.00")

	_, err := AddItemToCart(db, user.ID, product.ID, 1)
	require.NoError(t, err)

	cart, err := UpdateItemQuantity(db, user.ID, product.ID, 5)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestUpdateMissingItem(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)

	_, err := GetOrCreateUserCart(db, user.ID)
	require.NoError(t, err)

	_, err = UpdateItemQuantity(db, user.ID, 999, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateWithoutActiveCart(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)

	_, err := UpdateItemQuantity(db, user.ID, 1, 2)
	assert.ErrorIs(t, err, ErrNoActiveCart)
}

func TestRemoveItem(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	first := seedProduct(t, db, "Plate", "80.00")
	second := seedProduct(t, db, "Fork", "25.00")

	_, err := AddItemToCart(db, user.ID, first.ID, 1)
	require.NoError(t, err)
	_, err = AddItemToCart(db, user.ID, second.ID, 1)
	require.NoError(t, err)

	cart, err := RemoveItemFromCart(db, user.ID, first.ID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ID, cart.Items[0].ProductID)
}

func TestRemoveMissingItem(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)

	_, err := GetOrCreateUserCart(db, user.ID)
	require.NoError(t, err)

	_, err = RemoveItemFromCart(db, user.ID, 999)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCartTotalPrice(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db)
	kettle := seedProduct(t, db, "Kettle", "799.00")
	mug := seedProduct(t, db, "Mug", "120.50")

	_, err := AddItemToCart(db, user.ID, kettle.ID, 2)
	require.NoError(t, err)
	cart, err := AddItemToCart(db, user.ID, mug.ID, 3)
	require.NoError(t, err)

	// 2*799.00 + 3*120.50
	assert.True(t, decimal.RequireFromString("1959.50").Equal(cart.TotalPrice()),
		cart.TotalPrice().String())
}
