package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ilya88556/ecom-api/middleware"
	"github.com/Ilya88556/ecom-api/models"
)

var (
	// ErrNoActiveCart is returned when a mutation targets a cart that does
	// not exist or was already checked out by a concurrent request.
	ErrNoActiveCart = errors.New("no active cart")
	ErrItemNotFound = errors.New("product not found in cart")
)

// GetOrCreateUserCart returns the user's active cart, creating one lazily.
// The partial unique index keeps concurrent creations down to a single row.
func GetOrCreateUserCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	cart := &models.Cart{}
	err := tx.
		Where(models.Cart{UserID: userID, Status: models.CartStatusActive}).
		FirstOrCreate(cart).Error
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItemToCart adds a product to the user's active cart. Re-adding an
// existing product increments its quantity instead of duplicating the row.
func AddItemToCart(db *gorm.DB, userID, productID uint, quantity int) (*models.Cart, error) {
	var cartID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := GetOrCreateUserCart(tx, userID)
		if err != nil {
			return err
		}
		cartID = cart.ID

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
			return tx.Create(&item).Error
		case err != nil:
			return err
		}

		item.Quantity += quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}

	return loadCart(db, cartID)
}

// UpdateItemQuantity sets the quantity of an existing cart item.
func UpdateItemQuantity(db *gorm.DB, userID, productID uint, quantity int) (*models.Cart, error) {
	var cartID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := activeCart(tx, userID)
		if err != nil {
			return err
		}
		cartID = cart.ID

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		if err != nil {
			return err
		}

		item.Quantity = quantity
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}

	return loadCart(db, cartID)
}

// RemoveItemFromCart removes a product from the user's active cart.
func RemoveItemFromCart(db *gorm.DB, userID, productID uint) (*models.Cart, error) {
	var cartID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := activeCart(tx, userID)
		if err != nil {
			return err
		}
		cartID = cart.ID

		result := tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loadCart(db, cartID)
}

func activeCart(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := tx.Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveCart
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func loadCart(db *gorm.DB, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").First(&cart, cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// -------- Handlers --------

type addItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type updateItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type removeItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var cart models.Cart
		err := db.Preload("Items.Product").
			Where("user_id = ? AND status = ?", userID, models.CartStatusActive).
			First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active cart"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/add_item
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input addItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}
		if input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1"})
			return
		}

		product, ok := requireActiveProduct(c, db, input.ProductID)
		if !ok {
			return
		}

		cart, err := AddItemToCart(db, userID, product.ID, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// PATCH /cart/update-item
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input updateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := UpdateItemQuantity(db, userID, input.ProductID, input.Quantity)
		switch {
		case errors.Is(err, ErrNoActiveCart), errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /cart/remove-item
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input removeItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := RemoveItemFromCart(db, userID, input.ProductID)
		switch {
		case errors.Is(err, ErrNoActiveCart), errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

func requireActiveProduct(c *gin.Context, db *gorm.DB, productID uint) (*models.Product, bool) {
	var product models.Product
	err := db.First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
		return nil, false
	}
	if !product.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not active, you cannot buy it"})
		return nil, false
	}
	return &product, true
}
