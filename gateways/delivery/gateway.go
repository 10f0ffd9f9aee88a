package delivery

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Ilya88556/ecom-api/models"
)

var ErrUnknownCarrier = errors.New("unknown carrier")

// Gateway abstracts one delivery channel. CreateShipment takes the caller's
// transaction handle so the shipment commits or rolls back with the checkout.
type Gateway interface {
	FetchOffices(db *gorm.DB, city *models.City) ([]models.DeliveryAddress, error)
	CreateShipment(tx *gorm.DB, order *models.Order, address *models.DeliveryAddress) (*models.Delivery, error)
}

func fetchOffices(db *gorm.DB, carrier models.Carrier, city *models.City) ([]models.DeliveryAddress, error) {
	var addresses []models.DeliveryAddress
	err := db.
		Where("carrier = ? AND city_id = ? AND is_active = ?", carrier, city.ID, true).
		Order("office_number").
		Find(&addresses).Error
	return addresses, err
}

func createShipment(tx *gorm.DB, order *models.Order, address *models.DeliveryAddress) (*models.Delivery, error) {
	delivery := &models.Delivery{
		OrderID:           order.ID,
		DeliveryAddressID: address.ID,
		TrackingNumber:    "",
	}
	if err := tx.Create(delivery).Error; err != nil {
		return nil, err
	}
	return delivery, nil
}
