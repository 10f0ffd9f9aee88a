package delivery

import (
	"gorm.io/gorm"

	"github.com/Ilya88556/ecom-api/models"
)

// Pickup handles self-pickup points; there is no external carrier behind it.
type Pickup struct{}

func NewPickup() *Pickup { return &Pickup{} }

func (g *Pickup) FetchOffices(db *gorm.DB, city *models.City) ([]models.DeliveryAddress, error) {
	return fetchOffices(db, models.CarrierPickup, city)
}

func (g *Pickup) CreateShipment(tx *gorm.DB, order *models.Order, address *models.DeliveryAddress) (*models.Delivery, error) {
	return createShipment(tx, order, address)
}
