package delivery

import (
	"gorm.io/gorm"

	"github.com/Ilya88556/ecom-api/models"
)

type CarrierInfo struct {
	Value   models.Carrier `json:"value"`
	Display string         `json:"display"`
}

type CityOptions struct {
	Carrier   CarrierInfo              `json:"carrier"`
	Addresses []models.DeliveryAddress `json:"addresses"`
}

// BuildCityOptions groups active offices by carrier for one city. Carriers
// without offices there are left out entirely.
func BuildCityOptions(db *gorm.DB, factory *Factory, city *models.City) ([]CityOptions, error) {
	options := make([]CityOptions, 0, len(factory.Carriers()))

	for _, carrier := range factory.Carriers() {
		gw, err := factory.Gateway(carrier)
		if err != nil {
			return nil, err
		}

		offices, err := gw.FetchOffices(db, city)
		if err != nil {
			return nil, err
		}
		if len(offices) == 0 {
			continue
		}

		options = append(options, CityOptions{
			Carrier:   CarrierInfo{Value: carrier, Display: carrier.Display()},
			Addresses: offices,
		})
	}

	return options, nil
}
