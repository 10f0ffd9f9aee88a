package delivery

import (
	"fmt"

	"github.com/Ilya88556/ecom-api/models"
)

// carrierOrder fixes the listing order for grouped city options.
var carrierOrder = []models.Carrier{models.CarrierPickup, models.CarrierNovaPoshta}

// Factory resolves a delivery gateway by carrier.
type Factory struct {
	gateways map[models.Carrier]Gateway
}

func NewFactory(novaPoshta *NovaPoshta) *Factory {
	return &Factory{
		gateways: map[models.Carrier]Gateway{
			models.CarrierPickup:     NewPickup(),
			models.CarrierNovaPoshta: novaPoshta,
		},
	}
}

func (f *Factory) Gateway(carrier models.Carrier) (Gateway, error) {
	gw, ok := f.gateways[carrier]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCarrier, carrier)
	}
	return gw, nil
}

// Carriers lists supported carriers in display order.
func (f *Factory) Carriers() []models.Carrier {
	return carrierOrder
}
