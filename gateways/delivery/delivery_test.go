package delivery

import (
	"fmt"
	"strings"
	"testing"

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
		&models.Area{},
		&models.City{},
		&models.DeliveryAddress{},
		&models.Order{},
		&models.Delivery{},
	))
	return db
}

func seedCity(t *testing.T, db *gorm.DB) *models.City {
	t.Helper()

	area := models.Area{Name: "Kyivska", IsActive: true}
	require.NoError(t, db.Create(&area).Error)

	city := models.City{AreaID: area.ID, Name: "Kyiv", IsActive: true}
	require.NoError(t, db.Create(&city).Error)
	return &city
}

func seedOffice(t *testing.T, db *gorm.DB, carrier models.Carrier, cityID uint, number int, active bool) *models.DeliveryAddress {
	t.Helper()

	address := models.DeliveryAddress{
		Carrier:      carrier,
		AddressLine:  fmt.Sprintf("Khreshchatyk %d", number),
		CityID:       cityID,
		OfficeNumber: number,
		IsActive:     active,
	}
	require.NoError(t, db.Create(&address).Error)
	return &address
}

func TestFactoryUnknownCarrier(t *testing.T) {
	factory := NewFactory(NewNovaPoshta("http://unused", "key"))

	gw, err := factory.Gateway(models.Carrier("drone"))
	assert.Nil(t, gw)
	assert.ErrorIs(t, err, ErrUnknownCarrier)
}

func TestFetchOfficesFiltersAndSorts(t *testing.T) {
	db := openTestDB(t)
	city := seedCity(t, db)

	seedOffice(t, db, models.CarrierPickup, city.ID, 3, true)
	seedOffice(t, db, models.CarrierPickup, city.ID, 1, true)
	seedOffice(t, db, models.CarrierPickup, city.ID, 2, false)
	seedOffice(t, db, models.CarrierNovaPoshta, city.ID, 5, true)

	offices, err := NewPickup().FetchOffices(db, city)
	require.NoError(t, err)

	require.Len(t, offices, 2)
	assert.Equal(t, 1, offices[0].OfficeNumber)
	assert.Equal(t, 3, offices[1].OfficeNumber)
}

func TestBuildCityOptionsOmitsEmptyCarriers(t *testing.T) {
	db := openTestDB(t)
	city := seedCity(t, db)
	factory := NewFactory(NewNovaPoshta("http://unused", "key"))

	seedOffice(t, db, models.CarrierPickup, city.ID, 1, true)

	options, err := BuildCityOptions(db, factory, city)
	require.NoError(t, err)

	require.Len(t, options, 1)
	assert.Equal(t, models.CarrierPickup, options[0].Carrier.Value)
	assert.Equal(t, "Pickup", options[0].Carrier.Display)
	assert.Len(t, options[0].Addresses, 1)
}

func TestBuildCityOptionsCarrierOrder(t *testing.T) {
	db := openTestDB(t)
	city := seedCity(t, db)
	factory := NewFactory(NewNovaPoshta("http://unused", "key"))

	seedOffice(t, db, models.CarrierNovaPoshta, city.ID, 7, true)
	seedOffice(t, db, models.CarrierPickup, city.ID, 1, true)

	options, err := BuildCityOptions(db, factory, city)
	require.NoError(t, err)

	require.Len(t, options, 2)
	assert.Equal(t, models.CarrierPickup, options[0].Carrier.Value)
	assert.Equal(t, models.CarrierNovaPoshta, options[1].Carrier.Value)
	assert.Equal(t, "Nova Poshta", options[1].Carrier.Display)
}

func TestCreateShipment(t *testing.T) {
	db := openTestDB(t)
	city := seedCity(t, db)
	address := seedOffice(t, db, models.CarrierPickup, city.ID, 1, true)

	order := models.Order{Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)

	shipment, err := NewPickup().CreateShipment(db, &order, address)
	require.NoError(t, err)

	assert.Equal(t, order.ID, shipment.OrderID)
	assert.Equal(t, address.ID, shipment.DeliveryAddressID)
	assert.Empty(t, shipment.TrackingNumber)

	var count int64
	require.NoError(t, db.Model(&models.Delivery{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
