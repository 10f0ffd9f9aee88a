package deliveryControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	delivery "github.com/Ilya88556/ecom-api/gateways/delivery"
	"github.com/Ilya88556/ecom-api/models"
)

// GET /delivery/cities?q=<term>
// Searches active cities by name prefix; only cities with at least one
// active delivery address are returned.
func CitiesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("q")
		if len(term) < 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enter at least 3 characters"})
			return
		}

		var cities []models.City
		err := db.
			Where("is_active = ? AND LOWER(name) LIKE LOWER(?)", true, term+"%").
			Where("EXISTS (SELECT 1 FROM delivery_addresses da WHERE da.city_id = cities.id AND da.is_active)").
			Order("name").
			Find(&cities).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cities"})
			return
		}

		c.JSON(http.StatusOK, cities)
	}
}

// GET /delivery/addresses?city_id=<id>
// Returns active carriers and their offices for the selected city, grouped
// per carrier; carriers with no offices there are omitted.
func AddressesHandler(db *gorm.DB, factory *delivery.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		cityID, err := strconv.ParseUint(c.Query("city_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "city_id is required"})
			return
		}

		var city models.City
		err = db.Where("id = ? AND is_active = ?", cityID, true).First(&city).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("City with ID %d does not exist", cityID)})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch city"})
			return
		}

		options, err := delivery.BuildCityOptions(db, factory, &city)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build delivery options"})
			return
		}

		c.JSON(http.StatusOK, options)
	}
}

// POST /admin/delivery/sync-areas
func SyncAreasHandler(db *gorm.DB, novaPoshta *delivery.NovaPoshta) gin.HandlerFunc {
	return func(c *gin.Context) {
		synced, err := novaPoshta.SyncAreas(db)
		if err != nil {
			log.Printf("area sync failed after %d rows: %v", synced, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Area sync failed", "synced": synced})
			return
		}

		c.JSON(http.StatusOK, gin.H{"synced": synced})
	}
}

// POST /admin/delivery/sync-cities
// Cities resolve their area by ref, so areas must be synced first.
func SyncCitiesHandler(db *gorm.DB, novaPoshta *delivery.NovaPoshta) gin.HandlerFunc {
	return func(c *gin.Context) {
		synced, err := novaPoshta.SyncCities(db)
		if err != nil {
			log.Printf("city sync failed after %d rows: %v", synced, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "City sync failed", "synced": synced})
			return
		}

		c.JSON(http.StatusOK, gin.H{"synced": synced})
	}
}

// POST /admin/delivery/sync-warehouses
// Pulls the carrier's warehouse catalog and upserts it into delivery
// addresses. Long-running; meant for the admin API, not end users.
func SyncWarehousesHandler(db *gorm.DB, novaPoshta *delivery.NovaPoshta) gin.HandlerFunc {
	return func(c *gin.Context) {
		synced, err := novaPoshta.SyncWarehouses(db)
		if err != nil {
			log.Printf("warehouse sync failed after %d rows: %v", synced, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Warehouse sync failed", "synced": synced})
			return
		}

		c.JSON(http.StatusOK, gin.H{"synced": synced})
	}
}
