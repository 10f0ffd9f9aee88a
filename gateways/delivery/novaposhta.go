package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ilya88556/ecom-api/models"
)

const npPageLimit = 100

// NovaPoshta serves offices synced from the Nova Poshta logistics API and
// creates shipments against them.
type NovaPoshta struct {
	apiURL string
	apiKey string
	client *http.Client
}

func NewNovaPoshta(apiURL, apiKey string) *NovaPoshta {
	return &NovaPoshta{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *NovaPoshta) FetchOffices(db *gorm.DB, city *models.City) ([]models.DeliveryAddress, error) {
	return fetchOffices(db, models.CarrierNovaPoshta, city)
}

func (g *NovaPoshta) CreateShipment(tx *gorm.DB, order *models.Order, address *models.DeliveryAddress) (*models.Delivery, error) {
	return createShipment(tx, order, address)
}

type npResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func (g *NovaPoshta) post(model, method string, properties map[string]string, out any) error {
	payload := map[string]any{
		"apiKey":           g.apiKey,
		"modelName":        model,
		"calledMethod":     method,
		"methodProperties": properties,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, g.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Nova Poshta: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("nova poshta API error (%d): %s", resp.StatusCode, string(raw))
	}

	var decoded npResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return fmt.Errorf("failed to parse Nova Poshta response: %w", err)
	}
	if decoded.Data == nil {
		return nil
	}
	return json.Unmarshal(decoded.Data, out)
}

type npArea struct {
	Ref         string `json:"Ref"`
	Description string `json:"Description"`
}

// SyncAreas pulls the carrier's area list and upserts it by external ref.
// Areas must be synced before cities, cities before warehouses.
func (g *NovaPoshta) SyncAreas(db *gorm.DB) (int, error) {
	var areas []npArea
	if err := g.post("AddressGeneral", "getAreas", map[string]string{}, &areas); err != nil {
		return 0, err
	}

	synced := 0
	for _, a := range areas {
		if a.Ref == "" {
			continue
		}
		ref := a.Ref
		area := models.Area{Name: a.Description, IsActive: true, NovaPoshtaRef: &ref}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "nova_poshta_ref"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "is_active", "updated_at"}),
		}).Create(&area).Error
		if err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

type npCity struct {
	Ref                       string `json:"Ref"`
	Description               string `json:"Description"`
	Area                      string `json:"Area"`
	SettlementTypeDescription string `json:"SettlementTypeDescription"`
}

// SyncCities pulls city pages until a short page and upserts them by external
// ref, resolving each city's area. Cities in areas we have not synced are
// skipped. Returns the number of rows upserted.
func (g *NovaPoshta) SyncCities(db *gorm.DB) (int, error) {
	areaIDs, err := areaIDsByRef(db)
	if err != nil {
		return 0, err
	}

	synced := 0
	for page := 1; ; page++ {
		var batch []npCity
		err := g.post("AddressGeneral", "getCities", map[string]string{
			"Limit": strconv.Itoa(npPageLimit),
			"Page":  strconv.Itoa(page),
		}, &batch)
		if err != nil {
			return synced, err
		}
		if len(batch) == 0 {
			break
		}

		for _, c := range batch {
			if c.Ref == "" {
				continue
			}
			areaID, ok := areaIDs[c.Area]
			if !ok {
				log.Printf("area %s not synced, skipping city %s", c.Area, c.Ref)
				continue
			}
			if err := upsertCity(db, areaID, c); err != nil {
				return synced, err
			}
			synced++
		}

		if len(batch) < npPageLimit {
			break
		}
	}

	return synced, nil
}

func areaIDsByRef(db *gorm.DB) (map[string]uint, error) {
	var areas []models.Area
	if err := db.Where("nova_poshta_ref IS NOT NULL").Find(&areas).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(areas))
	for _, area := range areas {
		ids[*area.NovaPoshtaRef] = area.ID
	}
	return ids, nil
}

func upsertCity(db *gorm.DB, areaID uint, c npCity) error {
	ref := c.Ref
	city := models.City{
		AreaID:         areaID,
		Name:           c.Description,
		IsActive:       true,
		SettlementType: c.SettlementTypeDescription,
		NovaPoshtaRef:  &ref,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "nova_poshta_ref"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"area_id", "name", "is_active", "settlement_type", "updated_at",
		}),
	}).Create(&city).Error
}

type npWarehouse struct {
	Ref          string `json:"Ref"`
	Description  string `json:"Description"`
	ShortAddress string `json:"ShortAddress"`
	CityRef      string `json:"CityRef"`
	Number       string `json:"Number"`
	Phone        string `json:"Phone"`
}

// SyncWarehouses pulls warehouse pages until a short page and upserts them as
// delivery addresses, deduplicated by the external ref. Warehouses in cities
// we have not synced are skipped. Returns the number of rows upserted.
func (g *NovaPoshta) SyncWarehouses(db *gorm.DB) (int, error) {
	cityIDs, err := cityIDsByRef(db)
	if err != nil {
		return 0, err
	}

	// closed offices disappear from the feed; flip the carrier's offices off
	// first so only offices present in this sync end up active
	err = db.Model(&models.DeliveryAddress{}).
		Where("carrier = ?", models.CarrierNovaPoshta).
		Update("is_active", false).Error
	if err != nil {
		return 0, err
	}

	synced := 0
	for page := 1; ; page++ {
		var batch []npWarehouse
		err := g.post("AddressGeneral", "getWarehouses", map[string]string{
			"Limit": strconv.Itoa(npPageLimit),
			"Page":  strconv.Itoa(page),
		}, &batch)
		if err != nil {
			return synced, err
		}
		if len(batch) == 0 {
			break
		}

		for _, wh := range batch {
			if wh.Ref == "" {
				continue
			}
			cityID, ok := cityIDs[wh.CityRef]
			if !ok {
				continue
			}
			if err := upsertWarehouse(db, cityID, wh); err != nil {
				return synced, err
			}
			synced++
		}

		if len(batch) < npPageLimit {
			break
		}
	}

	return synced, nil
}

func cityIDsByRef(db *gorm.DB) (map[string]uint, error) {
	var cities []models.City
	if err := db.Where("nova_poshta_ref IS NOT NULL").Find(&cities).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(cities))
	for _, city := range cities {
		ids[*city.NovaPoshtaRef] = city.ID
	}
	return ids, nil
}

func upsertWarehouse(db *gorm.DB, cityID uint, wh npWarehouse) error {
	officeNumber, _ := strconv.Atoi(wh.Number)
	ref := wh.Ref

	address := models.DeliveryAddress{
		Carrier:       models.CarrierNovaPoshta,
		AddressLine:   wh.ShortAddress,
		Description:   wh.Description,
		CityID:        cityID,
		Phone:         wh.Phone,
		OfficeNumber:  officeNumber,
		IsActive:      true,
		NovaPoshtaRef: &ref,
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "nova_poshta_ref"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"address_line", "description", "city_id", "phone", "office_number", "is_active", "updated_at",
		}),
	}).Create(&address).Error
}
