package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const searchCacheTTL = 5 * time.Minute

type FoodService struct {
	off   *OpenFoodFactsService
	cache *TTLCache
}

func NewFoodService(off *OpenFoodFactsService, cache *TTLCache) *FoodService {
	return &FoodService{off: off, cache: cache}
}

// Search returns external candidates for a free-text query. Results are
// cached per (user, query) for a few minutes to spare the upstream API.
// The key is per-user even though results aren't user-specific; harmless,
// just slightly wasteful.
func (s *FoodService) Search(userID uint, query string) []FoodCandidate {
	key := fmt.Sprintf("food_search_%d_%s", userID, query)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]FoodCandidate)
	}

	results := s.off.Search(query)
	s.cache.Set(key, results, searchCacheTTL)
	return results
}

type FoodItemInput struct {
	Name     string              `json:"name" binding:"required"`
	Calories decimal.NullDecimal `json:"calories"`
	Protein  decimal.NullDecimal `json:"protein"`
	Carbs    decimal.NullDecimal `json:"carbs"`
	Fat      decimal.NullDecimal `json:"fat"`
	Sugars   decimal.NullDecimal `json:"sugars"`
	Fiber    decimal.NullDecimal `json:"fiber"`
	Unit     string              `json:"unit"`
}

// CreateItem adds a manually entered catalog item owned by the caller.
func (s *FoodService) CreateItem(userID uint, input FoodItemInput) (*models.FoodItem, error) {
	var existing models.FoodItem
	err := config.DB.Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		return nil, NewFieldError("name", "A food item with this name already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit := input.Unit
	if unit == "" {
		unit = "g"
	}
	item := models.FoodItem{
		Name:        input.Name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		Sugars:      input.Sugars,
		Fiber:       input.Fiber,
		Unit:        unit,
		CreatedByID: &userID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ImportItem fetches product details by external code and upserts the
// catalog entry by name.
func (s *FoodService) ImportItem(code string) (*models.FoodItem, error) {
	candidate, err := s.off.ProductDetails(code)
	if err != nil {
		return nil, NewFieldError("code", "Food product not found.")
	}

	var item models.FoodItem
	err = config.DB.Where("name = ?", candidate.Name).First(&item).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item.Name = candidate.Name
	item.Calories = candidate.Calories
	item.Protein = candidate.Protein
	item.Carbs = candidate.Carbs
	item.Fat = candidate.Fat
	item.Sugars = candidate.Sugars
	item.Fiber = candidate.Fiber
	item.Unit = candidate.Unit
	item.ExternalAPIID = candidate.ExternalAPIID

	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *FoodService) ListItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := config.DB.Order("name asc").Find(&items).Error
	return items, err
}

func (s *FoodService) GetItem(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := config.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a catalog item. Log entries that reference it keep
// their name and consumed snapshot; the foreign key goes null.
func (s *FoodService) DeleteItem(id uint) error {
	var item models.FoodItem
	if err := config.DB.First(&item, id).Error; err != nil {
		return err
	}
	// gorm deletes are soft, so the SET NULL constraint never fires;
	// null the references explicitly
	if err := config.DB.Model(&models.FoodLogEntry{}).
		Where("food_item_id = ?", item.ID).
		Update("food_item_id", nil).Error; err != nil {
		return err
	}
	return config.DB.Delete(&item).Error
}
