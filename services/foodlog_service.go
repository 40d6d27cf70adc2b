package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/clause"
)

const summaryCacheTTL = 15 * time.Minute

type FoodLogService struct {
	cache *TTLCache
}

func NewFoodLogService(cache *TTLCache) *FoodLogService {
	return &FoodLogService{cache: cache}
}

// LogEntryInput carries the client-writable fields of a log entry.
// Quantity stays raw until ParseQuantity so both numbers and numeric
// strings are accepted and anything else is rejected by field name.
// User is captured only to reject attempts to reassign ownership.
type LogEntryInput struct {
	FoodItem     *uint           `json:"food_item"`
	FoodName     string          `json:"food_name"`
	Quantity     json.RawMessage `json:"quantity"`
	QuantityUnit string          `json:"quantity_unit"`
	LogDate      string          `json:"log_date"`
	User         json.RawMessage `json:"user"`
}

type FoodLogEntryResponse struct {
	ID           uint    `json:"id"`
	User         uint    `json:"user"`
	UserName     string  `json:"user_name"`
	FoodItem     *uint   `json:"food_item"`
	FoodItemName *string `json:"food_item_name"`
	FoodName     string  `json:"food_name"`
	Quantity     string  `json:"quantity"`
	QuantityUnit string  `json:"quantity_unit"`

	CaloriesConsumed string `json:"calories_consumed"`
	ProteinConsumed  string `json:"protein_consumed"`
	CarbsConsumed    string `json:"carbs_consumed"`
	FatConsumed      string `json:"fat_consumed"`
	SugarsConsumed   string `json:"sugars_consumed"`
	FiberConsumed    string `json:"fiber_consumed"`

	LogDate   string    `json:"log_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func entryResponse(e *models.FoodLogEntry) FoodLogEntryResponse {
	resp := FoodLogEntryResponse{
		ID:               e.ID,
		User:             e.UserID,
		UserName:         e.User.Name,
		FoodItem:         e.FoodItemID,
		FoodName:         e.FoodName,
		Quantity:         e.Quantity.StringFixed(2),
		QuantityUnit:     e.QuantityUnit,
		CaloriesConsumed: e.CaloriesConsumed.StringFixed(2),
		ProteinConsumed:  e.ProteinConsumed.StringFixed(2),
		CarbsConsumed:    e.CarbsConsumed.StringFixed(2),
		FatConsumed:      e.FatConsumed.StringFixed(2),
		SugarsConsumed:   e.SugarsConsumed.StringFixed(2),
		FiberConsumed:    e.FiberConsumed.StringFixed(2),
		LogDate:          e.LogDate.Format("2006-01-02"),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.FoodItem != nil {
		name := e.FoodItem.Name
		resp.FoodItemName = &name
	}
	return resp
}

func lookupFoodItem(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := config.DB.First(&item, id).Error; err != nil {
		return nil, NewFieldError("food_item", "Food item not found.")
	}
	return &item, nil
}

// Create builds a log entry for the authenticated user. The owner is
// always the caller, whatever the payload says.
func (s *FoodLogService) Create(userID uint, input LogEntryInput) (*FoodLogEntryResponse, error) {
	if input.FoodName == "" && input.FoodItem == nil {
		return nil, NewFieldError("food_name", "This field is required.")
	}
	if input.QuantityUnit == "" {
		return nil, NewFieldError("quantity_unit", "This field is required.")
	}

	quantity, err := ParseQuantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	var item *models.FoodItem
	if input.FoodItem != nil {
		if item, err = lookupFoodItem(*input.FoodItem); err != nil {
			return nil, err
		}
	}

	foodName := input.FoodName
	if item != nil {
		foodName = item.Name
	}

	logDate := Today()
	if input.LogDate != "" {
		if logDate, err = ParseLogDate(input.LogDate, "log_date"); err != nil {
			return nil, err
		}
	}

	entry := models.FoodLogEntry{
		UserID:       userID,
		FoodName:     foodName,
		Quantity:     quantity,
		QuantityUnit: input.QuantityUnit,
		LogDate:      logDate,
	}
	if item != nil {
		entry.FoodItemID = &item.ID
	}
	ComputeConsumed(item, quantity).Apply(&entry)

	if err := config.DB.Omit(clause.Associations).Create(&entry).Error; err != nil {
		return nil, err
	}
	return s.load(userID, entry.ID)
}

// Update re-derives name and consumed fields. Switching the referenced
// food item recomputes everything from the new item; the owner is
// immutable.
func (s *FoodLogService) Update(userID, entryID uint, input LogEntryInput) (*FoodLogEntryResponse, error) {
	if len(input.User) > 0 && string(input.User) != "null" {
		return nil, NewFieldError("user", "User cannot be changed.")
	}

	var entry models.FoodLogEntry
	err := config.DB.Preload("FoodItem").
		Where("user_id = ?", userID).
		First(&entry, entryID).Error
	if err != nil {
		return nil, err
	}

	item := entry.FoodItem
	if input.FoodItem != nil {
		if item, err = lookupFoodItem(*input.FoodItem); err != nil {
			return nil, err
		}
		entry.FoodItemID = &item.ID
	}

	if input.FoodName != "" {
		entry.FoodName = input.FoodName
	}
	if item != nil {
		entry.FoodName = item.Name
	}
	if input.QuantityUnit != "" {
		entry.QuantityUnit = input.QuantityUnit
	}
	if len(input.Quantity) > 0 {
		quantity, err := ParseQuantity(input.Quantity)
		if err != nil {
			return nil, err
		}
		entry.Quantity = quantity
	}
	if input.LogDate != "" {
		logDate, err := ParseLogDate(input.LogDate, "log_date")
		if err != nil {
			return nil, err
		}
		entry.LogDate = logDate
	}

	ComputeConsumed(item, entry.Quantity).Apply(&entry)

	if err := config.DB.Omit(clause.Associations).Save(&entry).Error; err != nil {
		return nil, err
	}
	return s.load(userID, entry.ID)
}

func (s *FoodLogService) load(userID, entryID uint) (*FoodLogEntryResponse, error) {
	var entry models.FoodLogEntry
	err := config.DB.Preload("FoodItem").Preload("User").
		Where("user_id = ?", userID).
		First(&entry, entryID).Error
	if err != nil {
		return nil, err
	}
	resp := entryResponse(&entry)
	return &resp, nil
}

// Get returns one of the caller's entries. Other users' entries are
// indistinguishable from missing ones.
func (s *FoodLogService) Get(userID, entryID uint) (*FoodLogEntryResponse, error) {
	return s.load(userID, entryID)
}

// List returns the caller's entries, optionally restricted to one log
// date, newest first.
func (s *FoodLogService) List(userID uint, dateStr string) ([]FoodLogEntryResponse, error) {
	q := config.DB.Preload("FoodItem").Preload("User").
		Where("user_id = ?", userID)

	if dateStr != "" {
		date, err := ParseLogDate(dateStr, "date")
		if err != nil {
			return nil, err
		}
		q = q.Where("log_date = ?", date)
	}

	var entries []models.FoodLogEntry
	if err := q.Order("log_date desc, created_at desc").Find(&entries).Error; err != nil {
		return nil, err
	}

	out := make([]FoodLogEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, entryResponse(&entries[i]))
	}
	return out, nil
}

func (s *FoodLogService) Delete(userID, entryID uint) error {
	var entry models.FoodLogEntry
	err := config.DB.Where("user_id = ?", userID).First(&entry, entryID).Error
	if err != nil {
		return err
	}
	return config.DB.Delete(&entry).Error
}

type DailySummary struct {
	Date          string                 `json:"date"`
	TotalCalories string                 `json:"total_calories"`
	TotalProtein  string                 `json:"total_protein"`
	TotalCarbs    string                 `json:"total_carbs"`
	TotalFat      string                 `json:"total_fat"`
	TotalSugars   string                 `json:"total_sugars"`
	TotalFiber    string                 `json:"total_fiber"`
	LogEntries    []FoodLogEntryResponse `json:"log_entries"`
}

// Summarize totals the six consumed fields over the user's entries for
// one date. An empty day sums to 0.00 everywhere. Results sit in a
// 15-minute cache; a write inside that window can serve stale totals
// until the TTL lapses.
func (s *FoodLogService) Summarize(userID uint, dateStr string) (*DailySummary, error) {
	if dateStr == "" {
		dateStr = Today().Format("2006-01-02")
	}

	key := fmt.Sprintf("daily_summary_%d_%s", userID, dateStr)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*DailySummary), nil
	}

	date, err := ParseLogDate(dateStr, "date")
	if err != nil {
		return nil, err
	}

	var entries []models.FoodLogEntry
	err = config.DB.Preload("FoodItem").Preload("User").
		Where("user_id = ? AND log_date = ?", userID, date).
		Order("log_date desc, created_at desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	var calories, protein, carbs, fat, sugars, fiber decimal.Decimal
	responses := make([]FoodLogEntryResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		calories = calories.Add(e.CaloriesConsumed)
		protein = protein.Add(e.ProteinConsumed)
		carbs = carbs.Add(e.CarbsConsumed)
		fat = fat.Add(e.FatConsumed)
		sugars = sugars.Add(e.SugarsConsumed)
		fiber = fiber.Add(e.FiberConsumed)
		responses = append(responses, entryResponse(e))
	}

	summary := &DailySummary{
		Date:          date.Format("2006-01-02"),
		TotalCalories: calories.Round(2).StringFixed(2),
		TotalProtein:  protein.Round(2).StringFixed(2),
		TotalCarbs:    carbs.Round(2).StringFixed(2),
		TotalFat:      fat.Round(2).StringFixed(2),
		TotalSugars:   sugars.Round(2).StringFixed(2),
		TotalFiber:    fiber.Round(2).StringFixed(2),
		LogEntries:    responses,
	}

	s.cache.Set(key, summary, summaryCacheTTL)
	return summary, nil
}
