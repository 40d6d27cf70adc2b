package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/hazalkoom/Food-Tracker/models"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ConsumedNutrients is the amount of each tracked nutrient attributed to a
// single logged quantity of food.
type ConsumedNutrients struct {
	Calories decimal.Decimal
	Protein  decimal.Decimal
	Carbs    decimal.Decimal
	Fat      decimal.Decimal
	Sugars   decimal.Decimal
	Fiber    decimal.Decimal
}

// ComputeConsumed derives consumed amounts from a catalog item's per-100g
// values and the quantity eaten. Nutrients the item doesn't carry come out
// as zero, as does everything when no item is referenced: client-supplied
// nutrient totals are not trusted.
//
// The division by 100 happens before the multiplication; keep that order.
func ComputeConsumed(item *models.FoodItem, quantity decimal.Decimal) ConsumedNutrients {
	var out ConsumedNutrients
	if item == nil {
		return out
	}
	scale := func(v decimal.NullDecimal) decimal.Decimal {
		if !v.Valid {
			return decimal.Zero
		}
		return v.Decimal.Div(oneHundred).Mul(quantity)
	}
	out.Calories = scale(item.Calories)
	out.Protein = scale(item.Protein)
	out.Carbs = scale(item.Carbs)
	out.Fat = scale(item.Fat)
	out.Sugars = scale(item.Sugars)
	out.Fiber = scale(item.Fiber)
	return out
}

// Apply writes the computed amounts onto a log entry.
func (c ConsumedNutrients) Apply(entry *models.FoodLogEntry) {
	entry.CaloriesConsumed = c.Calories
	entry.ProteinConsumed = c.Protein
	entry.CarbsConsumed = c.Carbs
	entry.FatConsumed = c.Fat
	entry.SugarsConsumed = c.Sugars
	entry.FiberConsumed = c.Fiber
}

// ParseQuantity accepts the raw JSON for a quantity field, which clients
// send either as a number or a numeric string.
func ParseQuantity(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, NewFieldError("quantity", "Quantity must be a valid number.")
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero, NewFieldError("quantity", "Quantity must be a valid number.")
	}
	return d, nil
}

// ParseLogDate parses a YYYY-MM-DD date, normalized to UTC midnight so
// exact-match filters behave.
func ParseLogDate(value, field string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, NewFieldError(field, "Invalid date format. Use YYYY-MM-DD.")
	}
	return t.UTC(), nil
}

// Today is the default log date for new entries.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
