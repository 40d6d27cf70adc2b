package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// A catalog entry: nutrients are per 100g of the item. Items come from an
// Open Food Facts search/import or from manual entry by a user.
type FoodItem struct {
	gorm.Model
	Name string `gorm:"type:varchar(255);uniqueIndex;not null"`

	Calories decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	Protein  decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	Carbs    decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	Fat      decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	Sugars   decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	Fiber    decimal.NullDecimal `gorm:"type:decimal(8,2)"`

	Unit string `gorm:"type:varchar(50);default:g"`

	// Product code from Open Food Facts, when imported.
	ExternalAPIID string `gorm:"type:varchar(255)"`

	// User who created this custom item, if any.
	CreatedByID *uint
	CreatedBy   *User `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}
