package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// One logged consumption. The food item reference is weak: deleting the
// catalog item nulls it out but the name and consumed snapshot stay, so
// history survives catalog cleanup.
type FoodLogEntry struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	FoodItemID *uint
	FoodItem   *FoodItem `gorm:"foreignKey:FoodItemID;constraint:OnDelete:SET NULL"`

	FoodName     string          `gorm:"type:varchar(255);not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	QuantityUnit string          `gorm:"type:varchar(50);not null"`

	// Derived on the server from the referenced item's per-100g values.
	// Never written from client input.
	CaloriesConsumed decimal.Decimal `gorm:"type:decimal(8,2)"`
	ProteinConsumed  decimal.Decimal `gorm:"type:decimal(8,2)"`
	CarbsConsumed    decimal.Decimal `gorm:"type:decimal(8,2)"`
	FatConsumed      decimal.Decimal `gorm:"type:decimal(8,2)"`
	SugarsConsumed   decimal.Decimal `gorm:"type:decimal(8,2)"`
	FiberConsumed    decimal.Decimal `gorm:"type:decimal(8,2)"`

	LogDate time.Time `gorm:"type:date;index;not null"`
}
