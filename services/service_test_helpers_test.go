package services

import (
	"fmt"
	"testing"

	"github.com/hazalkoom/Food-Tracker/config"
	"github.com/hazalkoom/Food-Tracker/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.FoodLogEntry{},
		&models.RevokedToken{},
	))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		sqlDB.Close()
	})
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:    email,
		Password: "x",
		Name:     "Test User",
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func createTestItem(t *testing.T, name string, calories, protein, carbs, fat, sugars, fiber string) *models.FoodItem {
	t.Helper()
	item := &models.FoodItem{Name: name, Unit: "g"}
	if calories != "" {
		item.Calories = nd(calories)
	}
	if protein != "" {
		item.Protein = nd(protein)
	}
	if carbs != "" {
		item.Carbs = nd(carbs)
	}
	if fat != "" {
		item.Fat = nd(fat)
	}
	if sugars != "" {
		item.Sugars = nd(sugars)
	}
	if fiber != "" {
		item.Fiber = nd(fiber)
	}
	require.NoError(t, config.DB.Create(item).Error)
	return item
}
