package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummary(t *testing.T) {
	setupTestDB(t)
	svc := NewFoodLogService(NewTTLCache())
	user := createTestUser(t, "summary@example.com")
	oats := createTestItem(t, "Oats", "250", "13", "60", "7", "1", "10")
	milk := createTestItem(t, "Milk", "64", "3.3", "4.8", "3.6", "4.8", "")

	t.Run("EmptyDayIsAllZeros", func(t *testing.T) {
		summary, err := svc.Summarize(user.ID, "2024-04-30")
		require.NoError(t, err)

		assert.Equal(t, "2024-04-30", summary.Date)
		assert.Equal(t, "0.00", summary.TotalCalories)
		assert.Equal(t, "0.00", summary.TotalProtein)
		assert.Equal(t, "0.00", summary.TotalCarbs)
		assert.Equal(t, "0.00", summary.TotalFat)
		assert.Equal(t, "0.00", summary.TotalSugars)
		assert.Equal(t, "0.00", summary.TotalFiber)
		assert.Empty(t, summary.LogEntries)
	})

	t.Run("TotalsAreAdditive", func(t *testing.T) {
		_, err := svc.Create(user.ID, logInput(&oats.ID, "", "150", "g", "2024-05-01"))
		require.NoError(t, err)
		_, err = svc.Create(user.ID, logInput(&milk.ID, "", "250", "ml", "2024-05-01"))
		require.NoError(t, err)
		// different date, must not leak in
		_, err = svc.Create(user.ID, logInput(&oats.ID, "", "999", "g", "2024-05-02"))
		require.NoError(t, err)

		summary, err := svc.Summarize(user.ID, "2024-05-01")
		require.NoError(t, err)

		// oats: 375 / 19.5 / 90 / 10.5 / 1.5 / 15
		// milk: 160 / 8.25 / 12 / 9 / 12 / 0
		assert.Equal(t, "535.00", summary.TotalCalories)
		assert.Equal(t, "27.75", summary.TotalProtein)
		assert.Equal(t, "102.00", summary.TotalCarbs)
		assert.Equal(t, "19.50", summary.TotalFat)
		assert.Equal(t, "13.50", summary.TotalSugars)
		assert.Equal(t, "15.00", summary.TotalFiber)
		assert.Len(t, summary.LogEntries, 2)
	})

	t.Run("InvalidDateIsFieldError", func(t *testing.T) {
		_, err := svc.Summarize(user.ID, "2024-13-40")

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "date", fieldErr.Field)
	})

	t.Run("CachedWithinWindow", func(t *testing.T) {
		before, err := svc.Summarize(user.ID, "2024-05-02")
		require.NoError(t, err)
		assert.Len(t, before.LogEntries, 1)

		// a write inside the cache window doesn't show up until expiry
		_, err = svc.Create(user.ID, logInput(&milk.ID, "", "100", "ml", "2024-05-02"))
		require.NoError(t, err)

		after, err := svc.Summarize(user.ID, "2024-05-02")
		require.NoError(t, err)
		assert.Equal(t, before.TotalCalories, after.TotalCalories)
		assert.Len(t, after.LogEntries, 1)
	})

	t.Run("CacheIsPerUser", func(t *testing.T) {
		other := createTestUser(t, "other-summary@example.com")
		summary, err := svc.Summarize(other.ID, "2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, "0.00", summary.TotalCalories)
		assert.Empty(t, summary.LogEntries)
	})

	t.Run("RoundsHalfUpAtAggregate", func(t *testing.T) {
		fresh := NewFoodLogService(NewTTLCache())
		u := createTestUser(t, "round@example.com")
		// 1.11 per 100g at 50g = 0.555 each; three entries sum to 1.665,
		// rounded once at the aggregate -> 1.67 (not 0.56*3 = 1.68)
		it := createTestItem(t, "Rounding", "1.11", "", "", "", "", "")
		for i := 0; i < 3; i++ {
			_, err := fresh.Create(u.ID, logInput(&it.ID, "", "50", "g", "2024-06-01"))
			require.NoError(t, err)
		}

		summary, err := fresh.Summarize(u.ID, "2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, "1.67", summary.TotalCalories)
	})
}
