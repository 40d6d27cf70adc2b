package services

import (
	"encoding/json"
	"testing"

	"github.com/hazalkoom/Food-Tracker/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nd(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(value), Valid: true}
}

func TestComputeConsumed(t *testing.T) {
	t.Run("ScalesPer100g", func(t *testing.T) {
		item := &models.FoodItem{
			Name:     "oats",
			Calories: nd("250"),
			Protein:  nd("13.5"),
			Carbs:    nd("60"),
			Fat:      nd("7"),
			Sugars:   nd("1.1"),
			Fiber:    nd("10"),
		}

		got := ComputeConsumed(item, decimal.NewFromInt(150))

		assert.True(t, got.Calories.Equal(decimal.RequireFromString("375")), "calories = %s", got.Calories)
		assert.True(t, got.Protein.Equal(decimal.RequireFromString("20.25")), "protein = %s", got.Protein)
		assert.True(t, got.Carbs.Equal(decimal.RequireFromString("90")), "carbs = %s", got.Carbs)
		assert.True(t, got.Fat.Equal(decimal.RequireFromString("10.5")), "fat = %s", got.Fat)
		assert.True(t, got.Sugars.Equal(decimal.RequireFromString("1.65")), "sugars = %s", got.Sugars)
		assert.True(t, got.Fiber.Equal(decimal.RequireFromString("15")), "fiber = %s", got.Fiber)
	})

	t.Run("NullFieldsYieldZero", func(t *testing.T) {
		item := &models.FoodItem{Name: "mystery", Calories: nd("100")}

		got := ComputeConsumed(item, decimal.NewFromInt(999))

		assert.True(t, got.Calories.Equal(decimal.RequireFromString("999")))
		assert.True(t, got.Protein.IsZero())
		assert.True(t, got.Carbs.IsZero())
		assert.True(t, got.Fat.IsZero())
		assert.True(t, got.Sugars.IsZero())
		assert.True(t, got.Fiber.IsZero())
	})

	t.Run("NilItemYieldsAllZero", func(t *testing.T) {
		got := ComputeConsumed(nil, decimal.NewFromInt(500))

		assert.True(t, got.Calories.IsZero())
		assert.True(t, got.Protein.IsZero())
		assert.True(t, got.Carbs.IsZero())
		assert.True(t, got.Fat.IsZero())
		assert.True(t, got.Sugars.IsZero())
		assert.True(t, got.Fiber.IsZero())
	})

	t.Run("LargeQuantity", func(t *testing.T) {
		item := &models.FoodItem{Name: "bulk", Calories: nd("3.33")}

		got := ComputeConsumed(item, decimal.RequireFromString("1000000"))

		assert.True(t, got.Calories.Equal(decimal.RequireFromString("33300")), "calories = %s", got.Calories)
	})
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"Number", `150`, "150", true},
		{"DecimalNumber", `12.75`, "12.75", true},
		{"NumericString", `"42.5"`, "42.5", true},
		{"Word", `"abc"`, "", false},
		{"Null", `null`, "", false},
		{"Empty", ``, "", false},
		{"Bool", `true`, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseQuantity(json.RawMessage(tc.raw))
			if !tc.ok {
				var fieldErr *FieldError
				require.Error(t, err)
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "quantity", fieldErr.Field)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestParseLogDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		got, err := ParseLogDate("2024-05-01", "date")
		require.NoError(t, err)
		assert.Equal(t, "2024-05-01", got.Format("2006-01-02"))
	})

	t.Run("InvalidCalendarDate", func(t *testing.T) {
		_, err := ParseLogDate("2024-13-40", "date")
		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "date", fieldErr.Field)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseLogDate("not-a-date", "log_date")
		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "log_date", fieldErr.Field)
	})
}
