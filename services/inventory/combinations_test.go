package inventory

import (
	"fmt"
	"testing"

	"posada/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTypes() []models.RoomType {
	return []models.RoomType{
		{ID: "doble", Name: "Doble Económica", BasePrice: 60000, Capacity: 2, AllowsPets: false, Category: models.CategoryEconomy},
		{ID: "confort", Name: "Doble Confort", BasePrice: 120000, Capacity: 2, AllowsPets: true, Category: models.CategoryComfort},
		{ID: "familiar", Name: "Familiar Confort", BasePrice: 220000, Capacity: 4, AllowsPets: true, Category: models.CategoryComfort},
		{ID: "suite", Name: "Suite Familiar", BasePrice: 480000, Capacity: 6, AllowsPets: true, Category: models.CategoryPremium},
	}
}

func fullStock(types []models.RoomType, n int) map[string]int {
	stock := make(map[string]int, len(types))
	for _, t := range types {
		stock[t.ID] = n
	}
	return stock
}

func TestGenerateCombinationsSingleRoom(t *testing.T) {
	types := testTypes()
	combos := GenerateCombinations(types, 2, 1, false, fullStock(types, 3))

	require.NotEmpty(t, combos)
	for _, c := range combos {
		assert.Len(t, c.Parts, 1)
		assert.Equal(t, 1, c.Parts[0].Quantity)
		assert.False(t, c.IsMixed)
		assert.GreaterOrEqual(t, c.TotalCapacity, 2)
	}
	// Cheapest first.
	for i := 1; i < len(combos); i++ {
		assert.LessOrEqual(t, combos[i-1].PricePerNight, combos[i].PricePerNight)
	}
	assert.Equal(t, "doble", combos[0].Parts[0].Type.ID)
}

func TestGenerateCombinationsCapacityFilter(t *testing.T) {
	types := testTypes()
	combos := GenerateCombinations(types, 5, 1, false, fullStock(types, 3))

	require.NotEmpty(t, combos)
	for _, c := range combos {
		assert.GreaterOrEqual(t, c.TotalCapacity, 5)
	}
}

func TestGenerateCombinationsPetFilter(t *testing.T) {
	types := testTypes()
	combos := GenerateCombinations(types, 2, 1, true, fullStock(types, 3))

	require.NotEmpty(t, combos)
	for _, c := range combos {
		assert.True(t, c.AllowsPets())
		assert.NotEqual(t, "doble", c.Parts[0].Type.ID)
	}
}

func TestGenerateCombinationsStockLimits(t *testing.T) {
	types := testTypes()
	stock := fullStock(types, 3)
	stock["suite"] = 1

	combos := GenerateCombinations(types, 4, 2, false, stock)
	require.NotEmpty(t, combos)
	for _, c := range combos {
		for _, p := range c.Parts {
			assert.LessOrEqual(t, p.Quantity, stock[p.Type.ID],
				"combination exceeds stock for %s", p.Type.ID)
		}
	}
}

func TestGenerateCombinationsTwoRoomSplits(t *testing.T) {
	types := testTypes()
	combos := GenerateCombinations(types, 4, 2, false, fullStock(types, 3))

	require.NotEmpty(t, combos)
	sawMixed := false
	for _, c := range combos {
		qty := 0
		for _, p := range c.Parts {
			qty += p.Quantity
		}
		assert.Equal(t, 2, qty)
		if c.IsMixed {
			sawMixed = true
			assert.Len(t, c.Parts, 2)
			assert.Equal(t, models.CategoryMixed, c.Category)
		}
	}
	assert.True(t, sawMixed)
}

func TestGenerateCombinationsThreeTypeSplitOnlyForThreeRooms(t *testing.T) {
	types := testTypes()

	for _, c := range GenerateCombinations(types, 6, 2, false, fullStock(types, 3)) {
		assert.LessOrEqual(t, len(c.Parts), 2)
	}

	combos := GenerateCombinations(types, 6, 3, false, fullStock(types, 3))
	sawTriple := false
	for _, c := range combos {
		if len(c.Parts) == 3 {
			sawTriple = true
			for _, p := range c.Parts {
				assert.Equal(t, 1, p.Quantity)
			}
		}
	}
	assert.True(t, sawTriple)
}

func TestGenerateCombinationsDeduplicates(t *testing.T) {
	types := testTypes()
	combos := GenerateCombinations(types, 2, 3, false, fullStock(types, 5))

	seen := make(map[string]bool)
	for _, c := range combos {
		key := c.Key()
		assert.False(t, seen[key], "duplicate combination %s", key)
		seen[key] = true
	}
}

func TestGenerateCombinationsCapped(t *testing.T) {
	var types []models.RoomType
	for i := 0; i < 30; i++ {
		types = append(types, models.RoomType{
			ID:        fmt.Sprintf("tipo-%d", i),
			Name:      fmt.Sprintf("Tipo %d", i),
			BasePrice: 50000 + i*1000,
			Capacity:  2,
		})
	}

	combos := GenerateCombinations(types, 2, 1, false, fullStock(types, 3))
	assert.Len(t, combos, MaxCombinations)
}

func TestGenerateCombinationsNoRequest(t *testing.T) {
	types := testTypes()
	assert.Empty(t, GenerateCombinations(types, 2, 0, false, fullStock(types, 3)))
	assert.Empty(t, GenerateCombinations(nil, 2, 1, false, nil))
}
