package inventory

import (
	"fmt"
	"sort"

	"posada/models"
)

// MaxCombinations caps how many offers a single search returns.
const MaxCombinations = 15

// GenerateCombinations enumerates the room-type combinations that can host
// people in exactly requestedUnits rooms, honouring per-type remaining stock.
// It is a bounded brute-force search: one type supplying every unit, splits
// across two types, and the (1,1,1) split across three types when exactly
// three rooms were requested. The result is deduplicated, sorted ascending by
// nightly price and truncated to MaxCombinations.
func GenerateCombinations(types []models.RoomType, people, requestedUnits int, petsRequired bool, stock map[string]int) []models.Combination {
	if requestedUnits < 1 {
		return nil
	}

	stocked := make([]models.RoomType, 0, len(types))
	for _, t := range types {
		if petsRequired && !t.AllowsPets {
			continue
		}
		if stock[t.ID] > 0 {
			stocked = append(stocked, t)
		}
	}

	var combos []models.Combination

	// Single type covering every requested unit.
	for _, t := range stocked {
		if stock[t.ID] < requestedUnits {
			continue
		}
		capacity := t.Capacity * requestedUnits
		if capacity < people {
			continue
		}
		combos = append(combos, models.Combination{
			Parts:         []models.CombinationPart{{Type: t, Quantity: requestedUnits}},
			TotalCapacity: capacity,
			PricePerNight: t.BasePrice * requestedUnits,
			Description:   singleTypeDescription(t, requestedUnits),
			Category:      t.Category,
			IsMixed:       false,
		})
	}

	// Splits across two distinct types.
	if requestedUnits >= 2 {
		for i := 0; i < len(stocked); i++ {
			for j := i + 1; j < len(stocked); j++ {
				t1, t2 := stocked[i], stocked[j]
				for q1 := 1; q1 < requestedUnits; q1++ {
					q2 := requestedUnits - q1
					if stock[t1.ID] < q1 || stock[t2.ID] < q2 {
						continue
					}
					capacity := t1.Capacity*q1 + t2.Capacity*q2
					if capacity < people {
						continue
					}
					combos = append(combos, models.Combination{
						Parts: []models.CombinationPart{
							{Type: t1, Quantity: q1},
							{Type: t2, Quantity: q2},
						},
						TotalCapacity: capacity,
						PricePerNight: t1.BasePrice*q1 + t2.BasePrice*q2,
						Description:   fmt.Sprintf("%d× %s + %d× %s", q1, t1.Name, q2, t2.Name),
						Category:      models.CategoryMixed,
						IsMixed:       true,
					})
				}
			}
		}
	}

	// One room of each across three distinct types.
	if requestedUnits == 3 && len(stocked) >= 3 {
		for i := 0; i < len(stocked); i++ {
			for j := i + 1; j < len(stocked); j++ {
				for k := j + 1; k < len(stocked); k++ {
					t1, t2, t3 := stocked[i], stocked[j], stocked[k]
					capacity := t1.Capacity + t2.Capacity + t3.Capacity
					if capacity < people {
						continue
					}
					combos = append(combos, models.Combination{
						Parts: []models.CombinationPart{
							{Type: t1, Quantity: 1},
							{Type: t2, Quantity: 1},
							{Type: t3, Quantity: 1},
						},
						TotalCapacity: capacity,
						PricePerNight: t1.BasePrice + t2.BasePrice + t3.BasePrice,
						Description:   fmt.Sprintf("%s + %s + %s", t1.Name, t2.Name, t3.Name),
						Category:      models.CategoryMixed,
						IsMixed:       true,
					})
				}
			}
		}
	}

	unique := combos[:0]
	seen := make(map[string]bool, len(combos))
	for _, c := range combos {
		key := c.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, c)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].PricePerNight < unique[j].PricePerNight
	})

	if len(unique) > MaxCombinations {
		unique = unique[:MaxCombinations]
	}
	return unique
}

func singleTypeDescription(t models.RoomType, units int) string {
	return fmt.Sprintf("%d× %s", units, t.Name)
}
