package inventory

import (
	"fmt"
	"time"
)

// Available returns the free-unit count per room type for the half-open range
// [start, end). A unit is free when no confirmed reservation overlapping the
// range has it assigned. The result is a pure function of current store state;
// nothing is cached across calls.
func (r *DefaultAvailabilityResolver) Available(start, end time.Time) (map[string]int, error) {
	units, err := r.Rooms.GetAllocatableUnits()
	if err != nil {
		return nil, fmt.Errorf("failed to load unit inventory: %w", err)
	}

	overlapping, err := r.Conversations.GetConfirmedOverlapping(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load overlapping reservations: %w", err)
	}

	taken := make(map[string]bool)
	for _, res := range overlapping {
		for _, unitID := range res.AssignedUnits {
			taken[unitID] = true
		}
	}

	available := make(map[string]int)
	for _, unit := range units {
		if !taken[unit.ID] {
			available[unit.TypeID]++
		}
	}
	return available, nil
}
