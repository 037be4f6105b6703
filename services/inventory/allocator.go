package inventory

import (
	"fmt"

	"posada/models"

	"go.uber.org/zap"
)

// Commit marks the conversation confirmed and greedily assigns physical units
// to its chosen room-type quantities. Availability is re-derived here rather
// than reused from earlier paging, to shrink the window in which a concurrent
// confirmation can take the same units. If fewer units are free than
// requested, the commit proceeds with a partial assignment; the shortfall is
// logged, not fatal.
func (a *DefaultAllocator) Commit(conv *models.Conversation) ([]string, error) {
	if conv.StartDate == nil || conv.EndDate == nil {
		return nil, fmt.Errorf("cannot allocate units without a date range")
	}

	units, err := a.Rooms.GetAllocatableUnits()
	if err != nil {
		return nil, fmt.Errorf("failed to load unit inventory: %w", err)
	}
	overlapping, err := a.Conversations.GetConfirmedOverlapping(*conv.StartDate, *conv.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load overlapping reservations: %w", err)
	}

	taken := make(map[string]bool)
	for _, res := range overlapping {
		if res.SessionID == conv.SessionID {
			continue
		}
		for _, unitID := range res.AssignedUnits {
			taken[unitID] = true
		}
	}

	requested := 0
	var assigned []string
	for _, chosen := range conv.ChosenRooms {
		requested += chosen.Quantity
		found := 0
		for _, unit := range units {
			if found == chosen.Quantity {
				break
			}
			if unit.TypeID != chosen.TypeID || taken[unit.ID] {
				continue
			}
			taken[unit.ID] = true
			assigned = append(assigned, unit.ID)
			found++
		}
	}

	if len(assigned) < requested {
		a.Logger.Warn("allocation shortfall, confirming with partial assignment",
			zap.String("session", conv.SessionID),
			zap.Int("requested", requested),
			zap.Int("assigned", len(assigned)))
	}

	conv.Status = models.StatusConfirmed
	conv.AssignedUnits = assigned

	if err := a.Rooms.MarkUnitsOccupied(assigned); err != nil {
		return nil, fmt.Errorf("failed to mark assigned units occupied: %w", err)
	}
	return assigned, nil
}
