package models

import (
	"fmt"
	"sort"
	"strings"
)

// CombinationPart is one (room type, quantity) leg of a candidate combination.
type CombinationPart struct {
	Type     RoomType `json:"tipo"`
	Quantity int      `json:"cantidad"`
}

// Combination is a candidate assignment of room-type quantities that covers a
// requested unit count and party size.
type Combination struct {
	Parts         []CombinationPart `json:"habitaciones"`
	TotalCapacity int               `json:"capacidadTotal"`
	PricePerNight int               `json:"precioTotal"`
	Description   string            `json:"descripcion"`
	Category      string            `json:"categoria,omitempty"`
	IsMixed       bool              `json:"esMixta"`
}

// Key returns the canonical identity of the combination: the sorted
// (type id, quantity) pairs. Logically identical combinations reached through
// different enumeration orders share a key.
func (c *Combination) Key() string {
	pairs := make([]string, 0, len(c.Parts))
	for _, p := range c.Parts {
		pairs = append(pairs, fmt.Sprintf("%s-%d", p.Type.ID, p.Quantity))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "|")
}

// AllowsPets reports whether every room type in the combination accepts pets.
func (c *Combination) AllowsPets() bool {
	for _, p := range c.Parts {
		if !p.Type.AllowsPets {
			return false
		}
	}
	return true
}

// ChosenRooms converts the combination into the denormalized form persisted on
// the conversation when the guest accepts it.
func (c *Combination) ChosenRooms() []ChosenRoom {
	rooms := make([]ChosenRoom, 0, len(c.Parts))
	for _, p := range c.Parts {
		rooms = append(rooms, ChosenRoom{
			TypeID:    p.Type.ID,
			Quantity:  p.Quantity,
			Capacity:  p.Type.Capacity,
			BasePrice: p.Type.BasePrice,
			Name:      p.Type.Name,
		})
	}
	return rooms
}
