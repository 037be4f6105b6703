package roomRepo

import "posada/models"

// RoomRepository defines access to the room-type catalog and the physical unit
// inventory.
type RoomRepository interface {
	// GetAllTypes retrieves every room type in the catalog.
	GetAllTypes() ([]models.RoomType, error)
	// GetTypeByID retrieves a room type by id. Returns (nil, nil) when absent.
	GetTypeByID(id string) (*models.RoomType, error)
	// GetAllocatableUnits retrieves the physical units that participate in
	// availability counting (available or occupied; an occupied unit frees up
	// when its reservation ends).
	GetAllocatableUnits() ([]models.RoomUnit, error)
	// GetUnitsByIDs retrieves the physical units with the given ids.
	GetUnitsByIDs(ids []string) ([]models.RoomUnit, error)
	// MarkUnitsOccupied flips the given units to the occupied status.
	MarkUnitsOccupied(ids []string) error
	// ReplaceCatalog drops both collections and inserts the given fixtures.
	ReplaceCatalog(types []models.RoomType, units []models.RoomUnit) error
}
