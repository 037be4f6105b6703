package models

// Room categories as seeded in the catalog. Descriptive only, never used for
// branching.
const (
	CategoryEconomy = "Económica"
	CategoryComfort = "Confort"
	CategoryPremium = "Premium"
	CategoryMixed   = "Mixta"
)

// RoomType is a catalog SKU: price, capacity and pet policy. It is not a
// physical room.
type RoomType struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"nombre" json:"nombre"`
	BasePrice  int      `bson:"precioBase" json:"precioBase"`
	Capacity   int      `bson:"capacidad" json:"capacidad"`
	AllowsPets bool     `bson:"permiteMascotas" json:"permiteMascotas"`
	Features   []string `bson:"caracteristicas,omitempty" json:"caracteristicas,omitempty"`
	Category   string   `bson:"categoria,omitempty" json:"categoria,omitempty"`
}

// RoomUnitStatus is the lifecycle state of a physical room.
type RoomUnitStatus string

const (
	UnitAvailable    RoomUnitStatus = "disponible"
	UnitOccupied     RoomUnitStatus = "ocupada"
	UnitMaintenance  RoomUnitStatus = "mantenimiento"
	UnitOutOfService RoomUnitStatus = "fuera_de_servicio"
)

// RoomUnit is one physical, numbered room instance of a RoomType; the thing
// actually allocated to a confirmed booking. An occupied unit stays in the
// availability pool because it frees up once its reservation ends; only
// maintenance and out-of-service units are excluded outright.
type RoomUnit struct {
	ID     string         `bson:"id" json:"id"`
	Number string         `bson:"numero" json:"numero"`
	TypeID string         `bson:"tipo" json:"tipo"`
	Status RoomUnitStatus `bson:"estado" json:"estado"`
}

// Allocatable reports whether the unit participates in availability counting.
func (u *RoomUnit) Allocatable() bool {
	return u.Status == UnitAvailable || u.Status == UnitOccupied
}
