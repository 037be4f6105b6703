package models

import "time"

// ConversationStatus tracks whether a conversation has become a confirmed
// reservation. The transition pendiente -> confirmada happens exactly once and
// is never reversed.
type ConversationStatus string

const (
	StatusPending   ConversationStatus = "pendiente"
	StatusConfirmed ConversationStatus = "confirmada"
)

// Meal plan values as stored on the conversation.
const (
	MealBreakfastOnly  = "solo_desayuno"
	MealBreakfastLunch = "desayuno_almuerzo"
	MealFullBoard      = "completo"
	MealNone           = "ninguno"
)

// ChosenRoom is one (room type, quantity) leg of the combination the guest
// accepted. Price and capacity are denormalized so the summary renders the
// figures that were on screen when the offer was accepted.
type ChosenRoom struct {
	TypeID    string `bson:"tipo" json:"tipo"`
	Quantity  int    `bson:"cantidad" json:"cantidad"`
	Capacity  int    `bson:"capacidad" json:"capacidad"`
	BasePrice int    `bson:"precioBase" json:"precioBase"`
	Name      string `bson:"nombre" json:"nombre"`
}

// Conversation is the per-session record of everything captured so far and the
// current position in the step graph. Once confirmed it doubles as the
// reservation document that availability queries run against.
type Conversation struct {
	ID        string `bson:"id" json:"id"`
	SessionID string `bson:"idSesionUsuario" json:"idSesionUsuario"`

	CurrentStepID     string `bson:"idPasoActual" json:"idPasoActual"`
	ConsecutiveErrors int    `bson:"erroresConsecutivos" json:"erroresConsecutivos"`

	GuestName  string `bson:"nombreUsuario,omitempty" json:"nombreUsuario,omitempty"`
	GuestPhone string `bson:"telefonoUsuario,omitempty" json:"telefonoUsuario,omitempty"`
	GuestEmail string `bson:"correoUsuario,omitempty" json:"correoUsuario,omitempty"`

	StartDate *time.Time `bson:"fechaInicio,omitempty" json:"fechaInicio,omitempty"`
	EndDate   *time.Time `bson:"fechaFin,omitempty" json:"fechaFin,omitempty"`

	// TotalPeople is the party size captured before the adult/child split.
	TotalPeople int  `bson:"totalPersonas,omitempty" json:"totalPersonas,omitempty"`
	NumAdults   int  `bson:"numAdultos,omitempty" json:"numAdultos,omitempty"`
	NumChildren int  `bson:"numNinos,omitempty" json:"numNinos,omitempty"`
	HasPets     bool `bson:"tieneMascotas" json:"tieneMascotas"`
	NumPets     int  `bson:"numMascotas,omitempty" json:"numMascotas,omitempty"`

	NumRooms      int          `bson:"numHabitaciones,omitempty" json:"numHabitaciones,omitempty"`
	ChosenRooms   []ChosenRoom `bson:"habitacionesElegidas,omitempty" json:"habitacionesElegidas,omitempty"`
	MealPlan      string       `bson:"planAlimentacion,omitempty" json:"planAlimentacion,omitempty"`
	PaymentMethod string       `bson:"metodoPago,omitempty" json:"metodoPago,omitempty"`

	// OfferIndex is the pagination cursor into the last computed offer set.
	// SimulatedOffers maps each offer's 1-based position to the room list it
	// stands for, so an accept resolves to exactly the combination last shown
	// even though every render recomputes the live set.
	OfferIndex      int                     `bson:"indiceOpcionActual" json:"indiceOpcionActual"`
	SimulatedOffers map[string][]ChosenRoom `bson:"opcionesSimuladas,omitempty" json:"opcionesSimuladas,omitempty"`
	LastOfferPrompt string                  `bson:"ultimoMensajeOpciones,omitempty" json:"ultimoMensajeOpciones,omitempty"`

	Status        ConversationStatus `bson:"estado" json:"estado"`
	AssignedUnits []string           `bson:"habitacionesAsignadas,omitempty" json:"habitacionesAsignadas,omitempty"`

	CreatedAt time.Time `bson:"creadoEn" json:"creadoEn"`
	UpdatedAt time.Time `bson:"actualizadoEn" json:"actualizadoEn"`
}

// People returns the headcount used for pricing and capacity checks: the
// adult/child split when captured, otherwise the raw party size.
func (c *Conversation) People() int {
	if c.NumAdults+c.NumChildren > 0 {
		return c.NumAdults + c.NumChildren
	}
	return c.TotalPeople
}

// Nights returns the whole nights between the captured dates, zero when either
// date is missing.
func (c *Conversation) Nights() int {
	if c.StartDate == nil || c.EndDate == nil {
		return 0
	}
	d := c.EndDate.Sub(*c.StartDate)
	if d <= 0 {
		return 0
	}
	return int((d + 24*time.Hour - 1) / (24 * time.Hour))
}
