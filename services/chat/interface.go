package chat

import (
	convRepo "posada/database/repository/conversation"
	roomRepo "posada/database/repository/room"
	stepRepo "posada/database/repository/step"
	"posada/models"
	"posada/services/inventory"

	"go.uber.org/zap"
)

// Step ids of the seeded conversation graph. Branching always goes through
// these constants; an id outside this set is a flow-integrity failure.
const (
	StepWelcome        = "bienvenida"
	StepAskDates       = "preguntar_fechas"
	StepAskPeople      = "preguntar_cantidad_personas"
	StepAskSplit       = "preguntar_distribucion_personas"
	StepAskPets        = "preguntar_mascotas"
	StepAskPetCount    = "preguntar_cantidad_mascotas"
	StepAskRooms       = "preguntar_habitaciones"
	StepShowOffers     = "mostrar_opciones"
	StepAskMealPlan    = "preguntar_plan_alimentacion"
	StepAskName        = "preguntar_nombre"
	StepAskPhone       = "preguntar_telefono"
	StepAskEmail       = "preguntar_correo"
	StepSummary        = "mostrar_resumen"
	StepPaymentDetails = "mostrar_detalles_pago"
	StepConfirm        = "confirmar_reserva"
	StepNoAvailability = "sin_disponibilidad"
	StepNoCombos       = "sin_combinaciones"
)

// forcedNext splices intermediate validation steps into the flow, overriding
// both option matches and the catalog default.
var forcedNext = map[string]string{
	StepAskPeople: StepAskSplit,
	StepAskRooms:  StepShowOffers,
}

// Offer-paging control inputs recognized at the offer-listing step.
const (
	inputNextOffer = "siguiente_opcion"
	inputPrevOffer = "anterior_opcion"
)

// Pricing constants, in COP per person (or pet) per night.
const (
	mealBreakfastLunchRate = 25000
	mealFullBoardRate      = 35000
	petNightlyRate         = 30000
)

// MaxRoomsPerBooking bounds the requested unit count.
const MaxRoomsPerBooking = 20

// ExpiryScheduler schedules the eventual cleanup of an abandoned conversation.
type ExpiryScheduler interface {
	ScheduleExpire(sessionID string) error
}

// ChatService drives conversational booking turns.
type ChatService interface {
	// Advance processes one (session, raw input) turn and returns the
	// rendered response for the resulting step.
	Advance(sessionID, rawInput string) (*models.ChatResponse, error)
	// Reset deletes the session's conversation; no-op if none exists.
	Reset(sessionID string) error
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Steps         stepRepo.StepRepository
	Rooms         roomRepo.RoomRepository
	Conversations convRepo.ConversationRepository
	Availability  inventory.AvailabilityResolver
	Allocator     inventory.Allocator
	Expiry        ExpiryScheduler
	Logger        *zap.Logger
}
