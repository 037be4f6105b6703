package chat

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"posada/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Advance processes one conversational turn: it validates the raw input
// against the current step's contract, mutates the conversation, resolves the
// next step and renders its prompt. Recoverable problems (bad input, missing
// fields, empty offer sets) come back as chat responses; only store failures
// surface as errors.
func (s *DefaultChatService) Advance(sessionID, rawInput string) (*models.ChatResponse, error) {
	conv, err := s.Conversations.GetBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	// First contact: pin a fresh conversation at the entry step and show its
	// prompt without consuming input.
	if conv == nil {
		conv = &models.Conversation{
			ID:            uuid.New().String(),
			SessionID:     sessionID,
			CurrentStepID: StepWelcome,
			Status:        models.StatusPending,
		}
		if err := s.Conversations.Create(conv); err != nil {
			return nil, fmt.Errorf("failed to create conversation: %w", err)
		}
		if s.Expiry != nil {
			if err := s.Expiry.ScheduleExpire(sessionID); err != nil {
				s.Logger.Warn("failed to schedule conversation expiry", zap.String("session", sessionID), zap.Error(err))
			}
		}

		welcome, err := s.Steps.GetByID(StepWelcome)
		if err != nil {
			return nil, fmt.Errorf("failed to load entry step: %w", err)
		}
		if welcome == nil {
			resp := respond("⚠️ No se encontró el paso \"bienvenida\" en la base de datos. Ejecuta el seed para cargar el flujo del chat.",
				StepWelcome, models.StepStatic, nil)
			resp.HTTPStatus = http.StatusInternalServerError
			return resp, nil
		}
		return respond(welcome.Prompt, welcome.ID, welcome.Kind, welcome.Options), nil
	}

	step, err := s.Steps.GetByID(conv.CurrentStepID)
	if err != nil {
		return nil, fmt.Errorf("failed to load step %q: %w", conv.CurrentStepID, err)
	}
	if step == nil {
		s.Logger.Warn("conversation points at unknown step",
			zap.String("session", sessionID), zap.String("step", conv.CurrentStepID),
			zap.Error(NewFlowError(conv.CurrentStepID)))
		resp := respond("Error en el flujo de conversación. Por favor reinicia el chat.",
			StepWelcome, models.StepStatic, nil)
		resp.Error = "Paso no encontrado"
		resp.HTTPStatus = http.StatusBadRequest
		return resp, nil
	}

	// A contentless turn at the entry step just re-shows the welcome prompt.
	if rawInput == "" && conv.CurrentStepID == StepWelcome {
		return respond(step.Prompt, step.ID, step.Kind, step.Options), nil
	}

	// Anti-tampering guard: inputs trying to drive the option linkage
	// directly never advance the flow.
	if strings.Contains(rawInput, "siguiente_id") {
		return respond("❌ **Acceso no permitido**\n\nPor favor sigue el flujo normal de la conversación.",
			step.ID, step.Kind, step.Options), nil
	}

	input := rawInput
	nextID := step.NextID
	offerHandled := false

	// Offer paging navigation is resolved against the cached offer set
	// before anything else.
	if step.ID == StepShowOffers && conv.SimulatedOffers != nil {
		resp, handled, err := s.handleOfferInput(conv, step, input, &nextID)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			return resp, nil
		}
		offerHandled = handled
	}

	if !offerHandled && step.HasOptions() {
		resp, err := s.resolveOption(conv, step, input, &nextID)
		if err != nil {
			return nil, err
		}
		if resp != nil {
			return resp, nil
		}
	}

	if !offerHandled && step.Variable != "" {
		if resp := s.applyInput(conv, step, input); resp != nil {
			return resp, nil
		}
	}

	if forced, ok := forcedNext[step.ID]; ok {
		nextID = forced
	}

	// The summary is only reachable with every mandatory field in place.
	if nextID == StepSummary {
		if missing := missingFields(conv); len(missing) > 0 {
			if err := s.Conversations.Update(conv); err != nil {
				return nil, fmt.Errorf("failed to persist conversation: %w", err)
			}
			return respond(missingFieldsMessage(missing), conv.CurrentStepID, step.Kind, step.Options), nil
		}
	}

	conv.CurrentStepID = nextID

	// A store failure here aborts the turn before anything is persisted;
	// shortfalls are absorbed inside Commit and never reach this path.
	if nextID == StepConfirm {
		if _, err := s.Allocator.Commit(conv); err != nil {
			s.Logger.Error("unit allocation failed", zap.String("session", sessionID), zap.Error(err))
			return nil, fmt.Errorf("failed to allocate units: %w", err)
		}
	}

	if err := s.Conversations.Update(conv); err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}

	next, err := s.Steps.GetByID(nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to load step %q: %w", nextID, err)
	}
	if next == nil {
		s.Logger.Warn("flow resolved to unknown step",
			zap.String("session", sessionID), zap.String("step", nextID),
			zap.Error(NewFlowError(nextID)))
		resp := respond("Error: Paso no encontrado", conv.CurrentStepID, models.StepStatic, nil)
		resp.HTTPStatus = http.StatusBadRequest
		return resp, nil
	}

	return s.renderStep(conv, next)
}

// Reset deletes the session's conversation; resetting an unknown session is
// not an error.
func (s *DefaultChatService) Reset(sessionID string) error {
	if err := s.Conversations.DeleteBySessionID(sessionID); err != nil {
		return fmt.Errorf("failed to reset session %s: %w", sessionID, err)
	}
	return nil
}

// resolveOption matches the input against the step's options, applying the
// step-specific side effect on a hit and driving the two-strike fallback on
// misses. A non-nil response ends the turn without advancing.
func (s *DefaultChatService) resolveOption(conv *models.Conversation, step *models.Step, input string, nextID *string) (*models.ChatResponse, error) {
	// Two strikes already: the previous turn offered the forced fallback and
	// this input answers it.
	if conv.ConsecutiveErrors >= 2 {
		switch input {
		case "1":
			conv.ConsecutiveErrors = 0
			if err := s.Conversations.Update(conv); err != nil {
				return nil, fmt.Errorf("failed to persist conversation: %w", err)
			}
			return respond(step.Prompt, step.ID, step.Kind, step.Options), nil
		case "2":
			conv.ConsecutiveErrors = 0
			conv.CurrentStepID = StepWelcome
			if err := s.Conversations.Update(conv); err != nil {
				return nil, fmt.Errorf("failed to persist conversation: %w", err)
			}
			welcome, err := s.Steps.GetByID(StepWelcome)
			if err != nil || welcome == nil {
				return nil, fmt.Errorf("failed to load entry step: %w", err)
			}
			return respond(welcome.Prompt, welcome.ID, welcome.Kind, welcome.Options), nil
		default:
			return fallbackResponse(step), nil
		}
	}

	opt, ok := step.MatchOption(input)
	if !ok {
		conv.ConsecutiveErrors++
		if err := s.Conversations.Update(conv); err != nil {
			return nil, fmt.Errorf("failed to persist conversation: %w", err)
		}
		if conv.ConsecutiveErrors == 1 {
			labels := make([]string, 0, len(step.Options))
			for _, o := range step.Options {
				labels = append(labels, o.Label)
			}
			msg := fmt.Sprintf("Opción no válida. Por favor responde únicamente con [%s].\n%s",
				strings.Join(labels, ", "), step.Prompt)
			return respond(msg, step.ID, step.Kind, step.Options), nil
		}
		return fallbackResponse(step), nil
	}

	*nextID = opt.NextID
	conv.ConsecutiveErrors = 0

	switch step.ID {
	case StepAskPets:
		conv.HasPets = opt.Value == "yes"
	case StepAskPetCount:
		if n, err := strconv.Atoi(opt.Value); err == nil {
			conv.NumPets = n
		}
	case StepAskMealPlan:
		conv.MealPlan = opt.Value
	case StepSummary:
		conv.PaymentMethod = opt.Value
	}
	return nil, nil
}

func fallbackResponse(step *models.Step) *models.ChatResponse {
	return respond(
		"Has ingresado una opción inválida dos veces.\n\nPor favor selecciona:\n1. Intentar nuevamente\n2. Regresar al menú principal",
		step.ID, models.StepStatic, []models.StepOption{
			{Label: "1", Value: "1", NextID: step.ID},
			{Label: "2", Value: "2", NextID: StepWelcome},
		})
}

// missingFields returns the mandatory data still absent before the summary.
func missingFields(conv *models.Conversation) []string {
	var missing []string
	if strings.TrimSpace(conv.GuestName) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(conv.GuestPhone) == "" {
		missing = append(missing, "teléfono")
	}
	if strings.TrimSpace(conv.GuestEmail) == "" {
		missing = append(missing, "correo")
	}
	if conv.StartDate == nil {
		missing = append(missing, "fecha de inicio")
	}
	if conv.EndDate == nil {
		missing = append(missing, "fecha de fin")
	}
	if conv.NumAdults < 1 {
		missing = append(missing, "número de adultos")
	}
	if conv.NumRooms < 1 {
		missing = append(missing, "número de habitaciones")
	}
	if len(conv.ChosenRooms) == 0 {
		missing = append(missing, "selección de habitación")
	}
	return missing
}

func missingFieldsMessage(missing []string) string {
	var b strings.Builder
	b.WriteString("❌ **Información incompleta**\n\nFaltan los siguientes datos obligatorios:\n")
	for _, field := range missing {
		b.WriteString("• " + field + "\n")
	}
	b.WriteString("\nPor favor completa toda la información antes de continuar.")
	return b.String()
}

// renderStep interpolates the step's prompt against the conversation, or
// hands off to offer paging for computed-offer steps.
func (s *DefaultChatService) renderStep(conv *models.Conversation, step *models.Step) (*models.ChatResponse, error) {
	q := quote(conv)

	if step.Kind == models.StepDynamicOpts {
		return s.renderOffers(conv, step, q)
	}

	roomNumbers := "Pendiente de asignación"
	if len(conv.AssignedUnits) > 0 {
		units, err := s.Rooms.GetUnitsByIDs(conv.AssignedUnits)
		if err != nil {
			s.Logger.Warn("failed to resolve assigned unit numbers", zap.Error(err))
		} else {
			roomNumbers = formatUnitNumbers(units)
		}
	}

	rc := renderContext(conv, q, roomNumbers)
	return respond(rc.Apply(step.Prompt), step.ID, step.Kind, step.Options), nil
}
