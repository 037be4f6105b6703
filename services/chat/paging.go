package chat

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"posada/models"
	"posada/services/inventory"

	"go.uber.org/zap"
)

// handleOfferInput interprets the guest's input while an offer is on screen.
// Navigation moves the cursor and re-renders, "1" accepts the cached offer at
// the cursor, "2" abandons back to the room-count question. A non-nil
// response ends the turn; handled=true means the input was consumed and the
// generic option matching must not run.
func (s *DefaultChatService) handleOfferInput(conv *models.Conversation, step *models.Step, input string, nextID *string) (*models.ChatResponse, bool, error) {
	switch input {
	case inputNextOffer:
		conv.OfferIndex++
		if conv.OfferIndex >= len(conv.SimulatedOffers) {
			conv.OfferIndex = 0
		}
		*nextID = step.ID
		return nil, true, nil

	case inputPrevOffer:
		if conv.OfferIndex > 0 {
			conv.OfferIndex--
		}
		*nextID = step.ID
		return nil, true, nil

	case "1":
		offer, ok := conv.SimulatedOffers[strconv.Itoa(conv.OfferIndex+1)]
		if !ok {
			*nextID = step.ID
			return nil, true, nil
		}
		conv.ChosenRooms = offer
		conv.ConsecutiveErrors = 0
		*nextID = StepAskMealPlan
		return nil, true, nil

	case "2":
		conv.ConsecutiveErrors = 0
		*nextID = StepAskRooms
		return nil, true, nil

	default:
		resp := respond("❌ Opción no válida. Por favor usa los botones disponibles.",
			step.ID, models.StepDynamicOpts, nil)
		return resp, true, nil
	}
}

// renderOffers recomputes the live offer set for the conversation's dates and
// party, caches it for acceptance, and renders the offer at the cursor.
func (s *DefaultChatService) renderOffers(conv *models.Conversation, step *models.Step, q Quote) (*models.ChatResponse, error) {
	requested := conv.NumRooms
	if requested < 1 {
		requested = 1
	}

	types, err := s.Rooms.GetAllTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to load room catalog: %w", err)
	}
	if conv.HasPets {
		petFriendly := types[:0]
		for _, t := range types {
			if t.AllowsPets {
				petFriendly = append(petFriendly, t)
			}
		}
		types = petFriendly
	}
	if len(types) == 0 {
		return s.noAvailabilityResponse(conv)
	}

	var start, end time.Time
	if conv.StartDate != nil && conv.EndDate != nil {
		start, end = *conv.StartDate, *conv.EndDate
	}
	stock, err := s.Availability.Available(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability: %w", err)
	}

	combos := inventory.GenerateCombinations(types, q.People, requested, conv.HasPets, stock)
	if len(combos) == 0 {
		return s.noCombinationsResponse(conv, requested, q.People)
	}

	if conv.OfferIndex < 0 || conv.OfferIndex >= len(combos) {
		conv.OfferIndex = 0
	}
	combo := combos[conv.OfferIndex]
	msg := offerMessage(&combo, conv.OfferIndex, len(combos), requested, q)

	offers := make(map[string][]models.ChosenRoom, len(combos))
	for i := range combos {
		offers[strconv.Itoa(i+1)] = combos[i].ChosenRooms()
	}
	conv.SimulatedOffers = offers
	conv.LastOfferPrompt = msg
	if err := s.Conversations.Update(conv); err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}

	opts := []models.StepOption{
		{Label: "¡Me encanta, la quiero! 💖", Value: "1", NextID: StepAskMealPlan},
	}
	if len(combos) > 1 {
		opts = append(opts, models.StepOption{Label: "Muéstrame otra opción ➡️", Value: inputNextOffer, NextID: StepShowOffers})
	}
	if conv.OfferIndex > 0 {
		opts = append(opts, models.StepOption{Label: "⬅️ Volver a la anterior", Value: inputPrevOffer, NextID: StepShowOffers})
	}
	opts = append(opts, models.StepOption{Label: "Cancelar / Volver al inicio", Value: "2", NextID: StepAskRooms})

	return respond(msg, step.ID, models.StepDynamicOpts, opts), nil
}

// offerMessage formats one combination as the guest-facing offer card.
func offerMessage(combo *models.Combination, idx, total, requested int, q Quote) string {
	var b strings.Builder

	if total == 1 {
		b.WriteString("✨ **He encontrado esta opción ideal para ti**\n\n")
	} else {
		b.WriteString(fmt.Sprintf("✨ **Opción %d de %d**\n\n", idx+1, total))
	}

	switch {
	case combo.IsMixed:
		b.WriteString("🔀 **COMBINACIÓN MIXTA**\n")
	case combo.Parts[0].Quantity == 1:
		b.WriteString("📦 **HABITACIÓN INDIVIDUAL**\n")
	default:
		b.WriteString("📦 **COMBINACIÓN HOMOGÉNEA**\n")
	}

	for _, p := range combo.Parts {
		b.WriteString(fmt.Sprintf("\n🏡 %d× **%s**\n", p.Quantity, p.Type.Name))
		b.WriteString(fmt.Sprintf("   👥 Capacidad: %d personas por habitación\n", p.Type.Capacity))
		if len(p.Type.Features) > 0 {
			b.WriteString("   ✨ " + strings.Join(p.Type.Features, ", ") + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n👥 Capacidad total: %d personas\n", combo.TotalCapacity))
	if requested > 1 && q.People > 0 {
		perRoom := (q.People + requested - 1) / requested
		b.WriteString(fmt.Sprintf("💡 Sugerencia: aprox. %d personas por habitación\n", perRoom))
	}
	if combo.AllowsPets() {
		b.WriteString("🐾 Mascotas: Sí ✅\n")
	} else {
		b.WriteString("🐾 Mascotas: No ❌\n")
	}

	b.WriteString(fmt.Sprintf("\n💰 Precio por noche: %s\n", formatMoney(combo.PricePerNight)))
	if q.Nights > 0 {
		b.WriteString(fmt.Sprintf("📅 Total (%d noches): %s\n", q.Nights, formatMoney(combo.PricePerNight*q.Nights)))
	}

	b.WriteString("\n👇 **¿Te gustaría asegurar esta estancia única ahora?**")
	return b.String()
}

// noAvailabilityResponse parks the conversation at the no-rooms branch step.
func (s *DefaultChatService) noAvailabilityResponse(conv *models.Conversation) (*models.ChatResponse, error) {
	conv.CurrentStepID = StepNoAvailability
	conv.SimulatedOffers = nil
	if err := s.Conversations.Update(conv); err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}
	s.Logger.Info("no rooms match requirements", zap.String("session", conv.SessionID), zap.Bool("pets", conv.HasPets))

	msg := "❌ **Sin Habitaciones Disponibles**\n\nLo sentimos, no hay habitaciones que cumplan tus requisitos en este momento.\n\nPor favor selecciona:\n1. Modificar número de personas\n2. Cambiar preferencia de mascotas\n3. Volver al inicio"
	return respond(msg, StepNoAvailability, models.StepStatic, []models.StepOption{
		{Label: "1", Value: "1", NextID: StepAskPeople},
		{Label: "2", Value: "2", NextID: StepAskPets},
		{Label: "3", Value: "3", NextID: StepWelcome},
	}), nil
}

// noCombinationsResponse parks the conversation at the no-combinations branch
// step when rooms exist but none cover the requested split.
func (s *DefaultChatService) noCombinationsResponse(conv *models.Conversation, requested, people int) (*models.ChatResponse, error) {
	conv.CurrentStepID = StepNoCombos
	conv.SimulatedOffers = nil
	if err := s.Conversations.Update(conv); err != nil {
		return nil, fmt.Errorf("failed to persist conversation: %w", err)
	}
	s.Logger.Info("no combinations cover request",
		zap.String("session", conv.SessionID), zap.Int("rooms", requested), zap.Int("people", people))

	msg := fmt.Sprintf("❌ **Sin Combinaciones Disponibles**\n\nNo encontramos combinaciones para %d habitaciones y %d personas.\n\nPor favor selecciona:\n1. Cambiar número de habitaciones\n2. Cambiar cantidad de personas\n3. Cambiar preferencia de mascotas\n4. Volver al inicio", requested, people)
	return respond(msg, StepNoCombos, models.StepStatic, []models.StepOption{
		{Label: "1", Value: "1", NextID: StepAskRooms},
		{Label: "2", Value: "2", NextID: StepAskPeople},
		{Label: "3", Value: "3", NextID: StepAskPets},
		{Label: "4", Value: "4", NextID: StepWelcome},
	}), nil
}
