package chat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"posada/models"
)

// mealPlanNames maps stored meal-plan values to their display labels.
var mealPlanNames = map[string]string{
	models.MealBreakfastOnly:  "Solo desayuno (Lo esencial) ☕",
	models.MealBreakfastLunch: "Desayuno + Almuerzo (¡Ideal para recorrer!) 🍛",
	models.MealFullBoard:      "Plan Gourmet Completo ⭐",
	models.MealNone:           "Sin alimentación",
}

// Quote is every derived amount a prompt can reference, computed fresh from
// the conversation on each render.
type Quote struct {
	Nights            int
	People            int
	RoomPricePerNight int
	RoomTotal         int
	MealCost          int
	PetCost           int
	Total             int
	RoomLabel         string
}

// quote derives the pricing figures for the conversation's current state.
func quote(conv *models.Conversation) Quote {
	q := Quote{
		Nights:    conv.Nights(),
		People:    conv.People(),
		RoomLabel: "No seleccionada",
	}

	if len(conv.ChosenRooms) > 0 {
		for _, room := range conv.ChosenRooms {
			q.RoomPricePerNight += room.BasePrice * room.Quantity
		}
		q.RoomTotal = q.RoomPricePerNight * q.Nights
		q.RoomLabel = roomLabel(conv.ChosenRooms)
	}

	switch conv.MealPlan {
	case models.MealBreakfastLunch:
		q.MealCost = mealBreakfastLunchRate * q.People * q.Nights
	case models.MealFullBoard:
		q.MealCost = mealFullBoardRate * q.People * q.Nights
	}

	if conv.HasPets && conv.NumPets > 0 {
		q.PetCost = petNightlyRate * conv.NumPets * q.Nights
	}

	q.Total = q.RoomTotal + q.MealCost + q.PetCost
	return q
}

func roomLabel(rooms []models.ChosenRoom) string {
	if len(rooms) == 1 {
		if rooms[0].Quantity > 1 {
			return fmt.Sprintf("%d× %s", rooms[0].Quantity, rooms[0].Name)
		}
		return rooms[0].Name
	}
	parts := make([]string, 0, len(rooms))
	for _, room := range rooms {
		parts = append(parts, fmt.Sprintf("%d× %s", room.Quantity, room.Name))
	}
	return strings.Join(parts, " + ")
}

// renderContext assembles the full placeholder set for a conversation. Unit
// numbers are resolved by the caller since they need a repository read.
func renderContext(conv *models.Conversation, q Quote, roomNumbers string) *RenderContext {
	rc := &RenderContext{
		TotalPeople:        strconv.Itoa(q.People),
		PeopleBreakdown:    fmt.Sprintf("%d adultos, %d niños", conv.NumAdults, conv.NumChildren),
		HasPetsStatus:      "No",
		GuestName:          conv.GuestName,
		GuestPhone:         conv.GuestPhone,
		GuestEmail:         conv.GuestEmail,
		PaymentMethod:      "No seleccionado",
		TotalPrice:         formatMoney(q.Total),
		RoomType:           q.RoomLabel,
		RoomNumbers:        roomNumbers,
		RoomPricePerNight:  formatMoney(q.RoomPricePerNight),
		RoomTotal:          formatMoney(q.RoomTotal),
		Nights:             strconv.Itoa(q.Nights),
		MealPlanName:       "No seleccionado",
		MealPlanCost:       formatMoney(q.MealCost),
		PetCost:            formatMoney(q.PetCost),
		SelectedOptionName: q.RoomLabel,
		AdditionalServices: "Servicios estándar",
	}
	if conv.StartDate != nil {
		rc.StartDate = conv.StartDate.Format(dateLayout)
	}
	if conv.EndDate != nil {
		rc.EndDate = conv.EndDate.Format(dateLayout)
	}
	if conv.HasPets {
		rc.HasPetsStatus = fmt.Sprintf("Sí (%d 🐾)", conv.NumPets)
		rc.AdditionalServices = "Área especial para mascotas 🐾"
	}
	if conv.PaymentMethod != "" {
		rc.PaymentMethod = conv.PaymentMethod
	}
	if name, ok := mealPlanNames[conv.MealPlan]; ok {
		rc.MealPlanName = name
	}
	return rc
}

// formatUnitNumbers renders the assigned physical room numbers, sorted.
func formatUnitNumbers(units []models.RoomUnit) string {
	if len(units) == 0 {
		return "Pendiente de asignación"
	}
	numbers := make([]string, 0, len(units))
	for _, u := range units {
		numbers = append(numbers, u.Number)
	}
	sort.Strings(numbers)
	return strings.Join(numbers, ", ")
}
