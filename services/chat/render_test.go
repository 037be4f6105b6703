package chat

import (
	"testing"
	"time"

	"posada/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContextApply(t *testing.T) {
	rc := &RenderContext{
		GuestName:  "María García",
		TotalPrice: "$360.000",
		Nights:     "3",
	}

	out := rc.Apply("Hola {nombreUsuario}, total {totalPrice} por {noches} noches")
	assert.Equal(t, "Hola María García, total $360.000 por 3 noches", out)
}

func TestRenderContextApplyLeavesUnknownTokens(t *testing.T) {
	rc := &RenderContext{}
	out := rc.Apply("valor {desconocido} queda igual")
	assert.Equal(t, "valor {desconocido} queda igual", out)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$30.000", formatMoney(30000))
	assert.Equal(t, "$1.500.000", formatMoney(1500000))
	assert.Equal(t, "$0", formatMoney(0))
}

func TestSortedOptionsNumericBeforeLocale(t *testing.T) {
	opts := []models.StepOption{
		{Label: "10", Value: "10"},
		{Label: "2", Value: "2"},
		{Label: "1", Value: "1"},
	}

	sorted := sortedOptions(opts)
	assert.Equal(t, "1", sorted[0].Label)
	assert.Equal(t, "2", sorted[1].Label)
	assert.Equal(t, "10", sorted[2].Label)
	// Input untouched.
	assert.Equal(t, "10", opts[0].Label)
}

func TestSortedOptionsSpanishCollation(t *testing.T) {
	opts := []models.StepOption{
		{Label: "Sí", Value: "yes"},
		{Label: "No", Value: "no"},
	}

	sorted := sortedOptions(opts)
	assert.Equal(t, "No", sorted[0].Label)
	assert.Equal(t, "Sí", sorted[1].Label)
}

func TestQuoteDerivesAllCosts(t *testing.T) {
	start := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC)
	conv := &models.Conversation{
		StartDate:   &start,
		EndDate:     &end,
		NumAdults:   2,
		NumChildren: 0,
		HasPets:     true,
		NumPets:     1,
		MealPlan:    models.MealBreakfastLunch,
		ChosenRooms: []models.ChosenRoom{
			{TypeID: "confort", Quantity: 2, BasePrice: 120000, Name: "Doble Confort"},
		},
	}

	q := quote(conv)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 2, q.People)
	assert.Equal(t, 240000, q.RoomPricePerNight)
	assert.Equal(t, 720000, q.RoomTotal)
	assert.Equal(t, 150000, q.MealCost) // 25000 x 2 people x 3 nights
	assert.Equal(t, 90000, q.PetCost)   // 30000 x 1 pet x 3 nights
	assert.Equal(t, 960000, q.Total)
	assert.Equal(t, "2× Doble Confort", q.RoomLabel)
}

func TestQuoteWithNothingChosen(t *testing.T) {
	q := quote(&models.Conversation{})
	assert.Zero(t, q.Total)
	assert.Equal(t, "No seleccionada", q.RoomLabel)
}

func TestRenderContextDefaults(t *testing.T) {
	conv := &models.Conversation{}
	rc := renderContext(conv, quote(conv), "Pendiente de asignación")

	assert.Equal(t, "No", rc.HasPetsStatus)
	assert.Equal(t, "No seleccionado", rc.PaymentMethod)
	assert.Equal(t, "No seleccionado", rc.MealPlanName)
	assert.Equal(t, "Servicios estándar", rc.AdditionalServices)
	assert.Equal(t, "Pendiente de asignación", rc.RoomNumbers)
}

func TestRenderContextWithPets(t *testing.T) {
	conv := &models.Conversation{HasPets: true, NumPets: 2, PaymentMethod: "Nequi"}
	rc := renderContext(conv, quote(conv), "")

	assert.Equal(t, "Sí (2 🐾)", rc.HasPetsStatus)
	assert.Equal(t, "Área especial para mascotas 🐾", rc.AdditionalServices)
	assert.Equal(t, "Nequi", rc.PaymentMethod)
}

func TestFormatUnitNumbers(t *testing.T) {
	units := []models.RoomUnit{
		{ID: "u2", Number: "105"},
		{ID: "u1", Number: "101"},
	}
	assert.Equal(t, "101, 105", formatUnitNumbers(units))
	assert.Equal(t, "Pendiente de asignación", formatUnitNumbers(nil))
}

func TestOfferMessageSingleOption(t *testing.T) {
	combo := &models.Combination{
		Parts: []models.CombinationPart{
			{Type: models.RoomType{ID: "suite", Name: "Suite Familiar", BasePrice: 480000, Capacity: 6, AllowsPets: true}, Quantity: 1},
		},
		TotalCapacity: 6,
		PricePerNight: 480000,
	}

	msg := offerMessage(combo, 0, 1, 1, Quote{Nights: 2, People: 4})
	assert.Contains(t, msg, "He encontrado esta opción ideal")
	assert.Contains(t, msg, "HABITACIÓN INDIVIDUAL")
	assert.Contains(t, msg, "Suite Familiar")
	assert.Contains(t, msg, "Mascotas: Sí ✅")
	assert.Contains(t, msg, "$480.000")
	assert.Contains(t, msg, "Total (2 noches): $960.000")
}

func TestOfferMessageMixedPaged(t *testing.T) {
	combo := &models.Combination{
		Parts: []models.CombinationPart{
			{Type: models.RoomType{ID: "doble", Name: "Doble Económica", BasePrice: 60000, Capacity: 2}, Quantity: 1},
			{Type: models.RoomType{ID: "confort", Name: "Doble Confort", BasePrice: 120000, Capacity: 2, AllowsPets: true}, Quantity: 1},
		},
		TotalCapacity: 4,
		PricePerNight: 180000,
		IsMixed:       true,
	}

	msg := offerMessage(combo, 1, 5, 2, Quote{Nights: 3, People: 4})
	assert.Contains(t, msg, "Opción 2 de 5")
	assert.Contains(t, msg, "COMBINACIÓN MIXTA")
	assert.Contains(t, msg, "aprox. 2 personas por habitación")
	// One leg refuses pets, so the combination does.
	assert.Contains(t, msg, "Mascotas: No ❌")
}

func TestRespondDefaultsKindAndNormalizesOptions(t *testing.T) {
	resp := respond("hola", StepWelcome, "", nil)
	require.NotNil(t, resp)
	assert.Equal(t, models.StepStatic, resp.Kind)
	assert.NotNil(t, resp.Options)
	assert.Empty(t, resp.Options)
}
