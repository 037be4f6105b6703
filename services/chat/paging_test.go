package chat

import (
	"testing"

	"posada/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offerConversation(c *models.Conversation) {
	completeConversation(c)
	c.ChosenRooms = nil
	c.CurrentStepID = StepShowOffers
}

func TestRenderOffersCachesSetAndShowsCheapest(t *testing.T) {
	f := newFlowFixture()
	f.conversationAt("sess", StepAskRooms, func(c *models.Conversation) {
		offerConversation(c)
		c.CurrentStepID = StepAskRooms
	})

	resp, err := f.svc.Advance("sess", "1")
	require.NoError(t, err)

	assert.Equal(t, StepShowOffers, resp.CurrentStepID)
	assert.Equal(t, models.StepDynamicOpts, resp.Kind)
	assert.Contains(t, resp.Message, "Doble Económica")

	stored := f.convs.convs["sess"]
	require.NotNil(t, stored.SimulatedOffers)
	assert.Equal(t, 2, len(stored.SimulatedOffers))
	assert.Zero(t, stored.OfferIndex)
	// Cheapest offer sits at position 1.
	assert.Equal(t, "doble", stored.SimulatedOffers["1"][0].TypeID)

	var values []string
	for _, o := range resp.Options {
		values = append(values, o.Value)
	}
	assert.Contains(t, values, "1")
	assert.Contains(t, values, inputNextOffer)
	assert.Contains(t, values, "2")
	assert.NotContains(t, values, inputPrevOffer)
}

func TestOfferNavigationNextWrapsAround(t *testing.T) {
	f := newFlowFixture()
	f.conversationAt("sess", StepShowOffers, func(c *models.Conversation) {
		offerConversation(c)
		c.OfferIndex = 1
		c.SimulatedOffers = map[string][]models.ChosenRoom{
			"1": {{TypeID: "doble", Quantity: 1, BasePrice: 60000, Name: "Doble Económica"}},
			"2": {{TypeID: "confort", Quantity: 1, BasePrice: 120000, Name: "Doble Confort"}},
		}
	})

	resp, err := f.svc.Advance("sess", inputNextOffer)
	require.NoError(t, err)

	assert.Equal(t, StepShowOffers, resp.CurrentStepID)
	assert.Contains(t, resp.Message, "Opción 1 de 2")
	assert.Zero(t, f.convs.convs["sess"].OfferIndex)
}

func TestOfferNavigationPrevFloorsAtFirst(t *testing.T) {
	f := newFlowFixture()
	f.conversationAt("sess", StepShowOffers, func(c *models.Conversation) {
		offerConversation(c)
		c.SimulatedOffers = map[string][]models.ChosenRoom{
			"1": {{TypeID: "doble", Quantity: 1, BasePrice: 60000, Name: "Doble Económica"}},
			"2": {{TypeID: "confort", Quantity: 1, BasePrice: 120000, Name: "Doble Confort"}},
		}
	})

	resp, err := f.svc.Advance("sess", inputPrevOffer)
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Opción 1 de 2")
	assert.Zero(t, f.convs.convs["sess"].OfferIndex)
}

func TestOfferAcceptanceUsesCachedOfferAtCursor(t *testing.T) {
	f := newFlowFixture()
	f.conversationAt("sess", StepShowOffers, func(c *models.Conversation) {
		offerConversation(c)
		c.OfferIndex = 1
		c.SimulatedOffers = map[string][]models.ChosenRoom{
			"1": {{TypeID: "doble", Quantity: 1, BasePrice: 60000, Name: "Doble Económica"}},
			"2": {{TypeID: "confort", Quantity: 1, BasePrice: 120000, Name: "Doble Confort"}},
		}
	})

	resp, err := f.svc.Advance("sess", "1")
	require.NoError(t, err)

	assert.Equal(t, StepAskMealPlan, resp.CurrentStepID)
	stored := f.convs.convs["sess"]
	require.Len(t, stored.ChosenRooms, 1)
	assert.Equal(t, "confort", stored.ChosenRooms[0].TypeID)
}

func TestOfferCancelReturnsToRoomCount(t *testing.T) {
	f := newFlowFixture()
	f.conversationAt("sess", StepShowOffers, func(c *models.Conversation) {
		offerConversation(c)
		c.SimulatedOffers = map[string][]models.ChosenRoom{
			"1": {{TypeID: "doble", Quantity: 1, BasePrice: 60000, Name: "Doble Económica"}},
		}
	})

	resp, err := f.svc.Advance("sess", "2")
	require.NoError(t, err)

	assert.Equal(t, StepAskRooms, resp.CurrentStepID)
	assert.Equal(t, StepAskRooms, f.convs.convs["sess"].CurrentStepID)
}

func TestOfferUnknownInputRepeatsControls(t *testing.T) {
	f := newFlowFixture()
	f.conversationAt("sess", StepShowOffers, func(c *models.Conversation) {
		offerConversation(c)
		c.SimulatedOffers = map[string][]models.ChosenRoom{
			"1": {{TypeID: "doble", Quantity: 1, BasePrice: 60000, Name: "Doble Económica"}},
		}
	})

	resp, err := f.svc.Advance("sess", "quiero la azul")
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Opción no válida")
	assert.Equal(t, StepShowOffers, resp.CurrentStepID)
	assert.Equal(t, models.StepDynamicOpts, resp.Kind)
}

func TestRenderOffersPetFilterNarrowsTypes(t *testing.T) {
	f := newFlowFixture()
	f.conversationAt("sess", StepAskRooms, func(c *models.Conversation) {
		offerConversation(c)
		c.CurrentStepID = StepAskRooms
		c.HasPets = true
		c.NumPets = 1
	})

	resp, err := f.svc.Advance("sess", "1")
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Doble Confort")
	assert.NotContains(t, resp.Message, "Doble Económica")

	stored := f.convs.convs["sess"]
	assert.Equal(t, 1, len(stored.SimulatedOffers))
}

func TestRenderOffersNoCombinationsParksOnBranchStep(t *testing.T) {
	f := newFlowFixture()
	f.svc.Availability = &stubAvailability{stock: map[string]int{}}
	f.conversationAt("sess", StepAskRooms, func(c *models.Conversation) {
		offerConversation(c)
		c.CurrentStepID = StepAskRooms
	})

	resp, err := f.svc.Advance("sess", "1")
	require.NoError(t, err)

	assert.Equal(t, StepNoCombos, resp.CurrentStepID)
	assert.Contains(t, resp.Message, "Sin Combinaciones")
	assert.Equal(t, StepNoCombos, f.convs.convs["sess"].CurrentStepID)
	assert.Nil(t, f.convs.convs["sess"].SimulatedOffers)
}

func TestRenderOffersNoPetFriendlyTypesParksOnAvailabilityStep(t *testing.T) {
	f := newFlowFixture()
	f.svc.Rooms = &stubRoomRepo{
		types: []models.RoomType{
			{ID: "doble", Name: "Doble Económica", BasePrice: 60000, Capacity: 2},
		},
	}
	f.conversationAt("sess", StepAskRooms, func(c *models.Conversation) {
		offerConversation(c)
		c.CurrentStepID = StepAskRooms
		c.HasPets = true
	})

	resp, err := f.svc.Advance("sess", "1")
	require.NoError(t, err)

	assert.Equal(t, StepNoAvailability, resp.CurrentStepID)
	assert.Contains(t, resp.Message, "Sin Habitaciones Disponibles")
}
