package chat

import (
	"testing"
	"time"

	"posada/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateStep() *models.Step {
	return &models.Step{ID: StepAskDates, Kind: models.StepInputDate, Variable: "rangoFechas", NextID: StepAskPeople}
}

func newService() *DefaultChatService {
	return &DefaultChatService{}
}

func TestApplyDateRangeAcceptsSlashFormat(t *testing.T) {
	svc := newService()
	conv := &models.Conversation{}

	resp := svc.applyInput(conv, dateStep(), "20/03/2026 - 23/03/2026")
	require.Nil(t, resp)

	require.NotNil(t, conv.StartDate)
	require.NotNil(t, conv.EndDate)
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), *conv.StartDate)
	assert.Equal(t, time.Date(2026, 3, 23, 0, 0, 0, 0, time.UTC), *conv.EndDate)
	assert.Equal(t, 3, conv.Nights())
}

func TestApplyDateRangeAcceptsISOAndShortYears(t *testing.T) {
	svc := newService()

	conv := &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, dateStep(), "2026-03-20 - 2026-03-23"))
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), *conv.StartDate)

	conv = &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, dateStep(), "20-03-2026 - 23-03-2026"))
	assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), *conv.StartDate)

	conv = &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, dateStep(), "20/03/26 - 23/03/26"))
	assert.Equal(t, 2026, conv.StartDate.Year())

	// Slash dates typed without spaces around the separator.
	conv = &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, dateStep(), "20/03/2026-23/03/2026"))
	assert.Equal(t, 3, conv.Nights())
}

func TestApplyDateRangeRejections(t *testing.T) {
	svc := newService()

	cases := []struct {
		name  string
		input string
	}{
		{"no separator", "20/03/2026"},
		{"garbage", "hola"},
		{"end before start", "23/03/2026 - 20/03/2026"},
		{"same day", "20/03/2026 - 20/03/2026"},
		{"calendar normalized away", "31/02/2026 - 02/03/2026"},
		{"non numeric parts", "aa/bb/cccc - 23/03/2026"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conv := &models.Conversation{}
			resp := svc.applyInput(conv, dateStep(), tc.input)
			require.NotNil(t, resp)
			assert.Equal(t, StepAskDates, resp.CurrentStepID)
			assert.Nil(t, conv.StartDate)
		})
	}
}

func TestApplyPartySize(t *testing.T) {
	svc := newService()
	step := &models.Step{ID: StepAskPeople, Kind: models.StepInputNumber, Variable: "totalPersonas"}

	conv := &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, step, " 4 "))
	assert.Equal(t, 4, conv.TotalPeople)

	for _, bad := range []string{"0", "-1", "muchas"} {
		conv := &models.Conversation{}
		assert.NotNil(t, svc.applyInput(conv, step, bad))
		assert.Zero(t, conv.TotalPeople)
	}
}

func TestApplyPeopleSplit(t *testing.T) {
	svc := newService()
	step := &models.Step{ID: StepAskSplit, Kind: models.StepInputSplit, Variable: "distribucionPersonas"}

	conv := &models.Conversation{TotalPeople: 3}
	require.Nil(t, svc.applyInput(conv, step, "Adultos: 2, Niños: 1"))
	assert.Equal(t, 2, conv.NumAdults)
	assert.Equal(t, 1, conv.NumChildren)
	assert.Equal(t, 3, conv.People())

	// Sum must match the declared party size.
	conv = &models.Conversation{TotalPeople: 3}
	resp := svc.applyInput(conv, step, "Adultos: 2, Niños: 2")
	require.NotNil(t, resp)
	assert.Contains(t, resp.Message, "Cantidad incorrecta")

	// At least one adult.
	conv = &models.Conversation{TotalPeople: 2}
	resp = svc.applyInput(conv, step, "Adultos: 0, Niños: 2")
	require.NotNil(t, resp)
	assert.Contains(t, resp.Message, "Adultos insuficientes")

	// Both values required.
	conv = &models.Conversation{TotalPeople: 2}
	assert.NotNil(t, svc.applyInput(conv, step, "somos dos adultos"))
}

func TestApplyRoomCount(t *testing.T) {
	svc := newService()
	step := &models.Step{ID: StepAskRooms, Kind: models.StepInputNumber, Variable: "numHabitaciones"}

	conv := &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, step, "3"))
	assert.Equal(t, 3, conv.NumRooms)

	conv = &models.Conversation{}
	resp := svc.applyInput(conv, step, "21")
	require.NotNil(t, resp)
	assert.Contains(t, resp.Message, "Sin Capacidad")

	conv = &models.Conversation{}
	assert.NotNil(t, svc.applyInput(conv, step, "cero"))
}

func TestApplyGuestName(t *testing.T) {
	svc := newService()
	step := &models.Step{ID: StepAskName, Kind: models.StepInputText, Variable: "nombreUsuario"}

	conv := &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, step, "María García López"))
	assert.Equal(t, "María García López", conv.GuestName)

	cases := []struct {
		name  string
		input string
	}{
		{"digits", "Maria123 Lopez"},
		{"single word", "María"},
		{"symbols", "Ana <script>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conv := &models.Conversation{}
			assert.NotNil(t, svc.applyInput(conv, step, tc.input))
			assert.Empty(t, conv.GuestName)
		})
	}
}

func TestApplyGuestPhone(t *testing.T) {
	svc := newService()
	step := &models.Step{ID: StepAskPhone, Kind: models.StepInputText, Variable: "telefonoUsuario"}

	conv := &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, step, "3211234567"))
	assert.Equal(t, "3211234567", conv.GuestPhone)

	for _, bad := range []string{"321123456", "32112345678", "321-123-4567", "telefono"} {
		conv := &models.Conversation{}
		assert.NotNil(t, svc.applyInput(conv, step, bad))
	}
}

func TestApplyGuestEmailNormalizesCase(t *testing.T) {
	svc := newService()
	step := &models.Step{ID: StepAskEmail, Kind: models.StepInputText, Variable: "correoUsuario"}

	conv := &models.Conversation{}
	require.Nil(t, svc.applyInput(conv, step, "Maria.Garcia@Ejemplo.COM"))
	assert.Equal(t, "maria.garcia@ejemplo.com", conv.GuestEmail)

	for _, bad := range []string{"maria", "maria@", "@ejemplo.com", "maria garcia@ejemplo.com"} {
		conv := &models.Conversation{}
		assert.NotNil(t, svc.applyInput(conv, step, bad))
	}
}
