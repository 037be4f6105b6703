package chat

import (
	"sort"
	"strconv"
	"strings"

	"posada/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderContext carries every placeholder a prompt template can reference.
// Substitution is exhaustive over these fields; a token outside this set is
// left in the rendered text as-is.
type RenderContext struct {
	StartDate          string
	EndDate            string
	TotalPeople        string
	PeopleBreakdown    string
	HasPetsStatus      string
	GuestName          string
	GuestPhone         string
	GuestEmail         string
	PaymentMethod      string
	TotalPrice         string
	RoomType           string
	RoomNumbers        string
	RoomPricePerNight  string
	RoomTotal          string
	Nights             string
	MealPlanName       string
	MealPlanCost       string
	PetCost            string
	SelectedOptionName string
	AdditionalServices string
}

// Apply substitutes the context into a prompt template.
func (rc *RenderContext) Apply(template string) string {
	replacer := strings.NewReplacer(
		"{startDate}", rc.StartDate,
		"{endDate}", rc.EndDate,
		"{totalPeople}", rc.TotalPeople,
		"{peopleBreakdown}", rc.PeopleBreakdown,
		"{hasPetsStatus}", rc.HasPetsStatus,
		"{nombreUsuario}", rc.GuestName,
		"{telefonoUsuario}", rc.GuestPhone,
		"{correoUsuario}", rc.GuestEmail,
		"{paymentMethod}", rc.PaymentMethod,
		"{totalPrice}", rc.TotalPrice,
		"{roomType}", rc.RoomType,
		"{roomNumbers}", rc.RoomNumbers,
		"{roomPricePerNight}", rc.RoomPricePerNight,
		"{roomTotal}", rc.RoomTotal,
		"{noches}", rc.Nights,
		"{mealPlanName}", rc.MealPlanName,
		"{mealPlanCost}", rc.MealPlanCost,
		"{petCost}", rc.PetCost,
		"{selectedOptionName}", rc.SelectedOptionName,
		"{additionalServices}", rc.AdditionalServices,
	)
	return replacer.Replace(template)
}

var esPrinter = message.NewPrinter(language.Spanish)

// formatMoney renders an amount as Colombian pesos with Spanish thousands
// grouping, e.g. $30.000.
func formatMoney(amount int) string {
	return "$" + esPrinter.Sprintf("%d", amount)
}

const dateLayout = "02/01/2006"

// sortedOptions returns a copy of the options in display order: labels that
// parse as integers sort numerically and come first, the rest follow in
// Spanish lexical order.
func sortedOptions(opts []models.StepOption) []models.StepOption {
	if opts == nil {
		return []models.StepOption{}
	}
	sorted := make([]models.StepOption, len(opts))
	copy(sorted, opts)

	coll := collate.New(language.Spanish, collate.Loose, collate.Numeric)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aErr := strconv.Atoi(sorted[i].Label)
		b, bErr := strconv.Atoi(sorted[j].Label)
		if aErr == nil && bErr == nil {
			return a < b
		}
		return coll.CompareString(sorted[i].Label, sorted[j].Label) < 0
	})
	return sorted
}

// respond assembles a ChatResponse with normalized options.
func respond(msg, stepID string, kind models.StepKind, opts []models.StepOption) *models.ChatResponse {
	if kind == "" {
		kind = models.StepStatic
	}
	return &models.ChatResponse{
		Message:       msg,
		CurrentStepID: stepID,
		Kind:          kind,
		Options:       sortedOptions(opts),
	}
}
