package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"posada/models"
)

var (
	nameRegexp  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	phoneRegexp = regexp.MustCompile(`^[0-9]{10}$`)
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	adultsRegexp   = regexp.MustCompile(`(?i)Adultos:\s*(\d+)`)
	childrenRegexp = regexp.MustCompile(`(?i)Niños:\s*(\d+)`)

	spacedHyphen = regexp.MustCompile(`\s+-\s+`)
)

// applyInput runs the current step's parse-and-validate contract over the raw
// input, mutating the conversation on success. A non-nil response is a
// rejection that re-prompts the same step without advancing.
func (s *DefaultChatService) applyInput(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	switch step.ID {
	case StepAskDates:
		return s.applyDateRange(conv, step, input)
	case StepAskPeople:
		return s.applyPartySize(conv, step, input)
	case StepAskSplit:
		return s.applyPeopleSplit(conv, step, input)
	case StepAskRooms:
		return s.applyRoomCount(conv, step, input)
	case StepAskName:
		return s.applyGuestName(conv, step, input)
	case StepAskPhone:
		return s.applyGuestPhone(conv, step, input)
	case StepAskEmail:
		return s.applyGuestEmail(conv, step, input)
	}
	// Steps whose variable is filled by an option match have nothing to parse.
	return nil
}

func reject(step *models.Step, msg string) *models.ChatResponse {
	return respond(msg, step.ID, step.Kind, step.Options)
}

func (s *DefaultChatService) applyDateRange(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	raw := strings.TrimSpace(input)
	if raw == "" || !strings.Contains(raw, "-") {
		return reject(step, "Formato incorrecto. Usa el ícono de calendario o escribe: DD/MM/AAAA - DD/MM/AAAA")
	}

	first, second, okSplit := splitDateRange(raw)
	if !okSplit {
		return reject(step, "Formato incorrecto. Usa: DD/MM/AAAA - DD/MM/AAAA\nEjemplo: 20/03/2026 - 23/03/2026")
	}

	start, okStart := parseDate(first)
	end, okEnd := parseDate(second)
	if !okStart || !okEnd || !end.After(start) {
		return reject(step, "Fechas inválidas. La fecha de salida debe ser posterior a la de ingreso. Usa el ícono de calendario para seleccionar.")
	}

	conv.StartDate = &start
	conv.EndDate = &end
	return nil
}

// splitDateRange cuts the raw input into its two date halves. A hyphen with
// whitespace on both sides is the range separator; hyphens inside the dates
// themselves (DD-MM-YYYY, YYYY-MM-DD) never split. Only when no spaced hyphen
// exists does a single bare hyphen act as the separator, covering slash dates
// typed without spaces.
func splitDateRange(raw string) (string, string, bool) {
	if parts := spacedHyphen.Split(raw, -1); len(parts) == 2 {
		a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		return a, b, a != "" && b != ""
	}
	if parts := strings.Split(raw, "-"); len(parts) == 2 {
		a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		return a, b, a != "" && b != ""
	}
	return "", "", false
}

// parseDate accepts DD/MM/YYYY, DD-MM-YYYY and YYYY-MM-DD, with two-digit
// years read as 20xx, and rejects dates the calendar normalizes away
// (e.g. 31/02).
func parseDate(raw string) (time.Time, bool) {
	clean := strings.Join(strings.Fields(raw), "")
	var sep string
	switch {
	case strings.Contains(clean, "/"):
		sep = "/"
	case strings.Contains(clean, "-"):
		sep = "-"
	default:
		return time.Time{}, false
	}

	fields := strings.Split(clean, sep)
	if len(fields) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if sep == "-" && nums[0] > 31 {
		year, month, day = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		year += 2000
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, false
	}
	return date, true
}

func (s *DefaultChatService) applyPartySize(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		return reject(step, "Por favor ingresa un número válido de personas (1, 2, 3...)")
	}
	conv.TotalPeople = n
	return nil
}

func (s *DefaultChatService) applyPeopleSplit(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	adultsMatch := adultsRegexp.FindStringSubmatch(input)
	childrenMatch := childrenRegexp.FindStringSubmatch(input)
	if adultsMatch == nil || childrenMatch == nil {
		return reject(step, "❌ **Formato inválido**\n\nPor favor ingresa ambos valores en el formato:\nAdultos: X, Niños: Y\n\nEjemplo: Adultos: 2, Niños: 1")
	}

	adults, _ := strconv.Atoi(adultsMatch[1])
	children, _ := strconv.Atoi(childrenMatch[1])
	total := adults + children

	if total != conv.TotalPeople {
		return reject(step, fmt.Sprintf(
			"❌ **Cantidad incorrecta**\n\nLa suma de adultos (%d) y niños (%d) es %d, pero anteriormente indicaste %d personas.\n\nPor favor corrige la distribución para que sume %d personas.",
			adults, children, total, conv.TotalPeople, conv.TotalPeople))
	}
	if adults < 1 {
		return reject(step, "❌ **Adultos insuficientes**\n\nDebe haber al menos 1 adulto en la reserva.\n\nPor favor ingresa una distribución válida.")
	}

	conv.NumAdults = adults
	conv.NumChildren = children
	return nil
}

func (s *DefaultChatService) applyRoomCount(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		return reject(step, "Por favor ingresa un número válido de habitaciones (1 a 20).")
	}
	if n > MaxRoomsPerBooking {
		return reject(step, "❌ **Sin Capacidad**\n\nLo sentimos, no tenemos capacidad para más de 20 habitaciones.\n\nPor favor ingresa un número entre 1 y 20.")
	}
	conv.NumRooms = n
	return nil
}

func (s *DefaultChatService) applyGuestName(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	name := strings.TrimSpace(input)
	if !nameRegexp.MatchString(name) {
		return reject(step, "❌ **Nombre inválido**\n\nEl nombre solo puede contener letras y espacios.\n\nPor favor ingresa tu nombre y apellidos completos:")
	}
	if len(strings.Fields(name)) < 2 {
		return reject(step, "❌ **Nombre incompleto**\n\nPor favor ingresa tu nombre y apellidos (al menos dos palabras).\n\nEjemplo: María García López")
	}
	if n := len([]rune(name)); n < 2 || n > 100 {
		return reject(step, "❌ **Longitud inválida**\n\nEl nombre debe tener entre 2 y 100 caracteres.\n\nPor favor ingresa tu nombre y apellidos completos:")
	}
	conv.GuestName = name
	return nil
}

func (s *DefaultChatService) applyGuestPhone(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	phone := strings.TrimSpace(input)
	if !phoneRegexp.MatchString(phone) {
		return reject(step, "❌ **Teléfono inválido**\n\nEl teléfono debe tener exactamente 10 dígitos numéricos.\n\nEjemplo: 3211234567\n\nPor favor ingresa tu número de teléfono:")
	}
	conv.GuestPhone = phone
	return nil
}

func (s *DefaultChatService) applyGuestEmail(conv *models.Conversation, step *models.Step, input string) *models.ChatResponse {
	email := strings.TrimSpace(input)
	if !emailRegexp.MatchString(email) {
		return reject(step, "❌ **Correo inválido**\n\nPor favor ingresa un correo electrónico válido.\n\nEjemplo: usuario@ejemplo.com")
	}
	conv.GuestEmail = strings.ToLower(email)
	return nil
}
