// Package data loads the fixture catalogs the dialogue engine runs against:
// the room-type inventory and the conversation step graph.
package data

import (
	"fmt"

	roomRepo "posada/database/repository/room"
	stepRepo "posada/database/repository/step"
	"posada/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const unitsPerType = 3

// Seed replaces the step catalog and the room inventory with the fixture set.
func Seed(steps stepRepo.StepRepository, rooms roomRepo.RoomRepository, logger *zap.Logger) error {
	types := roomTypes()

	units := make([]models.RoomUnit, 0, len(types)*unitsPerType)
	number := 101
	for _, t := range types {
		for i := 0; i < unitsPerType; i++ {
			units = append(units, models.RoomUnit{
				ID:     uuid.New().String(),
				Number: fmt.Sprintf("%d", number),
				TypeID: t.ID,
				Status: models.UnitAvailable,
			})
			number++
		}
	}

	if err := rooms.ReplaceCatalog(types, units); err != nil {
		return fmt.Errorf("failed to seed room catalog: %w", err)
	}
	logger.Info("room catalog seeded", zap.Int("types", len(types)), zap.Int("units", len(units)))

	catalog := stepCatalog()
	if err := steps.ReplaceAll(catalog); err != nil {
		return fmt.Errorf("failed to seed step catalog: %w", err)
	}
	logger.Info("step catalog seeded", zap.Int("steps", len(catalog)))
	return nil
}

func roomTypes() []models.RoomType {
	defs := []models.RoomType{
		// Económicas
		{Name: "Habitación Compartida (litera)", BasePrice: 30000, Capacity: 1, AllowsPets: false, Features: []string{"Cama litera", "Baño compartido", "WiFi"}, Category: models.CategoryEconomy},
		{Name: "Individual Básica", BasePrice: 45000, Capacity: 1, AllowsPets: false, Features: []string{"Cama sencilla", "Baño privado", "WiFi"}, Category: models.CategoryEconomy},
		{Name: "Doble Económica", BasePrice: 60000, Capacity: 2, AllowsPets: false, Features: []string{"Cama doble", "Baño privado", "TV", "WiFi"}, Category: models.CategoryEconomy},
		{Name: "Triple Económica", BasePrice: 90000, Capacity: 3, AllowsPets: false, Features: []string{"1 cama doble + 1 sencilla", "Baño privado", "WiFi"}, Category: models.CategoryEconomy},

		// Confort, algunas con mascotas
		{Name: "Doble Confort", BasePrice: 120000, Capacity: 2, AllowsPets: true, Features: []string{"Cama doble", "Chimenea", "TV Smart", "Área mascotas"}, Category: models.CategoryComfort},
		{Name: "Familiar Estándar", BasePrice: 180000, Capacity: 4, AllowsPets: false, Features: []string{"2 camas dobles", "Chimenea", "TV", "WiFi"}, Category: models.CategoryComfort},
		{Name: "Doble Premium", BasePrice: 140000, Capacity: 2, AllowsPets: true, Features: []string{"Cama king", "Balcón", "Minibar", "TV Smart"}, Category: models.CategoryComfort},
		{Name: "Familiar Confort", BasePrice: 220000, Capacity: 4, AllowsPets: true, Features: []string{"2 camas dobles", "Chimenea", "Balcón", "Área mascotas"}, Category: models.CategoryComfort},
		{Name: "Triple Confort", BasePrice: 170000, Capacity: 3, AllowsPets: true, Features: []string{"1 cama doble + 1 sencilla", "Área mascotas", "Chimenea"}, Category: models.CategoryComfort},

		// Premium, todas con mascotas
		{Name: "Familiar Premium", BasePrice: 350000, Capacity: 4, AllowsPets: true, Features: []string{"2 camas dobles", "Chimenea", "Minibar", "Balcón", "TV Smart"}, Category: models.CategoryPremium},
		{Name: "Triple Premium", BasePrice: 280000, Capacity: 3, AllowsPets: true, Features: []string{"1 cama doble + 1 sencilla", "Jacuzzi", "Chimenea", "TV Smart"}, Category: models.CategoryPremium},
		{Name: "Suite Familiar", BasePrice: 480000, Capacity: 6, AllowsPets: true, Features: []string{"3 camas dobles", "2 baños", "Sala", "Cocina", "Balcón"}, Category: models.CategoryPremium},
		{Name: "Suite Ejecutiva", BasePrice: 420000, Capacity: 2, AllowsPets: true, Features: []string{"Cama king", "Jacuzzi", "Escritorio", "Sala", "Minibar"}, Category: models.CategoryPremium},
	}
	for i := range defs {
		defs[i].ID = uuid.New().String()
	}
	return defs
}

func stepCatalog() []models.Step {
	return []models.Step{
		{
			ID:      "bienvenida",
			Prompt:  "🏨 **Hotel de Villa de Leyva**\n\n¡Bienvenido! Nos alegra que nos elijas en el corazón del pueblo más hermoso de Boyacá.\n\n**¿Qué deseas hacer?**",
			Kind:    models.StepOptionSelect,
			Options: []models.StepOption{{Label: "Hacer una reserva ✅", Value: "1", NextID: "preguntar_fechas"}},
		},
		{
			ID:       "preguntar_fechas",
			Prompt:   "📅 **Fechas de tu Estancia**\n\nPor favor ingresa tu fecha de ingreso y salida:\nFormato: DD/MM/AAAA - DD/MM/AAAA\nEjemplo: 20/03/2026 - 23/03/2026",
			Kind:     models.StepInputDate,
			Variable: "rangoFechas",
			NextID:   "preguntar_cantidad_personas",
		},
		{
			ID:       "preguntar_cantidad_personas",
			Prompt:   "👥 **Número de Personas**\n\n¿Para cuántas personas es la reserva?\n1. 1 persona\n2. 2 personas\n3. 3 personas\n4. 4 personas\n5. 5 personas\n6. 6 o más personas (especifica número)\n\nResponde con el número de tu opción (1-6)",
			Kind:     models.StepInputNumber,
			Variable: "totalPersonas",
			NextID:   "preguntar_distribucion_personas",
		},
		{
			ID:       "preguntar_distribucion_personas",
			Prompt:   "👨‍👩‍👧‍👦 **Distribución de Personas**\n\nDe las {totalPeople} personas, ¿cuántos son adultos y cuántos niños?\n\nUsa este formato: \"Adultos: X, Niños: Y\"\nEjemplo: Adultos: 2, Niños: 1",
			Kind:     models.StepInputSplit,
			Variable: "distribucionPersonas",
			NextID:   "preguntar_mascotas",
		},
		{
			ID:     "preguntar_mascotas",
			Prompt: "🐾 **¿Viajas con Mascotas?**",
			Kind:   models.StepOptionSelect,
			Options: []models.StepOption{
				{Label: "No", Value: "no", NextID: "preguntar_habitaciones"},
				{Label: "Sí", Value: "yes", NextID: "preguntar_cantidad_mascotas"},
			},
		},
		{
			ID:       "preguntar_cantidad_mascotas",
			Prompt:   "🐕 **Número de Mascotas**\n\n¡Perfecto! Aceptamos mascotas con mucho gusto.\n\n¿Cuántas mascotas traerás?\n\n💰 Nota: $30.000 adicionales por seguro para tu mascota por noche",
			Kind:     models.StepOptionSelect,
			Variable: "numMascotas",
			Options: []models.StepOption{
				{Label: "1 mascota 🐕", Value: "1", NextID: "preguntar_habitaciones"},
				{Label: "2 mascotas 🐕🐕", Value: "2", NextID: "preguntar_habitaciones"},
				{Label: "3 mascotas 🐕🐕🐕", Value: "3", NextID: "preguntar_habitaciones"},
			},
		},
		{
			ID:       "preguntar_habitaciones",
			Prompt:   "🏠 **Número de Habitaciones**\n\n¿Cuántas habitaciones necesitas?\n\nIngresa el número de habitaciones (1 a 20).",
			Kind:     models.StepInputNumber,
			Variable: "numHabitaciones",
			NextID:   "mostrar_opciones",
		},
		{
			ID:       "mostrar_opciones",
			Prompt:   "🔍 **Buscando Opciones...**\n\nCalculando las mejores opciones para tu reserva...",
			Kind:     models.StepDynamicOpts,
			Variable: "opcionSeleccionada",
			NextID:   "preguntar_plan_alimentacion",
		},
		{
			ID:     "sin_disponibilidad",
			Prompt: "❌ **Sin Habitaciones Disponibles**\n\nLo sentimos, no hay habitaciones que cumplan tus requisitos en este momento.\n\nPor favor selecciona:\n1. Modificar número de personas\n2. Cambiar preferencia de mascotas\n3. Volver al inicio",
			Kind:   models.StepStatic,
			Options: []models.StepOption{
				{Label: "1", Value: "1", NextID: "preguntar_cantidad_personas"},
				{Label: "2", Value: "2", NextID: "preguntar_mascotas"},
				{Label: "3", Value: "3", NextID: "bienvenida"},
			},
		},
		{
			ID:     "sin_combinaciones",
			Prompt: "❌ **Sin Combinaciones Disponibles**\n\nNo encontramos combinaciones que cubran tu solicitud.\n\nPor favor selecciona:\n1. Cambiar número de habitaciones\n2. Cambiar cantidad de personas\n3. Cambiar preferencia de mascotas\n4. Volver al inicio",
			Kind:   models.StepStatic,
			Options: []models.StepOption{
				{Label: "1", Value: "1", NextID: "preguntar_habitaciones"},
				{Label: "2", Value: "2", NextID: "preguntar_cantidad_personas"},
				{Label: "3", Value: "3", NextID: "preguntar_mascotas"},
				{Label: "4", Value: "4", NextID: "bienvenida"},
			},
		},
		{
			ID:       "preguntar_plan_alimentacion",
			Prompt:   "🍽️ **Plan Alimentación**\n\n⭐ **El desayuno ya está incluido en todas nuestras habitaciones**\n\n¿Deseas agregar algún plan adicional?\n1. Solo desayuno (incluido) - $0\n2. Desayuno + Almuerzo ($25.000 por persona/noche)\n3. Desayuno + Almuerzo + Cena ($35.000 por persona/noche)\n\nResponde con el número de tu opción (1-3)",
			Kind:     models.StepOptionSelect,
			Variable: "planAlimentacion",
			Options: []models.StepOption{
				{Label: "1", Value: "solo_desayuno", NextID: "preguntar_nombre"},
				{Label: "2", Value: "desayuno_almuerzo", NextID: "preguntar_nombre"},
				{Label: "3", Value: "completo", NextID: "preguntar_nombre"},
			},
		},
		{
			ID:       "preguntar_nombre",
			Prompt:   "📝 **Datos Personales**\n\nPara finalizar tu reserva, necesitamos tus datos.\n\n¿Cuál es tu nombre y apellidos completos?",
			Kind:     models.StepInputText,
			Variable: "nombreUsuario",
			NextID:   "preguntar_telefono",
		},
		{
			ID:       "preguntar_telefono",
			Prompt:   "📞 **Número de Teléfono**\n\nGracias, {nombreUsuario}\n\n¿Cuál es tu número de teléfono?",
			Kind:     models.StepInputText,
			Variable: "telefonoUsuario",
			NextID:   "preguntar_correo",
		},
		{
			ID:       "preguntar_correo",
			Prompt:   "📧 **Correo Electrónico**\n\nPerfecto\n\n¿Cuál es tu correo para enviarte la confirmación?",
			Kind:     models.StepInputText,
			Variable: "correoUsuario",
			NextID:   "mostrar_resumen",
		},
		{
			ID:       "mostrar_resumen",
			Prompt:   "📋 **RESUMEN DE TU RESERVA**\n\n**👤 DATOS PERSONALES**\nNombre: {nombreUsuario}\nTeléfono: {telefonoUsuario}\nCorreo: {correoUsuario}\n\n**🏨 DETALLES**\nFechas: {startDate} al {endDate}\nPersonas: {totalPeople} ({peopleBreakdown})\nMascotas: {hasPetsStatus}\nHabitación: {roomType}\nNoches: {noches}\nPlan: {mealPlanName}\n\n**💰 COSTOS**\n• Habitación: {roomPricePerNight} x {noches} noches = {roomTotal}\n• Alimentación: {mealPlanCost}\n• Mascotas: {petCost}\n• **Total: {totalPrice}**\n\n**💳 Método de Pago** (selecciona abajo)\n\nPara cambios: 312 345 6789",
			Kind:     models.StepOptionSelect,
			Variable: "metodoPago",
			Options: []models.StepOption{
				{Label: "Nequi 💚", Value: "Nequi", NextID: "mostrar_detalles_pago"},
				{Label: "Bancolombia 💙", Value: "Bancolombia", NextID: "mostrar_detalles_pago"},
				{Label: "Daviplata 💛", Value: "Daviplata", NextID: "mostrar_detalles_pago"},
				{Label: "Mundo Mujer 💜", Value: "Banco Mundo Mujer", NextID: "mostrar_detalles_pago"},
				{Label: "Tarjeta 💳", Value: "Tarjeta de crédito/débito", NextID: "mostrar_detalles_pago"},
			},
		},
		{
			ID:       "mostrar_detalles_pago",
			Prompt:   "💳 **Datos de Pago**\n\nHas seleccionado: {paymentMethod}\n\n**Datos para transferencia:**\nBanco: {paymentMethod}\nTipo: Ahorros\nNúmero: 123-456789-01\nTitular: Hotel de Villa de Leyva\nNIT: 900.123.456-7\nMonto: {totalPrice}\n\n¿Confirmas tu reserva?",
			Kind:     models.StepOptionSelect,
			Variable: "confirmacionPago",
			Options: []models.StepOption{
				{Label: "Aceptar ✅", Value: "aceptar", NextID: "confirmar_reserva"},
				{Label: "Rechazar ❌", Value: "rechazar", NextID: "mostrar_resumen"},
			},
		},
		{
			ID:     "confirmar_reserva",
			Prompt: "🎉 **RESERVA CONFIRMADA**\n\n¡Gracias por elegir Hotel de Villa de Leyva!\nNos encanta recibirte en nuestro hermoso pueblo colonial.\n\n**📄 DETALLES FINALES**\nNombre: {nombreUsuario}\nTeléfono: {telefonoUsuario}\nCorreo: {correoUsuario}\nIngreso: {startDate}\nSalida: {endDate}\nPersonas: {totalPeople} ({peopleBreakdown})\nMascotas: {hasPetsStatus}\nHabitación: {selectedOptionName}\nHabitaciones asignadas: {roomNumbers}\nPlan: {mealPlanName}\n\n**🏨 SERVICIOS INCLUIDOS**\n• 🍳 Desayuno buffet incluido\n• WiFi en todas las áreas\n• Acceso a áreas comunes\n• Atención 24 horas\n• {additionalServices}\n\n**🌟 ¡Te esperamos el {startDate}!**\n\nPara cualquier cambio o modificación, contáctanos al **312 345 6789**",
			Kind:   models.StepStatic,
		},
	}
}
