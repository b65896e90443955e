package utils

import (
	"cosmek-web/internal/app/models"
	"cosmek-web/internal/pkg/dto/responses"
	"time"
)

func BuildAppointmentCard(appointment responses.Appointment, loc *time.Location) responses.AppointmentCard {
	status := models.AppointmentStatus(appointment.Status)
	card := responses.AppointmentCard{
		Appointment: appointment,
		StatusLabel: status.Label(),
		Active:      status == models.AppointmentStatusScheduled,
	}

	start, err := ParseTimestamp(appointment.Time, loc)
	if err != nil {
		card.DisplayDate = appointment.Time
		return card
	}
	card.DisplayDate = FormatDisplayDate(start, loc)
	card.DisplayTime = FormatClockRange(start, appointment.Duration, loc)
	return card
}

// BuildTimeSlots converts availability timestamps into select options.
// Timestamps that cannot be parsed are dropped and returned in skipped.
func BuildTimeSlots(rawSlots []string, loc *time.Location) (slots []responses.TimeSlot, skipped []string) {
	slots = make([]responses.TimeSlot, 0, len(rawSlots))
	for _, raw := range rawSlots {
		t, err := ParseTimestamp(raw, loc)
		if err != nil {
			skipped = append(skipped, raw)
			continue
		}
		slots = append(slots, responses.TimeSlot{
			Value:     SlotValue(t, loc),
			Label:     SlotLabel(t, loc),
			Timestamp: raw,
		})
	}
	return slots, skipped
}
