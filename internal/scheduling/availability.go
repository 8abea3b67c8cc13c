package scheduling

import (
	"time"

	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timeutil"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots lista os horários livres de um barbeiro num dia, varrendo a
// janela de atendimento no passo da duração pedida e descartando o que o
// Validate rejeitaria.
func FreeSlots(
	providerID string,
	date string,
	duration int,
	existing []models.Appointment,
	now time.Time,
) []TimeSlot {

	if duration <= 0 {
		return []TimeSlot{}
	}

	slots := []TimeSlot{}

	for cur := OpeningMinutes; cur <= ClosingMinutes; cur += duration {
		in := Input{
			ProviderID: providerID,
			Date:       date,
			Start:      timeutil.MinutesToTime(cur),
			Duration:   duration,
		}

		if Validate(in, existing, now) != VerdictOk {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: timeutil.MinutesToTime(cur),
			End:   timeutil.MinutesToTime(cur + duration),
		})
	}

	return slots
}
