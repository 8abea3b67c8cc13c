package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// Relógio fixo bem antes das datas usadas nos testes.
func fixedNow() time.Time {
	return time.Date(2026, 1, 15, 12, 0, 0, 0, timezone.Location())
}

func existingAppointment(id, providerID, date, start, end, status string) models.Appointment {
	return models.Appointment{
		ID:         id,
		ProviderID: providerID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	}
}

func TestValidateOkWithoutConflicts(t *testing.T) {
	verdict := Validate(Input{
		ProviderID: "p1",
		Date:       "2026-06-01",
		Start:      "09:00",
		Duration:   30,
	}, nil, fixedNow())

	assert.Equal(t, VerdictOk, verdict)
}

func TestValidateInPast(t *testing.T) {
	verdict := Validate(Input{
		ProviderID: "p1",
		Date:       "2026-01-14", // véspera do relógio fixo
		Start:      "09:00",
		Duration:   30,
	}, nil, fixedNow())

	assert.Equal(t, VerdictInPast, verdict)
}

func TestValidateBusinessHoursBoundaries(t *testing.T) {
	at := func(start string) Verdict {
		return Validate(Input{
			ProviderID: "p1",
			Date:       "2026-06-01",
			Start:      start,
			Duration:   30,
		}, nil, fixedNow())
	}

	assert.Equal(t, VerdictOutOfHours, at("07:59"))
	assert.Equal(t, VerdictOk, at("08:00")) // borda inclusiva
	assert.Equal(t, VerdictOk, at("20:00")) // só o início é validado
	assert.Equal(t, VerdictOutOfHours, at("20:01"))
}

func TestValidateOverlap(t *testing.T) {
	existing := []models.Appointment{
		existingAppointment("a1", "p1", "2026-06-01", "10:00", "10:30", models.StatusConfirmed),
	}

	at := func(start string) Verdict {
		return Validate(Input{
			ProviderID: "p1",
			Date:       "2026-06-01",
			Start:      start,
			Duration:   31,
		}, existing, fixedNow())
	}

	assert.Equal(t, VerdictConflict, at("10:29"))
	assert.Equal(t, VerdictOk, at("10:30")) // encostar na borda não conflita
	assert.Equal(t, VerdictOk, at("09:29"))
	assert.Equal(t, VerdictConflict, at("09:30"))
}

func TestValidateIgnoresOtherProviderAndDate(t *testing.T) {
	existing := []models.Appointment{
		existingAppointment("a1", "p2", "2026-06-01", "10:00", "11:00", models.StatusConfirmed),
		existingAppointment("a2", "p1", "2026-06-02", "10:00", "11:00", models.StatusConfirmed),
	}

	verdict := Validate(Input{
		ProviderID: "p1",
		Date:       "2026-06-01",
		Start:      "10:00",
		Duration:   60,
	}, existing, fixedNow())

	assert.Equal(t, VerdictOk, verdict)
}

func TestValidateIgnoresCancelled(t *testing.T) {
	existing := []models.Appointment{
		existingAppointment("a1", "p1", "2026-06-01", "10:00", "11:00", models.StatusCancelled),
	}

	verdict := Validate(Input{
		ProviderID: "p1",
		Date:       "2026-06-01",
		Start:      "10:00",
		Duration:   60,
	}, existing, fixedNow())

	assert.Equal(t, VerdictOk, verdict)
}

func TestValidateExcludesOwnInterval(t *testing.T) {
	existing := []models.Appointment{
		existingAppointment("a1", "p1", "2026-06-01", "10:00", "11:00", models.StatusConfirmed),
	}

	verdict := Validate(Input{
		ProviderID: "p1",
		Date:       "2026-06-01",
		Start:      "10:30",
		Duration:   60,
		ExcludeID:  "a1",
	}, existing, fixedNow())

	assert.Equal(t, VerdictOk, verdict)
}

func TestValidateIsPure(t *testing.T) {
	existing := []models.Appointment{
		existingAppointment("a1", "p1", "2026-06-01", "10:00", "10:30", models.StatusConfirmed),
	}
	snapshot := existing[0]

	Validate(Input{
		ProviderID: "p1",
		Date:       "2026-06-01",
		Start:      "10:15",
		Duration:   30,
	}, existing, fixedNow())

	assert.Equal(t, snapshot, existing[0])
}

func TestFreeSlotsSkipBusyAndPast(t *testing.T) {
	existing := []models.Appointment{
		existingAppointment("a1", "p1", "2026-06-01", "09:00", "10:00", models.StatusConfirmed),
	}

	slots := FreeSlots("p1", "2026-06-01", 60, existing, fixedNow())
	require.NotEmpty(t, slots)

	assert.Equal(t, "08:00", slots[0].Start)
	assert.Equal(t, "09:00", slots[0].End)

	for _, s := range slots {
		assert.NotEqual(t, "09:00", s.Start, "slot ocupado não pode aparecer")
	}

	// varredura no passo da duração cobre a janela inteira
	last := slots[len(slots)-1]
	assert.Equal(t, "20:00", last.Start)
}

func TestFreeSlotsEmptyForPastDate(t *testing.T) {
	slots := FreeSlots("p1", "2026-01-10", 30, nil, fixedNow())
	assert.Empty(t, slots)
}

func TestFreeSlotsZeroDuration(t *testing.T) {
	assert.Empty(t, FreeSlots("p1", "2026-06-01", 0, nil, fixedNow()))
}
