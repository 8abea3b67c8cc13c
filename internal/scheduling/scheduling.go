package scheduling

import (
	"time"

	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timeutil"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// Janela de atendimento: só o INÍCIO do agendamento é validado contra
// esses limites; um serviço longo começando
// às 19:50 pode terminar depois das 20:00.
const (
	OpeningMinutes = 8 * 60  // 08:00
	ClosingMinutes = 20 * 60 // 20:00
)

// ===============================
// Verdict
// ===============================

type Verdict int

const (
	VerdictOk Verdict = iota
	VerdictInPast
	VerdictOutOfHours
	VerdictConflict
)

func (v Verdict) String() string {
	switch v {
	case VerdictOk:
		return "ok"
	case VerdictInPast:
		return "in_past"
	case VerdictOutOfHours:
		return "out_of_hours"
	case VerdictConflict:
		return "conflict"
	}
	return "unknown"
}

// ===============================
// Input
// ===============================

type Input struct {
	ProviderID string
	Date       string // YYYY-MM-DD
	Start      string // HH:MM
	Duration   int    // minutos, soma dos serviços

	// ExcludeID ignora o próprio agendamento ao revalidar um reagendamento.
	ExcludeID string
}

// ===============================
// Validate
// ===============================

// Validate é um predicado puro: não altera nenhum agendamento.
// O chamador só grava depois de receber VerdictOk.
func Validate(in Input, existing []models.Appointment, now time.Time) Verdict {
	newStart := timeutil.TimeToMinutes(in.Start)
	newEnd := newStart + in.Duration

	// 1. Passado
	if timezone.At(in.Date, in.Start).Before(now) {
		return VerdictInPast
	}

	// 2. Janela de atendimento (inclusiva nas duas pontas)
	if newStart < OpeningMinutes || newStart > ClosingMinutes {
		return VerdictOutOfHours
	}

	// 3. Conflito com agendamentos não cancelados do mesmo barbeiro/dia
	if HasConflict(in.ProviderID, in.Date, newStart, newEnd, existing, in.ExcludeID) {
		return VerdictConflict
	}

	return VerdictOk
}

// HasConflict aplica o teste clássico de intervalos meio-abertos
// [start, end): encostar na borda não conflita.
func HasConflict(
	providerID string,
	date string,
	newStart int,
	newEnd int,
	existing []models.Appointment,
	excludeID string,
) bool {

	for _, ap := range existing {
		if ap.ProviderID != providerID || ap.Date != date {
			continue
		}
		if ap.Status == models.StatusCancelled {
			continue
		}
		if excludeID != "" && ap.ID == excludeID {
			continue
		}

		appStart := timeutil.TimeToMinutes(ap.StartTime)
		appEnd := timeutil.TimeToMinutes(ap.EndTime)

		if newStart < appEnd && newEnd > appStart {
			return true
		}
	}

	return false
}
