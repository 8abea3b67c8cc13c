package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/scheduling"
	"github.com/BruksfildServices01/booking-core/internal/timeutil"
)

// Edit reagenda: revalida data/horário excluindo o próprio intervalo do
// conjunto de conflitos e atualiza início/fim no lugar.
func (b *Book) Edit(
	ctx context.Context,
	id string,
	newDate string,
	newTime string,
) (*models.Appointment, error) {

	if !timeutil.ValidDate(newDate) || !timeutil.ValidClock(newTime) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := -1
	for i := range b.appointments {
		if b.appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	ap := &b.appointments[idx]

	if ap.Status == models.StatusCancelled {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	duration := ap.TotalDuration()

	verdict := scheduling.Validate(scheduling.Input{
		ProviderID: ap.ProviderID,
		Date:       newDate,
		Start:      newTime,
		Duration:   duration,
		ExcludeID:  ap.ID,
	}, b.appointments, b.now())

	if verdict != scheduling.VerdictOk {
		return nil, verdictError(verdict)
	}

	ap.Date = newDate
	ap.StartTime = newTime
	ap.EndTime = timeutil.AddMinutes(newTime, duration)
	ap.UpdatedAt = b.now()

	b.persist(ctx)

	b.dispatch(
		"Agendamento remarcado",
		fmt.Sprintf("%s agora em %s às %s", ap.ProviderName, ap.Date, ap.StartTime),
	)

	out := *ap
	return &out, nil
}
