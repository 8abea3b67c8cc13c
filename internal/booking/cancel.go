package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// Cancel marca o agendamento como cancelado. O registro nunca é apagado:
// a visão de histórico depende dele. Cancelar de novo é no-op.
func (b *Book) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
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
		out := *ap
		return &out, nil // idempotente
	}

	now := b.now()
	ap.Status = models.StatusCancelled
	ap.CancelledAt = &now
	ap.UpdatedAt = now

	b.persist(ctx)

	b.dispatch(
		"Agendamento cancelado",
		fmt.Sprintf("%s em %s às %s", ap.ProviderName, ap.Date, ap.StartTime),
	)

	out := *ap
	return &out, nil
}
