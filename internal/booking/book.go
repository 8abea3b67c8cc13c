package booking

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/notify"
	"github.com/BruksfildServices01/booking-core/internal/scheduling"
	"github.com/BruksfildServices01/booking-core/internal/store"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// Book é o dono da coleção de agendamentos. Toda mutação passa por aqui
// (escritor lógico único); a agenda ocupada de cada barbeiro é derivada
// desta coleção, nunca gravada em separado.
type Book struct {
	mu       sync.Mutex
	store    store.Store
	notifier *notify.Dispatcher
	now      func() time.Time

	appointments []models.Appointment
}

func New(ctx context.Context, st store.Store, notifier *notify.Dispatcher) *Book {
	return NewWithClock(ctx, st, notifier, timezone.Now)
}

func NewWithClock(
	ctx context.Context,
	st store.Store,
	notifier *notify.Dispatcher,
	now func() time.Time,
) *Book {

	b := &Book{
		store:        st,
		notifier:     notifier,
		now:          now,
		appointments: []models.Appointment{},
	}

	st.Load(ctx, store.KeyAppointments, &b.appointments)
	return b
}

// persist grava a coleção inteira; chamador já segura o lock.
func (b *Book) persist(ctx context.Context) {
	b.store.Save(ctx, store.KeyAppointments, b.appointments)
}

func (b *Book) dispatch(title string, body string) {
	if b.notifier != nil {
		b.notifier.Dispatch(notify.Event{Title: title, Body: body})
	}
}

// Snapshot devolve uma cópia da coleção para leituras derivadas
// (disponibilidade, validação).
func (b *Book) Snapshot() []models.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Appointment, len(b.appointments))
	copy(out, b.appointments)
	return out
}

func (b *Book) Get(id string) (*models.Appointment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.appointments {
		if b.appointments[i].ID == id {
			ap := b.appointments[i]
			return &ap, nil
		}
	}

	return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func verdictError(v scheduling.Verdict) error {
	switch v {
	case scheduling.VerdictInPast:
		return httperr.ErrBusiness(httperr.CodeInPast)
	case scheduling.VerdictOutOfHours:
		return httperr.ErrBusiness(httperr.CodeOutsideHours)
	case scheduling.VerdictConflict:
		return httperr.ErrBusiness(httperr.CodeTimeConflict)
	}
	return nil
}
