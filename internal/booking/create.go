package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-core/internal/httperr"
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/scheduling"
	"github.com/BruksfildServices01/booking-core/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ProviderID   string
	ProviderName string
	ClientID     string

	Services []models.ServiceOffering

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// CREATE
// ======================================================

// Create valida via scheduling e só então grava o agendamento.
// Em rejeição não há escrita parcial: a coleção fica intocada.
func (b *Book) Create(ctx context.Context, in CreateInput) (*models.Appointment, error) {

	if len(in.Services) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeEmptySelection)
	}

	if !timeutil.ValidDate(in.Date) || !timeutil.ValidClock(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateOrTime)
	}

	// Snapshot on write: nome/preço/duração copiados para o agendamento,
	// edições futuras do catálogo não mudam o histórico.
	snapshots := make([]models.ServiceSnapshot, 0, len(in.Services))
	total := 0
	duration := 0
	for _, svc := range in.Services {
		snapshots = append(snapshots, models.ServiceSnapshot{
			Name:        svc.Name,
			Price:       svc.Price,
			DurationMin: svc.DurationMin,
		})
		total += svc.Price
		duration += svc.DurationMin
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	verdict := scheduling.Validate(scheduling.Input{
		ProviderID: in.ProviderID,
		Date:       in.Date,
		Start:      in.Time,
		Duration:   duration,
	}, b.appointments, b.now())

	if verdict != scheduling.VerdictOk {
		return nil, verdictError(verdict)
	}

	now := b.now()
	ap := models.Appointment{
		ID:           uuid.NewString(),
		ProviderID:   in.ProviderID,
		ProviderName: in.ProviderName,
		ClientID:     in.ClientID,
		Services:     snapshots,
		Total:        total,
		Date:         in.Date,
		StartTime:    in.Time,
		EndTime:      timeutil.AddMinutes(in.Time, duration),
		Status:       models.StatusConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	b.appointments = append(b.appointments, ap)
	b.persist(ctx)

	b.dispatch(
		"Agendamento confirmado",
		fmt.Sprintf("%s em %s às %s", ap.ProviderName, ap.Date, ap.StartTime),
	)

	return &ap, nil
}
