package booking

import (
	"sort"

	"github.com/BruksfildServices01/booking-core/internal/models"
)

// HistoryDay é um balde diário do histórico com o total faturado no dia.
type HistoryDay struct {
	Date         string               `json:"date"`
	Total        int                  `json:"total"`
	Appointments []models.Appointment `json:"appointments"`
}

// ListUpcoming devolve os agendamentos não cancelados com data >= refDate,
// ordenados por (data, horário). A comparação lexicográfica é válida porque
// os formatos são fixos e zero-padded.
func (b *Book) ListUpcoming(refDate string) []models.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range b.appointments {
		if ap.Status == models.StatusCancelled {
			continue
		}
		if ap.Date < refDate {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})

	return out
}

// ListByDate devolve a agenda de um dia exato (cancelados incluídos),
// ordenada por horário de início.
func (b *Book) ListByDate(date string) []models.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range b.appointments {
		if ap.Date == date {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})

	return out
}

// ListHistory agrupa por dia, do mais recente para o mais antigo, tudo que
// já passou (data < refDate) ou foi cancelado. Com ListUpcoming forma uma
// partição exata da coleção.
func (b *Book) ListHistory(refDate string) []HistoryDay {
	b.mu.Lock()
	defer b.mu.Unlock()

	buckets := map[string][]models.Appointment{}
	for _, ap := range b.appointments {
		if ap.Date >= refDate && ap.Status != models.StatusCancelled {
			continue
		}
		buckets[ap.Date] = append(buckets[ap.Date], ap)
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	out := make([]HistoryDay, 0, len(dates))
	for _, d := range dates {
		day := HistoryDay{Date: d}

		aps := buckets[d]
		sort.Slice(aps, func(i, j int) bool {
			return aps[i].StartTime < aps[j].StartTime
		})

		for _, ap := range aps {
			day.Total += ap.Total
		}
		day.Appointments = aps

		out = append(out, day)
	}

	return out
}
