package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	ProviderID   string `json:"provider_id"`
	ProviderName string `json:"provider_name"`

	ClientID string `json:"client_id"`

	Services []ServiceSnapshot `json:"services"`
	Total    int               `json:"total"`

	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM

	Status string `json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TotalDuration soma a duração dos snapshots gravados no agendamento.
func (a Appointment) TotalDuration() int {
	total := 0
	for _, s := range a.Services {
		total += s.DurationMin
	}
	return total
}
