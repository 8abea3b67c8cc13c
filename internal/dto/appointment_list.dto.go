package dto

import "github.com/BruksfildServices01/booking-core/internal/models"

type AppointmentListDTO struct {
	ID           string                   `json:"id"`
	Date         string                   `json:"date"`
	StartTime    string                   `json:"start_time"`
	EndTime      string                   `json:"end_time"`
	Status       string                   `json:"status"`
	ProviderName string                   `json:"provider_name"`
	Services     []models.ServiceSnapshot `json:"services"`
	Total        int                      `json:"total"`
}

type HistoryDayDTO struct {
	Date         string               `json:"date"`
	Total        int                  `json:"total"`
	Appointments []AppointmentListDTO `json:"appointments"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:           ap.ID,
		Date:         ap.Date,
		StartTime:    ap.StartTime,
		EndTime:      ap.EndTime,
		Status:       ap.Status,
		ProviderName: ap.ProviderName,
		Services:     ap.Services,
		Total:        ap.Total,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
