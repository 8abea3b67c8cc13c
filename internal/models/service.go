package models

import "time"

type ServiceOffering struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Price       int `json:"price"`
	DurationMin int `json:"duration_min"`

	// Nível mínimo de profissional que executa o serviço ("all" libera todos)
	EligibleLevel string `json:"eligible_level"`

	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceSnapshot é a cópia desnormalizada gravada dentro do agendamento.
// Editar o catálogo depois não altera agendamentos já criados.
type ServiceSnapshot struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	DurationMin int    `json:"duration_min"`
}
