package directory

import (
	"github.com/BruksfildServices01/booking-core/internal/geo"
	"github.com/BruksfildServices01/booking-core/internal/models"
)

// Wildcard aceita qualquer especialidade/nível.
const Wildcard = "all"

type FilterInput struct {
	AvailableOnly bool
	Specialty     string // "" ou "all" libera todas
	Level         string // "" ou "all" libera todos

	// Filtro por distância só vale quando há origem E raio. Sem origem o
	// barbeiro passa mesmo com raio selecionado (degradação graciosa).
	MaxDistanceKm float64
	Origin        *models.Coordinate
}

// Apply aplica os predicados em conjunção (AND) sobre a lista dada.
// Predicado puro: não altera a lista de entrada.
func Apply(providers []models.Provider, in FilterInput) []models.Provider {
	out := []models.Provider{}

	for _, p := range providers {
		if in.AvailableOnly && !p.IsAvailable {
			continue
		}
		if !wildcardMatch(in.Specialty, p.Specialty) {
			continue
		}
		if !wildcardMatch(in.Level, p.Level) {
			continue
		}
		if !withinRadius(p, in) {
			continue
		}

		out = append(out, p)
	}

	return out
}

// Filter filtra o cadastro atual do diretório.
func (d *Directory) Filter(in FilterInput) []models.Provider {
	return Apply(d.List(), in)
}

func wildcardMatch(want string, got string) bool {
	return want == "" || want == Wildcard || want == got
}

func withinRadius(p models.Provider, in FilterInput) bool {
	if in.MaxDistanceKm <= 0 || in.Origin == nil {
		return true
	}
	if p.Location == nil {
		return true
	}

	dist := geo.DistanceKm(in.Origin.Lat, in.Origin.Lng, p.Location.Lat, p.Location.Lng)
	return dist <= in.MaxDistanceKm
}
