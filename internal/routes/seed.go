package routes

import (
	"github.com/BruksfildServices01/booking-core/internal/models"
	"github.com/BruksfildServices01/booking-core/internal/timezone"
)

// Carga inicial quando o store vem vazio (primeira execução local).

func seedProviders() []models.Provider {
	now := timezone.Now()

	mk := func(id, name, specialty, level string, lat, lng float64) models.Provider {
		return models.Provider{
			ID:          id,
			Name:        name,
			IsAvailable: true,
			Specialty:   specialty,
			Level:       level,
			Location:    &models.Coordinate{Lat: lat, Lng: lng},
			Reviews:     []models.Review{},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return []models.Provider{
		mk("prov-ricardo", "Ricardo Teixeira", "classic", models.LevelMaster, -23.5505, -46.6333),
		mk("prov-jonas", "Jonas Andrade", "fade", models.LevelArtist, -23.5614, -46.6560),
		mk("prov-caue", "Cauê Martins", "beard", models.LevelSenior, -23.5440, -46.6420),
	}
}

func seedServices() []models.ServiceOffering {
	now := timezone.Now()

	mk := func(id, name string, price, duration int, level string) models.ServiceOffering {
		return models.ServiceOffering{
			ID:            id,
			Name:          name,
			Price:         price,
			DurationMin:   duration,
			EligibleLevel: level,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	return []models.ServiceOffering{
		mk("svc-corte", "Corte clássico", 60, 30, "all"),
		mk("svc-barba", "Barba completa", 45, 30, "all"),
		mk("svc-degrade", "Degradê navalhado", 80, 45, models.LevelArtist),
		mk("svc-combo", "Corte + barba", 95, 60, "all"),
	}
}
