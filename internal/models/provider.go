package models

import "time"

// ===============================
// Professional Level
// ===============================

const (
	LevelMaster = "master"
	LevelArtist = "artist"
	LevelSenior = "senior"
)

func ValidLevel(level string) bool {
	switch level {
	case LevelMaster, LevelArtist, LevelSenior:
		return true
	}
	return false
}

// ===============================
// Provider (Barber)
// ===============================

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Review struct {
	Author    string    `json:"author"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type Provider struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Toggle manual online/offline, independente da agenda
	IsAvailable bool `json:"is_available"`

	Specialty string `json:"specialty"`
	Level     string `json:"level"`

	Location *Coordinate `json:"location,omitempty"`

	Rating  float64  `json:"rating"`
	Reviews []Review `json:"reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
