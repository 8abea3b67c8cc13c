package models

// Perfil local único, sem login
type ClientProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Location *Coordinate `json:"location,omitempty"`
}
