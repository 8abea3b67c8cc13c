package timezone

import "time"

// Fuso único: o core não suporta multi-timezone.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// At monta o instante de uma data + horário locais ("2006-01-02", "15:04").
func At(date string, hm string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02 15:04", date+" "+hm, Location())
	return t
}
