package timeutil

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeToMinutes converte "HH:MM" em minutos desde 00:00.
// Entrada malformada é violação de contrato do chamador (valide na borda).
func TimeToMinutes(hm string) int {
	t, _ := time.Parse("15:04", hm)
	return t.Hour()*60 + t.Minute()
}

// MinutesToTime formata minutos do dia como "HH:MM", módulo 24h.
func MinutesToTime(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes soma minutos a um horário "HH:MM".
// Passar da meia-noite dá a volta no relógio (23:50 + 20 = 00:10).
func AddMinutes(hm string, minutes int) string {
	return MinutesToTime(TimeToMinutes(hm) + minutes)
}

// ValidClock exige o formato fixo "HH:MM" com zero à esquerda.
// time.Parse aceitaria "8:30", mas a ordenação lexicográfica das
// listagens depende da largura fixa.
func ValidClock(hm string) bool {
	if len(hm) != 5 || hm[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", hm)
	return err == nil
}

func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
