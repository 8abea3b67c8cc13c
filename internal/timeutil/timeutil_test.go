package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeToMinutes(t *testing.T) {
	assert.Equal(t, 0, TimeToMinutes("00:00"))
	assert.Equal(t, 480, TimeToMinutes("08:00"))
	assert.Equal(t, 1200, TimeToMinutes("20:00"))
	assert.Equal(t, 1439, TimeToMinutes("23:59"))
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "08:00", MinutesToTime(480))
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "00:10", MinutesToTime(1450)) // passou do dia
	assert.Equal(t, "23:50", MinutesToTime(-10))  // antes do dia
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		start   string
		minutes int
		want    string
	}{
		{"09:00", 60, "10:00"},
		{"10:15", 45, "11:00"},
		{"23:50", 20, "00:10"}, // volta da meia-noite
		{"00:10", -20, "23:50"},
		{"12:00", 0, "12:00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AddMinutes(tc.start, tc.minutes), "%s + %d", tc.start, tc.minutes)
	}
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("08:30"))
	assert.True(t, ValidClock("00:00"))
	assert.False(t, ValidClock("8:30")) // sem zero à esquerda quebra a ordenação
	assert.False(t, ValidClock("8h30"))
	assert.False(t, ValidClock("25:00"))
	assert.False(t, ValidClock("08:3"))
	assert.False(t, ValidClock(""))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-06-01"))
	assert.False(t, ValidDate("01/06/2026"))
	assert.False(t, ValidDate("2026-13-01"))
}
