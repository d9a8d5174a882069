package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysOfMonth(t *testing.T) {
	days, err := DaysOfMonth("2024-02")
	require.NoError(t, err)
	assert.Len(t, days, 29)
	assert.Equal(t, "2024-02-01", days[0].Format(DateLayout))
	assert.Equal(t, "2024-02-29", days[28].Format(DateLayout))

	days, err = DaysOfMonth("2025-11")
	require.NoError(t, err)
	assert.Len(t, days, 30)

	_, err = DaysOfMonth("2024-13")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2025-11-04 ")
	require.NoError(t, err)
	assert.Equal(t, 4, d.Day())

	_, err = ParseDate("04/11/2025")
	assert.Error(t, err)
}

func TestDateInMonth(t *testing.T) {
	assert.True(t, DateInMonth("2025-11-30", "2025-11"))
	assert.False(t, DateInMonth("2025-12-01", "2025-11"))
	assert.False(t, DateInMonth("lixo", "2025-11"))
}
