package handler

import (
	"testing"

	"github.com/escala-estagiarios/escala-web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAvailabilityRows(t *testing.T) {
	trainees := []domain.Trainee{
		{ID: 2, Name: "Bruno"},
		{ID: 1, Name: "Ana"},
	}
	availability := []domain.TraineeAvailability{
		{TraineeID: 1, Date: "2024-05-03", Shift: domain.ShiftManha},
		{TraineeID: 1, Date: "2024-05-03", Shift: domain.ShiftTarde},
		{TraineeID: 1, Date: "2024-05-01", Shift: domain.ShiftPernoite},
		{TraineeID: 2, Date: "2024-05-02", Shift: domain.ShiftManha, Available: true},
	}

	rows := buildAvailabilityRows(trainees, availability)

	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].Trainee.Name)
	assert.Equal(t, 3, rows[0].Unavailable)
	assert.Equal(t, []string{"01", "03"}, rows[0].Days)

	assert.Equal(t, "Bruno", rows[1].Trainee.Name)
	assert.Equal(t, 0, rows[1].Unavailable)
	assert.Empty(t, rows[1].Days)
}

func TestBuildScheduleDays(t *testing.T) {
	trainees := []domain.Trainee{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
	}
	assignments := []domain.TraineeAssignment{
		{TraineeID: 2, Date: "2024-02-01", Shift: domain.ShiftManha},
		{TraineeID: 1, Date: "2024-02-01", Shift: domain.ShiftManha},
		{TraineeID: 1, Date: "2024-02-02", Shift: domain.ShiftPernoite},
		{TraineeID: 99, Date: "2024-02-02", Shift: domain.ShiftTarde, Trainee: &domain.Trainee{Name: "Carla"}},
		{TraineeID: 77, Date: "2024-02-03", Shift: domain.ShiftTarde},
	}
	capacity := []domain.InstructorCapacity{
		{Date: "2024-02-01", Shift: domain.ShiftManha, TotalInstructors: 1},
		{Date: "2024-02-02", Shift: domain.ShiftPernoite, TotalInstructors: 2},
	}

	days, totals := buildScheduleDays("2024-02", assignments, capacity, trainees)

	require.Len(t, days, 29)
	first := days[0]
	assert.Equal(t, "2024-02-01", first.Date)
	require.Len(t, first.Slots, len(domain.Shifts))
	assert.Equal(t, domain.ShiftManha, first.Slots[0].Shift)
	assert.Equal(t, []string{"Ana", "Bruno"}, first.Slots[0].Trainees)
	assert.True(t, first.Slots[0].OverCapacity())

	second := days[1]
	assert.Equal(t, []string{"Carla"}, second.Slots[1].Trainees)
	assert.False(t, second.Slots[2].OverCapacity())

	// Alocação sem nome conhecido é ignorada
	assert.Empty(t, days[2].Slots[1].Trainees)

	assert.Equal(t, []traineeTotal{
		{Name: "Ana", Count: 2},
		{Name: "Bruno", Count: 1},
		{Name: "Carla", Count: 1},
	}, totals)
}

func TestBuildScheduleDays_OutOfCalendarMonth(t *testing.T) {
	assignments := []domain.TraineeAssignment{
		{Date: "2024-13-02", Shift: domain.ShiftTarde, Trainee: &domain.Trainee{Name: "Ana"}},
		{Date: "2024-13-01", Shift: domain.ShiftManha, Trainee: &domain.Trainee{Name: "Ana"}},
	}

	days, _ := buildScheduleDays("2024-13", assignments, nil, nil)

	require.Len(t, days, 2)
	assert.Equal(t, "2024-13-01", days[0].Date)
	assert.Equal(t, "2024-13-02", days[1].Date)
}

func TestBuildScheduleDays_Empty(t *testing.T) {
	days, totals := buildScheduleDays("2024-05", nil, nil, nil)

	assert.Nil(t, days)
	assert.Nil(t, totals)
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"Ana", "Bruno Lima"}, splitNames("Ana\r\n  Bruno Lima \n\nAna\n"))
	assert.Empty(t, splitNames(" \n "))
}

func TestDecodeCapacity(t *testing.T) {
	list, err := decodeCapacity(`{"data":[{"data":"2024-05-01","soma_total":[{"turno":2,"total":4}]}]}`)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].SomaTotal[0].Total)

	_, err = decodeCapacity(`[{"data":`)
	assert.Error(t, err)
}
