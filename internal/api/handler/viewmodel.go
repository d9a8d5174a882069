package handler

import (
	"sort"
	"strings"

	"github.com/escala-estagiarios/escala-web/internal/domain"
	"github.com/escala-estagiarios/escala-web/pkg/utils"
)

type availabilityRow struct {
	Trainee     domain.Trainee
	Unavailable int
	Days        []string
}

type slot struct {
	Shift    domain.Shift
	Capacity int
	Trainees []string
}

// OverCapacity indica mais estagiários que instrutores no turno
func (s slot) OverCapacity() bool {
	return len(s.Trainees) > s.Capacity
}

type scheduleDay struct {
	Date  string
	Slots []slot
}

type traineeTotal struct {
	Name  string
	Count int
}

func sortTrainees(trainees []domain.Trainee) {
	sort.SliceStable(trainees, func(i, j int) bool {
		return strings.ToLower(trainees[i].Name) < strings.ToLower(trainees[j].Name)
	})
}

func shiftOrder(s domain.Shift) int {
	for i, known := range domain.Shifts {
		if s == known {
			return i
		}
	}
	return len(domain.Shifts)
}

// buildAvailabilityRows resume as indisponibilidades do mês por estagiário
func buildAvailabilityRows(trainees []domain.Trainee, availability []domain.TraineeAvailability) []availabilityRow {
	byTrainee := make(map[int][]domain.TraineeAvailability)
	for _, a := range availability {
		if !a.Available {
			byTrainee[a.TraineeID] = append(byTrainee[a.TraineeID], a)
		}
	}

	sortTrainees(trainees)

	rows := make([]availabilityRow, 0, len(trainees))
	for _, t := range trainees {
		entries := byTrainee[t.ID]

		seen := make(map[string]bool)
		var days []string
		for _, e := range entries {
			day := e.Date
			if len(day) == len(utils.DateLayout) {
				day = day[8:]
			}
			if !seen[day] {
				seen[day] = true
				days = append(days, day)
			}
		}
		sort.Strings(days)

		rows = append(rows, availabilityRow{
			Trainee:     t,
			Unavailable: len(entries),
			Days:        days,
		})
	}
	return rows
}

// sortAvailability ordena por data e turno
func sortAvailability(entries []domain.TraineeAvailability) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return shiftOrder(entries[i].Shift) < shiftOrder(entries[j].Shift)
	})
}

// buildScheduleDays monta a grade dia × turno com alocações e capacidade.
// Para meses fora do calendário usa apenas as datas presentes nos dados.
func buildScheduleDays(monthStr string, assignments []domain.TraineeAssignment, capacity []domain.InstructorCapacity, trainees []domain.Trainee) ([]scheduleDay, []traineeTotal) {
	names := make(map[int]string, len(trainees))
	for _, t := range trainees {
		names[t.ID] = t.Name
	}

	type key struct {
		date  string
		shift domain.Shift
	}
	assigned := make(map[key][]string)
	counts := make(map[string]int)
	dates := make(map[string]bool)

	for _, a := range assignments {
		name := names[a.TraineeID]
		if a.Trainee != nil && a.Trainee.Name != "" {
			name = a.Trainee.Name
		}
		if name == "" {
			continue
		}
		k := key{date: a.Date, shift: a.Shift}
		assigned[k] = append(assigned[k], name)
		counts[name]++
		dates[a.Date] = true
	}

	capacities := make(map[key]int)
	for _, c := range capacity {
		capacities[key{date: c.Date, shift: c.Shift}] = c.TotalInstructors
		dates[c.Date] = true
	}

	if len(dates) == 0 {
		return nil, nil
	}

	var ordered []string
	if days, err := utils.DaysOfMonth(monthStr); err == nil {
		for _, d := range days {
			ordered = append(ordered, d.Format(utils.DateLayout))
		}
	} else {
		for d := range dates {
			ordered = append(ordered, d)
		}
		sort.Strings(ordered)
	}

	result := make([]scheduleDay, 0, len(ordered))
	for _, date := range ordered {
		day := scheduleDay{Date: date}
		for _, s := range domain.Shifts {
			k := key{date: date, shift: s}
			list := assigned[k]
			sort.Strings(list)
			day.Slots = append(day.Slots, slot{
				Shift:    s,
				Capacity: capacities[k],
				Trainees: list,
			})
		}
		result = append(result, day)
	}

	totals := make([]traineeTotal, 0, len(counts))
	for name, count := range counts {
		totals = append(totals, traineeTotal{Name: name, Count: count})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Count != totals[j].Count {
			return totals[i].Count > totals[j].Count
		}
		return totals[i].Name < totals[j].Name
	})

	return result, totals
}
