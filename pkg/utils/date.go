package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate converte uma data YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}
	return date, nil
}

// DaysOfMonth lista os dias de um mês YYYY-MM. Mês fora do calendário (ex.: 2024-13) é erro.
func DaysOfMonth(month string) ([]time.Time, error) {
	first, err := time.Parse(MonthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("mês inválido %q: %w", month, err)
	}

	next := first.AddDate(0, 1, 0)
	days := make([]time.Time, 0, 31)
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days, nil
}

// DateInMonth indica se a data YYYY-MM-DD pertence ao mês YYYY-MM
func DateInMonth(date, month string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	return d.Format(MonthLayout) == month
}
