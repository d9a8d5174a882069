package handler

import (
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/domain"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/session"
	"golang.org/x/sync/errgroup"
)

type schedulePage struct {
	Shifts []domain.Shift
	Days   []scheduleDay
	Totals []traineeTotal
}

// SchedulePage mostra a grade do mês com alocações e capacidade de instrutores
func SchedulePage(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)

		var (
			assignments []domain.TraineeAssignment
			capacity    []domain.InstructorCapacity
			trainees    []domain.Trainee
		)

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() (err error) {
			assignments, err = client.GetSchedule(ctx, m.Month())
			return err
		})
		g.Go(func() (err error) {
			capacity, err = client.ListCapacity(ctx, m.Month())
			return err
		})
		g.Go(func() (err error) {
			trainees, err = client.ListTrainees(ctx, m.Month())
			return err
		})
		if err := g.Wait(); err != nil {
			views.RenderError(w, r, m, err)
			return
		}

		days, totals := buildScheduleDays(m.Month(), assignments, capacity, trainees)

		views.Render(w, r, pageSchedule, http.StatusOK, PageData{
			Title: "Escala",
			Month: m,
			Data: schedulePage{
				Shifts: domain.Shifts,
				Days:   days,
				Totals: totals,
			},
		})
	})
}

func GenerateSchedule(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/schedule")

		result, err := client.GenerateSchedule(r.Context(), m.Month())
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithField("month", m.Month()).Info("schedule: escala gerada")

		message := "Escala gerada"
		if result != nil && result.Message != "" {
			message = result.Message
		}
		views.RedirectWithFlash(w, r, back, session.KindSuccess, message)
	})
}

func ClearSchedule(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/schedule")

		result, err := client.ClearSchedule(r.Context(), m.Month())
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithField("month", m.Month()).Info("schedule: escala removida")

		message := "Escala removida"
		if result != nil && result.Message != "" {
			message = result.Message
		}
		views.RedirectWithFlash(w, r, back, session.KindSuccess, message)
	})
}
