package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/domain"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/session"
)

type traineesPage struct {
	Trainees []domain.Trainee
}

func TraineesPage(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)

		trainees, err := client.ListTrainees(r.Context(), m.Month())
		if err != nil {
			views.RenderError(w, r, m, err)
			return
		}
		sortTrainees(trainees)

		views.Render(w, r, pageTrainees, http.StatusOK, PageData{
			Title: "Estagiários",
			Month: m,
			Data:  traineesPage{Trainees: trainees},
		})
	})
}

func CreateTrainee(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/trainees")

		name := strings.TrimSpace(r.FormValue("name"))
		if name == "" {
			views.RedirectWithFlash(w, r, back, session.KindError, "Informe o nome do estagiário")
			return
		}

		trainee, err := client.CreateTrainee(r.Context(), m.Month(), domain.TraineeInput{Name: name, Active: true})
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":      m.Month(),
			"trainee_id": trainee.ID,
		}).Info("trainees: estagiário criado")

		views.RedirectWithFlash(w, r, back, session.KindSuccess, fmt.Sprintf("%s adicionado(a)", trainee.Name))
	})
}

func UpdateTrainee(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/trainees")

		id, ok := traineeIDFromRequest(r)
		if !ok {
			views.RenderBadRequest(w, r, m, "Identificador de estagiário inválido")
			return
		}

		name := strings.TrimSpace(r.FormValue("name"))
		if name == "" {
			views.RedirectWithFlash(w, r, back, session.KindError, "O nome não pode ficar vazio")
			return
		}

		trainee, err := client.UpdateTrainee(r.Context(), m.Month(), id, domain.TraineeInput{
			Name:   name,
			Active: checkbox(r, "active"),
		})
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		views.RedirectWithFlash(w, r, back, session.KindSuccess, fmt.Sprintf("%s atualizado(a)", trainee.Name))
	})
}

func DeleteTrainee(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/trainees")

		id, ok := traineeIDFromRequest(r)
		if !ok {
			views.RenderBadRequest(w, r, m, "Identificador de estagiário inválido")
			return
		}

		if err := client.DeleteTrainee(r.Context(), m.Month(), id); err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":      m.Month(),
			"trainee_id": id,
		}).Info("trainees: estagiário excluído")

		views.RedirectWithFlash(w, r, back, session.KindSuccess, "Estagiário excluído")
	})
}

// ClearTraineeSchedule remove as alocações de um estagiário no mês
func ClearTraineeSchedule(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/trainees")

		id, ok := traineeIDFromRequest(r)
		if !ok {
			views.RenderBadRequest(w, r, m, "Identificador de estagiário inválido")
			return
		}

		result, err := client.ClearTraineeSchedule(r.Context(), m.Month(), id)
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		message := "Escala do estagiário removida"
		if result != nil && result.Message != "" {
			message = result.Message
		}
		views.RedirectWithFlash(w, r, back, session.KindSuccess, message)
	})
}
