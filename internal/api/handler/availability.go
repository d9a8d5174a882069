package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/domain"
	"github.com/escala-estagiarios/escala-web/internal/month"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/session"
	"github.com/escala-estagiarios/escala-web/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const allShifts = "all"

type availabilityPage struct {
	Rows []availabilityRow
}

type traineeAvailabilityPage struct {
	Trainee  domain.Trainee
	FirstDay string
	LastDay  string
	Shifts   []domain.Shift
	Entries  []domain.TraineeAvailability
}

func AvailabilityPage(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)

		var (
			trainees     []domain.Trainee
			availability []domain.TraineeAvailability
		)

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() (err error) {
			trainees, err = client.ListTrainees(ctx, m.Month())
			return err
		})
		g.Go(func() (err error) {
			availability, err = client.ListMonthAvailability(ctx, m.Month())
			return err
		})
		if err := g.Wait(); err != nil {
			views.RenderError(w, r, m, err)
			return
		}

		views.Render(w, r, pageAvailability, http.StatusOK, PageData{
			Title: "Disponibilidade",
			Month: m,
			Data:  availabilityPage{Rows: buildAvailabilityRows(trainees, availability)},
		})
	})
}

func findTrainee(trainees []domain.Trainee, id int) (domain.Trainee, bool) {
	for _, t := range trainees {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Trainee{}, false
}

func TraineeAvailabilityPage(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)

		id, ok := traineeIDFromRequest(r)
		if !ok {
			views.RenderBadRequest(w, r, m, "Identificador de estagiário inválido")
			return
		}

		var (
			trainees []domain.Trainee
			entries  []domain.TraineeAvailability
		)

		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() (err error) {
			trainees, err = client.ListTrainees(ctx, m.Month())
			return err
		})
		g.Go(func() (err error) {
			entries, err = client.ListTraineeAvailability(ctx, m.Month(), id)
			return err
		})
		err := g.Wait()
		if err != nil && !apiclient.IsNotFound(err) {
			views.RenderError(w, r, m, err)
			return
		}

		// A API responde 404 para estagiário de outro mês ou já excluído
		trainee, found := findTrainee(trainees, id)
		if err != nil || !found {
			views.RedirectWithFlash(w, r, m.NavigateTo("/availability"), session.KindError, "Estagiário não encontrado neste mês")
			return
		}
		sortAvailability(entries)

		data := traineeAvailabilityPage{
			Trainee: trainee,
			Shifts:  domain.Shifts,
			Entries: entries,
		}
		if days, err := utils.DaysOfMonth(m.Month()); err == nil {
			data.FirstDay = days[0].Format(utils.DateLayout)
			data.LastDay = days[len(days)-1].Format(utils.DateLayout)
		}

		views.Render(w, r, pageTraineeAvailability, http.StatusOK, PageData{
			Title:  trainee.Name,
			Active: pageAvailability,
			Month:  m,
			Data:   data,
		})
	})
}

// availabilityItems monta os itens do envio em lote a partir do formulário.
// O turno "all" gera um item para cada turno do dia.
func availabilityItems(m month.Context, r *http.Request) ([]domain.AvailabilityInput, error) {
	date := strings.TrimSpace(r.FormValue("date"))
	if !utils.DateInMonth(date, m.Month()) {
		return nil, fmt.Errorf("a data deve estar dentro de %s", m.Month())
	}

	shifts := domain.Shifts
	if value := strings.TrimSpace(r.FormValue("shift")); value != allShifts {
		shift := domain.Shift(value)
		if !shift.IsValid() {
			return nil, fmt.Errorf("turno inválido: %q", value)
		}
		shifts = []domain.Shift{shift}
	}

	var reason *string
	if text := strings.TrimSpace(r.FormValue("reason")); text != "" {
		reason = &text
	}
	available := checkbox(r, "available")

	items := make([]domain.AvailabilityInput, 0, len(shifts))
	for _, s := range shifts {
		items = append(items, domain.AvailabilityInput{
			Date:      date,
			Shift:     s,
			Available: available,
			Reason:    reason,
		})
	}
	return items, nil
}

func SaveAvailability(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)

		id, ok := traineeIDFromRequest(r)
		if !ok {
			views.RenderBadRequest(w, r, m, "Identificador de estagiário inválido")
			return
		}
		back := m.NavigateTo("/availability") + fmt.Sprintf("/%d", id)

		items, err := availabilityItems(m, r)
		if err != nil {
			views.RedirectWithFlash(w, r, back, session.KindError, err.Error())
			return
		}

		if err := client.BulkAvailability(r.Context(), m.Month(), id, items); err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":      m.Month(),
			"trainee_id": id,
			"items":      len(items),
		}).Info("availability: disponibilidade salva")

		views.RedirectWithFlash(w, r, back, session.KindSuccess, fmt.Sprintf("%d turno(s) atualizado(s)", len(items)))
	})
}
