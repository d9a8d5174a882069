package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/domain"
	"github.com/escala-estagiarios/escala-web/internal/month"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/session"
	"github.com/escala-estagiarios/escala-web/pkg/utils"
)

type monthSelectionPage struct {
	Months    []domain.MonthlySchedule
	Suggested string
}

// MonthSelectionPage lista os meses cadastrados. Falha na API não impede a
// seleção: a página é exibida sem a lista.
func MonthSelectionPage(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		page := PageData{
			Title:  "Seleção de mês",
			Active: "months",
		}
		data := monthSelectionPage{Suggested: time.Now().Format(utils.MonthLayout)}

		months, err := client.ListMonths(r.Context())
		if err != nil {
			logger.WithError(err).Error("month-selection: erro ao listar meses")
			page.Flashes = append(page.Flashes, session.Flash{
				Kind:    session.KindError,
				Message: "Não foi possível carregar os meses cadastrados",
			})
		}
		data.Months = months
		page.Data = data

		views.Render(w, r, pageMonthSelection, http.StatusOK, page)
	})
}

// SelectMonth cria (ou reabre) o mês informado e segue para a importação
func SelectMonth(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := strings.TrimSpace(r.FormValue("month"))
		if !month.IsValid(m) {
			views.RedirectWithFlash(w, r, month.Root, session.KindError, "Informe o mês no formato AAAA-MM")
			return
		}

		if _, err := client.CreateMonth(r.Context(), m); err != nil {
			views.FlashError(w, r, month.Root, err)
			return
		}

		log.ForContext(r.Context()).WithField("month", m).Info("month-selection: mês selecionado")
		http.Redirect(w, r, month.Of(m).NavigateTo("/import"), http.StatusSeeOther)
	})
}

// DeleteMonth remove o mês e todos os seus dados
func DeleteMonth(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)

		if err := client.DeleteMonth(r.Context(), m.Month()); err != nil {
			views.FlashError(w, r, month.Root, err)
			return
		}

		log.ForContext(r.Context()).WithField("month", m.Month()).Info("month-selection: mês excluído")
		views.RedirectWithFlash(w, r, month.Root, session.KindSuccess, fmt.Sprintf("Escala de %s excluída", m.Month()))
	})
}
