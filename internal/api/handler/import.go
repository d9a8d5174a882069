package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/domain"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/session"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ImportPage(views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, pageImport, http.StatusOK, PageData{
			Title: "Importação",
			Month: monthFromRequest(r),
		})
	})
}

// ImportTraineeList cadastra os nomes enviados, um por linha
func ImportTraineeList(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/import")

		text, err := formText(r, "names")
		if err != nil {
			views.RedirectWithFlash(w, r, back, session.KindError, err.Error())
			return
		}

		names := splitNames(text)
		if len(names) == 0 {
			views.RedirectWithFlash(w, r, back, session.KindError, "Informe ao menos um nome")
			return
		}

		result, err := client.ImportTraineeList(r.Context(), m.Month(), names)
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":    m.Month(),
			"sent":     len(names),
			"imported": result.Imported,
			"errors":   len(result.Errors),
		}).Info("import: lista de estagiários importada")

		message := fmt.Sprintf("%d de %d estagiário(s) importado(s)", result.Imported, len(names))
		if len(result.Errors) > 0 {
			views.RedirectWithFlash(w, r, back, session.KindError, message+". "+summarizeErrors(result.Errors))
			return
		}
		views.RedirectWithFlash(w, r, back, session.KindSuccess, message)
	})
}

// Quantos erros de importação aparecem por extenso na mensagem
const maxListedErrors = 5

func summarizeErrors(errs []string) string {
	summary := fmt.Sprintf("%d erro(s): ", len(errs))
	if len(errs) <= maxListedErrors {
		return summary + strings.Join(errs, "; ")
	}
	return summary + strings.Join(errs[:maxListedErrors], "; ") + fmt.Sprintf("; e mais %d", len(errs)-maxListedErrors)
}

// ImportTraineesText envia o texto de indisponibilidades
func ImportTraineesText(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/import")

		text, err := formText(r, "text")
		if err != nil {
			views.RedirectWithFlash(w, r, back, session.KindError, err.Error())
			return
		}
		if text == "" {
			views.RedirectWithFlash(w, r, back, session.KindError, "Cole o texto ou envie um arquivo")
			return
		}

		result, err := client.ImportTraineesText(r.Context(), m.Month(), text)
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month":             m.Month(),
			"imported_entries":  result.ImportedEntries,
			"trainees_affected": len(result.TraineesAffected),
		}).Info("import: indisponibilidades importadas")

		views.RedirectWithFlash(w, r, back, session.KindSuccess, fmt.Sprintf(
			"%d registro(s) importado(s) para %d estagiário(s)", result.ImportedEntries, len(result.TraineesAffected)))
	})
}

// decodeCapacity aceita a lista de dias ou o objeto {"data": [...]}
func decodeCapacity(text string) ([]domain.DailyAvailability, error) {
	var list []domain.DailyAvailability
	if err := json.UnmarshalFromString(text, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Data []domain.DailyAvailability `json:"data"`
	}
	if err := json.UnmarshalFromString(text, &wrapped); err != nil {
		return nil, fmt.Errorf("JSON de capacidade inválido: %w", err)
	}
	return wrapped.Data, nil
}

// ImportCapacityJSON envia os totais diários de instrutores
func ImportCapacityJSON(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/import")

		text, err := formText(r, "data")
		if err != nil {
			views.RedirectWithFlash(w, r, back, session.KindError, err.Error())
			return
		}

		data, err := decodeCapacity(text)
		if err != nil {
			views.RedirectWithFlash(w, r, back, session.KindError, err.Error())
			return
		}
		if len(data) == 0 {
			views.RedirectWithFlash(w, r, back, session.KindError, "Nenhum dia encontrado no JSON de capacidade")
			return
		}

		result, err := client.ImportCapacityJSON(r.Context(), m.Month(), data)
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month": m.Month(),
			"days":  len(data),
		}).Info("import: capacidade de instrutores importada")

		views.RedirectWithFlash(w, r, back, session.KindSuccess, result.Message)
	})
}

// ImportCapacityTable envia a tabela HTML de capacidade
func ImportCapacityTable(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/import")

		html, err := formText(r, "html")
		if err != nil {
			views.RedirectWithFlash(w, r, back, session.KindError, err.Error())
			return
		}
		if html == "" {
			views.RedirectWithFlash(w, r, back, session.KindError, "Cole a tabela ou envie um arquivo")
			return
		}

		result, err := client.ImportCapacityTable(r.Context(), m.Month(), html)
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		views.RedirectWithFlash(w, r, back, session.KindSuccess, result.Message)
	})
}

// ImportShifts envia as definições de turno. Elas valem para todos os meses.
func ImportShifts(client apiclient.Client, views *Views) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := monthFromRequest(r)
		back := m.NavigateTo("/import")

		text, err := formText(r, "shifts")
		if err != nil {
			views.RedirectWithFlash(w, r, back, session.KindError, err.Error())
			return
		}

		var shifts []domain.ShiftDefinition
		if err := json.UnmarshalFromString(text, &shifts); err != nil || len(shifts) == 0 {
			views.RedirectWithFlash(w, r, back, session.KindError, "JSON de turnos inválido ou vazio")
			return
		}

		saved, err := client.ImportShifts(r.Context(), shifts)
		if err != nil {
			views.FlashError(w, r, back, err)
			return
		}

		views.RedirectWithFlash(w, r, back, session.KindSuccess, fmt.Sprintf("%d definição(ões) de turno salvas", len(saved)))
	})
}
