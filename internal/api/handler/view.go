package handler

import (
	"bytes"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/escala-estagiarios/escala-web/internal/month"
	"github.com/escala-estagiarios/escala-web/pkg/apiErrors"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/session"
	"github.com/escala-estagiarios/escala-web/web"
)

// Páginas disponíveis; cada uma é um arquivo em web/templates
const (
	pageMonthSelection      = "month_selection"
	pageImport              = "import"
	pageTrainees            = "trainees"
	pageAvailability        = "availability"
	pageTraineeAvailability = "trainee_availability"
	pageSchedule            = "schedule"
	pageError               = "error"
)

var pages = []string{
	pageMonthSelection,
	pageImport,
	pageTrainees,
	pageAvailability,
	pageTraineeAvailability,
	pageSchedule,
	pageError,
}

// NavLink é um item do menu. Href vem de month.Context.NavigateTo.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// PageData é o que todo template recebe
type PageData struct {
	Title   string
	Active  string
	Month   month.Context
	Nav     []NavLink
	Flashes []session.Flash
	Data    any
}

// Limites de texto das mensagens. O cookie de sessão não comporta mais que ~4KB
// e o texto ainda passa por gob, assinatura e base64.
const (
	maxFlashRunes  = 600
	maxDetailRunes = 300
)

type errorPage struct {
	Code    string
	Message string
	Back    string
}

// Views renderiza as páginas e guarda as mensagens flash
type Views struct {
	templates map[string]*template.Template
	flashes   *session.FlashStore
}

// NewViews carrega os templates embutidos
func NewViews(flashes *session.FlashStore) (*Views, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New("layout").ParseFS(web.TemplatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, err
		}
		templates[page] = tmpl
	}

	return &Views{
		templates: templates,
		flashes:   flashes,
	}, nil
}

func navigation(m month.Context, active string) []NavLink {
	items := []struct{ key, label, path string }{
		{pageImport, "Importação", "/import"},
		{pageTrainees, "Estagiários", "/trainees"},
		{pageAvailability, "Disponibilidade", "/availability"},
		{pageSchedule, "Escala", "/schedule"},
	}

	nav := make([]NavLink, 0, len(items))
	for _, item := range items {
		nav = append(nav, NavLink{
			Label:  item.label,
			Href:   m.NavigateTo(item.path),
			Active: item.key == active,
		})
	}
	return nav
}

// Render escreve a página com o status informado
func (v *Views) Render(w http.ResponseWriter, r *http.Request, page string, status int, data PageData) {
	logger := log.ForContext(r.Context())

	tmpl, ok := v.templates[page]
	if !ok {
		logger.WithField("page", page).Error("views: template não encontrado")
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	if data.Active == "" {
		data.Active = page
	}
	data.Nav = navigation(data.Month, data.Active)
	data.Flashes = append(data.Flashes, v.flashes.Pop(w, r)...)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.WithError(err).WithField("page", page).Error("views: erro ao renderizar página")
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := io.Copy(w, &buf); err != nil {
		logger.WithError(err).Warn("views: erro ao escrever resposta")
	}
}

// RenderError mostra a página de erro com o status mapeado a partir do erro da API
func (v *Views) RenderError(w http.ResponseWriter, r *http.Request, m month.Context, err error) {
	apiErr := apiErrors.FromError(err)

	log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"month": m.Month(),
		"path":  r.URL.Path,
		"code":  apiErr.Code,
	}).Error("views: erro ao consultar a API de escalas")

	v.Render(w, r, pageError, apiErrors.Status(apiErr.Code), PageData{
		Title: "Erro",
		Month: m,
		Data: errorPage{
			Code:    apiErr.Code,
			Message: userMessage(apiErr.Code),
			Back:    m.NavigateTo("/import"),
		},
	})
}

// RenderBadRequest mostra a página de erro para entradas inválidas do usuário
func (v *Views) RenderBadRequest(w http.ResponseWriter, r *http.Request, m month.Context, message string) {
	v.Render(w, r, pageError, http.StatusBadRequest, PageData{
		Title: "Requisição inválida",
		Month: m,
		Data: errorPage{
			Code:    apiErrors.ErrInvalidRequest,
			Message: message,
			Back:    m.NavigateTo("/import"),
		},
	})
}

// RedirectWithFlash grava a mensagem e redireciona com 303. A mensagem é
// cortada em maxFlashRunes para caber no cookie de sessão.
func (v *Views) RedirectWithFlash(w http.ResponseWriter, r *http.Request, to, kind, message string) {
	if err := v.flashes.Add(w, r, kind, truncateRunes(message, maxFlashRunes)); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("views: erro ao gravar mensagem flash")
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// FlashError redireciona com a mensagem correspondente ao erro da API
func (v *Views) FlashError(w http.ResponseWriter, r *http.Request, to string, err error) {
	apiErr := apiErrors.FromError(err)

	log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"path": r.URL.Path,
		"code": apiErr.Code,
	}).Error("views: operação na API de escalas falhou")

	message := userMessage(apiErr.Code)
	if detail := apiDetail(err); detail != "" {
		message += ": " + detail
	}
	v.RedirectWithFlash(w, r, to, session.KindError, message)
}

func userMessage(code string) string {
	switch code {
	case apiErrors.ErrCommunication:
		return "A API de escalas não respondeu a tempo ou está fora do ar"
	case apiErrors.ErrNotFound:
		return "Registro não encontrado"
	case apiErrors.ErrInvalidRequest:
		return "A API de escalas recusou os dados enviados"
	case apiErrors.ErrExternalService:
		return "A API de escalas retornou um erro"
	default:
		return "Erro inesperado"
	}
}

func apiDetail(err error) string {
	if e := asAPIError(err); e != nil {
		return truncateRunes(strings.TrimSpace(e.Detail), maxDetailRunes)
	}
	return ""
}

func truncateRunes(s string, max int) string {
	if runes := []rune(s); len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return s
}
