package handler

import (
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/api/handler/router"
	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/month"
	"github.com/escala-estagiarios/escala-web/pkg/middleware"
	"github.com/escala-estagiarios/escala-web/web"
)

// Caminhos das páginas que dependem de mês
const (
	PathImport       = "/import"
	PathTrainees     = "/trainees"
	PathAvailability = "/availability"
	PathSchedule     = "/schedule"
)

var monthGuard = []func(http.Handler) http.Handler{middleware.RequireMonth()}

func Healthcheck(client apiclient.Client, keepAlive KeepAliver) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck/backend",
			Method:  http.MethodGet,
			Handler: BackendHealthHandler(client),
		},
		{
			Path:    "/healthcheck/keepalive",
			Method:  http.MethodGet,
			Handler: KeepAliveStatus(keepAlive),
		},
		{
			Path:    "/healthcheck/keepalive/run",
			Method:  http.MethodPost,
			Handler: RunKeepAlive(keepAlive),
		},
	}
}

func Static() []router.Route {
	return []router.Route{
		{
			Path:    "/static/*filepath",
			Method:  http.MethodGet,
			Handler: http.FileServer(http.FS(web.StaticFS)),
		},
	}
}

func MonthSelection(client apiclient.Client, views *Views) []router.Route {
	return []router.Route{
		{
			Path:    month.Root,
			Method:  http.MethodGet,
			Handler: MonthSelectionPage(client, views),
		},
		{
			Path:    month.Root,
			Method:  http.MethodPost,
			Handler: SelectMonth(client, views),
		},
		{
			Path:        "/months/:month/delete",
			Method:      http.MethodPost,
			Handler:     DeleteMonth(client, views),
			Middlewares: monthGuard,
		},
	}
}

// MonthRedirects leva as páginas acessadas sem mês para a seleção de mês
func MonthRedirects() []router.Route {
	return router.RedirectRoutes(month.Root, PathImport, PathTrainees, PathAvailability, PathSchedule)
}

func Import(client apiclient.Client, views *Views) []router.Route {
	return []router.Route{
		{
			Path:        "/import/:month",
			Method:      http.MethodGet,
			Handler:     ImportPage(views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/import/:month/trainees-list",
			Method:      http.MethodPost,
			Handler:     ImportTraineeList(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/import/:month/trainees-text",
			Method:      http.MethodPost,
			Handler:     ImportTraineesText(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/import/:month/capacity-json",
			Method:      http.MethodPost,
			Handler:     ImportCapacityJSON(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/import/:month/capacity-table",
			Method:      http.MethodPost,
			Handler:     ImportCapacityTable(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/import/:month/shifts",
			Method:      http.MethodPost,
			Handler:     ImportShifts(client, views),
			Middlewares: monthGuard,
		},
	}
}

func Trainees(client apiclient.Client, views *Views) []router.Route {
	return []router.Route{
		{
			Path:        "/trainees/:month",
			Method:      http.MethodGet,
			Handler:     TraineesPage(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/trainees/:month",
			Method:      http.MethodPost,
			Handler:     CreateTrainee(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/trainees/:month/:id/update",
			Method:      http.MethodPost,
			Handler:     UpdateTrainee(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/trainees/:month/:id/delete",
			Method:      http.MethodPost,
			Handler:     DeleteTrainee(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/trainees/:month/:id/clear-schedule",
			Method:      http.MethodPost,
			Handler:     ClearTraineeSchedule(client, views),
			Middlewares: monthGuard,
		},
	}
}

func Availability(client apiclient.Client, views *Views) []router.Route {
	return []router.Route{
		{
			Path:        "/availability/:month",
			Method:      http.MethodGet,
			Handler:     AvailabilityPage(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/availability/:month/:id",
			Method:      http.MethodGet,
			Handler:     TraineeAvailabilityPage(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/availability/:month/:id",
			Method:      http.MethodPost,
			Handler:     SaveAvailability(client, views),
			Middlewares: monthGuard,
		},
	}
}

func Schedule(client apiclient.Client, views *Views) []router.Route {
	return []router.Route{
		{
			Path:        "/schedule/:month",
			Method:      http.MethodGet,
			Handler:     SchedulePage(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/schedule/:month/generate",
			Method:      http.MethodPost,
			Handler:     GenerateSchedule(client, views),
			Middlewares: monthGuard,
		},
		{
			Path:        "/schedule/:month/clear",
			Method:      http.MethodPost,
			Handler:     ClearSchedule(client, views),
			Middlewares: monthGuard,
		},
	}
}
