package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares específicos desta rota, aplicados em ordem
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

// New monta o router. As rotas são fixadas aqui e não mudam durante o processo.
func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// O primeiro middleware da lista é o mais externo
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}

// Redirect responde sempre com redirecionamento para to
func Redirect(to string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, to, http.StatusSeeOther)
	})
}

// RedirectRoutes cria rotas GET que apenas redirecionam para to
func RedirectRoutes(to string, paths ...string) []Route {
	routes := make([]Route, 0, len(paths))
	for _, p := range paths {
		routes = append(routes, Route{
			Path:    p,
			Method:  http.MethodGet,
			Handler: Redirect(to),
		})
	}
	return routes
}
