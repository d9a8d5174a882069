package middleware

import (
	"net/http"

	"github.com/escala-estagiarios/escala-web/internal/month"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// RequireMonth é o guard das rotas com :month. Mês ausente ou fora do formato
// YYYY-MM redireciona para a seleção de mês sem mensagem de erro.
func RequireMonth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httprouter.ParamsFromContext(r.Context()).ByName(month.Param)

			decision := month.Guard(m)
			if !decision.Proceed {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"month":       m,
					"path":        r.URL.Path,
					"redirect_to": decision.RedirectTo,
				}).Debug("month-guard: mês inválido, redirecionando")

				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
