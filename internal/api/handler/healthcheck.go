package handler

import (
	"net/http"
	"time"

	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/pkg/apiErrors"
	"github.com/escala-estagiarios/escala-web/pkg/log"
)

// KeepAliver é o serviço de keep-alive exposto nas rotas de healthcheck
type KeepAliver interface {
	TriggerPing() bool
	GetStatus() map[string]any
}

type backendStatus struct {
	APIURL    string `json:"api_url"`
	Reachable bool   `json:"reachable"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// BackendHealthHandler verifica se a API de escalas responde na origem configurada
func BackendHealthHandler(client apiclient.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := backendStatus{APIURL: client.BaseURL()}

		if err := client.Ping(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("api_url", status.APIURL).Warn("healthcheck: API de escalas indisponível")
			apiErrors.WriteError(w, apiErrors.ErrCommunication, "API de escalas indisponível", status)
			return
		}

		status.Reachable = true
		writeJSON(w, http.StatusOK, status)
	})
}

func KeepAliveStatus(service KeepAliver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	})
}

// RunKeepAlive dispara um ping imediato. 409 se já houver um em andamento.
func RunKeepAlive(service KeepAliver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !service.TriggerPing() {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Keep-alive já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{"message": "Keep-alive iniciado"})
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("erro ao escrever resposta JSON")
	}
}
