package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/escala-estagiarios/escala-web/internal/api/handler"
	"github.com/escala-estagiarios/escala-web/internal/api/handler/router"
	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/config"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/middleware"
	"github.com/justinas/alice"
)

type Server struct {
	httpServer *http.Server
}

// Routes monta o router com todas as páginas e rotas de healthcheck
func Routes(client apiclient.Client, views *handler.Views, keepAlive handler.KeepAliver) router.Router {
	return router.New(
		router.WithRoutes(handler.Healthcheck(client, keepAlive)...),
		router.WithRoutes(handler.Static()...),
		router.WithRoutes(handler.MonthSelection(client, views)...),
		router.WithRoutes(handler.MonthRedirects()...),
		router.WithRoutes(handler.Import(client, views)...),
		router.WithRoutes(handler.Trainees(client, views)...),
		router.WithRoutes(handler.Availability(client, views)...),
		router.WithRoutes(handler.Schedule(client, views)...),
	)
}

// Handler aplica os middlewares globais ao router
func Handler(rt http.Handler) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(
	config *config.Config,
	client apiclient.Client,
	views *handler.Views,
	keepAlive handler.KeepAliver,
) (*Server, error) {
	rt := Routes(client, views, keepAlive)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           Handler(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	// Importações em andamento podem levar até o timeout do cliente da API
	shutdownCtx, cancel := context.WithTimeout(context.Background(), apiclient.RequestTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": apiclient.RequestTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
