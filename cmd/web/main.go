package main

import (
	"context"

	"github.com/escala-estagiarios/escala-web/internal/api"
	"github.com/escala-estagiarios/escala-web/internal/api/handler"
	"github.com/escala-estagiarios/escala-web/internal/apiclient"
	"github.com/escala-estagiarios/escala-web/internal/config"
	"github.com/escala-estagiarios/escala-web/internal/scheduler"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/escala-estagiarios/escala-web/pkg/session"
)

func main() {
	// Formato dos logs antes de ler a configuração
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cliente único, compartilhado por todas as páginas e pelo keep-alive
	client := apiclient.NewClient(cfg)

	views, err := handler.NewViews(session.NewFlashStore(cfg.Session.Secret))
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar os templates")
	}

	keepAlive := scheduler.NewKeepAliveService(client, cfg)
	if err := keepAlive.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de keep-alive da API")
	}

	server, err := api.New(cfg, client, views, keepAlive)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
