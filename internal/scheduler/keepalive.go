package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/escala-estagiarios/escala-web/internal/config"
	"github.com/escala-estagiarios/escala-web/pkg/log"
	"github.com/go-co-op/gocron"
)

// Pinger é a parte do cliente da API usada pelo keep-alive
type Pinger interface {
	BaseURL() string
	Ping(ctx context.Context) error
}

// KeepAliveConfig representa a configuração do agendador de keep-alive
type KeepAliveConfig struct {
	CronSchedule string
	Enabled      bool
}

// KeepAliveService pinga a API de escalas periodicamente para que o backend
// hospedado não esteja dormindo quando uma importação longa for enviada
type KeepAliveService struct {
	scheduler *gocron.Scheduler
	config    KeepAliveConfig
	client    Pinger

	mu                  sync.Mutex
	ctx                 context.Context
	pingRunning         bool
	schedulerRunning    bool
	lastPingStartedAt   time.Time
	lastPingCompletedAt time.Time
	lastPingError       string
}

func NewKeepAliveService(client Pinger, appConfig *config.Config) *KeepAliveService {
	cfg := KeepAliveConfig{
		CronSchedule: appConfig.KeepAlive.CronSchedule,
		Enabled:      appConfig.KeepAlive.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
		"api_url":       client.BaseURL(),
	}).Info("Configuração do keep-alive da API carregada")

	return &KeepAliveService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		client:    client,
		ctx:       context.Background(),
	}
}

// Start agenda o ping e para o agendador quando ctx for cancelado
func (s *KeepAliveService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Keep-alive da API desabilitado por configuração")
		return nil
	}

	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.ping)
	if err != nil {
		return fmt.Errorf("erro ao agendar keep-alive da API: %w", err)
	}

	s.scheduler.StartAsync()
	s.setSchedulerRunning(true)

	log.L.WithField("cron", s.config.CronSchedule).Info("Agendador de keep-alive da API iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de keep-alive da API")
		s.scheduler.Stop()
		s.setSchedulerRunning(false)
	}()

	return nil
}

func (s *KeepAliveService) setSchedulerRunning(running bool) {
	s.mu.Lock()
	s.schedulerRunning = running
	s.mu.Unlock()
}

// ping chama a API. Execuções sobrepostas são ignoradas.
func (s *KeepAliveService) ping() {
	ctx, ok := s.beginPing()
	if !ok {
		log.L.Debug("Keep-alive já em andamento, ignorando")
		return
	}
	s.runPing(ctx)
}

// beginPing marca o ping como em andamento. Retorna false se já houver um.
func (s *KeepAliveService) beginPing() (context.Context, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pingRunning {
		return nil, false
	}
	s.pingRunning = true
	s.lastPingStartedAt = time.Now()
	return s.ctx, true
}

func (s *KeepAliveService) runPing(ctx context.Context) {
	err := s.client.Ping(ctx)

	s.mu.Lock()
	s.pingRunning = false
	s.lastPingCompletedAt = time.Now()
	s.lastPingError = ""
	if err != nil {
		s.lastPingError = err.Error()
	}
	elapsed := s.lastPingCompletedAt.Sub(s.lastPingStartedAt)
	s.mu.Unlock()

	logger := log.L.WithFields(log.Fields{
		"api_url":     s.client.BaseURL(),
		"duration_ms": elapsed.Milliseconds(),
	})
	if err != nil {
		logger.WithError(err).Warn("Keep-alive: API de escalas não respondeu")
		return
	}
	logger.Debug("Keep-alive: API de escalas respondeu")
}

// TriggerPing dispara um ping fora do agendamento. Retorna false se já houver um em andamento.
func (s *KeepAliveService) TriggerPing() bool {
	ctx, ok := s.beginPing()
	if !ok {
		log.L.Info("Keep-alive já em andamento, ignorando solicitação manual")
		return false
	}

	go s.runPing(ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *KeepAliveService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"api_url":                s.client.BaseURL(),
		"scheduler_running":      s.schedulerRunning,
		"ping_running":           s.pingRunning,
		"last_ping_started_at":   s.lastPingStartedAt,
		"last_ping_completed_at": s.lastPingCompletedAt,
		"last_ping_error":        s.lastPingError,
	}
}
