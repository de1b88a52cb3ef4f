package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-dashboard-api/internal/api/handler"
	"github.com/vfg2006/business-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/scheduler"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/advertising"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/analytics"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/automation"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/brandasset"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/cashflow"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/business-dashboard-api/internal/usecases/socialmedia"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
	"github.com/vfg2006/business-dashboard-api/pkg/middleware"
)

// Services reúne os casos de uso expostos pela API
type Services struct {
	Dashboard      *dashboard.Service
	Insights       *insighting.Service
	SocialMedia    *socialmedia.Service
	Analytics      *analytics.Service
	Automation     *automation.Service
	BrandAssets    *brandasset.Service
	CashFlow       *cashflow.Service
	Advertising    *advertising.Service
	Queue          scheduler.Enqueuer
	InsightRefresh *scheduler.InsightRefreshService
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares; metrics pode ser nil
func NewHandler(cfg *config.Config, services Services, m *metrics.Metrics) http.Handler {
	configs := []router.ConfigRouter{router.WithNotFound(handler.NotFound())}

	var metricsHandler http.Handler
	if m != nil {
		configs = append(configs, router.WithMetrics(m))
		metricsHandler = m.Handler()
	}

	configs = append(configs,
		router.WithRoutes(handler.Healthcheck(cfg.App, metricsHandler)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard, services.Insights.Generator())...),
		router.WithRoutes(handler.SocialMedia(services.SocialMedia)...),
		router.WithRoutes(handler.AIServices(services.Insights)...),
		router.WithRoutes(handler.Analytics(services.Analytics)...),
		router.WithRoutes(handler.Automation(services.Automation)...),
		router.WithRoutes(handler.BrandAssets(services.BrandAssets, cfg.Storage.MaxUploadMB)...),
		router.WithRoutes(handler.Uploads(cfg.Storage)...),
		router.WithRoutes(handler.CashFlow(services.CashFlow)...),
		router.WithRoutes(handler.AdCampaigns(services.Advertising)...),
		router.WithRoutes(handler.Jobs(services.Queue, services.InsightRefresh)...),
	)

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services, m *metrics.Metrics) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services, m),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
