package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/llm"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/n8n"
	"github.com/vfg2006/business-dashboard-api/infrastructure/integrator/n8n/n8nclient"
	"github.com/vfg2006/business-dashboard-api/infrastructure/jobstore"
	"github.com/vfg2006/business-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/business-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/business-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/business-dashboard-api/infrastructure/store"
	"github.com/vfg2006/business-dashboard-api/internal/api"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
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
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	repos, closeDB := repositories(ctx, cfg.Database, postgres.NewConnection)
	defer closeDB()
	records := store.New(repos, nil)

	llmIntegrator := llm.New(cfg.AI, llmclient.NewClient(cfg.AI), appMetrics)
	generator := insighting.NewGenerator(llmIntegrator)

	uploader, err := storage.New(cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o armazenamento de arquivos")
	}

	jobs := jobStore(ctx, cfg.Redis)
	queue := scheduler.NewJobQueue(cfg.Jobs, jobs, appMetrics)

	insightService := insighting.NewService(records, generator)
	advertisingService := advertising.NewService(records, generator, queue)

	queue.Register(domain.JobInsightRefresh, insightService.Refresh)
	queue.Register(domain.JobCampaignOptimization, advertisingService.Optimize)
	queue.Start(ctx)

	var workflowClient n8nclient.Client
	if cfg.Automation.Enabled() {
		workflowClient = n8nclient.NewClient(cfg.Automation)
	}
	workflowEngine := n8n.New(workflowClient)

	insightRefreshService := scheduler.NewInsightRefreshService(queue, cfg)
	if err := insightRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de insights")
	} else {
		logrus.Info("Agendador de atualização de insights iniciado com sucesso")
	}

	services := api.Services{
		Dashboard:      dashboard.NewService(records, insightService, queue),
		Insights:       insightService,
		SocialMedia:    socialmedia.NewService(records, generator),
		Analytics:      analytics.NewService(records),
		Automation:     automation.NewService(workflowEngine),
		BrandAssets:    brandasset.NewService(records, uploader),
		CashFlow:       cashflow.NewService(records, cfg.Forecast),
		Advertising:    advertisingService,
		Queue:          queue,
		InsightRefresh: insightRefreshService,
	}

	server, err := api.New(cfg, services, appMetrics)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	cancel()
	queue.Wait()
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

type connector func(ctx context.Context, cfg config.Database) (*postgres.Connection, error)

// repositories conecta ao PostgreSQL e monta os repositórios. Sem banco configurado ou com
// o banco inacessível a API sobe com os dados de demonstração.
func repositories(ctx context.Context, dbConfig config.Database, connect connector) (store.Repositories, func()) {
	noop := func() {}

	if !dbConfig.Enabled() {
		logrus.Warn("DATABASE_URL não configurada, usando dados de demonstração")
		return store.Repositories{}, noop
	}

	conn, err := connect(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("PostgreSQL inacessível, seguindo sem conexão com o banco")
		return store.Repositories{}, noop
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	if dbConfig.AutoMigrate {
		if err := migration.Up(conn.DB); err != nil {
			logrus.WithError(err).Warn("Erro ao aplicar migrações, consultas com falha usarão dados de demonstração")
		}
	}

	repos := store.Repositories{
		Metrics:   repository.NewBusinessMetricRepository(conn),
		Posts:     repository.NewSocialPostRepository(conn),
		Campaigns: repository.NewAdCampaignRepository(conn),
		CashFlow:  repository.NewCashFlowRepository(conn),
		Assets:    repository.NewBrandAssetRepository(conn),
		Insights:  repository.NewAIInsightRepository(conn),
	}

	return repos, func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}
}

// jobStore usa Redis quando configurado; sem Redis os jobs ficam em memória
func jobStore(ctx context.Context, cfg config.Redis) jobstore.JobStore {
	if cfg.URL == "" {
		return jobstore.NewMemoryStore(cfg.JobTTL)
	}

	redisStore, err := jobstore.NewRedisStore(ctx, cfg.URL, cfg.JobTTL)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, usando armazenamento de jobs em memória")
		return jobstore.NewMemoryStore(cfg.JobTTL)
	}

	logrus.Info("Armazenamento de jobs no Redis configurado")
	return redisStore
}
