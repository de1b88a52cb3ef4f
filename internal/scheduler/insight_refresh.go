package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

// InsightRefreshConfig representa a configuração do agendador de atualização de insights
type InsightRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// InsightRefreshService enfileira periodicamente a geração de novos insights de estratégia
type InsightRefreshService struct {
	scheduler       *gocron.Scheduler
	config          InsightRefreshConfig
	queue           Enqueuer
	mutex           sync.Mutex
	lastEnqueuedAt  time.Time
	lastJobID       string
	lastEnqueueFail string
}

func NewInsightRefreshService(queue Enqueuer, appConfig *config.Config) *InsightRefreshService {
	refreshConfig := InsightRefreshConfig{
		CronSchedule: appConfig.InsightRefresh.CronSchedule,
		Enabled:      appConfig.InsightRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de insights carregada")

	return &InsightRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		queue:     queue,
	}
}

// Start inicia o agendador
func (s *InsightRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização periódica de insights desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de insights")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.enqueue(ctx, "cron"); err != nil {
			logrus.WithError(err).Error("Erro ao enfileirar atualização agendada de insights")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de insights: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de insights")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync enfileira uma atualização imediata; se a última ainda não
// terminou, retorna o job em andamento
func (s *InsightRefreshService) TriggerManualSync(ctx context.Context) (*domain.Job, error) {
	if job := s.runningJob(ctx); job != nil {
		logrus.WithField("job_id", job.ID).Info("Atualização de insights já em andamento, ignorando solicitação manual")
		return job, nil
	}

	logrus.Info("Iniciando atualização manual de insights")
	return s.enqueue(ctx, "manual")
}

func (s *InsightRefreshService) enqueue(ctx context.Context, trigger string) (*domain.Job, error) {
	job, err := s.queue.Submit(ctx, domain.JobInsightRefresh, map[string]string{
		"trigger":     trigger,
		"data_source": "ai_generated_refresh",
	})

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err != nil {
		s.lastEnqueueFail = err.Error()
		return nil, err
	}

	s.lastEnqueuedAt = job.CreatedAt
	s.lastJobID = job.ID
	s.lastEnqueueFail = ""

	return job, nil
}

func (s *InsightRefreshService) runningJob(ctx context.Context) *domain.Job {
	s.mutex.Lock()
	lastJobID := s.lastJobID
	s.mutex.Unlock()

	if lastJobID == "" {
		return nil
	}

	job, err := s.queue.Get(ctx, lastJobID)
	if err != nil || job.Status.IsFinal() {
		return nil
	}

	return job
}

// GetStatus retorna o status atual do agendador
func (s *InsightRefreshService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"refresh_enabled":   s.config.Enabled,
		"refresh_cron":      s.config.CronSchedule,
		"last_enqueued_at":  s.lastEnqueuedAt,
		"last_job_id":       s.lastJobID,
		"last_enqueue_fail": s.lastEnqueueFail,
		"queue_depth":       s.queue.Depth(),
	}
}
