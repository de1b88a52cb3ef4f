package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/business-dashboard-api/infrastructure/jobstore"
	"github.com/vfg2006/business-dashboard-api/internal/config"
	"github.com/vfg2006/business-dashboard-api/internal/domain"
	"github.com/vfg2006/business-dashboard-api/pkg/log"
	"github.com/vfg2006/business-dashboard-api/pkg/metrics"
)

var (
	ErrQueueFull      = errors.New("job queue is full")
	ErrJobNotFound    = errors.New("job not found")
	ErrUnknownJobKind = errors.New("tipo de job sem handler registrado")
)

// JobHandler executa um job e retorna o resultado exposto em GET /api/jobs/:id
type JobHandler func(ctx context.Context, job *domain.Job) (any, error)

// Enqueuer é a visão da fila usada pelos casos de uso
type Enqueuer interface {
	Submit(ctx context.Context, kind domain.JobKind, params map[string]string) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Depth() int
}

type queuedJob struct {
	job           *domain.Job
	correlationID string
}

// JobQueue executa jobs em um pool fixo de workers com buffer limitado
type JobQueue struct {
	store    jobstore.JobStore
	metrics  *metrics.Metrics
	workers  int
	queue    chan queuedJob
	handlers map[domain.JobKind]JobHandler
	mu       sync.RWMutex
	wg       sync.WaitGroup
}

func NewJobQueue(cfg config.Jobs, store jobstore.JobStore, m *metrics.Metrics) *JobQueue {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	logrus.WithFields(logrus.Fields{
		"workers":    workers,
		"queue_size": cfg.QueueSize,
		"store":      store.Name(),
	}).Info("Configuração da fila de jobs carregada")

	return &JobQueue{
		store:    store,
		metrics:  m,
		workers:  workers,
		queue:    make(chan queuedJob, cfg.QueueSize),
		handlers: make(map[domain.JobKind]JobHandler),
	}
}

// Register associa um handler a um tipo de job; deve ser chamado antes de Start
func (q *JobQueue) Register(kind domain.JobKind, handler JobHandler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[kind] = handler
}

// Start inicia os workers, que param quando o contexto é cancelado
func (q *JobQueue) Start(ctx context.Context) {
	logrus.WithField("workers", q.workers).Info("Iniciando workers da fila de jobs")

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work(ctx)
	}
}

// Wait bloqueia até todos os workers terminarem
func (q *JobQueue) Wait() {
	q.wg.Wait()
}

func (q *JobQueue) Depth() int {
	return len(q.queue)
}

func (q *JobQueue) Submit(ctx context.Context, kind domain.JobKind, params map[string]string) (*domain.Job, error) {
	q.mu.RLock()
	_, ok := q.handlers[kind]
	q.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJobKind, kind)
	}

	job := domain.NewJob(kind, params)
	if err := q.store.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("erro ao registrar job: %w", err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_id":   job.ID,
		"job_kind": string(kind),
	})

	// A partir do envio o job pertence ao worker
	snapshot := *job

	select {
	case q.queue <- queuedJob{job: job, correlationID: log.GetCorrelationID(ctx)}:
	default:
		job.Fail(time.Now().UTC(), ErrQueueFull)
		if err := q.store.Save(ctx, job); err != nil {
			logger.WithError(err).Warn("Jobs: falha ao registrar job rejeitado")
		}
		q.record(job)
		logger.Warn("Jobs: fila cheia, job rejeitado")
		return nil, ErrQueueFull
	}

	q.record(&snapshot)
	if q.metrics != nil {
		q.metrics.SetQueueDepth(q.Depth())
	}
	logger.Info("Jobs: job enfileirado")

	return &snapshot, nil
}

func (q *JobQueue) Get(ctx context.Context, id string) (*domain.Job, error) {
	job, err := q.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (q *JobQueue) work(ctx context.Context) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case item := <-q.queue:
			if q.metrics != nil {
				q.metrics.SetQueueDepth(q.Depth())
			}
			q.run(ctx, item)
		}
	}
}

func (q *JobQueue) run(ctx context.Context, item queuedJob) {
	job := item.job
	if item.correlationID != "" {
		ctx = log.ContextWithCorrelationID(ctx, item.correlationID)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_id":   job.ID,
		"job_kind": string(job.Kind),
	})

	q.mu.RLock()
	handler := q.handlers[job.Kind]
	q.mu.RUnlock()

	started := time.Now()
	job.Start(started.UTC())
	q.save(ctx, logger, job)
	q.record(job)

	result, err := q.execute(ctx, handler, job)
	elapsed := time.Since(started)

	if err != nil {
		job.Fail(time.Now().UTC(), err)
		logger.WithFields(log.Fields{
			"error":       err.Error(),
			"duration_ms": elapsed.Milliseconds(),
		}).Error("Jobs: job falhou")
	} else {
		job.Succeed(time.Now().UTC(), result)
		logger.WithField("duration_ms", elapsed.Milliseconds()).Info("Jobs: job concluído")
	}

	q.save(ctx, logger, job)
	q.record(job)
	if q.metrics != nil {
		q.metrics.RecordJobDuration(string(job.Kind), elapsed)
	}
}

func (q *JobQueue) execute(ctx context.Context, handler JobHandler, job *domain.Job) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic durante a execução do job: %v", r)
		}
	}()

	return handler(ctx, job)
}

func (q *JobQueue) save(ctx context.Context, logger log.Logger, job *domain.Job) {
	// O contexto do worker pode estar encerrando junto com a aplicação
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := q.store.Save(saveCtx, job); err != nil {
		logger.WithError(err).Error("Jobs: falha ao gravar status do job")
	}
}

func (q *JobQueue) record(job *domain.Job) {
	if q.metrics != nil {
		q.metrics.RecordJob(string(job.Kind), string(job.Status))
	}
}
