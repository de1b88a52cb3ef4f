// Package jobstore guarda o estado dos jobs em segundo plano
package jobstore

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/business-dashboard-api/internal/domain"
)

type JobStore interface {
	Save(ctx context.Context, job *domain.Job) error
	// Get retorna domain.ErrNotFound quando o job não existe ou expirou
	Get(ctx context.Context, id string) (*domain.Job, error)
	Name() string
}

// MemoryStore mantém os jobs no processo; jobs finalizados expiram após o ttl
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]domain.Job
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]domain.Job),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *MemoryStore) Name() string {
	return "memory"
}

func (s *MemoryStore) Save(_ context.Context, job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[job.ID] = *job
	s.evictExpired()

	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok || s.expired(job) {
		return nil, domain.ErrNotFound
	}

	return &job, nil
}

func (s *MemoryStore) expired(job domain.Job) bool {
	if s.ttl <= 0 || job.FinishedAt == nil {
		return false
	}
	return s.now().Sub(*job.FinishedAt) > s.ttl
}

// evictExpired deve ser chamado com o lock de escrita
func (s *MemoryStore) evictExpired() {
	for id, job := range s.jobs {
		if s.expired(job) {
			delete(s.jobs, id)
		}
	}
}
