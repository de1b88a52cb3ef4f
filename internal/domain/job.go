package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// IsFinal indica que o job não muda mais de status
func (s JobStatus) IsFinal() bool {
	return s == JobSucceeded || s == JobFailed
}

type JobKind string

const (
	JobInsightRefresh       JobKind = "insight_refresh"
	JobCampaignOptimization JobKind = "campaign_optimization"
)

// Job é o registro de uma tarefa executada em segundo plano
type Job struct {
	ID         string            `json:"id"`
	Kind       JobKind           `json:"kind"`
	Status     JobStatus         `json:"status"`
	Params     map[string]string `json:"params,omitempty"`
	Result     any               `json:"result,omitempty"`
	Error      string            `json:"error,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	StartedAt  *time.Time        `json:"started_at,omitempty"`
	FinishedAt *time.Time        `json:"finished_at,omitempty"`
}

func NewJob(kind JobKind, params map[string]string) *Job {
	return &Job{
		ID:        uuid.New().String(),
		Kind:      kind,
		Status:    JobQueued,
		Params:    params,
		CreatedAt: time.Now().UTC(),
	}
}

func (j *Job) Start(at time.Time) {
	j.Status = JobRunning
	j.StartedAt = &at
}

func (j *Job) Succeed(at time.Time, result any) {
	j.Status = JobSucceeded
	j.Result = result
	j.FinishedAt = &at
}

func (j *Job) Fail(at time.Time, err error) {
	j.Status = JobFailed
	j.Error = err.Error()
	j.FinishedAt = &at
}
