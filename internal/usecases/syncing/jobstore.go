package syncing

import (
	"sync"
	"time"

	"github.com/vfg2006/linkedin-ads-center/pkg/utils"
)

const (
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusSkipped   = "skipped"
	JobStatusFailed    = "failed"
)

// Result é o desfecho de uma sincronização.
type Result struct {
	SnapshotPath string `json:"snapshot_path,omitempty"`
	AccountCount int    `json:"account_count"`
	Skipped      bool   `json:"skipped,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// Job é uma sincronização disparada de forma assíncrona, consultável
// por ID enquanto roda.
type Job struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Trigger    string     `json:"trigger"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Result     *Result    `json:"result,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// JobStore guarda os jobs de sincronização. A implementação em memória
// basta: o job só interessa enquanto o processo que o disparou vive.
type JobStore interface {
	Create(trigger string) (*Job, error)
	Get(id string) (*Job, bool)
	Finish(id string, result *Result, errMsg string)
}

type inMemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewJobStore() JobStore {
	return &inMemoryJobStore{jobs: make(map[string]*Job)}
}

func (s *inMemoryJobStore) Create(trigger string) (*Job, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	job := &Job{
		ID:        id,
		Status:    JobStatusRunning,
		Trigger:   trigger,
		StartedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.jobs[id] = job
	s.mu.Unlock()

	return job, nil
}

func (s *inMemoryJobStore) Get(id string) (*Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, false
	}

	copied := *job
	return &copied, true
}

func (s *inMemoryJobStore) Finish(id string, result *Result, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}

	now := time.Now().UTC()
	job.FinishedAt = &now
	job.Result = result
	job.Error = errMsg

	switch {
	case errMsg != "":
		job.Status = JobStatusFailed
	case result != nil && result.Skipped:
		job.Status = JobStatusSkipped
	default:
		job.Status = JobStatusCompleted
	}
}
