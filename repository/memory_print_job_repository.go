package repository

import (
	"context"
	"sync"
	"time"

	"semar-etiquetas/models"
)

// maxMemoryJobs bounds the in-memory history
const maxMemoryJobs = 1000

// MemoryPrintJobRepository keeps print history in memory
// Used when no database is configured; history is lost on restart
type MemoryPrintJobRepository struct {
	mu   sync.RWMutex
	jobs []models.PrintJob
	now  func() time.Time
}

// NewMemoryPrintJobRepository creates an empty MemoryPrintJobRepository
func NewMemoryPrintJobRepository() *MemoryPrintJobRepository {
	return &MemoryPrintJobRepository{now: time.Now}
}

var _ PrintJobRepositoryInterface = (*MemoryPrintJobRepository)(nil)

// Record appends a job, dropping the oldest once the history is full
func (r *MemoryPrintJobRepository) Record(ctx context.Context, job *models.PrintJob) error {
	job.CreatedAt = r.now().UTC().Format(time.RFC3339)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, *job)
	if len(r.jobs) > maxMemoryJobs {
		r.jobs = r.jobs[len(r.jobs)-maxMemoryJobs:]
	}
	return nil
}

// ListRecent returns at most limit jobs, newest first
func (r *MemoryPrintJobRepository) ListRecent(ctx context.Context, limit int) ([]models.PrintJob, error) {
	if limit <= 0 {
		return []models.PrintJob{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.PrintJob, 0, min(limit, len(r.jobs)))
	for i := len(r.jobs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.jobs[i])
	}
	return out, nil
}
