package service

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Janitor periodically purges expired sessions and stored PNG pages
type Janitor struct {
	scheduler gocron.Scheduler
	log       *zap.SugaredLogger
}

// NewJanitor schedules every purger to run each interval
func NewJanitor(interval time.Duration, log *zap.SugaredLogger, purgers map[string]Purger) (*Janitor, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	j := &Janitor{scheduler: s, log: log}
	for name, p := range purgers {
		_, err := s.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(j.purge, name, p),
			gocron.WithName(name+"-purge"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to schedule %s purge: %w", name, err)
		}
	}
	return j, nil
}

func (j *Janitor) purge(name string, p Purger) {
	if n := p.PurgeExpired(); n > 0 {
		j.log.Debugf("🧹 Janitor: %s purged %d entries", name, n)
	}
}

// Start begins running the purge jobs
func (j *Janitor) Start() {
	j.scheduler.Start()
}

// Stop waits for running jobs and shuts the scheduler down
func (j *Janitor) Stop() error {
	return j.scheduler.Shutdown()
}
