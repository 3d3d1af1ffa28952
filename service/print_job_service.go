package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"semar-etiquetas/form"
	"semar-etiquetas/labels"
	"semar-etiquetas/metrics"
	"semar-etiquetas/models"
	"semar-etiquetas/repository"
)

// PrintJobService records what was printed
type PrintJobService struct {
	repository repository.PrintJobRepositoryInterface
	log        *zap.SugaredLogger
	metrics    *metrics.Recorder
}

// NewPrintJobService creates a new PrintJobService
func NewPrintJobService(repo repository.PrintJobRepositoryInterface, log *zap.SugaredLogger, rec *metrics.Recorder) *PrintJobService {
	return &PrintJobService{repository: repo, log: log, metrics: rec}
}

// Ensure PrintJobService implements PrintJobServiceInterface
var _ PrintJobServiceInterface = (*PrintJobService)(nil)

// Record stores one print of the active mode's batch
func (s *PrintJobService) Record(ctx context.Context, state form.State, labelCount int, format string) (*models.PrintJob, error) {
	title, clientName := labels.Summary(state)
	job := &models.PrintJob{
		ID:         uuid.NewString(),
		Mode:       state.Mode,
		Title:      title,
		ClientName: clientName,
		LabelCount: labelCount,
		Format:     format,
	}

	s.metrics.LabelsPrinted(string(state.Mode), format, labelCount)
	if err := s.repository.Record(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to record print job: %w", err)
	}

	s.log.Infof("🖨️  Print: mode=%s title=%q labels=%d format=%s", job.Mode, job.Title, job.LabelCount, job.Format)
	return job, nil
}

// ListRecent returns the newest print jobs first
func (s *PrintJobService) ListRecent(ctx context.Context, limit int) ([]models.PrintJob, error) {
	return s.repository.ListRecent(ctx, limit)
}
