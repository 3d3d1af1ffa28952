package repository

import (
	"context"

	"semar-etiquetas/models"
)

// PrintJobRepositoryInterface defines the contract for print history operations
type PrintJobRepositoryInterface interface {
	Record(ctx context.Context, job *models.PrintJob) error
	ListRecent(ctx context.Context, limit int) ([]models.PrintJob, error)
}
