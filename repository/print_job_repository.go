package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"semar-etiquetas/models"
)

// PrintJobRepository stores print history in PostgreSQL
type PrintJobRepository struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

// NewPrintJobRepository creates a new PrintJobRepository
func NewPrintJobRepository(db *sql.DB, log *zap.SugaredLogger) *PrintJobRepository {
	return &PrintJobRepository{db: db, log: log}
}

// Ensure PrintJobRepository implements PrintJobRepositoryInterface
var _ PrintJobRepositoryInterface = (*PrintJobRepository)(nil)

// Record inserts a print job and fills in CreatedAt
func (r *PrintJobRepository) Record(ctx context.Context, job *models.PrintJob) error {
	query := `
		INSERT INTO print_jobs (id, mode, title, client_name, label_count, format)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		job.ID,
		string(job.Mode),
		job.Title,
		sql.NullString{String: job.ClientName, Valid: job.ClientName != ""},
		job.LabelCount,
		job.Format,
	).Scan(&createdAt)
	if err != nil {
		r.log.Errorf("❌ RecordPrintJob: Error inserting print job: %v", err)
		return fmt.Errorf("failed to insert print job: %w", err)
	}

	job.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	r.log.Infof("✓ RecordPrintJob: id=%s mode=%s labels=%d format=%s", job.ID, job.Mode, job.LabelCount, job.Format)
	return nil
}

// ListRecent returns the newest print jobs first
func (r *PrintJobRepository) ListRecent(ctx context.Context, limit int) ([]models.PrintJob, error) {
	query := `
		SELECT id, mode, title, COALESCE(client_name, ''), label_count, format, created_at
		FROM print_jobs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.log.Errorf("❌ ListPrintJobs: Error querying print jobs: %v", err)
		return nil, fmt.Errorf("failed to query print jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.PrintJob{}
	for rows.Next() {
		var job models.PrintJob
		var mode string
		var createdAt time.Time
		if err := rows.Scan(&job.ID, &mode, &job.Title, &job.ClientName, &job.LabelCount, &job.Format, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan print job: %w", err)
		}
		job.Mode = models.LabelMode(mode)
		job.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate print jobs: %w", err)
	}
	return jobs, nil
}
