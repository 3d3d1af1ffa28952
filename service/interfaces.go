package service

import (
	"context"

	"semar-etiquetas/form"
	"semar-etiquetas/models"
)

// SessionServiceInterface defines the contract for form session operations
type SessionServiceInterface interface {
	Create() Snapshot
	Get(id string) (Snapshot, error)
	Update(id string, fn func(*form.State) error) (Snapshot, error)
	Delete(id string) error
}

// PrinterInterface defines the contract for producing print files in headless Chrome
type PrinterInterface interface {
	GeneratePDF(ctx context.Context, state form.State) ([]byte, error)
	// GeneratePNG returns one PNG per label, keyed by 1-based page number
	GeneratePNG(ctx context.Context, state form.State, count int) (map[int][]byte, error)
}

// PrintJobServiceInterface defines the contract for print history
type PrintJobServiceInterface interface {
	Record(ctx context.Context, state form.State, labelCount int, format string) (*models.PrintJob, error)
	ListRecent(ctx context.Context, limit int) ([]models.PrintJob, error)
}

// Purger drops expired entries and reports how many went away
type Purger interface {
	PurgeExpired() int
}
