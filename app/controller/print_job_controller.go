package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"semar-etiquetas/models"
	"semar-etiquetas/service"
)

const (
	defaultPrintJobLimit = 50
	maxPrintJobLimit     = 500
)

// PrintJobController handles HTTP requests for the print history
type PrintJobController struct {
	printJobs service.PrintJobServiceInterface
	log       *zap.SugaredLogger
}

// NewPrintJobController creates a new PrintJobController
func NewPrintJobController(printJobs service.PrintJobServiceInterface, log *zap.SugaredLogger) *PrintJobController {
	return &PrintJobController{printJobs: printJobs, log: log}
}

// ListPrintJobs handles GET /admin/print-jobs?limit=50
func (c *PrintJobController) ListPrintJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		c.log.Warnf("❌ ListPrintJobs: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultPrintJobLimit
	if limitStr := strings.TrimSpace(r.URL.Query().Get("limit")); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			c.log.Warnf("❌ ListPrintJobs: Invalid limit: %s", limitStr)
			http.Error(w, "Invalid limit. Must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	if limit > maxPrintJobLimit {
		limit = maxPrintJobLimit
	}

	jobs, err := c.printJobs.ListRecent(r.Context(), limit)
	if err != nil {
		c.log.Errorf("❌ ListPrintJobs: Error fetching print jobs: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch print jobs: %v", err), http.StatusInternalServerError)
		return
	}
	if jobs == nil {
		jobs = []models.PrintJob{}
	}

	writeJSON(w, c.log, "ListPrintJobs", http.StatusOK, map[string]interface{}{
		"jobs":  jobs,
		"total": len(jobs),
	})
}
