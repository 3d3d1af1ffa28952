package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semar-etiquetas/form"
	"semar-etiquetas/models"
)

func TestListPrintJobs(t *testing.T) {
	d := newTestDeps(t)
	state := form.New()
	require.NoError(t, state.SetText(form.FieldOrderNumber, "77"))
	for i := 0; i < 3; i++ {
		_, err := d.printJobs.Record(context.Background(), state, 1, "html")
		require.NoError(t, err)
	}

	rec := httptest.NewRecorder()
	d.jobs.ListPrintJobs(rec, httptest.NewRequest(http.MethodGet, "/admin/print-jobs?limit=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Jobs  []models.PrintJob `json:"jobs"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "77", resp.Jobs[0].Title)
}

func TestListPrintJobsRejects(t *testing.T) {
	d := newTestDeps(t)

	rec := httptest.NewRecorder()
	d.jobs.ListPrintJobs(rec, httptest.NewRequest(http.MethodGet, "/admin/print-jobs?limit=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	d.jobs.ListPrintJobs(rec, httptest.NewRequest(http.MethodPost, "/admin/print-jobs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	d.jobs.ListPrintJobs(rec, httptest.NewRequest(http.MethodGet, "/admin/print-jobs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs":[],"total":0}`, rec.Body.String())
}
