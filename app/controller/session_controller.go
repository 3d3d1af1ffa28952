package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"semar-etiquetas/form"
	"semar-etiquetas/models"
	"semar-etiquetas/service"
)

const sessionsPrefix = "/api/sessions/"

// SessionController handles HTTP requests for operator form sessions
type SessionController struct {
	sessions service.SessionServiceInterface
	labels   *LabelController
	log      *zap.SugaredLogger
}

// NewSessionController creates a new SessionController
func NewSessionController(sessions service.SessionServiceInterface, labels *LabelController, log *zap.SugaredLogger) *SessionController {
	return &SessionController{
		sessions: sessions,
		labels:   labels,
		log:      log,
	}
}

// SessionPath splits /api/sessions/{id}/{action} into id and action
// action is empty for /api/sessions/{id}
func SessionPath(path string) (id, action string) {
	rest := strings.Trim(strings.TrimPrefix(path, sessionsPrefix), "/")
	id, action, _ = strings.Cut(rest, "/")
	return id, action
}

// CreateSession handles POST /api/sessions
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		c.log.Warnf("❌ CreateSession: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, c.log, "CreateSession", http.StatusCreated, c.sessions.Create())
}

// GetSession handles GET /api/sessions/{id}
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		c.log.Warnf("❌ GetSession: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, _ := SessionPath(r.URL.Path)
	snap, err := c.sessions.Get(id)
	if err != nil {
		c.fail(w, "GetSession", id, err)
		return
	}
	writeJSON(w, c.log, "GetSession", http.StatusOK, snap)
}

// DeleteSession handles DELETE /api/sessions/{id}
func (c *SessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		c.log.Warnf("❌ DeleteSession: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, _ := SessionPath(r.URL.Path)
	if err := c.sessions.Delete(id); err != nil {
		c.fail(w, "DeleteSession", id, err)
		return
	}
	c.log.Infof("🗑️  DeleteSession: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

// SetMode handles POST /api/sessions/{id}/mode
// Request body: {"mode": "COMPRA"}
func (c *SessionController) SetMode(w http.ResponseWriter, r *http.Request) {
	var req models.ModeRequest
	if !c.decode(w, r, "SetMode", &req) {
		return
	}

	mode, ok := models.ParseLabelMode(req.Mode)
	if !ok {
		c.log.Warnf("❌ SetMode: Invalid mode: %s", req.Mode)
		http.Error(w, "Invalid mode. Valid modes: IFOOD, COMPRA, PLACA", http.StatusBadRequest)
		return
	}

	c.update(w, r, "SetMode", func(s *form.State) error {
		return s.SetMode(mode)
	})
}

// SetField handles POST /api/sessions/{id}/fields
// Request body: {"field": "clientName", "value": "joão"}
func (c *SessionController) SetField(w http.ResponseWriter, r *http.Request) {
	var req models.FieldRequest
	if !c.decode(w, r, "SetField", &req) {
		return
	}

	field, err := form.ParseField(req.Field)
	if err != nil {
		c.log.Warnf("❌ SetField: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c.update(w, r, "SetField", func(s *form.State) error {
		return s.Set(field, req.Value)
	})
}

// Step handles POST /api/sessions/{id}/increment and /decrement
// Request body: {"field": "dryCount"}
func (c *SessionController) Step(w http.ResponseWriter, r *http.Request) {
	_, action := SessionPath(r.URL.Path)
	op := "Increment"
	if action == "decrement" {
		op = "Decrement"
	}

	var req models.FieldRequest
	if !c.decode(w, r, op, &req) {
		return
	}

	field, err := form.ParseField(req.Field)
	if err != nil {
		c.log.Warnf("❌ %s: %v", op, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c.update(w, r, op, func(s *form.State) error {
		if action == "decrement" {
			return s.Decrement(field)
		}
		return s.Increment(field)
	})
}

// Clear handles POST /api/sessions/{id}/clear
// Only the active mode is reset
func (c *SessionController) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		c.log.Warnf("❌ Clear: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.update(w, r, "Clear", func(s *form.State) error {
		s.Clear()
		return nil
	})
}

// PrintSession handles GET /api/sessions/{id}/print?format=html|pdf|png
func (c *SessionController) PrintSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		c.log.Warnf("❌ PrintSession: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format, ok := parseFormat(r)
	if !ok {
		c.log.Warnf("❌ PrintSession: Invalid format: %s", format)
		http.Error(w, "Invalid format. Valid formats: html, pdf, png", http.StatusBadRequest)
		return
	}

	id, _ := SessionPath(r.URL.Path)
	snap, err := c.sessions.Get(id)
	if err != nil {
		c.fail(w, "PrintSession", id, err)
		return
	}

	c.labels.Print(w, r, "PrintSession", snap.State, format)
}

// decode checks the method and reads a JSON body into v
func (c *SessionController) decode(w http.ResponseWriter, r *http.Request, op string, v interface{}) bool {
	if r.Method != http.MethodPost {
		c.log.Warnf("❌ %s: Method not allowed: %s", op, r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		c.log.Warnf("❌ %s: Invalid JSON: %v", op, err)
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

// update applies fn to the session in the path and answers with the new snapshot
func (c *SessionController) update(w http.ResponseWriter, r *http.Request, op string, fn func(*form.State) error) {
	id, _ := SessionPath(r.URL.Path)
	snap, err := c.sessions.Update(id, fn)
	if err != nil {
		c.fail(w, op, id, err)
		return
	}
	c.log.Debugf("✓ %s: id=%s mode=%s labels=%d valid=%t", op, id, snap.State.Mode, snap.LabelCount, snap.Valid)
	writeJSON(w, c.log, op, http.StatusOK, snap)
}

// fail answers with the status matching err
func (c *SessionController) fail(w http.ResponseWriter, op, id string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.log.Errorf("❌ %s: id=%s: %v", op, id, err)
	} else {
		c.log.Warnf("❌ %s: id=%s: %v", op, id, err)
	}
	http.Error(w, err.Error(), status)
}
