package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"semar-etiquetas/form"
	"semar-etiquetas/labels"
	"semar-etiquetas/metrics"
	"semar-etiquetas/models"
)

// ErrSessionNotFound is returned for an unknown or expired session id
var ErrSessionNotFound = errors.New("session not found")

// Snapshot is a form session together with everything derived from it
type Snapshot struct {
	ID         string             `json:"id"`
	State      form.State         `json:"state"`
	Labels     []models.LabelData `json:"labels"`
	Valid      bool               `json:"valid"`
	LabelCount int                `json:"labelCount"`
}

// NewSnapshot derives labels and validity from state
func NewSnapshot(id string, state form.State) Snapshot {
	built := labels.Build(state)
	return Snapshot{
		ID:         id,
		State:      state,
		Labels:     built,
		Valid:      labels.IsValid(state),
		LabelCount: len(built),
	}
}

type session struct {
	state   form.State
	touched time.Time
}

// SessionService keeps one form per operator in memory
// Each session is only mutated under the service lock
type SessionService struct {
	mu         sync.RWMutex
	sessions   map[string]*session
	ttl        time.Duration
	placaTitle string
	now        func() time.Time
	log        *zap.SugaredLogger
	metrics    *metrics.Recorder
}

// NewSessionService creates a SessionService whose sessions expire after ttl without use
func NewSessionService(ttl time.Duration, placaTitle string, log *zap.SugaredLogger, rec *metrics.Recorder) *SessionService {
	return &SessionService{
		sessions:   make(map[string]*session),
		ttl:        ttl,
		placaTitle: placaTitle,
		now:        time.Now,
		log:        log,
		metrics:    rec,
	}
}

// Ensure SessionService implements SessionServiceInterface
var _ SessionServiceInterface = (*SessionService)(nil)

// Create starts a session with a default form
func (s *SessionService) Create() Snapshot {
	id := uuid.NewString()
	state := form.NewWithPlacaTitle(s.placaTitle)

	s.mu.Lock()
	s.sessions[id] = &session{state: state, touched: s.now()}
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.Sessions(count)
	s.log.Infof("🆕 CreateSession: id=%s", id)
	return NewSnapshot(id, state)
}

// Get returns the current snapshot of a session
func (s *SessionService) Get(id string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	sess.touched = s.now()
	return NewSnapshot(id, sess.state), nil
}

// Update applies fn to a copy of the session's form and keeps the result only if fn succeeds
func (s *SessionService) Update(id string, fn func(*form.State) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(id)
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}

	next := sess.state
	if err := fn(&next); err != nil {
		return Snapshot{}, err
	}
	sess.state = next
	sess.touched = s.now()
	return NewSnapshot(id, next), nil
}

// Delete drops a session
func (s *SessionService) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	s.metrics.Sessions(count)
	return nil
}

// PurgeExpired drops sessions idle for longer than the ttl and returns how many were dropped
func (s *SessionService) PurgeExpired() int {
	s.mu.Lock()
	cutoff := s.now().Add(-s.ttl)
	purged := 0
	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) {
			delete(s.sessions, id)
			purged++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.Sessions(count)
	if purged > 0 {
		s.log.Infof("🧹 PurgeSessions: removed %d expired sessions, %d left", purged, count)
	}
	return purged
}

// live returns a session that has not expired; caller holds the lock
func (s *SessionService) live(id string) (*session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().Sub(sess.touched) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	return sess, true
}
