package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"semar-etiquetas/models"
)

type pngSet struct {
	mode    models.LabelMode
	pages   map[int][]byte
	created time.Time
}

// PNGStore keeps generated PNG pages for a while so they can be downloaded one by one
type PNGStore struct {
	mu   sync.RWMutex
	sets map[string]pngSet
	ttl  time.Duration
	now  func() time.Time
}

// NewPNGStore creates a PNGStore whose entries live for ttl
func NewPNGStore(ttl time.Duration) *PNGStore {
	return &PNGStore{
		sets: make(map[string]pngSet),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Put stores pages and returns the id to fetch them with
func (s *PNGStore) Put(mode models.LabelMode, pages map[int][]byte) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sets[id] = pngSet{mode: mode, pages: pages, created: s.now()}
	s.mu.Unlock()
	return id
}

// Get returns one stored page
func (s *PNGStore) Get(id string, page int) (data []byte, mode models.LabelMode, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, exists := s.sets[id]
	if !exists || s.now().Sub(set.created) > s.ttl {
		return nil, "", false
	}
	data, ok = set.pages[page]
	return data, set.mode, ok
}

// PurgeExpired drops sets older than the ttl
func (s *PNGStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	purged := 0
	for id, set := range s.sets {
		if set.created.Before(cutoff) {
			delete(s.sets, id)
			purged++
		}
	}
	return purged
}
