package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"semar-etiquetas/models"
)

func TestPNGStore(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)}
	store := NewPNGStore(10 * time.Minute)
	store.now = clock.now

	id := store.Put(models.LabelModeCompra, map[int][]byte{1: []byte("a"), 2: []byte("b")})

	data, mode, ok := store.Get(id, 2)
	assert.True(t, ok)
	assert.Equal(t, []byte("b"), data)
	assert.Equal(t, models.LabelModeCompra, mode)

	_, _, ok = store.Get(id, 3)
	assert.False(t, ok)

	clock.advance(11 * time.Minute)
	_, _, ok = store.Get(id, 1)
	assert.False(t, ok)
	assert.Equal(t, 1, store.PurgeExpired())
	assert.Equal(t, 0, store.PurgeExpired())
}
