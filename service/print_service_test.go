package service

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semar-etiquetas/form"
	"semar-etiquetas/logging"
	"semar-etiquetas/models"
)

func TestRenderURLRoundTrips(t *testing.T) {
	svc := NewPrintService("http://localhost:8080", "", logging.Nop(), nil)
	state := form.New()
	require.NoError(t, state.SetText(form.FieldOrderNumber, "1234"))
	require.NoError(t, state.SetCounter(form.FieldColdCount, "2"))
	require.NoError(t, state.SetText(form.FieldClientName, "&lt;vip&gt; ana"))

	raw := svc.renderURL(state)

	require.True(t, strings.HasPrefix(raw, "http://localhost:8080/labels/render?"))
	u, err := url.Parse(raw)
	require.NoError(t, err)
	back, err := form.RestoreQuery(u.Query(), form.DefaultPlacaTitle)
	require.NoError(t, err)
	assert.Equal(t, state, back)
}

func TestViewport(t *testing.T) {
	w, h := viewport(models.LabelModePlaca)
	assert.Greater(t, w, h)

	w, h = viewport(models.LabelModeIFood)
	assert.Less(t, w, h)
}

func TestPNGTimeout(t *testing.T) {
	assert.Equal(t, 25*time.Second, pngTimeout(1))
	assert.Equal(t, maxTimeout, pngTimeout(1000))
}

func TestDetectChromePathPrefersConfigured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(path, nil, 0o755))

	assert.Equal(t, path, detectChromePath(path))
	assert.NotEqual(t, "/does/not/exist", detectChromePath("/does/not/exist"))
}
