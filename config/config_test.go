package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"semar-etiquetas/render"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "BASE_URL", "CHROME_PATH", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "LOG_LEVEL", "PRINT_DELAY_MS", "SESSION_TTL", "BRANDING_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 50*time.Millisecond, cfg.PrintDelay)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, render.DefaultBranding, cfg.Branding)
	assert.Equal(t, "RESERVADO DRIVE", cfg.PlacaTitle)
}

func TestLoadPortWithColon(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9000")
	t.Setenv("BASE_URL", "https://etiquetas.example.com/")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://etiquetas.example.com", cfg.BaseURL)
}

func TestLoadDatabaseFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "semar")
	t.Setenv("DB_NAME", "etiquetas")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=semar password= dbname=etiquetas sslmode=disable", cfg.DatabaseURL)
}

func TestLoadInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PRINT_DELAY_MS", "soon")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("SESSION_TTL", "-1h")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadBrandingFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "branding.yaml")
	require.NoError(t, os.WriteFile(path, []byte("caption: LOJA CENTRO\nplacaTitle: VAGA IDOSO\n"), 0o644))
	t.Setenv("BRANDING_FILE", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "LOJA CENTRO", cfg.Branding.Caption)
	assert.Equal(t, render.DefaultBranding.Copyright, cfg.Branding.Copyright)
	assert.Equal(t, "VAGA IDOSO", cfg.PlacaTitle)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\n"), 0o644))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "7070", os.Getenv("PORT"))
	assert.Error(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
