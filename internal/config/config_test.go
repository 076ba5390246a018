package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	os.Unsetenv("DB_DSN")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/studio")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsProduction)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.WhatsAppPhone)
	assert.Empty(t, cfg.StudioFile)
}

func TestLoadStudioEmptyPathUsesDefaults(t *testing.T) {
	sc, err := LoadStudio("")
	require.NoError(t, err)
	require.Nil(t, sc)

	assert.Len(t, sc.Catalog().List(), 5)

	week, err := sc.Week()
	require.NoError(t, err)
	assert.Nil(t, week[0])
	assert.NotNil(t, week[1])
}

func TestLoadStudioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.yaml")
	content := []byte(`
services:
  - id: haircut
    name: Corte
    duration: 30
    price: 50
hours:
  2:
    open: "10:00"
    close: "16:00"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	sc, err := LoadStudio(path)
	require.NoError(t, err)
	require.NotNil(t, sc)

	cat := sc.Catalog()
	svc, ok := cat.Get("haircut")
	require.True(t, ok)
	assert.Equal(t, 30, svc.DurationMin)

	week, err := sc.Week()
	require.NoError(t, err)
	require.NotNil(t, week[2])
	assert.Equal(t, 600, week[2].Open)
	assert.Equal(t, 960, week[2].Close)
	assert.Nil(t, week[1], "days absent from the file are closed")
}

func TestLoadStudioRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero duration", "services:\n  - id: x\n    name: X\n    duration: 0\n    price: 10\n"},
		{"negative price", "services:\n  - id: x\n    name: X\n    duration: 30\n    price: -1\n"},
		{"weekday out of range", "hours:\n  7:\n    open: \"09:00\"\n    close: \"18:00\"\n"},
		{"open after close", "hours:\n  1:\n    open: \"18:00\"\n    close: \"09:00\"\n"},
		{"bad clock", "hours:\n  1:\n    open: \"9am\"\n    close: \"18:00\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "studio.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadStudio(path)
			assert.Error(t, err)
		})
	}
}
