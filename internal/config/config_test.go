package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/jokenpo/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 3*time.Second, cfg.Audio.ClipMaxDuration)
	assert.Equal(t, 3500*time.Millisecond, cfg.Audio.Fallback())
	assert.Equal(t, "/static/audio/audio-win.mp3", cfg.Audio.Sources()[models.Win])
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 10, cfg.Session.SSEBufferSize)
}

func TestLoadDerivesFallbackFromClipLength(t *testing.T) {
	t.Setenv("JOKENPO_CLIP_MAX_DURATION", "5s")
	t.Setenv("JOKENPO_FALLBACK_MARGIN", "750ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5750*time.Millisecond, cfg.Audio.Fallback())
}

func TestLoadExplicitFallback(t *testing.T) {
	t.Setenv("JOKENPO_FALLBACK_TIMEOUT", "4s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, cfg.Audio.Fallback())
}

func TestLoadRejectsFallbackNotLongerThanClip(t *testing.T) {
	t.Setenv("JOKENPO_FALLBACK_TIMEOUT", "3s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be longer than the longest clip")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JOKENPO_SESSION_TTL", "forever")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("JOKENPO_TEST_DOTENV=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("JOKENPO_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("JOKENPO_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")), "missing files are skipped")
}
