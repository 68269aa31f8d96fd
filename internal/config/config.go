package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/aaronzipp/jokenpo/internal/models"
)

// Config stores runtime configuration for the game server
type Config struct {
	Addr         string `env:"JOKENPO_ADDR"          envDefault:":8080"`
	PublicURL    string `env:"JOKENPO_PUBLIC_URL"    envDefault:"http://localhost:8080"`
	TemplatesDir string `env:"JOKENPO_TEMPLATES_DIR" envDefault:"templates"`
	StaticDir    string `env:"JOKENPO_STATIC_DIR"    envDefault:"static"`
	Debug        bool   `env:"DEBUG"`

	Audio   AudioConfig
	Session SessionConfig
}

// AudioConfig describes the result clips and how long input stays locked
type AudioConfig struct {
	WinSrc  string `env:"JOKENPO_SOUND_WIN"  envDefault:"/static/audio/audio-win.mp3"`
	LoseSrc string `env:"JOKENPO_SOUND_LOSE" envDefault:"/static/audio/audio-lose.mp3"`
	DrawSrc string `env:"JOKENPO_SOUND_DRAW" envDefault:"/static/audio/audio-draw.mp3"`

	// ClipMaxDuration is the length of the longest clip
	ClipMaxDuration time.Duration `env:"JOKENPO_CLIP_MAX_DURATION" envDefault:"3s"`
	// FallbackMargin is added to ClipMaxDuration to derive the fallback timeout
	FallbackMargin time.Duration `env:"JOKENPO_FALLBACK_MARGIN" envDefault:"500ms"`
	// FallbackTimeout overrides the derived value when set
	FallbackTimeout time.Duration `env:"JOKENPO_FALLBACK_TIMEOUT"`
}

type SessionConfig struct {
	TTL            time.Duration `env:"JOKENPO_SESSION_TTL"     envDefault:"30m"`
	SweepInterval  time.Duration `env:"JOKENPO_SWEEP_INTERVAL"  envDefault:"1m"`
	SSEBufferSize  int           `env:"JOKENPO_SSE_BUFFER"      envDefault:"10"`
	SSESendTimeout time.Duration `env:"JOKENPO_SSE_SEND_TIMEOUT" envDefault:"1s"`
}

// Fallback returns the effective fallback timeout
func (a AudioConfig) Fallback() time.Duration {
	if a.FallbackTimeout > 0 {
		return a.FallbackTimeout
	}
	return a.ClipMaxDuration + a.FallbackMargin
}

// Sources returns the clip URL for each outcome
func (a AudioConfig) Sources() map[models.Outcome]string {
	return map[models.Outcome]string{
		models.Win:  a.WinSrc,
		models.Lose: a.LoseSrc,
		models.Draw: a.DrawSrc,
	}
}

// LoadDotEnv reads variables from the given files (default ".env") into the
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Load resolves configuration from environment variables and defaults
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env defaults cannot guard
func (c Config) Validate() error {
	if c.Audio.ClipMaxDuration <= 0 {
		return fmt.Errorf("clip max duration must be positive, got %s", c.Audio.ClipMaxDuration)
	}
	if fb := c.Audio.Fallback(); fb <= c.Audio.ClipMaxDuration {
		return fmt.Errorf("fallback timeout %s must be longer than the longest clip (%s)", fb, c.Audio.ClipMaxDuration)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %s", c.Session.SweepInterval)
	}
	return nil
}
