package main

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/aaronzipp/jokenpo/internal/config"
	"github.com/aaronzipp/jokenpo/internal/handlers"
	"github.com/aaronzipp/jokenpo/internal/store"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("Failed to load .env:", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	templates, err := template.ParseGlob(filepath.Join(cfg.TemplatesDir, "*.html"))
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	sessions := store.NewSessionStore()
	app := &handlers.Context{
		Store:     sessions,
		Templates: templates,
		Config:    cfg,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessions, cfg.Session.SweepInterval, cfg.Session.TTL)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s (fallback %s, public URL %s)", cfg.Addr, cfg.Audio.Fallback(), cfg.PublicURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// sweepSessions evicts idle sessions until ctx is done
func sweepSessions(ctx context.Context, sessions *store.SessionStore, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sessions.Sweep(now, ttl); n > 0 {
				log.Printf("Evicted %d idle session(s), %d active", n, sessions.Len())
			}
		}
	}
}
