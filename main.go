// Lexicode — text-to-word codec daemon.
// Entry point: wires all packages and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/lexicode/internal/api"
	"github.com/yourusername/lexicode/internal/codec"
	"github.com/yourusername/lexicode/internal/config"
	"github.com/yourusername/lexicode/internal/db"
	"github.com/yourusername/lexicode/internal/history"
	"github.com/yourusername/lexicode/internal/keycmd"
	"github.com/yourusername/lexicode/internal/platform"
	"github.com/yourusername/lexicode/internal/scheduler"
	"github.com/yourusername/lexicode/internal/telegram"
	"github.com/yourusername/lexicode/internal/ws"
	"github.com/yourusername/lexicode/web"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	log.Printf("Lexicode %s starting…", Version)

	// ── 1. Load configuration ────────────────────────────────────────────────
	cfg := config.Load()
	log.Printf("Config: port=%s workDir=%s", cfg.Port, cfg.WorkDir)

	// ── 2. Ensure work directory exists ──────────────────────────────────────
	if err := platform.EnsureDir(cfg.WorkDir); err != nil {
		log.Fatalf("EnsureDir %s: %v", cfg.WorkDir, err)
	}

	// ── 3. Open database + migrate ───────────────────────────────────────────
	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("db.New: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatalf("db.Migrate: %v", err)
	}
	log.Printf("Database ready: %s", cfg.DBPath)

	// ── 4. Subcommands ───────────────────────────────────────────────────────
	if len(os.Args) > 1 && os.Args[1] == "setkey" {
		if err := keycmd.Run(database); err != nil {
			log.Fatalf("setkey: %v", err)
		}
		return
	}

	// ── 5. Build the codec table ─────────────────────────────────────────────
	tableCfg := codec.DefaultConfig()
	if cfg.AlphabetPath != "" {
		tableCfg, err = codec.LoadConfig(cfg.AlphabetPath)
		if err != nil {
			log.Fatalf("codec.LoadConfig: %v", err)
		}
	}
	coder, err := codec.New(tableCfg)
	if err != nil {
		log.Fatalf("codec.New: %v", err)
	}
	log.Printf("Alphabet ready: %d words, %d bits per word", coder.Len(), coder.BitWidth())

	// Root context — cancelled on shutdown signal.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── 6. WebSocket hub ─────────────────────────────────────────────────────
	hub := ws.NewHub()
	go hub.Run(ctx)

	// ── 7. History store ─────────────────────────────────────────────────────
	store := history.New(database)

	// ── 8. Telegram bot ──────────────────────────────────────────────────────
	cmdHandler := telegram.NewCommandHandler(coder, store, hub)
	bot, err := telegram.New(cfg.TelegramToken, cfg.TelegramChatID, cmdHandler)
	if err != nil {
		log.Printf("Telegram init error (continuing without Telegram): %v", err)
	}
	if bot != nil {
		go bot.Start(ctx)
		log.Printf("Telegram bot started (chatID=%d)", cfg.TelegramChatID)
	}

	// ── 9. Retention scheduler ───────────────────────────────────────────────
	pruner := scheduler.New(store, cfg.PruneCron, cfg.HistoryRetentionDays)
	if err := pruner.Start(ctx); err != nil {
		log.Printf("scheduler.Start: %v", err)
	}

	// ── 10. HTTP router ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	api.SetupRoutes(mux, &api.Deps{
		DB:      database,
		Config:  cfg,
		Codec:   coder,
		History: store,
		Hub:     hub,
		Version: Version,
	})

	// WebSocket endpoint.
	mux.HandleFunc("GET /ws", hub.ServeWS)

	// Frontend — serve the embedded page.
	mux.HandleFunc("GET /", serveIndex)

	// Recovery + logging middleware.
	handler := loggingMiddleware(recoveryMiddleware(mux))

	// ── 11. Start HTTP server ────────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received %s — shutting down…", sig)
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown: %v", err)
		}
	}()

	log.Printf("Lexicode listening on http://0.0.0.0:%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("ListenAndServe: %v", err)
	}
	log.Printf("Lexicode stopped.")
}

// serveIndex serves the embedded page for / and rejects everything else.
func serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	content, err := web.Files.ReadFile("index.html")
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(content)
}

// loggingMiddleware logs each request.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				log.Printf("panic: %v", rv)
				http.Error(w, `{"success":false,"error":"internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
