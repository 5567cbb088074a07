package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/config"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/handler"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var kv storage.KeyValue
	if fileStore, err := storage.NewFile(cfg.Storage.Path); err != nil {
		log.Printf("warning: failed to open storage file %s: %v", cfg.Storage.Path, err)
		log.Println("falling back to in-memory storage; state will not survive restarts")
		kv = storage.NewMemory()
	} else {
		kv = fileStore
	}

	historyStore := history.NewStore(kv)

	var aiSvc *ai.Service
	if cfg.Gateway.Enabled() {
		aiSvc = ai.NewService(cfg.Gateway)
		log.Println("AI gateway service initialized")
	} else {
		log.Println("AI gateway credentials not configured, chat endpoints disabled")
	}

	router := handler.NewRouter(aiSvc, historyStore, kv)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("YourRevenueAI backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
