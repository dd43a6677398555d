package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bryanwahyu/clarity-analyzer/internal/application"
	appanalysis "github.com/bryanwahyu/clarity-analyzer/internal/application/analysis"
	"github.com/bryanwahyu/clarity-analyzer/internal/config"
	"github.com/bryanwahyu/clarity-analyzer/internal/infra/analyzer/mock"
	"github.com/bryanwahyu/clarity-analyzer/internal/infra/httpserver"
	"github.com/bryanwahyu/clarity-analyzer/internal/infra/sink"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// init service: demo analyzer + log-only result sink
	svc := &appanalysis.Service{
		Analyzer: mock.New(),
		Sink:     sink.New(),
		Clock:    application.SystemClock{},
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      httpserver.NewRouter(svc, cfg),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
