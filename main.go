package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mchan/voteroom/cliparse"
	"github.com/mchan/voteroom/middleware"
	"github.com/mchan/voteroom/room"
	"github.com/mchan/voteroom/router"
)

func main() {
	// Load .env if present; real environment variables take precedence
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded configuration from .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Start the room manager; cancelling ctx begins shutdown
	ctx, cancel := context.WithCancel(context.Background())
	manager := room.NewManager(room.Config{
		JoinTimeout:       cfg.JoinTimeout,
		InactivityTimeout: cfg.InactivityTimeout,
		CodeMaxAttempts:   cfg.CodeMaxAttempts,
	}, slog.Default())
	manager.Start(ctx)

	// Create router
	mux := router.NewRouter(manager)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Let per-room broadcast loops drain before exiting
	manager.Wait()
}
