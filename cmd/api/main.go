// Package main is the entry point for the Complete API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/dfe-complete/complete-api/internal/archive"
	"github.com/dfe-complete/complete-api/internal/config"
	"github.com/dfe-complete/complete-api/internal/handler"
	"github.com/dfe-complete/complete-api/internal/middleware"
	"github.com/dfe-complete/complete-api/internal/repo"
	"github.com/dfe-complete/complete-api/internal/service"
	"github.com/dfe-complete/complete-api/internal/telemetry"
	"github.com/dfe-complete/complete-api/internal/trust"
	"github.com/dfe-complete/complete-api/migrations"
)

const serviceName = "complete-api"

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default text logger before the JSON logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Tracing ----------------------------------------------------------
	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("tracing shutdown error", "error", err)
		}
	}()

	// --- Database ---------------------------------------------------------
	if err := migrate(ctx, cfg.DatabaseURL); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	repos := service.Repos{
		Projects:         repo.NewProjectRepo(pool),
		Establishments:   repo.NewEstablishmentRepo(pool),
		LocalAuthorities: repo.NewLocalAuthorityRepo(pool),
		Users:            repo.NewUserRepo(pool),
		Contacts:         repo.NewContactRepo(pool),
		KeyContacts:      repo.NewKeyContactRepo(pool),
		Histories:        repo.NewSignificantDateHistoryRepo(pool),
		ConversionTasks:  repo.NewConversionTasksRepo(pool),
	}
	trusts := trust.NewClient(cfg.Academies.URL, cfg.Academies.Key, cfg.Academies.Timeout)

	exportSvc := service.NewExportService(repos, trusts)
	if cfg.Archive.Enabled() {
		s3Client, err := archive.NewS3Client(ctx, cfg.Archive.Region, cfg.Archive.Endpoint)
		if err != nil {
			slog.Error("failed to create export archive client", "error", err)
			os.Exit(1)
		}
		exportSvc.WithArchiver(archive.NewS3Archiver(s3Client, cfg.Archive.Bucket, cfg.Archive.Prefix))
		slog.Info("export archiving enabled", "bucket", cfg.Archive.Bucket)
	}

	server := handler.NewServer(handler.Services{
		Projects:         service.NewProjectService(repos),
		Users:            service.NewUserService(repos.Users, repos.Projects),
		Trusts:           service.NewTrustService(repos.Projects, trusts),
		LocalAuthorities: service.NewLocalAuthorityService(repos.LocalAuthorities),
		Export:           exportSvc,
	})

	// --- Router -----------------------------------------------------------
	// RequestID generates a unique ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// Tracing opens the server span that SlogLogger and the services log under.
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewTracing(serviceName))
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	handler.HandlerFromMux(server, r)

	// --- HTTP Server ------------------------------------------------------
	// The write timeout allows for a month of projects resolved against the
	// trust directory.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending goose migrations through a short-lived database/sql
// connection, which goose requires.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	slog.Info("database migrated", "applied", applied)
	return nil
}
