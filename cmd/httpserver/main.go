package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"movieapi/comment"
	"movieapi/httpserver"
	"movieapi/movie"
	"movieapi/omdb"
	"movieapi/pkg/config"
	"movieapi/pkg/logger"
	"movieapi/pkg/sentry"
	"movieapi/postgres"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := sentry.Init(cfg.AppEnv, cfg.SentryDSN); err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentry.Flush()

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		sentry.Fatal(err)
		log.Fatalw("cannot open postgres connection", "error", err)
	}

	metadata := omdb.NewClient(cfg.OMDb.APIURL, cfg.OMDb.APIKey)
	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(postgres.NewMovieRepository(db), metadata)),
		httpserver.WithCommentService(comment.NewUsecase(postgres.NewCommentRepository(db))),
	)
	if err != nil {
		sentry.Fatal(err)
		log.Fatalw("cannot create http server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server started", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("cannot shutdown server", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server stopped")
}
