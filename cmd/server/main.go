// Package main starts the PR reviewer assignment service.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/akarpov/pr-reviewer-service/internal/config"
	"github.com/akarpov/pr-reviewer-service/internal/database"
	"github.com/akarpov/pr-reviewer-service/internal/health"
	"github.com/akarpov/pr-reviewer-service/internal/middleware"
	prrouter "github.com/akarpov/pr-reviewer-service/internal/pullrequest/router"
	"github.com/akarpov/pr-reviewer-service/internal/selector"
	statsrouter "github.com/akarpov/pr-reviewer-service/internal/stats/router"
	teamrouter "github.com/akarpov/pr-reviewer-service/internal/team/router"
	userrouter "github.com/akarpov/pr-reviewer-service/internal/user/router"
	"github.com/akarpov/pr-reviewer-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logg, err := logger.NewWithConfig(cfg.Log)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx)
	if err != nil {
		logg.Fatalw("connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logg.Warnw("close database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		logg.Fatalw("apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(logg), middleware.RequestLogger(logg))

	sel := selector.New(selector.NewSource(time.Now().UnixNano()))

	r.GET("/health", health.New(db, logg).Check)
	teamrouter.Register(r, db, logg)
	userrouter.Register(r, db, logg)
	prrouter.Register(r, db, sel, logg)
	statsrouter.Register(r, db, logg)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logg.Infow("server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logg.Fatalw("server stopped", "error", err)
	}
}
