package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	timerhandler "webhook-timer/internal/api/handlers/timer"
	webhookhandler "webhook-timer/internal/api/handlers/webhook"
	wshandler "webhook-timer/internal/api/handlers/ws"
	"webhook-timer/internal/api/router"
	"webhook-timer/internal/api/server"
	"webhook-timer/internal/broadcast"
	"webhook-timer/internal/config"
	"webhook-timer/internal/dispatch"
	activityrepo "webhook-timer/internal/repository/activity"
	timerrepo "webhook-timer/internal/repository/timer"
	webhookrepo "webhook-timer/internal/repository/webhook"
	"webhook-timer/internal/scheduler"
	timersvc "webhook-timer/internal/service/timer"
	"webhook-timer/pkg/discord"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	timers := timerrepo.NewRepository(db)
	activities := activityrepo.NewRepository(db)
	webhooks := webhookrepo.NewRepository(db)

	client := discord.NewClient(cfg.Webhook.Timeout)
	dispatcher := dispatch.New(client, activities)

	hub := broadcast.NewHub()

	clk := clock.New()
	sched := scheduler.New(clk)
	go sched.Run(ctx)

	service := timersvc.NewService(
		timers, activities, webhooks,
		dispatcher, hub, sched,
		rdb, clk, cfg.Retry,
	)

	// Re-arm persisted active timers; already-expired ones fire immediately.
	if err := service.Resume(ctx); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to resume timers")
	}

	timerHandler := timerhandler.NewHandler(service, val)
	webhookHandler := webhookhandler.NewHandler(service, val)
	wsHandler := wshandler.NewHandler(hub, service)

	r := router.New(timerHandler, webhookHandler, wsHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
