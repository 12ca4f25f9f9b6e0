package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "activity-tracker.com/activity-tracker/internal/configs"
	httpapi "activity-tracker.com/activity-tracker/internal/http"
	"activity-tracker.com/activity-tracker/internal/limiter"
	repository "activity-tracker.com/activity-tracker/internal/repositories"
	"activity-tracker.com/activity-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the activity tracker HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}

		database, closeDB, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer closeDB()

		if cfg.AutoMigrate {
			if err := config.Migrate(database); err != nil {
				return err
			}
		}

		var store limiter.Store = limiter.NewMemoryStore()
		if cfg.RedisEnabled {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr())
			if err != nil {
				return err
			}
			defer redisClient.Close()
			store = limiter.NewRedisStore(redisClient, cfg.RedisKeyPrefix)
			logger.Info("rate limiting backed by redis", "addr", cfg.RedisAddr())
		}

		userRepo := repository.NewUserRepository(database)
		handler := httpapi.NewHandler(
			services.NewActivityService(repository.NewActivityRepository(database)),
			services.NewUserService(userRepo),
			services.NewProjectService(repository.NewProjectRepository(database)),
			services.NewAuthService(userRepo),
			logger,
			httpapi.HandlerOptions{
				CookieSecure:  cfg.CookieSecure,
				SessionMaxAge: time.Duration(cfg.SessionMaxAgeSeconds) * time.Second,
			},
		)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httpapi.Register(e, handler, store, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.AppURL())
			if err := e.Start(cfg.AppURL()); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", "err", err)
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
