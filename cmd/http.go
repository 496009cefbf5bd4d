package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZenKakzi/scholar-book-flow/internal/api"
	"github.com/ZenKakzi/scholar-book-flow/internal/catalog"
	"github.com/ZenKakzi/scholar-book-flow/internal/config"
	"github.com/ZenKakzi/scholar-book-flow/internal/logger"
	"github.com/ZenKakzi/scholar-book-flow/internal/session"
	"github.com/ZenKakzi/scholar-book-flow/internal/storage"
)

func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage_backend {
	case "", "file":
		return storage.NewFileStorage(cfg.Data_dir)
	case "sqlite":
		return storage.NewSQLiteStorage(filepath.Join(cfg.Data_dir, "library.db"))
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage_backend)
	}
}

func HTTPCommand(ctx context.Context) *cobra.Command {
	var addr int
	var env string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "run the scholar-book-flow http server",
		RunE: func(cmd *cobra.Command, args []string) error {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

			var handler slog.Handler

			switch env {
			case "dev":
				handler = slog.Handler(slog.NewTextHandler(os.Stderr, nil))
			case "prod":
				handler = slog.Handler(slog.NewJSONHandler(os.Stderr, nil))
			default:
				return fmt.Errorf("environment can only be dev or prod")
			}

			baseLogger := slog.New(handler).With(
				slog.String("app", "scholar-book-flow"),
				slog.String("runtime", runtime.Version()),
				slog.String("os", runtime.GOOS),
				slog.String("architecture", runtime.GOARCH),
				slog.String("version", "1.0"),
			)

			viper.SetDefault("ADDR", addr)
			viper.SetDefault("ENV", env)
			viper.SetDefault("DATA_DIR", "data")
			viper.SetDefault("STORAGE_BACKEND", "file")
			viper.SetDefault("JWT_SECRET", "dev-secret")
			viper.SetDefault("LOGIN_DELAY_MS", 800)
			viper.AutomaticEnv()

			var cfg config.Config

			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("error unmarshalling config: %v", err)
			}

			log := logger.NewSlogLogger(baseLogger)

			store, err := openStorage(&cfg)

			if err != nil {
				return err
			}
			defer store.Close()

			catalogStore := catalog.New(ctx, store, log)
			sessionStore := session.New(ctx, store, log, session.PlaintextChecker{}, time.Duration(cfg.Login_delay_ms)*time.Millisecond)

			unsubscribe := catalogStore.Subscribe(func() {
				log.Info("catalogue mutated", "service", "catalog")
			})
			defer unsubscribe()

			r := chi.NewRouter()

			r.Use(middleware.Recoverer)

			r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok\n"))
			})

			a := api.New(r, log, catalogStore, sessionStore, &cfg)
			a.RegisterRoutes()

			httpServer := &http.Server{
				Addr:        fmt.Sprintf(":%d", cfg.Addr),
				Handler:     r,
				IdleTimeout: 15 * time.Minute,
			}
			errCh := make(chan error, 1)

			log.Info("server startup", "status", fmt.Sprintf("server starting on port: %d", cfg.Addr))
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err

			case <-sig:
				log.Info("server shutdown", "status", "kill signal received")
				ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return fmt.Errorf("error shutting down server: %v", err)
				}

				log.Info("server shutdown", "status", "shutdown complete...")
				return nil
			}
		},
	}

	cmd.Flags().IntVarP(&addr, "addr", "a", 8080, "server address")
	cmd.Flags().StringVarP(&env, "env", "e", "dev", "current working environment")

	return cmd
}
