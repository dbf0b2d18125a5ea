package app

import (
	"bingo_backend/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
	logger          *log.Logger
}

func NewApp(logger *log.Logger) *App {
	return &App{logger: logger}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.logger)
}

// Run Поднимает HTTP сервер и держит его до отмены ctx
func (s *App) Run(ctx context.Context) error {
	err := config.Load(".env")
	if err != nil {
		s.logger.Info("no .env file, using environment", "err", err)
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	if s.ServiceProvider.UsePostgres() {
		s.logger.Info("using postgres store")
	} else {
		s.logger.Warn("PG_DSN is empty, draw state is kept in memory")
	}

	if err := s.ServiceProvider.CallerService(ctx).Init(ctx); err != nil {
		return fmt.Errorf("init caller: %w", err)
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
