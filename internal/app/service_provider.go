package app

import (
	authAPI "bingo_backend/internal/api/auth"
	drawAPI "bingo_backend/internal/api/draw"
	"bingo_backend/internal/config"
	"bingo_backend/internal/config/env"
	"bingo_backend/internal/model"
	"bingo_backend/internal/repository"
	"bingo_backend/internal/repository/draw_log_repo"
	"bingo_backend/internal/repository/memory_repo"
	"bingo_backend/internal/repository/pool_repo"
	"bingo_backend/internal/service"
	"bingo_backend/internal/service/auth"
	"bingo_backend/internal/service/caller"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	logger *log.Logger

	//TXManager
	txManager repository.TxManager

	// Database
	pgConfig    config.PGConfig
	dbClient    *pgxpool.Pool
	memoryStore *memory_repo.Store

	// Draw bits
	gameCfg     config.GameConfig
	poolRepo    repository.PoolRepository
	drawLogRepo repository.DrawLogRepository
	callerServ  service.CallerService
	drawHand    *drawAPI.Handler

	// Auth bits
	callerCfg config.CallerConfig
	jwtCfg    config.JWTConfig
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(logger *log.Logger) *ServiceProvider {
	return &ServiceProvider{logger: logger}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

// UsePostgres Без DSN состояние барабана живет в памяти процесса
func (sp *ServiceProvider) UsePostgres() bool {
	return sp.PgConfig().DSN() != ""
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		if err := pool_repo.EnsureTable(ctx, dbc); err != nil {
			panic("failed to prepare db: " + err.Error())
		}
		if err := draw_log_repo.EnsureTable(ctx, dbc); err != nil {
			panic("failed to prepare db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) MemoryStore() *memory_repo.Store {
	if sp.memoryStore == nil {
		sp.memoryStore = memory_repo.NewStore()
	}
	return sp.memoryStore
}

func (sp *ServiceProvider) TXManager(ctx context.Context) repository.TxManager {
	if sp.txManager == nil {
		if !sp.UsePostgres() {
			sp.txManager = &memory_repo.TxManager{}
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(env.GameConfigPath())
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Rules() model.Rules {
	cfg := sp.GameCfg()
	return model.Rules{
		Size:       cfg.Size(),
		ColumnSpan: cfg.ColumnSpan(),
		WinLines:   cfg.WinLines(),
	}
}

func (sp *ServiceProvider) PoolRepository(ctx context.Context) repository.PoolRepository {
	if sp.poolRepo == nil {
		if sp.UsePostgres() {
			sp.poolRepo = pool_repo.NewPoolRepository(sp.DBClient(ctx))
		} else {
			sp.poolRepo = sp.MemoryStore().Pool()
		}
	}
	return sp.poolRepo
}

func (sp *ServiceProvider) DrawLogRepository(ctx context.Context) repository.DrawLogRepository {
	if sp.drawLogRepo == nil {
		if sp.UsePostgres() {
			sp.drawLogRepo = draw_log_repo.NewDrawLogRepository(sp.DBClient(ctx))
		} else {
			sp.drawLogRepo = sp.MemoryStore().DrawLog()
		}
	}
	return sp.drawLogRepo
}

func (sp *ServiceProvider) CallerService(ctx context.Context) service.CallerService {
	if sp.callerServ == nil {
		sp.callerServ = caller.NewCallerService(
			sp.Rules(),
			sp.PoolRepository(ctx),
			sp.DrawLogRepository(ctx),
			sp.TXManager(ctx),
			sp.logger,
		)
	}
	return sp.callerServ
}

func (sp *ServiceProvider) DrawHandler(ctx context.Context) *drawAPI.Handler {
	if sp.drawHand == nil {
		sp.drawHand = drawAPI.NewHandler(drawAPI.HandlerDeps{
			Serv:   sp.CallerService(ctx),
			Logger: sp.logger,
		})
	}
	return sp.drawHand
}

func (sp *ServiceProvider) CallerCfg() config.CallerConfig {
	if sp.callerCfg == nil {
		cfg, err := env.NewCallerConfig()
		if err != nil {
			panic("failed to get caller config: " + err.Error())
		}
		sp.callerCfg = cfg
	}
	return sp.callerCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.CallerCfg(), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:   sp.AuthService(),
			Logger: sp.logger,
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		sp.router = newRouter(routerDeps{
			draw:   sp.DrawHandler(ctx),
			auth:   sp.AuthHandler(),
			gate:   sp.AuthService(),
			logger: sp.logger,
		})
	}

	return sp.router
}

// Close Освобождает соединения с БД
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
}
