package caller

import (
	"bingo_backend/internal/model"
	"bingo_backend/internal/repository"
	"bingo_backend/internal/service"
	"sync"

	"github.com/charmbracelet/log"
)

type serv struct {
	rules       model.Rules
	poolRepo    repository.PoolRepository
	drawLogRepo repository.DrawLogRepository
	txManager   repository.TxManager
	logger      *log.Logger

	// mtx Одна критическая секция на оба ключа: Draw и Reset не перемежаются
	// даже если хранилище не дает атомарности на несколько операций
	mtx sync.Mutex
}

// NewCallerService Создать барабан ведущего
func NewCallerService(
	rules model.Rules,
	poolRepo repository.PoolRepository,
	drawLogRepo repository.DrawLogRepository,
	txManager repository.TxManager,
	logger *log.Logger,
) service.CallerService {
	return &serv{
		rules:       rules,
		poolRepo:    poolRepo,
		drawLogRepo: drawLogRepo,
		txManager:   txManager,
		logger:      logger.WithPrefix("caller"),
	}
}
