package caller

import (
	"context"
	"fmt"
)

// Reset Очищает историю и заново заполняет барабан 1..MaxNumber
func (s *serv) Reset(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.reset(ctx); err != nil {
		return err
	}

	s.logger.Info("game reset", "pool", s.rules.MaxNumber())
	return nil
}

// reset вызывается под s.mtx
func (s *serv) reset(ctx context.Context) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.drawLogRepo.Clear(txCtx); err != nil {
			return fmt.Errorf("clear draw log: %w", err)
		}
		if err := s.poolRepo.Clear(txCtx); err != nil {
			return fmt.Errorf("clear pool: %w", err)
		}
		if err := s.poolRepo.Add(txCtx, s.rules.AllNumbers()...); err != nil {
			return fmt.Errorf("fill pool: %w", err)
		}
		return nil
	})
}

// Init Заполняет барабан на свежем хранилище.
// Непустое хранилище не трогаем: партия могла идти до рестарта
func (s *serv) Init(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	size, err := s.poolRepo.Size(ctx)
	if err != nil {
		return fmt.Errorf("pool size: %w", err)
	}
	drawn, err := s.drawLogRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list draw log: %w", err)
	}

	if size > 0 || len(drawn) > 0 {
		s.logger.Info("resuming game", "drawn", len(drawn), "remaining", size)
		return nil
	}

	if err := s.reset(ctx); err != nil {
		return err
	}

	s.logger.Info("pool seeded", "pool", s.rules.MaxNumber())
	return nil
}
