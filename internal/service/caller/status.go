package caller

import (
	"bingo_backend/internal/model"
	"context"
	"fmt"
)

// Status Снимок истории и остатка барабана
func (s *serv) Status(ctx context.Context) (*model.DrawStatus, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	drawn, err := s.drawLogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list draw log: %w", err)
	}

	remaining, err := s.poolRepo.Size(ctx)
	if err != nil {
		return nil, fmt.Errorf("pool size: %w", err)
	}

	return &model.DrawStatus{
		Drawn:     drawn,
		Remaining: remaining,
	}, nil
}
