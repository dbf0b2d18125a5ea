package caller

import (
	"bingo_backend/internal/model"
	"context"
	"fmt"
)

// Draw Достает случайный номер из барабана и дописывает его в историю.
// Пустой барабан - model.ErrPoolExhausted, состояние при этом не меняется
func (s *serv) Draw(ctx context.Context) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var number int

	// Начало транзакции: pop из барабана и append в историю
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, ok, err := s.poolRepo.Pop(txCtx)
		if err != nil {
			return fmt.Errorf("pop pool: %w", err)
		}
		if !ok {
			return model.ErrPoolExhausted
		}

		if err := s.drawLogRepo.Append(txCtx, n); err != nil {
			// Хранилище без транзакций само номер не вернет
			if addErr := s.poolRepo.Add(context.WithoutCancel(txCtx), n); addErr != nil {
				s.logger.Error("failed to return number to pool", "number", n, "err", addErr)
			}
			return fmt.Errorf("append draw log: %w", err)
		}

		number = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("number drawn", "number", number)
	return number, nil
}
