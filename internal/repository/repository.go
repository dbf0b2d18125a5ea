package repository

import (
	"context"
)

// PoolRepository Множество номеров, которые еще не выпали
type PoolRepository interface {
	// Pop удаляет и возвращает случайный номер. ok == false, если барабан пуст
	Pop(ctx context.Context) (number int, ok bool, err error)
	Add(ctx context.Context, numbers ...int) error
	Clear(ctx context.Context) error
	Size(ctx context.Context) (int, error)
}

// DrawLogRepository Упорядоченный список выпавших номеров
type DrawLogRepository interface {
	Append(ctx context.Context, number int) error
	List(ctx context.Context) ([]int, error)
	Clear(ctx context.Context) error
}

// TxManager Выполняет fn атомарно относительно хранилища.
// trm.Manager из go-transaction-manager удовлетворяет этому интерфейсу
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
