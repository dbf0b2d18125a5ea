package memory_repo

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
)

// Store Состояние барабана в памяти процесса.
// Используется, когда PG_DSN не задан, и в тестах
type Store struct {
	mtx   sync.RWMutex
	pool  []int       // номера в барабане, порядок произвольный
	index map[int]int // номер -> позиция в pool
	drawn []int
	rnd   *rand.Rand
}

// NewStore Пустое хранилище, барабан заполняет сервис ведущего
func NewStore() *Store {
	return &Store{
		index: make(map[int]int),
		rnd:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Pool Барабан поверх общего хранилища
func (s *Store) Pool() *PoolRepo {
	return &PoolRepo{s: s}
}

// DrawLog История поверх общего хранилища
func (s *Store) DrawLog() *DrawLogRepo {
	return &DrawLogRepo{s: s}
}

// TxManager Сериализует транзакции над Store.
// Репозитории берут свою блокировку на каждую операцию, fn выполняется без нее
type TxManager struct {
	mtx sync.Mutex
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}

type PoolRepo struct {
	s *Store
}

// Pop Случайный номер, равновероятно среди оставшихся
func (r *PoolRepo) Pop(ctx context.Context) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	if len(r.s.pool) == 0 {
		return 0, false, nil
	}

	// Меняем выбранный номер с последним и отрезаем хвост
	i := r.s.rnd.IntN(len(r.s.pool))
	last := len(r.s.pool) - 1
	number := r.s.pool[i]
	r.s.pool[i] = r.s.pool[last]
	r.s.index[r.s.pool[i]] = i
	r.s.pool = r.s.pool[:last]
	delete(r.s.index, number)

	return number, true, nil
}

func (r *PoolRepo) Add(ctx context.Context, numbers ...int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	for _, n := range numbers {
		if _, ok := r.s.index[n]; ok {
			continue
		}
		r.s.index[n] = len(r.s.pool)
		r.s.pool = append(r.s.pool, n)
	}
	return nil
}

func (r *PoolRepo) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	r.s.pool = nil
	r.s.index = make(map[int]int)
	return nil
}

func (r *PoolRepo) Size(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	return len(r.s.pool), nil
}

// Members Копия барабана, отсортированная по возрастанию
func (r *PoolRepo) Members() []int {
	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	members := slices.Clone(r.s.pool)
	slices.Sort(members)
	return members
}

type DrawLogRepo struct {
	s *Store
}

func (r *DrawLogRepo) Append(ctx context.Context, number int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	r.s.drawn = append(r.s.drawn, number)
	return nil
}

// List Копия истории, чтобы вызывающий не держал ссылку на внутренний срез
func (r *DrawLogRepo) List(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mtx.RLock()
	defer r.s.mtx.RUnlock()

	drawn := make([]int, len(r.s.drawn))
	copy(drawn, r.s.drawn)
	return drawn, nil
}

func (r *DrawLogRepo) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mtx.Lock()
	defer r.s.mtx.Unlock()

	r.s.drawn = nil
	return nil
}
