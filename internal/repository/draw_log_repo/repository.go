package draw_log_repo

import (
	"bingo_backend/internal/repository"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "bingo_drawn"
	colSeq    = "seq"
	colNumber = "number"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewDrawLogRepository(dbc *pgxpool.Pool) repository.DrawLogRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// EnsureTable Создает таблицу истории. seq задает порядок выпадения
func EnsureTable(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, "CREATE TABLE IF NOT EXISTS "+table+" ("+
		colSeq+" BIGSERIAL PRIMARY KEY, "+
		colNumber+" INTEGER NOT NULL UNIQUE)")
	if err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

// Append - добавляет номер в конец истории
func (r *repo) Append(ctx context.Context, number int) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colNumber).
		Values(number).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// List - вся история в порядке выпадения
func (r *repo) List(ctx context.Context) ([]int, error) {
	// Формируем запрос
	query := sq.Select(colNumber).
		From(table).
		OrderBy(colSeq).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drawn := make([]int, 0)
	for rows.Next() {
		var number int
		if err := rows.Scan(&number); err != nil {
			return nil, err
		}
		drawn = append(drawn, number)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drawn, nil
}

// Clear - очищает историю
func (r *repo) Clear(ctx context.Context) error {
	sqlStr, args, err := sq.Delete(table).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}
