package pool_repo

import (
	"bingo_backend/internal/repository"
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "bingo_pool"
	colNumber = "number"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewPoolRepository(dbc *pgxpool.Pool) repository.PoolRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn Возвращает текущую транзакцию из контекста или пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// EnsureTable Создает таблицу барабана, если ее нет
func EnsureTable(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, "CREATE TABLE IF NOT EXISTS "+table+" ("+colNumber+" INTEGER PRIMARY KEY)")
	if err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	return nil
}

// popQuery Удаляет одну случайную строку.
// SKIP LOCKED не дает двум параллельным вытягиваниям взять одну строку
func popQuery() sq.DeleteBuilder {
	return sq.Delete(table).
		Where(colNumber + " = (SELECT " + colNumber + " FROM " + table +
			" ORDER BY random() LIMIT 1 FOR UPDATE SKIP LOCKED)").
		Suffix("RETURNING " + colNumber).
		PlaceholderFormat(sq.Dollar)
}

// addQuery Вставка пачки номеров, повторы игнорируются
func addQuery(numbers []int) sq.InsertBuilder {
	query := sq.Insert(table).
		Columns(colNumber).
		Suffix("ON CONFLICT (" + colNumber + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)
	for _, n := range numbers {
		query = query.Values(n)
	}
	return query
}

// Pop - удаляет случайный номер из барабана и возвращает его
func (r *repo) Pop(ctx context.Context) (int, bool, error) {
	sqlStr, args, err := popQuery().ToSql()
	if err != nil {
		return 0, false, err
	}

	var number int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return number, true, nil
}

// Add - добавляет номера в барабан одним запросом
func (r *repo) Add(ctx context.Context, numbers ...int) error {
	if len(numbers) == 0 {
		return nil
	}

	sqlStr, args, err := addQuery(numbers).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// Clear - очищает барабан полностью
func (r *repo) Clear(ctx context.Context) error {
	sqlStr, args, err := sq.Delete(table).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// Size - сколько номеров осталось в барабане
func (r *repo) Size(ctx context.Context) (int, error) {
	sqlStr, args, err := sq.Select("COUNT(*)").From(table).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var size int
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).Scan(&size)
	if err != nil {
		return 0, err
	}

	return size, nil
}
