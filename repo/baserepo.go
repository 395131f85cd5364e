package repo

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/indexdata/circbroker/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sql builds postgres flavoured statements with numbered placeholders.
var Sql = goqu.Dialect("postgres")

type ConnOrTx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Transactional[T any] interface {
	//execute operations on the receiver repo within a transaction
	WithTxFunc(ctx common.ExtendedContext, fn func(T) error) error
}

type PgDerivedRepo[T any] interface {
	//create a new instance of the repo T backed by the provided PgBaseRepo
	CreateWithPgBaseRepo(repo *PgBaseRepo[T]) T
}

type PgBaseRepo[T any] struct {
	Pool *pgxpool.Pool
	Tx   pgx.Tx
}

func (r *PgBaseRepo[T]) WithTxFunc(ctx common.ExtendedContext, repo PgDerivedRepo[T], fn func(T) error) (err error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			ctx.Logger().Error("DB transaction rollback due to panic", "error", p)
			_ = tx.Rollback(ctx)
			panic(p)
		} else if err != nil {
			ctx.Logger().Debug("DB transaction rollback due to error", "error", err)
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	newRepo := repo.CreateWithPgBaseRepo(&PgBaseRepo[T]{Pool: r.Pool, Tx: tx})
	err = fn(newRepo)
	return err
}

func (r *PgBaseRepo[T]) GetConnOrTx() ConnOrTx {
	if r.Tx != nil {
		return r.Tx //return active tx if any
	}
	return r.Pool //otherwise acquire from the pool
}

// QueryAll renders the select with placeholders and collects every row into R by column name.
func QueryAll[R any](ctx common.ExtendedContext, conn ConnOrTx, ds *goqu.SelectDataset) ([]R, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}
	ctx.Logger().Debug("sql query", "query", query)
	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("database query execution failed: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[R])
}

// QueryOne is QueryAll limited to one row; a missing row yields nil without error.
func QueryOne[R any](ctx common.ExtendedContext, conn ConnOrTx, ds *goqu.SelectDataset) (*R, error) {
	list, err := QueryAll[R](ctx, conn, ds.Limit(1))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}
