package events

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/indexdata/circbroker/common"
	"github.com/indexdata/circbroker/repo"
)

type EventRepo interface {
	repo.Transactional[EventRepo]
	SaveNotice(ctx common.ExtendedContext, topic string, payload string) (int64, error)
	Notify(ctx common.ExtendedContext, channel string, payload string) error
}

type PgEventRepo struct {
	repo.PgBaseRepo[EventRepo]
}

// delegate transaction handling to Base
func (r *PgEventRepo) WithTxFunc(ctx common.ExtendedContext, fn func(EventRepo) error) error {
	return r.PgBaseRepo.WithTxFunc(ctx, r, fn)
}

// DerivedRepo
func (r *PgEventRepo) CreateWithPgBaseRepo(base *repo.PgBaseRepo[EventRepo]) EventRepo {
	eventRepo := new(PgEventRepo)
	eventRepo.PgBaseRepo = *base
	return eventRepo
}

// SaveNotice keeps a copy of the notice so that consumers which were not listening can catch up.
func (r *PgEventRepo) SaveNotice(ctx common.ExtendedContext, topic string, payload string) (int64, error) {
	ds := repo.Sql.Insert("request_notice").
		Rows(goqu.Record{
			"topic":   topic,
			"payload": payload,
		}).
		Returning("notice_id")
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}
	var id int64
	err = r.GetConnOrTx().QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save notice: %w", err)
	}
	return id, nil
}

// Notify uses pg_notify so that channel and payload travel as bind parameters.
func (r *PgEventRepo) Notify(ctx common.ExtendedContext, channel string, payload string) error {
	_, err := r.GetConnOrTx().Exec(ctx, "SELECT pg_notify($1, $2)", channel, payload)
	if err != nil {
		return fmt.Errorf("failed to notify channel %s: %w", channel, err)
	}
	return nil
}
