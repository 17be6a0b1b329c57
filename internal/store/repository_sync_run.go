// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

// maxSaveAttempts bounds SaveRun: one retry on a retryable error.
const maxSaveAttempts = 2

// syncRunRepository is the SQL implementation of [SyncRunRepository]
// against the "sync_runs" table. It serves PostgreSQL and SQLite alike; the
// placeholder style comes from the connection's dialect.
type syncRunRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncRunRepository constructs a [SyncRunRepository] backed by db.
func NewSyncRunRepository(db *DB, logger *logger.Logger) SyncRunRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating sync run repository")
	return &syncRunRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRun implements [SyncRunRepository]. A failure classified as
// [Retryable] is attempted once more; any other failure is returned wrapped
// in [ErrExecutingStatement].
func (r *syncRunRepository) SaveRun(ctx context.Context, run models.SyncRun) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSyncRunQuery(r.db.builder(), run)
	if err != nil {
		log.Err(err).Str("func", "*syncRunRepository.SaveRun").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		if attempt < maxSaveAttempts && r.db.classify(err) == Retryable {
			log.Warn().Err(err).
				Str("func", "*syncRunRepository.SaveRun").
				Str("pg_code", pgCode(err)).
				Int("attempt", attempt).
				Msg("retryable error saving sync run")
			continue
		}

		log.Err(err).
			Str("func", "*syncRunRepository.SaveRun").
			Str("pg_code", pgCode(err)).
			Int("attempt", attempt).
			Msg("error saving sync run")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// ListRuns implements [SyncRunRepository].
func (r *syncRunRepository) ListRuns(ctx context.Context, filter models.SyncRunFilter) ([]models.SyncRun, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSyncRunsQuery(r.db.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*syncRunRepository.ListRuns").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*syncRunRepository.ListRuns").Msg("error querying sync runs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.SyncRun, 0)
	for rows.Next() {
		var run models.SyncRun
		if err = rows.Scan(
			&run.ID,
			&run.BusinessID,
			&run.BusinessName,
			&run.Strategy,
			&run.Total,
			&run.Synced,
			&run.Failed,
			&run.StartedAt,
			&run.FinishedAt,
		); err != nil {
			log.Err(err).Str("func", "*syncRunRepository.ListRuns").Msg("error scanning sync run")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*syncRunRepository.ListRuns").Msg("error iterating sync runs")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}
