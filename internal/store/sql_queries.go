package store

import (
	"github.com/Masterminds/squirrel"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

const syncRunsTable = "sync_runs"

var syncRunColumns = []string{
	"id",
	"business_id",
	"business_name",
	"strategy",
	"total",
	"synced",
	"failed",
	"started_at",
	"finished_at",
}

func buildInsertSyncRunQuery(b squirrel.StatementBuilderType, run models.SyncRun) (string, []any, error) {
	return b.Insert(syncRunsTable).
		Columns(syncRunColumns...).
		Values(
			run.ID,
			run.BusinessID,
			run.BusinessName,
			run.Strategy,
			run.Total,
			run.Synced,
			run.Failed,
			run.StartedAt.UTC(),
			run.FinishedAt.UTC(),
		).
		ToSql()
}

// buildListSyncRunsQuery orders by start time, then by id; v7 ids keep the
// tie-break chronological.
func buildListSyncRunsQuery(b squirrel.StatementBuilderType, filter models.SyncRunFilter) (string, []any, error) {
	q := b.Select(syncRunColumns...).
		From(syncRunsTable).
		OrderBy("started_at DESC", "id DESC")

	if filter.BusinessID != "" {
		q = q.Where(squirrel.Eq{"business_id": filter.BusinessID})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	return q.ToSql()
}
