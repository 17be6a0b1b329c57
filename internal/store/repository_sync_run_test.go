package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSyncRunRepo(t *testing.T, dialect Dialect) (*syncRunRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	store := &DB{DB: db, dialect: dialect, logger: l}
	if dialect == DialectPostgres {
		store.errorClassificator = NewPostgresErrorClassifier()
	}

	return &syncRunRepository{db: store, logger: l}, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testRun() models.SyncRun {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.SyncRun{
		ID:           "018e0000-0000-7000-8000-000000000001",
		BusinessID:   "biz-1",
		BusinessName: "Cafe",
		Strategy:     "reference",
		Total:        3,
		Synced:       2,
		Failed:       1,
		StartedAt:    started,
		FinishedAt:   started.Add(2 * time.Second),
	}
}

// ── SaveRun ─────────────────────────────────────────────────────────────────

func TestSaveRun_Success(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	run := testRun()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_runs (id,business_id,business_name,strategy,total,synced,failed,started_at,finished_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)")).
		WithArgs(run.ID, run.BusinessID, run.BusinessName, run.Strategy, run.Total, run.Synced, run.Failed, run.StartedAt, run.FinishedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRun(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_SQLitePlaceholders(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectSQLite)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("VALUES (?,?,?,?,?,?,?,?,?)")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveRun(context.Background(), testRun()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_RetriesOnceOnRetryableError(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO sync_runs").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveRun(context.Background(), testRun()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_GivesUpAfterSecondRetryableError(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	err := repo.SaveRun(context.Background(), testRun())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_NonRetryableErrorIsNotRetried(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.SaveRun(context.Background(), testRun())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pgerrcode.UniqueViolation, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRun_SQLiteErrorsAreNotRetried(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectSQLite)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_runs").WillReturnError(errors.New("database is locked"))

	err := repo.SaveRun(context.Background(), testRun())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ListRuns ────────────────────────────────────────────────────────────────

func TestListRuns_FilteredAndLimited(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	run := testRun()
	older := run
	older.ID = "018e0000-0000-7000-8000-000000000000"
	older.StartedAt = run.StartedAt.Add(-time.Hour)
	older.FinishedAt = older.StartedAt.Add(time.Second)

	rows := sqlmock.NewRows(syncRunColumns).
		AddRow(run.ID, run.BusinessID, run.BusinessName, run.Strategy, run.Total, run.Synced, run.Failed, run.StartedAt, run.FinishedAt).
		AddRow(older.ID, older.BusinessID, older.BusinessName, older.Strategy, older.Total, older.Synced, older.Failed, older.StartedAt, older.FinishedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, business_id, business_name, strategy, total, synced, failed, started_at, finished_at FROM sync_runs WHERE business_id = $1 ORDER BY started_at DESC, id DESC LIMIT 5")).
		WithArgs("biz-1").
		WillReturnRows(rows)

	got, err := repo.ListRuns(context.Background(), models.SyncRunFilter{BusinessID: "biz-1", Limit: 5})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, run, got[0])
	assert.Equal(t, older, got[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_NoFilter(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM sync_runs ORDER BY started_at DESC, id DESC")).
		WithoutArgs().
		WillReturnRows(sqlmock.NewRows(syncRunColumns))

	got, err := repo.ListRuns(context.Background(), models.SyncRunFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRuns_QueryError(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	mock.ExpectQuery("FROM sync_runs").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListRuns(context.Background(), models.SyncRunFilter{})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListRuns_ScanError(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("only-one-column")
	mock.ExpectQuery("FROM sync_runs").WillReturnRows(rows)

	_, err := repo.ListRuns(context.Background(), models.SyncRunFilter{})

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestListRuns_RowError(t *testing.T) {
	repo, mock, db := newTestSyncRunRepo(t, DialectPostgres)
	defer db.Close()

	run := testRun()
	rows := sqlmock.NewRows(syncRunColumns).
		AddRow(run.ID, run.BusinessID, run.BusinessName, run.Strategy, run.Total, run.Synced, run.Failed, run.StartedAt, run.FinishedAt).
		RowError(0, errors.New("row broke"))
	mock.ExpectQuery("FROM sync_runs").WillReturnRows(rows)

	_, err := repo.ListRuns(context.Background(), models.SyncRunFilter{})

	assert.ErrorIs(t, err, ErrScanningRows)
}
