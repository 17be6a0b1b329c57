package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a local journal file, creating it when missing.
// sqlite serialises writers, so the pool holds a single connection.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if err := ensureSQLiteFile(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("error preparing journal file")
		return nil, fmt.Errorf("error preparing journal file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening journal database")
		return nil, fmt.Errorf("error opening journal database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("journal database is unreachable")
		conn.Close()
		return nil, fmt.Errorf("error pinging journal database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("connected to journal database")

	return &DB{
		DB:      conn,
		dialect: DialectSQLite,
		logger:  log,
	}, nil
}

// ensureSQLiteFile creates an empty database file for plain path DSNs;
// URI and in-memory DSNs are left to the driver.
func ensureSQLiteFile(dsn string) error {
	if strings.HasPrefix(dsn, "file:") || strings.HasPrefix(dsn, ":memory:") {
		return nil
	}

	_, err := os.Stat(dsn)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	f, err := os.OpenFile(dsn, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}
