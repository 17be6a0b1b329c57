// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// The journal writes one row per batch, so a small pool is enough.
const (
	postgresMaxOpenConns    = 4
	postgresMaxIdleConns    = 2
	postgresConnMaxLifetime = 30 * time.Minute
)

// NewConnectPostgres opens a pgx-backed pool and pings it.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening journal database")
		return nil, fmt.Errorf("error opening journal database: %w", err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxLifetime(postgresConnMaxLifetime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Str("pg_code", pgCode(err)).Msg("journal database is unreachable")
		conn.Close()
		return nil, fmt.Errorf("error pinging journal database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to journal database")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}
