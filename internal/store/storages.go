package store

import (
	"context"
	"fmt"

	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
)

// Storages groups the repositories of the server. SyncRunRepository is nil
// when no journal DSN is configured.
type Storages struct {
	SyncRunRepository SyncRunRepository

	db *DB
}

// NewStorages connects and migrates the journal database when cfg.DB.DSN is
// set; otherwise it returns empty Storages.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("sync journal disabled: no DSN configured")
		return &Storages{}, nil
	}

	db, err := NewConnect(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting sync journal: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating sync journal: %w", err)
	}

	return &Storages{
		SyncRunRepository: NewSyncRunRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the journal connection pool, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
