package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/models"
)

type snapshotCache struct {
	*DB
	logger *logger.Logger
}

func NewSnapshotCache(db *DB, logger *logger.Logger) SnapshotCache {
	return &snapshotCache{
		DB:     db,
		logger: logger,
	}
}

func (s *snapshotCache) Load(ctx context.Context) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getSnapshotEntries)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotCache.Load").
			Msg("failed to execute query for getting snapshot entries")
		return nil, fmt.Errorf("failed to query snapshot entries: %w", err)
	}
	defer rows.Close()

	snapshot := models.Snapshot{}

	for rows.Next() {
		var entry models.SnapshotEntry

		if scanErr := rows.Scan(&entry.Title, &entry.URL); scanErr != nil {
			log.Err(scanErr).
				Str("func", "snapshotCache.Load").
				Msg("failed to scan snapshot entry row")
			return nil, fmt.Errorf("failed to scan snapshot entry row: %w", scanErr)
		}

		snapshot = append(snapshot, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "snapshotCache.Load").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating snapshot entry rows: %w", rowsErr)
	}

	return snapshot, nil
}

// Store replaces the whole snapshot and the sync state inside one
// transaction, so a reader never observes a new snapshot paired with a stale
// result or the other way round.
func (s *snapshotCache) Store(ctx context.Context, snapshot models.Snapshot, result models.SyncResult, at time.Time) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode sync result: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotCache.Store").
			Msg("failed to begin snapshot transaction")
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, clearSnapshotEntries); err != nil {
		log.Err(err).
			Str("func", "snapshotCache.Store").
			Msg("failed to clear previous snapshot entries")
		return fmt.Errorf("failed to clear previous snapshot entries: %w", err)
	}

	for position, entry := range snapshot {
		if _, err = tx.ExecContext(ctx, insertSnapshotEntry, position, entry.Title, entry.URL); err != nil {
			log.Err(err).
				Str("func", "snapshotCache.Store").
				Str("url", entry.URL).
				Msg("failed to insert snapshot entry")
			return fmt.Errorf("failed to insert snapshot entry (url=%s): %w", entry.URL, err)
		}
	}

	if _, err = tx.ExecContext(ctx, upsertSyncState, string(payload), at); err != nil {
		log.Err(err).
			Str("func", "snapshotCache.Store").
			Msg("failed to upsert sync state")
		return fmt.Errorf("failed to upsert sync state: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "snapshotCache.Store").
			Msg("failed to commit snapshot transaction")
		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return nil
}

func (s *snapshotCache) LastSync(ctx context.Context) (models.SyncResult, time.Time, error) {
	log := logger.FromContext(ctx)

	var payload string
	var syncedAt sql.NullTime

	row := s.DB.QueryRowContext(ctx, getSyncState)
	if err := row.Scan(&payload, &syncedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncResult{}, time.Time{}, nil
		}
		log.Err(err).
			Str("func", "snapshotCache.LastSync").
			Msg("failed to scan sync state row")
		return nil, time.Time{}, fmt.Errorf("failed to scan sync state row: %w", err)
	}

	var result models.SyncResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode sync result: %w", err)
	}

	return result, syncedAt.Time, nil
}
