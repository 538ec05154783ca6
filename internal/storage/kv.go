package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// KVStore is the persistence boundary for the whole application: collections
// are stored as full JSON documents under a fixed key and always overwritten
// as a whole, never updated partially.
type KVStore interface {
	// Get returns the stored value for key. The second return value is false
	// when the key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

type SQLiteKV struct {
	db *sql.DB
}

func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		err := fmt.Errorf("could not read key %q: %w", key, err)
		log.Error(err)
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteKV) Put(ctx context.Context, key string, value string) error {
	query := `INSERT INTO kv_store (key, value) VALUES (?, ?)
              ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		err := fmt.Errorf("could not write key %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}

func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key); err != nil {
		err := fmt.Errorf("could not delete key %q: %w", key, err)
		log.Error(err)
		return err
	}
	return nil
}
