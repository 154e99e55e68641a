package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Load returns the stored library document, or nil when none was saved yet.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(
		ctx,
		`SELECT value FROM blobs WHERE key = ?`,
		s.key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// Save replaces the whole document in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	if data == nil {
		data = []byte{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO blobs (key, value, updated_at_unix) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at_unix = excluded.updated_at_unix`,
		s.key,
		data,
		time.Now().UTC().UnixNano(),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// UpdatedAt reports when the document was last written.
func (s *SQLiteStore) UpdatedAt(ctx context.Context) (time.Time, bool, error) {
	var updatedAtUnix int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT updated_at_unix FROM blobs WHERE key = ?`,
		s.key,
	).Scan(&updatedAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return time.Unix(0, updatedAtUnix).UTC(), true, nil
}
