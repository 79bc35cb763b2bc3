package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Blob kinds stored by the coach. The store itself treats the payload
// as opaque JSON; the owning package re-validates on load.
const (
	KindQuiz  = "quiz"
	KindSheet = "sheet"
	KindPlan  = "plan"
	KindSRS   = "srs"
)

// SaveBlob marshals v as JSON and upserts it under key.
func (s *Store) SaveBlob(ctx context.Context, key, sessionID, kind string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal blob %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO blobs (key, session_id, kind, data, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   session_id = excluded.session_id,
		   kind = excluded.kind,
		   data = excluded.data,
		   updated_at = excluded.updated_at`,
		key, sessionID, kind, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save blob %s: %w", key, err)
	}
	return nil
}

// LoadBlob unmarshals the blob at key into out.
func (s *Store) LoadBlob(ctx context.Context, key string, out any) error {
	row := s.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE key = ?`, key)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("load blob %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal blob %s: %w", key, err)
	}
	return nil
}

// BlobKeys lists keys of a kind, optionally scoped to a session,
// most recently updated first.
func (s *Store) BlobKeys(ctx context.Context, kind, sessionID string) ([]string, error) {
	q := `SELECT key FROM blobs WHERE kind = ?`
	args := []any{kind}
	if sessionID != "" {
		q += ` AND session_id = ?`
		args = append(args, sessionID)
	}
	q += ` ORDER BY updated_at DESC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan blob key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// DeleteBlob removes the blob at key. Deleting a missing key is not an
// error.
func (s *Store) DeleteBlob(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}
