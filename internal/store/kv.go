package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Fixed kv keys. The account record lives here so the credential store can
// clear token and user together.
const KeyAccount = "account"

var ErrNotFound = errors.New("store: not found")

func (d *DB) GetKV(ctx context.Context, key string) (string, error) {
	var val string
	err := d.Pool.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (d *DB) SetKV(ctx context.Context, key, value string) error {
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO kv(key, value, updated_at) VALUES(?,?,?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (d *DB) DeleteKV(ctx context.Context, key string) error {
	_, err := d.Pool.ExecContext(ctx, `DELETE FROM kv WHERE key = ?;`, key)
	return err
}
