package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobconnect-client/internal/domain"
)

// CacheJobs upserts the jobs from the latest browse/search response so the
// shell can paint something before the next fetch resolves.
func (d *DB) CacheJobs(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, j := range jobs {
		payload, err := json.Marshal(j)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO cached_jobs(job_id, payload, fetched_at) VALUES(?,?,?)
ON CONFLICT(job_id) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at;`,
			j.ID, string(payload), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// CachedJob returns the locally cached copy, ErrNotFound when absent.
func (d *DB) CachedJob(ctx context.Context, jobID int64) (*domain.Job, error) {
	var payload string
	err := d.Pool.QueryRowContext(ctx,
		`SELECT payload FROM cached_jobs WHERE job_id = ?;`, jobID).Scan(&payload)
	if err != nil {
		return nil, ErrNotFound
	}
	var j domain.Job
	if err := json.Unmarshal([]byte(payload), &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// CachedJobs returns the most recently fetched jobs, newest first.
func (d *DB) CachedJobs(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.Pool.QueryContext(ctx, `
SELECT payload FROM cached_jobs ORDER BY fetched_at DESC LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var j domain.Job
		if err := json.Unmarshal([]byte(payload), &j); err != nil {
			continue // a bad row shouldn't poison the whole list
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// PruneCachedJobs deletes entries older than maxAge.
func (d *DB) PruneCachedJobs(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)
	res, err := d.Pool.ExecContext(ctx, `DELETE FROM cached_jobs WHERE fetched_at < ?;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune cached jobs: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
