package store

import (
	"context"
	"database/sql"
	"time"

	"jobconnect-client/internal/domain"
)

// The saved-jobs table mirrors the backend's saved set for the signed-in
// applicant. Write-through on save/unsave responses; replaced wholesale when
// /jobs/saved is fetched.

func (d *DB) MarkSaved(ctx context.Context, job domain.Job) error {
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO saved_jobs(job_id, title, company, saved_at) VALUES(?,?,?,?)
ON CONFLICT(job_id) DO UPDATE SET title = excluded.title, company = excluded.company;`,
		job.ID, job.Title, job.Company, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (d *DB) MarkUnsaved(ctx context.Context, jobID int64) error {
	_, err := d.Pool.ExecContext(ctx, `DELETE FROM saved_jobs WHERE job_id = ?;`, jobID)
	return err
}

// ReplaceSavedJobs swaps the whole mirror for the server's authoritative set.
func (d *DB) ReplaceSavedJobs(ctx context.Context, jobs []domain.Job) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_jobs;`); err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	for _, j := range jobs {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO saved_jobs(job_id, title, company, saved_at) VALUES(?,?,?,?);`,
			j.ID, j.Title, j.Company, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (d *DB) SavedJobIDs(ctx context.Context) (map[int64]bool, error) {
	rows, err := d.Pool.QueryContext(ctx, `SELECT job_id FROM saved_jobs;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

func (d *DB) IsSaved(ctx context.Context, jobID int64) (bool, error) {
	var one int
	err := d.Pool.QueryRowContext(ctx, `SELECT 1 FROM saved_jobs WHERE job_id = ? LIMIT 1;`, jobID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ClearUserData drops everything scoped to the signed-in account. Called on
// logout and on credential invalidation.
func (d *DB) ClearUserData(ctx context.Context) error {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_jobs;`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?;`, KeyAccount); err != nil {
		return err
	}
	return tx.Commit()
}
