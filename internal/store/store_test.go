package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"jobconnect-client/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestKV_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.GetKV(ctx, KeyAccount); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing key err = %v, want ErrNotFound", err)
	}

	if err := db.SetKV(ctx, KeyAccount, `{"id":1}`); err != nil {
		t.Fatalf("SetKV: %v", err)
	}
	got, err := db.GetKV(ctx, KeyAccount)
	if err != nil || got != `{"id":1}` {
		t.Fatalf("GetKV = %q, %v", got, err)
	}

	// Upsert overwrites.
	if err := db.SetKV(ctx, KeyAccount, `{"id":2}`); err != nil {
		t.Fatalf("SetKV upsert: %v", err)
	}
	got, _ = db.GetKV(ctx, KeyAccount)
	if got != `{"id":2}` {
		t.Fatalf("after upsert GetKV = %q", got)
	}

	if err := db.DeleteKV(ctx, KeyAccount); err != nil {
		t.Fatalf("DeleteKV: %v", err)
	}
	if _, err := db.GetKV(ctx, KeyAccount); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted key err = %v, want ErrNotFound", err)
	}
}

func TestSavedJobs_MirrorOperations(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	j1 := domain.Job{ID: 10, Title: "Backend Engineer", Company: "Acme"}
	j2 := domain.Job{ID: 11, Title: "SRE", Company: "Globex"}

	if err := db.MarkSaved(ctx, j1); err != nil {
		t.Fatalf("MarkSaved: %v", err)
	}
	if err := db.MarkSaved(ctx, j1); err != nil {
		t.Fatalf("MarkSaved twice: %v", err)
	}
	ok, err := db.IsSaved(ctx, 10)
	if err != nil || !ok {
		t.Fatalf("IsSaved(10) = %v, %v", ok, err)
	}

	ids, err := db.SavedJobIDs(ctx)
	if err != nil || len(ids) != 1 || !ids[10] {
		t.Fatalf("SavedJobIDs = %v, %v", ids, err)
	}

	if err := db.ReplaceSavedJobs(ctx, []domain.Job{j2}); err != nil {
		t.Fatalf("ReplaceSavedJobs: %v", err)
	}
	ids, _ = db.SavedJobIDs(ctx)
	if len(ids) != 1 || !ids[11] {
		t.Fatalf("after replace SavedJobIDs = %v", ids)
	}

	if err := db.MarkUnsaved(ctx, 11); err != nil {
		t.Fatalf("MarkUnsaved: %v", err)
	}
	ids, _ = db.SavedJobIDs(ctx)
	if len(ids) != 0 {
		t.Fatalf("after unsave SavedJobIDs = %v", ids)
	}
}

func TestClearUserData_RemovesAccountAndSavedSet(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_ = db.SetKV(ctx, KeyAccount, `{"id":1}`)
	_ = db.MarkSaved(ctx, domain.Job{ID: 7, Title: "x", Company: "y"})

	if err := db.ClearUserData(ctx); err != nil {
		t.Fatalf("ClearUserData: %v", err)
	}
	if _, err := db.GetKV(ctx, KeyAccount); !errors.Is(err, ErrNotFound) {
		t.Fatal("account record survived ClearUserData")
	}
	ids, _ := db.SavedJobIDs(ctx)
	if len(ids) != 0 {
		t.Fatalf("saved set survived ClearUserData: %v", ids)
	}
}

func TestJobsCache_RoundTripAndPrune(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	jobs := []domain.Job{
		{ID: 1, Title: "One", Company: "A", Description: "<p>hello</p>"},
		{ID: 2, Title: "Two", Company: "B"},
	}
	if err := db.CacheJobs(ctx, jobs); err != nil {
		t.Fatalf("CacheJobs: %v", err)
	}

	got, err := db.CachedJob(ctx, 1)
	if err != nil {
		t.Fatalf("CachedJob: %v", err)
	}
	if got.Title != "One" || got.Description != "<p>hello</p>" {
		t.Fatalf("cached payload mangled: %+v", got)
	}
	if _, err := db.CachedJob(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing job err = %v, want ErrNotFound", err)
	}

	list, err := db.CachedJobs(ctx, 50)
	if err != nil || len(list) != 2 {
		t.Fatalf("CachedJobs = %d jobs, %v", len(list), err)
	}

	// Upsert replaces the payload instead of duplicating the row.
	jobs[0].Title = "One v2"
	if err := db.CacheJobs(ctx, jobs[:1]); err != nil {
		t.Fatalf("CacheJobs upsert: %v", err)
	}
	list, _ = db.CachedJobs(ctx, 50)
	if len(list) != 2 {
		t.Fatalf("upsert duplicated rows: %d", len(list))
	}

	// Nothing is younger than -1h from now, so everything is pruned.
	n, err := db.PruneCachedJobs(ctx, -time.Hour)
	if err != nil || n != 2 {
		t.Fatalf("PruneCachedJobs = %d, %v; want 2, nil", n, err)
	}
	list, _ = db.CachedJobs(ctx, 50)
	if len(list) != 0 {
		t.Fatalf("prune left %d rows", len(list))
	}
}
