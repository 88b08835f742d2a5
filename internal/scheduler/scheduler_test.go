package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestEvery_RunsImmediatelyThenTicks(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Every(ctx, 10*time.Millisecond, "test", func(ctx context.Context) error {
			if runs.Add(1) >= 3 {
				cancel()
			}
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Every did not stop after cancel")
	}
	if runs.Load() < 3 {
		t.Fatalf("runs = %d, want >= 3", runs.Load())
	}
}

func TestEvery_ErrorDoesNotStopLoop(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Every(ctx, 5*time.Millisecond, "test", func(ctx context.Context) error {
			if runs.Add(1) >= 2 {
				cancel()
			}
			return errors.New("boom")
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop died on task error")
	}
	if runs.Load() < 2 {
		t.Fatalf("runs = %d, want >= 2", runs.Load())
	}
}
