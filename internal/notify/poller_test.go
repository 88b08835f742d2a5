package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"jobconnect-client/internal/domain"
	"jobconnect-client/internal/events"
	"jobconnect-client/internal/session"
)

type mockCounts struct {
	mu    sync.Mutex
	count int64
	err   error
	calls int
}

func (m *mockCounts) UnreadCount(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.count, m.err
}

func (m *mockCounts) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockSessions struct {
	mu   sync.Mutex
	snap session.Snapshot
}

func (m *mockSessions) Snapshot() session.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

func (m *mockSessions) set(s session.Snapshot) {
	m.mu.Lock()
	m.snap = s
	m.mu.Unlock()
}

func authedSnap() session.Snapshot {
	return session.Snapshot{
		State: session.StateAuthenticated,
		User:  &domain.UserSummary{ID: 1, Role: domain.RoleApplicant},
	}
}

func TestTick_AnonymousMakesNoRequest(t *testing.T) {
	counts := &mockCounts{count: 3}
	sessions := &mockSessions{snap: session.Snapshot{State: session.StateAnonymous}}
	p := NewPoller(counts, sessions, nil, 0)

	if err := p.tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if counts.callCount() != 0 {
		t.Fatalf("anonymous tick hit the backend %d times", counts.callCount())
	}
	if _, ok := p.Last(); ok {
		t.Fatal("Last() reported a count before any authenticated poll")
	}
}

func TestTick_PublishesOnChangeOnly(t *testing.T) {
	counts := &mockCounts{count: 2}
	sessions := &mockSessions{snap: authedSnap()}
	hub := events.NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	p := NewPoller(counts, sessions, hub, 0)

	if err := p.tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}
	select {
	case msg := <-ch:
		var evt events.Event
		if err := json.Unmarshal([]byte(msg), &evt); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		if evt.Type != events.TypeUnreadCount {
			t.Fatalf("event type = %q", evt.Type)
		}
	default:
		t.Fatal("first tick did not publish")
	}

	// Same count again: silence.
	if err := p.tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}
	select {
	case msg := <-ch:
		t.Fatalf("unchanged count published %q", msg)
	default:
	}

	// Changed count publishes again.
	counts.mu.Lock()
	counts.count = 5
	counts.mu.Unlock()
	if err := p.tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}
	select {
	case <-ch:
	default:
		t.Fatal("changed count did not publish")
	}

	if last, ok := p.Last(); !ok || last != 5 {
		t.Fatalf("Last() = %d, %v; want 5, true", last, ok)
	}
}

func TestTick_LogoutResetsBaseline(t *testing.T) {
	counts := &mockCounts{count: 4}
	sessions := &mockSessions{snap: authedSnap()}
	hub := events.NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	p := NewPoller(counts, sessions, hub, 0)
	_ = p.tick(context.Background())
	<-ch // initial publish

	// Logout, then sign back in with the same unread count: the badge must
	// be re-announced because the shell state was torn down in between.
	sessions.set(session.Snapshot{State: session.StateAnonymous})
	_ = p.tick(context.Background())

	sessions.set(authedSnap())
	_ = p.tick(context.Background())
	select {
	case <-ch:
	default:
		t.Fatal("count not re-published after sign-in")
	}
}

func TestTick_BackendErrorSurfaces(t *testing.T) {
	counts := &mockCounts{err: errors.New("connection refused")}
	sessions := &mockSessions{snap: authedSnap()}
	p := NewPoller(counts, sessions, nil, 0)

	if err := p.tick(context.Background()); err == nil {
		t.Fatal("want error from failing backend")
	}
	if _, ok := p.Last(); ok {
		t.Fatal("failed poll must not update Last()")
	}
}
