// Package notify polls the backend's unread-notification count on a fixed
// interval. The poller shares the session's lifecycle: cancelling its
// context stops it, and while the session is anonymous no request is ever
// dispatched, so logout does not depend on teardown timing.
package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"jobconnect-client/internal/events"
	"jobconnect-client/internal/scheduler"
	"jobconnect-client/internal/session"
)

type CountAPI interface {
	UnreadCount(ctx context.Context) (int64, error)
}

type Sessions interface {
	Snapshot() session.Snapshot
}

type Poller struct {
	api      CountAPI
	sessions Sessions
	hub      *events.Hub
	interval time.Duration

	mu       sync.Mutex
	last     int64
	haveLast bool
}

func NewPoller(api CountAPI, sessions Sessions, hub *events.Hub, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{api: api, sessions: sessions, hub: hub, interval: interval}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	scheduler.Every(ctx, p.interval, "notify", p.tick)
}

func (p *Poller) tick(ctx context.Context) error {
	if !p.sessions.Snapshot().IsAuthenticated() {
		// Forget the last count so the next sign-in always re-publishes.
		p.mu.Lock()
		p.haveLast = false
		p.mu.Unlock()
		return nil
	}

	tctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := p.api.UnreadCount(tctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	changed := !p.haveLast || count != p.last
	p.last = count
	p.haveLast = true
	p.mu.Unlock()

	if changed {
		log.Printf("[notify] unread=%d", count)
		if p.hub != nil {
			p.hub.Publish(events.MakeEvent("", events.TypeUnreadCount, 1, map[string]any{"count": count}))
		}
	}
	return nil
}

// Poke runs one poll immediately, outside the ticker. Used after a
// mark-read so the badge does not lag behind by an interval.
func (p *Poller) Poke(ctx context.Context) {
	if err := p.tick(ctx); err != nil {
		log.Printf("[notify] poke failed: %v", err)
	}
}

// Last returns the most recent count, ok=false before the first
// authenticated poll.
func (p *Poller) Last() (int64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.haveLast
}
