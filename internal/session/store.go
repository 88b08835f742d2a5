package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"jobconnect-client/internal/api"
	"jobconnect-client/internal/domain"
	"jobconnect-client/internal/events"
)

type State int

const (
	// StateUninitialized is the window between process start and the end of
	// credential rehydration. The route guard suspends while here.
	StateUninitialized State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	}
	return "uninitialized"
}

// Snapshot is an immutable view of the session. IsAuthenticated is derived
// from User so the two can never diverge.
type Snapshot struct {
	State State
	User  *domain.UserSummary
}

func (s Snapshot) Loading() bool         { return s.State == StateUninitialized }
func (s Snapshot) IsAuthenticated() bool { return s.User != nil }

func (s Snapshot) Role() domain.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Result is the login/register contract: failures come back as a message,
// never as an error the UI layer has to unwrap.
type Result struct {
	Success bool                `json:"success"`
	User    *domain.UserSummary `json:"user,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// AuthAPI is the slice of the backend facade the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string, role domain.Role) (*api.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*api.AuthResponse, error)
	ValidateToken(ctx context.Context) (*api.ValidateResponse, error)
	Profile(ctx context.Context) (*domain.UserSummary, error)
	UpdateApplicantProfile(ctx context.Context, p domain.ApplicantProfile) (*domain.UserSummary, error)
	UpdateEmployerProfile(ctx context.Context, p domain.EmployerProfile) (*domain.UserSummary, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// Store is the single source of truth for "who is signed in". Constructed
// once in main and passed to everything that needs it.
type Store struct {
	auth  AuthAPI
	creds CredentialStore
	hub   *events.Hub

	mu    sync.RWMutex
	state State
	user  *domain.UserSummary
}

func NewStore(auth AuthAPI, creds CredentialStore, hub *events.Hub) *Store {
	return &Store{auth: auth, creds: creds, hub: hub, state: StateUninitialized}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, User: s.user}
}

// Init rehydrates persisted credentials and validates them against the
// backend. On any failure the stale persisted pair is cleared; the engine
// always leaves Uninitialized before Init returns.
func (s *Store) Init(ctx context.Context) {
	c, err := s.creds.Load(ctx)
	if err != nil || !c.Present() {
		if err != nil {
			log.Printf("[session] credential load failed: %v", err)
		}
		_ = s.creds.Clear(ctx)
		s.transition(StateAnonymous, nil)
		return
	}

	res, err := s.auth.ValidateToken(ctx)
	if err != nil || !res.Valid {
		if err != nil {
			log.Printf("[session] token validation failed: %v", err)
		}
		_ = s.creds.Clear(ctx)
		s.transition(StateAnonymous, nil)
		return
	}

	user := res.User
	if user == nil {
		user = c.User
	} else if err := s.creds.SaveUser(ctx, user); err != nil {
		log.Printf("[session] persist refreshed user failed: %v", err)
	}
	s.transition(StateAuthenticated, user)
}

func (s *Store) Login(ctx context.Context, email, password string, role domain.Role) Result {
	res, err := s.auth.Login(ctx, email, password, role)
	if err != nil {
		return Result{Error: authError(err, "Login failed")}
	}
	if err := s.creds.Save(ctx, Credentials{Token: res.Token, User: res.User}); err != nil {
		log.Printf("[session] persist credentials failed: %v", err)
	}
	s.transition(StateAuthenticated, res.User)
	return Result{Success: true, User: res.User}
}

func (s *Store) Register(ctx context.Context, req domain.RegisterRequest) Result {
	res, err := s.auth.Register(ctx, req)
	if err != nil {
		return Result{Error: authError(err, "Registration failed")}
	}
	if err := s.creds.Save(ctx, Credentials{Token: res.Token, User: res.User}); err != nil {
		log.Printf("[session] persist credentials failed: %v", err)
	}
	s.transition(StateAuthenticated, res.User)
	return Result{Success: true, User: res.User}
}

// Logout synchronously clears the persisted pair and drops to anonymous.
// Calling it while already anonymous is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	if s.state == StateAnonymous {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.creds.Clear(ctx); err != nil {
		log.Printf("[session] credential clear failed: %v", err)
	}
	s.transition(StateAnonymous, nil)
}

// Invalidate is the 401 hook: the backend rejected the persisted credential,
// so force a clean logged-out state. No error surfaces to the current page;
// the shell navigates to /login off the session_changed event.
func (s *Store) Invalidate() {
	log.Printf("level=info msg=\"session invalidated by backend\"")
	s.Logout()
}

func (s *Store) RefreshProfile(ctx context.Context) (*domain.UserSummary, error) {
	u, err := s.auth.Profile(ctx)
	if err != nil {
		return nil, err
	}
	s.adoptUser(ctx, u)
	return u, nil
}

func (s *Store) UpdateApplicantProfile(ctx context.Context, p domain.ApplicantProfile) (*domain.UserSummary, error) {
	u, err := s.auth.UpdateApplicantProfile(ctx, p)
	if err != nil {
		return nil, err
	}
	s.adoptUser(ctx, u)
	return u, nil
}

func (s *Store) UpdateEmployerProfile(ctx context.Context, p domain.EmployerProfile) (*domain.UserSummary, error) {
	u, err := s.auth.UpdateEmployerProfile(ctx, p)
	if err != nil {
		return nil, err
	}
	s.adoptUser(ctx, u)
	return u, nil
}

func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return s.auth.ChangePassword(ctx, oldPassword, newPassword)
}

// adoptUser overwrites the in-memory and persisted account record together.
func (s *Store) adoptUser(ctx context.Context, u *domain.UserSummary) {
	if err := s.creds.SaveUser(ctx, u); err != nil {
		log.Printf("[session] persist user failed: %v", err)
	}
	s.transition(StateAuthenticated, u)
}

func (s *Store) transition(state State, user *domain.UserSummary) {
	if state == StateAuthenticated && user == nil {
		// never happens through public entry points; keep the invariant anyway
		state = StateAnonymous
	}
	if state != StateAuthenticated {
		user = nil
	}

	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()

	log.Printf("level=info msg=\"session state\" state=%s authenticated=%t", state, user != nil)
	if s.hub != nil {
		s.hub.Publish(events.MakeEvent("", events.TypeSessionChanged, 1, map[string]any{
			"state": state.String(),
			"user":  user,
		}))
	}
}

// authError maps a facade failure to the message a login/register form
// shows: the server's own words when it sent any, the fallback otherwise.
func authError(err error, fallback string) string {
	var ae *api.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
