package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"jobconnect-client/internal/domain"
)

type staticTokens struct {
	mu    sync.Mutex
	token string
}

func (s *staticTokens) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *staticTokens) set(t string) {
	s.mu.Lock()
	s.token = t
	s.mu.Unlock()
}

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(Options{
		BaseURL:    srv.URL,
		Tokens:     tokens,
		RatePerSec: 1000, // tests should not sit in the limiter
		RateBurst:  1000,
	})
	return c, srv
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotUA string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		_ = json.NewEncoder(w).Encode([]domain.Notification{})
	}, &staticTokens{token: "tok-123"})

	if _, err := c.Notifications.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotUA != "JobConnectClient/1.0 (+local)" {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestDo_NoHeaderWhenAnonymous(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(domain.Page[domain.Job]{})
	}, &staticTokens{})

	if _, err := c.Jobs.List(context.Background(), 0, 10); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestDo_PaginationDefaults(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(domain.Page[domain.Job]{})
	}, nil)

	if _, err := c.Jobs.List(context.Background(), -3, 0); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotQuery != "page=0&size=10" {
		t.Errorf("query = %q, want page=0&size=10", gotQuery)
	}
}

func TestDo_ErrorEnvelopes(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"string error", 400, `{"error":"Email already registered"}`, "Email already registered"},
		{"object error", 404, `{"error":{"message":"Job not found"}}`, "Job not found"},
		{"message field", 500, `{"message":"boom"}`, "boom"},
		{"garbage body", 502, `<html>bad gateway</html>`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}, nil)

			_, err := c.Jobs.Get(context.Background(), 7)
			if err == nil {
				t.Fatal("want error")
			}
			ae, ok := err.(*Error)
			if !ok {
				t.Fatalf("err type %T, want *Error", err)
			}
			if ae.Status != tc.status {
				t.Errorf("status = %d, want %d", ae.Status, tc.status)
			}
			if ae.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", ae.Message, tc.wantMsg)
			}
		})
	}
}

func TestDo_UnauthorizedHookFiresOncePerToken(t *testing.T) {
	tokens := &staticTokens{token: "stale"}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid token"}`))
	}, tokens)

	var mu sync.Mutex
	calls := 0
	c.SetOnUnauthorized(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Notifications.UnreadCount(context.Background())
		}()
	}
	wg.Wait()

	mu.Lock()
	got := calls
	mu.Unlock()
	if got != 1 {
		t.Fatalf("hook fired %d times, want 1", got)
	}

	// A fresh token that gets rejected fires again.
	tokens.set("stale-2")
	_, _ = c.Notifications.UnreadCount(context.Background())
	mu.Lock()
	got = calls
	mu.Unlock()
	if got != 2 {
		t.Fatalf("hook fired %d times after second token, want 2", got)
	}
}

func TestDo_UnauthorizedAnonymousIsNoHook(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, &staticTokens{})

	calls := 0
	c.SetOnUnauthorized(func() { calls++ })

	err := c.Notifications.MarkAllRead(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("want 401 error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("hook fired %d times for anonymous 401, want 0", calls)
	}
}

func TestJobs_SaveUnsavePaths(t *testing.T) {
	var gotMethod, gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}, &staticTokens{token: "t"})

	if err := c.Jobs.Save(context.Background(), 42); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/jobs/42/save" {
		t.Errorf("Save hit %s %s", gotMethod, gotPath)
	}

	if err := c.Jobs.Unsave(context.Background(), 42); err != nil {
		t.Fatalf("Unsave: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/jobs/42/save" {
		t.Errorf("Unsave hit %s %s", gotMethod, gotPath)
	}
}

func TestApplications_UnwrapsCountAndHasApplied(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/applications/job/9/count":
			_, _ = w.Write([]byte(`{"count": 12}`))
		case "/applications/check/9":
			_, _ = w.Write([]byte(`{"hasApplied": true}`))
		default:
			http.NotFound(w, r)
		}
	}, &staticTokens{token: "t"})

	n, err := c.Applications.Count(context.Background(), 9)
	if err != nil || n != 12 {
		t.Fatalf("Count = %d, %v; want 12, nil", n, err)
	}
	applied, err := c.Applications.HasApplied(context.Background(), 9)
	if err != nil || !applied {
		t.Fatalf("HasApplied = %v, %v; want true, nil", applied, err)
	}
}

func TestAuth_LoginDecodesTokenAndUser(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("hit %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@b.c" || body["role"] != "APPLICANT" {
			t.Errorf("body = %v", body)
		}
		_, _ = w.Write([]byte(`{"token":"jwt-1","user":{"id":3,"email":"a@b.c","role":"APPLICANT"}}`))
	}, nil)

	res, err := c.Auth.Login(context.Background(), "a@b.c", "pw", domain.RoleApplicant)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "jwt-1" || res.User == nil || res.User.ID != 3 {
		t.Fatalf("unexpected response %+v", res)
	}
}
