package routes

import (
	"testing"

	"jobconnect-client/internal/domain"
	"jobconnect-client/internal/session"
)

func loading() session.Snapshot {
	return session.Snapshot{State: session.StateUninitialized}
}

func anonymous() session.Snapshot {
	return session.Snapshot{State: session.StateAnonymous}
}

func authed(role domain.Role) session.Snapshot {
	return session.Snapshot{
		State: session.StateAuthenticated,
		User:  &domain.UserSummary{ID: 1, Email: "u@x.y", Role: role},
	}
}

func TestDecidePath(t *testing.T) {
	cases := []struct {
		name string
		snap session.Snapshot
		path string
		want Decision
	}{
		{"public while loading", loading(), "/jobs", Decision{Action: Suspend}},
		{"guarded while loading", loading(), "/applicant/dashboard", Decision{Action: Suspend}},

		{"public anonymous", anonymous(), "/jobs", Decision{Action: Render}},
		{"job detail anonymous", anonymous(), "/jobs/42", Decision{Action: Render}},
		{"login anonymous", anonymous(), "/login", Decision{Action: Render}},
		{"guarded anonymous", anonymous(), "/applicant/dashboard", Decision{Action: Redirect, Target: "/login"}},
		{"profile anonymous", anonymous(), "/profile", Decision{Action: Redirect, Target: "/login"}},

		{"own role", authed(domain.RoleApplicant), "/applicant/saved-jobs", Decision{Action: Render}},
		{"profile any role", authed(domain.RoleEmployer), "/profile", Decision{Action: Render}},

		// cross-role access goes to the visitor's own home, not the route's
		{"applicant on employer route", authed(domain.RoleApplicant), "/employer/post-job",
			Decision{Action: Redirect, Target: "/applicant/dashboard"}},
		{"employer on applicant route", authed(domain.RoleEmployer), "/applicant/applications",
			Decision{Action: Redirect, Target: "/employer/dashboard"}},
		{"employer job applications param route", authed(domain.RoleEmployer), "/employer/applications/7",
			Decision{Action: Render}},

		{"unknown path", authed(domain.RoleApplicant), "/does/not/exist", Decision{Action: Redirect, Target: "/"}},
		{"trailing slash normalized", anonymous(), "/jobs/", Decision{Action: Render}},
		{"missing leading slash", anonymous(), "jobs", Decision{Action: Render}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecidePath(tc.snap, tc.path)
			if got != tc.want {
				t.Errorf("DecidePath(%q) = %+v, want %+v", tc.path, got, tc.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		path    string
		pattern string
		ok      bool
	}{
		{"/", "/", true},
		{"/jobs/123", "/jobs/:id", true},
		{"/jobs/123/extra", "", false},
		{"/employer/applications/9", "/employer/applications/:jobId", true},
		{"/employer/applications/", "", false},
		{"/nope", "", false},
	}
	for _, tc := range cases {
		r, ok := Resolve(tc.path)
		if ok != tc.ok || r.Pattern != tc.pattern {
			t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tc.path, r.Pattern, ok, tc.pattern, tc.ok)
		}
	}
}
