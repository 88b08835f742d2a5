package ui

import (
	"net/http"
	"strings"
)

// NewMux returns the raw mux so main() can still attach /shutdown (needs
// srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Session
	sh := SessionHandler{Deps: d}
	mux.HandleFunc("/session", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
	}))
	mux.HandleFunc("/session/login", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Login,
	}))
	mux.HandleFunc("/session/register", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Register,
	}))
	mux.HandleFunc("/session/logout", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Logout,
	}))
	mux.HandleFunc("/session/profile", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Profile,
	}))
	mux.HandleFunc("/session/profile/applicant", methodMux(map[string]http.HandlerFunc{
		http.MethodPut: sh.UpdateApplicantProfile,
	}))
	mux.HandleFunc("/session/profile/employer", methodMux(map[string]http.HandlerFunc{
		http.MethodPut: sh.UpdateEmployerProfile,
	}))
	mux.HandleFunc("/session/password", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.ChangePassword,
	}))
	mux.HandleFunc("/session/forgot-password", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.ForgotPassword,
	}))
	mux.HandleFunc("/session/reset-password", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.ResetPassword,
	}))

	// Jobs
	jh := JobsHandler{Deps: d}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  jh.List,
		http.MethodPost: jh.Create,
	}))
	mux.HandleFunc("/jobs/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: jh.Search,
	}))
	mux.HandleFunc("/jobs/cached", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Cached,
	}))
	mux.HandleFunc("/jobs/saved", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.SavedJobs,
	}))
	mux.HandleFunc("/jobs/mine", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.EmployerJobs,
	}))
	mux.HandleFunc("/jobs/", jobsByPath(jh)) // /jobs/{id}, /jobs/{id}/save, /jobs/{id}/close

	// Applications
	ah := ApplicationsHandler{Deps: d}
	mux.HandleFunc("/applications/apply", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Apply,
	}))
	mux.HandleFunc("/applications/mine", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Mine,
	}))
	mux.HandleFunc("/applications/received", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.ForEmployer,
	}))
	mux.HandleFunc("/applications/by-status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.ByStatus,
	}))
	mux.HandleFunc("/applications/job/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.ForJob, // /applications/job/{jobId}
	}))
	mux.HandleFunc("/applications/", applicationsByPath(ah)) // /applications/{id}[/status]

	// Notifications
	nh := NotificationsHandler{Deps: d}
	mux.HandleFunc("/notifications", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: nh.List,
	}))
	mux.HandleFunc("/notifications/unread-count", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: nh.UnreadCount,
	}))
	mux.HandleFunc("/notifications/read-all", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: nh.MarkAllRead,
	}))
	mux.HandleFunc("/notifications/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: withTrimmedSuffix(nh.MarkRead, "/read"), // /notifications/{id}/read
	}))

	// Dashboards
	dh := DashboardHandler{Deps: d}
	mux.HandleFunc("/dashboard/applicant", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Applicant,
	}))
	mux.HandleFunc("/dashboard/employer", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Employer,
	}))

	// Routing guard
	rh := RoutesHandler{Deps: d}
	mux.HandleFunc("/routes/decide", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Decide,
	}))
	mux.HandleFunc("/routes", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Table,
	}))

	// Config
	ch := ConfigHandler{Deps: d}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	eh := EventsHandler{Deps: d}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.Stream,
	}))

	return mux
}

// jobsByPath splits the /jobs/{id} subtree by suffix before dispatching on
// method, since ServeMux patterns can't see the action segment.
func jobsByPath(jh JobsHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/save"):
			methodMux(map[string]http.HandlerFunc{
				http.MethodPost:   withTrimmedSuffix(jh.Save, "/save"),
				http.MethodDelete: withTrimmedSuffix(jh.Unsave, "/save"),
			})(w, r)
		case strings.HasSuffix(r.URL.Path, "/close"):
			methodMux(map[string]http.HandlerFunc{
				http.MethodPut: withTrimmedSuffix(jh.Close, "/close"),
			})(w, r)
		default:
			methodMux(map[string]http.HandlerFunc{
				http.MethodGet:    jh.Detail,
				http.MethodPut:    jh.Update,
				http.MethodDelete: jh.Delete,
			})(w, r)
		}
	}
}

func applicationsByPath(ah ApplicationsHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") {
			methodMux(map[string]http.HandlerFunc{
				http.MethodPut: withTrimmedSuffix(ah.UpdateStatus, "/status"),
			})(w, r)
			return
		}
		methodMux(map[string]http.HandlerFunc{
			http.MethodGet:    ah.Detail,
			http.MethodDelete: ah.Withdraw,
		})(w, r)
	}
}

// withTrimmedSuffix strips the action segment so the handler's id parsing
// sees a bare /prefix/{id} path.
func withTrimmedSuffix(next http.HandlerFunc, suffix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(r.Context())
		r2.URL.Path = strings.TrimSuffix(r.URL.Path, suffix)
		next(w, r2)
	}
}
