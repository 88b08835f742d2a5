// Package routes holds the client-side routing surface and the guard that
// decides render-vs-redirect for it. The guard is a pure function of the
// session snapshot and the route's declared role requirement.
package routes

import (
	"strings"

	"jobconnect-client/internal/domain"
)

// Route is one entry of the shell's navigation table. Requires is empty for
// public routes, AuthOnly marks routes any signed-in role may visit.
type Route struct {
	Pattern  string      `json:"pattern"`
	Requires domain.Role `json:"requires,omitempty"`
	AuthOnly bool        `json:"authOnly,omitempty"`
}

// Table is the full routing surface. Order matters only for documentation;
// matching is exact per segment with ":param" wildcards.
var Table = []Route{
	{Pattern: "/"},
	{Pattern: "/login"},
	{Pattern: "/register"},
	{Pattern: "/forgot-password"},
	{Pattern: "/reset-password"},
	{Pattern: "/jobs"},
	{Pattern: "/jobs/:id"},

	{Pattern: "/applicant/dashboard", Requires: domain.RoleApplicant},
	{Pattern: "/applicant/applications", Requires: domain.RoleApplicant},
	{Pattern: "/applicant/saved-jobs", Requires: domain.RoleApplicant},

	{Pattern: "/employer/dashboard", Requires: domain.RoleEmployer},
	{Pattern: "/employer/post-job", Requires: domain.RoleEmployer},
	{Pattern: "/employer/manage-jobs", Requires: domain.RoleEmployer},
	{Pattern: "/employer/applications/:jobId", Requires: domain.RoleEmployer},

	{Pattern: "/profile", AuthOnly: true},
}

// Resolve matches a concrete path against the table. ok is false for paths
// outside the surface; those redirect home.
func Resolve(path string) (Route, bool) {
	path = normalize(path)
	for _, r := range Table {
		if match(r.Pattern, path) {
			return r, true
		}
	}
	return Route{}, false
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func match(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
