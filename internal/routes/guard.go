package routes

import (
	"jobconnect-client/internal/session"
)

type Action string

const (
	// Suspend: render nothing while credentials rehydrate, so the shell
	// never flashes a redirect that Init would immediately undo.
	Suspend  Action = "SUSPEND"
	Render   Action = "RENDER"
	Redirect Action = "REDIRECT"
)

type Decision struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
}

func render() Decision            { return Decision{Action: Render} }
func redirect(to string) Decision { return Decision{Action: Redirect, Target: to} }

// Decide gates one route against the session. Cross-role access is a
// misrouting, not a forbidden action: an authenticated user on the wrong
// role's route is sent to their own role's home screen.
func Decide(snap session.Snapshot, route Route) Decision {
	if snap.Loading() {
		return Decision{Action: Suspend}
	}

	needsAuth := route.AuthOnly || route.Requires != ""
	if !needsAuth {
		return render()
	}

	if !snap.IsAuthenticated() {
		return redirect("/login")
	}

	if route.Requires != "" && snap.Role() != route.Requires {
		return redirect(snap.Role().Home())
	}

	return render()
}

// DecidePath resolves then guards; unmatched paths redirect home.
func DecidePath(snap session.Snapshot, path string) Decision {
	route, ok := Resolve(path)
	if !ok {
		return redirect("/")
	}
	return Decide(snap, route)
}
