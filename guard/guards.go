package guard

import (
	"github.com/abdsayeed/rentease-go/session"
	"github.com/abdsayeed/rentease-go/users"
)

// Decision is the outcome of a guard: either the navigation proceeds, or
// it is redirected. Guards are pure reads over session state with no I/O
// and no mutation, so a Decision is fully determined the moment it is
// made.
type Decision struct {
	Allowed  bool
	Target   string // redirect destination when not allowed
	ReturnTo string // originally requested path, carried on login redirects
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(target string) Decision {
	return Decision{Target: target}
}

// Authenticated gates routes that require a logged-in user. Denials
// redirect to the login view carrying the requested path so the user can
// be sent back after signing in.
func Authenticated(state *session.State, requestedPath string) Decision {
	if state.IsAuthenticated() {
		return allow()
	}
	d := redirect(RouteLogin)
	d.ReturnTo = requestedPath
	return d
}

// RequireRole gates role-restricted routes (agent and admin dashboards).
// A logged-in user with the wrong role is a permission failure, not an
// authentication failure, so the redirect goes to the unauthorized view
// rather than login.
func RequireRole(state *session.State, role users.RoleType) Decision {
	if state.HasRole(role) {
		return allow()
	}
	return redirect(RouteUnauthorized)
}

// GuestOnly gates the login and registration views: an authenticated
// user is sent home instead.
func GuestOnly(state *session.State) Decision {
	if !state.IsAuthenticated() {
		return allow()
	}
	return redirect(RouteHome)
}
