package guard

// The only views a guard may redirect to.
const (
	RouteLogin        = "/auth/login"
	RouteHome         = "/"
	RouteUnauthorized = "/unauthorized"
)
