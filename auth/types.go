package auth

import "github.com/abdsayeed/rentease-go/users"

// The three endpoints the session service owns. The request pipeline
// treats them specially: login/register carry no bearer token, and the
// refresh endpoint is never itself subject to 401 interception.
const (
	EndpointLogin    = "/auth/login"
	EndpointRegister = "/auth/register"
	EndpointRefresh  = "/auth/refresh"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email           string         `json:"email"`
	Password        string         `json:"password"`
	ConfirmPassword string         `json:"confirm_password"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Role            users.RoleType `json:"role"`
	Phone           string         `json:"phone,omitempty"`
}

// AuthBundle is the payload of a successful login or registration.
type AuthBundle struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         *users.User `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshTokenResponse struct {
	AccessToken string `json:"access_token"`
}
