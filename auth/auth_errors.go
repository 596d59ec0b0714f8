package auth

import "errors"

var (
	NoRefreshTokenErr     = errors.New("no refresh token available")
	MissingUserErr        = errors.New("auth response is missing the user record")
	PasswordsDontMatchErr = errors.New("password and confirmation do not match")
	InvalidRoleErr        = errors.New("invalid role")
	MissingCredentialsErr = errors.New("email and password are required")
)
