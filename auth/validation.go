package auth

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/abdsayeed/rentease-go/users"
)

// ValidateCredentials checks the login fields locally before any network
// call is made.
func ValidateCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return MissingCredentialsErr
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.New("invalid email format")
	}
	return nil
}

// ValidateRegistration enforces the local preconditions of Register:
// matching password/confirmation, password strength and a known role.
// Failing any of these must prevent the request from being sent.
func ValidateRegistration(req RegisterRequest) error {
	if err := ValidateCredentials(req.Email, req.Password); err != nil {
		return err
	}
	if req.Password != req.ConfirmPassword {
		return PasswordsDontMatchErr
	}
	if err := users.ValidatePasswordStrength(req.Password); err != nil {
		return errors.Wrap(err, "[ValidateRegistration] weak password")
	}
	if !req.Role.Valid() {
		return InvalidRoleErr
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return errors.New("first and last name are required")
	}
	return nil
}
