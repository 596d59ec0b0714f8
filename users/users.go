package users

import (
	"fmt"
	"time"
	"unicode"
)

// RoleType represents a user's role in the marketplace
type RoleType string

const (
	RoleCustomer RoleType = "customer" // Browses listings and books stays
	RoleAgent    RoleType = "agent"    // Manages their own property listings
	RoleAdmin    RoleType = "admin"    // Full dashboard over users, properties and bookings
)

// Roles is the closed set of roles the API will ever return.
var Roles = []RoleType{RoleCustomer, RoleAgent, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r RoleType) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

type User struct {
	ID             string    `json:"_id,omitempty"`             // Unique identifier for the user
	Email          string    `json:"email"`                     // User's email address
	FirstName      string    `json:"first_name"`                // First name of the user
	LastName       string    `json:"last_name"`                 // Last name of the user
	Role           RoleType  `json:"role"`                      // One of customer, agent, admin
	Phone          string    `json:"phone,omitempty"`           // Optional contact number
	ProfilePicture string    `json:"profile_picture,omitempty"` // Optional avatar URL
	Favorites      []string  `json:"favorites,omitempty"`       // Property IDs the user has saved
	CreatedAt      time.Time `json:"created_at,omitempty"`
	UpdatedAt      time.Time `json:"updated_at,omitempty"`
}

// FullName joins the display names for UI use.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasFavorite reports whether the property is in the user's saved list.
func (u *User) HasFavorite(propertyID string) bool {
	for _, id := range u.Favorites {
		if id == propertyID {
			return true
		}
	}
	return false
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}
