package token

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Introspection represents the metadata the client can read out of an
// access token. The claims are decoded without signature verification:
// the server is the authority on token validity, the client only uses
// these fields for display (whoami) and expiry hints. The 'active' field
// reflects the exp claim alone.
type Introspection struct {
	Active  bool      `json:"active"`            // False once the exp claim has passed
	Subject string    `json:"sub,omitempty"`     // User's unique ID
	Email   string    `json:"email,omitempty"`   // User's email address
	Role    string    `json:"role,omitempty"`    // Marketplace role claim
	Issuer  string    `json:"iss,omitempty"`     // Issuer of the token
	Expires time.Time `json:"expires,omitempty"` // Expiration
	Issued  time.Time `json:"issued,omitempty"`  // Issued at time
}

// ExpiresIn reports how long until the token lapses; negative when it
// already has.
func (i *Introspection) ExpiresIn() time.Duration {
	return i.Expires.Sub(NowTimeFunc())
}

// Introspect decodes a raw access token's claims. An empty or
// undecodable token yields Active=false rather than an inactive session
// being treated as a fault.
func Introspect(rawToken string) (*Introspection, error) {
	if strings.TrimSpace(rawToken) == "" {
		return &Introspection{Active: false}, nil
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return &Introspection{Active: false}, err
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return &Introspection{Active: false}, errors.New("error extracting claims")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	iss, _ := claims["iss"].(string)
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)

	intro := &Introspection{
		Subject: sub,
		Email:   email,
		Role:    role,
		Issuer:  iss,
	}
	if exp != 0 {
		intro.Expires = time.Unix(int64(exp), 0)
		intro.Active = NowTimeFunc().Unix() <= int64(exp)
	}
	if iat != 0 {
		intro.Issued = time.Unix(int64(iat), 0)
	}
	return intro, nil
}
