package auth

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/abdsayeed/rentease-go/api"
	"github.com/abdsayeed/rentease-go/guard"
	"github.com/abdsayeed/rentease-go/session"
)

// NavigateFunc is invoked when the service forces a view change, e.g.
// the redirect to the login view after logout.
type NavigateFunc func(route string)

// Service orchestrates login, registration, logout and token refresh
// against the remote API. It is the only component permitted to mutate
// session state and, through it, the credential store.
type Service struct {
	api      *api.Client
	state    *session.State
	navigate NavigateFunc
	log      zerolog.Logger
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithHTTPClient sets the HTTP client used for auth calls. The default
// client is fine here: auth endpoints must not go through the
// authenticated pipeline.
func WithHTTPClient(client *http.Client) ServiceOption {
	return func(s *Service) {
		s.api = api.NewClient(s.api.BaseURL(), client)
	}
}

// WithNavigate sets the callback invoked on forced redirects.
func WithNavigate(fn NavigateFunc) ServiceOption {
	return func(s *Service) {
		s.navigate = fn
	}
}

// WithLogger sets the service logger.
func WithLogger(log zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = log
	}
}

// NewService initializes a new Service with required dependencies.
func NewService(baseURL string, state *session.State, options ...ServiceOption) (*Service, error) {
	if baseURL == "" {
		return nil, errors.New("[NewService] baseURL is required")
	}
	if state == nil {
		return nil, errors.New("[NewService] session state is required")
	}

	s := &Service{
		api:   api.NewClient(baseURL, nil),
		state: state,
		log:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s, nil
}

// State exposes the session state for read-only consumers (guards, UI).
func (s *Service) State() *session.State {
	return s.state
}

// Login authenticates against the remote API. On success the user and
// token pair are installed atomically in session state and written
// through to the credential store; on failure the existing session is
// left untouched and the server's error payload is surfaced.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthBundle, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	var bundle AuthBundle
	if _, err := s.api.Post(ctx, EndpointLogin, LoginRequest{Email: email, Password: password}, &bundle); err != nil {
		s.log.Debug().Err(err).Str("email", email).Msg("login failed")
		return nil, errors.Wrap(err, "[Service.Login] POST "+EndpointLogin)
	}
	if bundle.User == nil {
		return nil, errors.Wrap(MissingUserErr, "[Service.Login] POST "+EndpointLogin)
	}

	s.state.SetAuth(bundle.User, bundle.AccessToken, bundle.RefreshToken)
	s.log.Info().Str("email", email).Msg("logged in")
	return &bundle, nil
}

// Register creates an account and logs it in. Local preconditions
// (password confirmation, strength, role) are checked first; on a
// mismatch no request is sent.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthBundle, error) {
	if err := ValidateRegistration(req); err != nil {
		return nil, err
	}

	var bundle AuthBundle
	if _, err := s.api.Post(ctx, EndpointRegister, req, &bundle); err != nil {
		s.log.Debug().Err(err).Str("email", req.Email).Msg("registration failed")
		return nil, errors.Wrap(err, "[Service.Register] POST "+EndpointRegister)
	}
	if bundle.User == nil {
		return nil, errors.Wrap(MissingUserErr, "[Service.Register] POST "+EndpointRegister)
	}

	s.state.SetAuth(bundle.User, bundle.AccessToken, bundle.RefreshToken)
	s.log.Info().Str("email", req.Email).Msg("registered")
	return &bundle, nil
}

// RefreshToken exchanges the held refresh token for a new access token,
// replacing only the access token in session state. Any failure,
// including a missing refresh token, is an unrecoverable session loss
// and triggers a full logout before the error is propagated.
func (s *Service) RefreshToken(ctx context.Context) (string, error) {
	refreshToken := s.state.RefreshToken()
	if refreshToken == "" {
		s.Logout()
		return "", NoRefreshTokenErr
	}

	var resp refreshTokenResponse
	if _, err := s.api.Post(ctx, EndpointRefresh, RefreshTokenRequest{RefreshToken: refreshToken}, &resp); err != nil {
		s.log.Warn().Err(err).Msg("token refresh failed, ending session")
		s.Logout()
		return "", errors.Wrap(err, "[Service.RefreshToken] POST "+EndpointRefresh)
	}

	s.state.SetAccessToken(resp.AccessToken)
	s.log.Debug().Msg("access token refreshed")
	return resp.AccessToken, nil
}

// Logout clears the session, purges the credential store and signals
// navigation to the login view. Calling it when already logged out is a
// harmless no-op beyond the clear.
func (s *Service) Logout() {
	s.state.Clear()
	if s.navigate != nil {
		s.navigate(guard.RouteLogin)
	}
}
