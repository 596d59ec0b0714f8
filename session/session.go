package session

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/abdsayeed/rentease-go/session/store"
	"github.com/abdsayeed/rentease-go/users"
)

// Snapshot is an immutable view of the session handed to subscribers.
type Snapshot struct {
	User         *users.User
	AccessToken  string
	RefreshToken string
}

// Authenticated reports whether the snapshot holds both a user and an
// access token. A user without an access token is not authenticated for
// request-signing purposes.
func (s Snapshot) Authenticated() bool {
	return s.User != nil && s.AccessToken != ""
}

// State is the single authoritative in-memory holder of the current user
// and token pair. It is constructed once at startup and passed by
// reference; auth.Service is its only writer. Every mutation writes
// through to the credential store before notifying subscribers, so the
// persisted record never lags a mutation.
type State struct {
	mu           sync.RWMutex
	user         *users.User
	accessToken  string
	refreshToken string

	store       store.Store
	subscribers []func(Snapshot)
}

// New hydrates session state from the credential store. A missing or
// corrupt record yields a logged-out state, never an error: the store is
// a best-effort cache.
func New(credStore store.Store) *State {
	if credStore == nil {
		credStore = store.Noop{}
	}
	s := &State{store: credStore}
	s.hydrate()
	return s
}

func (s *State) hydrate() {
	if raw, ok, err := s.store.Get(store.KeyUser); err == nil && ok {
		var u users.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			log.Warn().Err(err).Msg("discarding corrupt persisted user record")
		} else {
			s.user = &u
		}
	}
	if v, ok, err := s.store.Get(store.KeyAccessToken); err == nil && ok {
		s.accessToken = v
	}
	if v, ok, err := s.store.Get(store.KeyRefreshToken); err == nil && ok {
		s.refreshToken = v
	}
}

// CurrentUser returns the logged-in user, or nil when logged out.
func (s *State) CurrentUser() *users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *State) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *State) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// IsAuthenticated is true iff both the user and the access token are
// present. The conjunction is deliberate: a session holding only one of
// the two is treated as unauthenticated everywhere.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.accessToken != ""
}

// HasRole reports whether an authenticated user carries the given role.
func (s *State) HasRole(role users.RoleType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.accessToken != "" && s.user.Role == role
}

func (s *State) IsAdmin() bool    { return s.HasRole(users.RoleAdmin) }
func (s *State) IsAgent() bool    { return s.HasRole(users.RoleAgent) }
func (s *State) IsCustomer() bool { return s.HasRole(users.RoleCustomer) }

// Snapshot returns a consistent view of all three fields at once.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Subscribe registers a callback invoked after every mutation with the
// post-mutation snapshot. Callbacks run synchronously on the mutating
// goroutine and must not mutate the state themselves.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// SetAuth installs a full session (login/registration success) and writes
// it through to the credential store.
func (s *State) SetAuth(user *users.User, accessToken, refreshToken string) {
	s.mu.Lock()
	s.user = user
	s.accessToken = accessToken
	s.refreshToken = refreshToken

	// A nil user must not persist as JSON "null": unmarshalling that on
	// the next hydration would yield a non-nil zero-value user.
	if user == nil {
		if err := s.store.Delete(store.KeyUser); err != nil {
			log.Warn().Err(err).Msg("credential store purge failed")
		}
	} else if payload, err := json.Marshal(user); err != nil {
		log.Warn().Err(err).Msg("could not serialize user for credential store")
	} else if err := s.store.Set(store.KeyUser, string(payload)); err != nil {
		log.Warn().Err(err).Msg("credential store write failed")
	}
	s.persistLocked(store.KeyAccessToken, accessToken)
	s.persistLocked(store.KeyRefreshToken, refreshToken)

	snap := s.snapshotLocked()
	subscribers := s.subscribers
	s.mu.Unlock()

	notify(subscribers, snap)
}

// SetAccessToken replaces only the access token (refresh success). The
// user and refresh token are untouched.
func (s *State) SetAccessToken(accessToken string) {
	s.mu.Lock()
	s.accessToken = accessToken
	s.persistLocked(store.KeyAccessToken, accessToken)

	snap := s.snapshotLocked()
	subscribers := s.subscribers
	s.mu.Unlock()

	notify(subscribers, snap)
}

// Clear wipes the session and purges the credential store. Safe to call
// when already logged out.
func (s *State) Clear() {
	s.mu.Lock()
	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""

	for _, key := range []string{store.KeyUser, store.KeyAccessToken, store.KeyRefreshToken} {
		if err := s.store.Delete(key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("credential store purge failed")
		}
	}

	snap := s.snapshotLocked()
	subscribers := s.subscribers
	s.mu.Unlock()

	notify(subscribers, snap)
}

func (s *State) persistLocked(key, value string) {
	if err := s.store.Set(key, value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("credential store write failed")
	}
}

func notify(subscribers []func(Snapshot), snap Snapshot) {
	for _, fn := range subscribers {
		fn(snap)
	}
}
