package store

// Logical keys of the persisted credential record.
const (
	KeyUser         = "user"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Store is durable key/value persistence for the credential record. It is
// a cold-start cache, not a source of truth: session state is read from it
// exactly once at hydration and written through on every mutation.
//
// Get returns ("", false, nil) for an absent key; absence is an expected
// state (logged out), not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
