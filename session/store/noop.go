package store

var _ Store = Noop{}

// Noop is the store used when no durable storage is available (ephemeral
// environments, tests that want no persistence). Reads report absence,
// writes are dropped and nothing ever errors, so hydrating from it
// yields a clean logged-out session.
type Noop struct{}

func (Noop) Get(string) (string, bool, error) { return "", false, nil }
func (Noop) Set(string, string) error         { return nil }
func (Noop) Delete(string) error              { return nil }
