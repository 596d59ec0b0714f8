package storefakes

import (
	"sync"

	"github.com/abdsayeed/rentease-go/session/store"
)

var _ store.Store = (*FakeStore)(nil)

// FakeStore is an in-memory Store for tests. It records write counts so
// tests can assert that mutations flush through synchronously.
type FakeStore struct {
	values map[string]string
	lock   sync.RWMutex

	SetCalls    int
	DeleteCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{values: make(map[string]string)}
}

func (f *FakeStore) Get(key string) (string, bool, error) {
	f.lock.RLock()
	defer f.lock.RUnlock()

	v, ok := f.values[key]
	return v, ok, nil
}

func (f *FakeStore) Set(key, value string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.values[key] = value
	f.SetCalls++
	return nil
}

func (f *FakeStore) Delete(key string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	delete(f.values, key)
	f.DeleteCalls++
	return nil
}

// Len reports how many keys are currently held.
func (f *FakeStore) Len() int {
	f.lock.RLock()
	defer f.lock.RUnlock()

	return len(f.values)
}
