package transport_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/abdsayeed/rentease-go/transport"
)

// blockingRefresher parks inside RefreshToken until released, so tests
// can hold a flight open while more callers arrive.
type blockingRefresher struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	token   string
	err     error
}

func newBlockingRefresher(token string, err error) *blockingRefresher {
	return &blockingRefresher{release: make(chan struct{}), token: token, err: err}
}

func (r *blockingRefresher) RefreshToken(ctx context.Context) (string, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	<-r.release
	return r.token, r.err
}

func (r *blockingRefresher) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestCoordinator_SingleFlight(t *testing.T) {
	coord := transport.NewCoordinator()
	refresher := newBlockingRefresher("access-2", nil)

	const callers = 8
	results := make(chan string, callers)
	failures := make(chan error, callers)

	for i := 0; i < callers; i++ {
		go func() {
			token, err := coord.Refresh(context.Background(), refresher)
			if err != nil {
				failures <- err
				return
			}
			results <- token
		}()
	}

	// Wait until one caller is inside the refresher; everyone else must
	// be parked rather than starting their own flight.
	require.Eventually(t, func() bool { return refresher.callCount() == 1 }, time.Second, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, refresher.callCount())

	close(refresher.release)

	for i := 0; i < callers; i++ {
		select {
		case token := <-results:
			require.Equal(t, "access-2", token)
		case err := <-failures:
			t.Fatalf("caller failed: %v", err)
		case <-time.After(time.Second):
			t.Fatal("caller never resumed")
		}
	}
	require.Equal(t, 1, refresher.callCount())
}

func TestCoordinator_FailureSharedByAllWaiters(t *testing.T) {
	coord := transport.NewCoordinator()
	refresher := newBlockingRefresher("", errors.New("refresh token expired"))

	const callers = 4
	failures := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			_, err := coord.Refresh(context.Background(), refresher)
			failures <- err
		}()
	}

	require.Eventually(t, func() bool { return refresher.callCount() == 1 }, time.Second, time.Millisecond)
	close(refresher.release)

	for i := 0; i < callers; i++ {
		select {
		case err := <-failures:
			require.ErrorContains(t, err, "refresh token expired")
		case <-time.After(time.Second):
			t.Fatal("caller never resumed")
		}
	}
	require.Equal(t, 1, refresher.callCount())
}

func TestCoordinator_SequentialFlights(t *testing.T) {
	coord := transport.NewCoordinator()
	refresher := newBlockingRefresher("access-2", nil)
	close(refresher.release)

	for i := 0; i < 3; i++ {
		token, err := coord.Refresh(context.Background(), refresher)
		require.NoError(t, err)
		require.Equal(t, "access-2", token)
	}
	// Once a flight settles the coordinator is idle again, so each
	// sequential call is its own refresh.
	require.Equal(t, 3, refresher.callCount())
}

func TestCoordinator_WaiterHonorsContext(t *testing.T) {
	coord := transport.NewCoordinator()
	refresher := newBlockingRefresher("access-2", nil)

	leaderDone := make(chan struct{})
	go func() {
		defer close(leaderDone)
		coord.Refresh(context.Background(), refresher)
	}()
	require.Eventually(t, func() bool { return refresher.callCount() == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	waiterErr := make(chan error, 1)
	go func() {
		_, err := coord.Refresh(ctx, refresher)
		waiterErr <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-waiterErr:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled waiter never returned")
	}

	close(refresher.release)
	<-leaderDone
}
