package session

import (
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// TokenSource adapts the live session to golang.org/x/oauth2 consumers.
// Each Token call reads the current state, so tokens swapped in by a
// refresh are picked up automatically. It never refreshes on its own;
// that stays the transport's job.
func (s *State) TokenSource() oauth2.TokenSource {
	return stateTokenSource{state: s}
}

type stateTokenSource struct {
	state *State
}

func (ts stateTokenSource) Token() (*oauth2.Token, error) {
	snap := ts.state.Snapshot()
	if !snap.Authenticated() {
		return nil, errors.New("[TokenSource] no authenticated session")
	}
	return &oauth2.Token{
		AccessToken:  snap.AccessToken,
		RefreshToken: snap.RefreshToken,
		TokenType:    "Bearer",
	}, nil
}
