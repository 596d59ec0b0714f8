package transport

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/abdsayeed/rentease-go/auth"
	"github.com/abdsayeed/rentease-go/session"
)

// Pipeline is the RoundTripper every domain client sends its calls
// through. For each outbound request it attaches the current bearer
// token and a request ID; on a 401 it runs the single-flight refresh
// protocol and replays the request once with the new token. The three
// auth endpoints are passed through untouched so auth calls can never
// recurse into the refresh protocol.
type Pipeline struct {
	base      http.RoundTripper
	state     *session.State
	refresher Refresher
	coord     *Coordinator
	log       zerolog.Logger
}

// PipelineOption defines a function type to modify the Pipeline instance.
type PipelineOption func(*Pipeline)

// WithBase sets the underlying RoundTripper (defaults to
// http.DefaultTransport).
func WithBase(rt http.RoundTripper) PipelineOption {
	return func(p *Pipeline) {
		p.base = rt
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(log zerolog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.log = log
	}
}

// NewPipeline initializes a new Pipeline with required dependencies.
func NewPipeline(state *session.State, refresher Refresher, options ...PipelineOption) (*Pipeline, error) {
	if state == nil {
		return nil, errors.New("[NewPipeline] session state is required")
	}
	if refresher == nil {
		return nil, errors.New("[NewPipeline] refresher is required")
	}

	p := &Pipeline{
		base:      http.DefaultTransport,
		state:     state,
		refresher: refresher,
		coord:     NewCoordinator(),
		log:       zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p, nil
}

// Client wraps the pipeline in an *http.Client ready to hand to the
// domain clients.
func (p *Pipeline) Client() *http.Client {
	return &http.Client{Transport: p}
}

func (p *Pipeline) RoundTrip(req *http.Request) (*http.Response, error) {
	if isAuthEndpoint(req.URL.Path) {
		return p.base.RoundTrip(req)
	}

	first := req.Clone(req.Context())
	first.Header.Set("X-Request-ID", uuid.New().String())
	if token := p.state.AccessToken(); token != "" {
		first.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := p.base.RoundTrip(first)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	retry, ok := replay(first)
	if !ok {
		// Body already consumed and not replayable; surface the 401.
		p.log.Debug().Str("path", req.URL.Path).Msg("401 on non-replayable request")
		return resp, nil
	}

	// The 401 response won't be seen by the caller; drain it so the
	// connection can be reused.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	token, refreshErr := p.coord.Refresh(req.Context(), p.refresher)
	if refreshErr != nil {
		// The refresher has already ended the session; no retry.
		return nil, errors.Wrap(refreshErr, "[Pipeline.RoundTrip] token refresh")
	}

	requestRetries.Inc()
	p.log.Debug().Str("path", req.URL.Path).Msg("replaying request with refreshed token")
	retry.Header.Set("Authorization", "Bearer "+token)
	return p.base.RoundTrip(retry)
}

// replay rebuilds a request for a second attempt. Requests whose body was
// consumed and cannot be re-materialized are not retried.
func replay(req *http.Request) (*http.Request, bool) {
	retry := req.Clone(req.Context())
	if req.Body == nil {
		return retry, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	retry.Body = body
	return retry, true
}

func isAuthEndpoint(path string) bool {
	return strings.Contains(path, auth.EndpointLogin) ||
		strings.Contains(path, auth.EndpointRegister) ||
		strings.Contains(path, auth.EndpointRefresh)
}
