package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Client is the thin JSON layer shared by the domain clients. It speaks
// the envelope contract and nothing else; authentication is the job of
// whatever RoundTripper sits inside the *http.Client it is given.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the envelope's data into out (which may be
// nil). The pagination block is returned when the server sends one.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) (*PaginationMeta, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) (*PaginationMeta, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) (*PaginationMeta, error) {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) (*PaginationMeta, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*PaginationMeta, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "[Client.do] marshal request body")
		}
		// bytes.Reader gives the request a GetBody, which the transport
		// needs to replay the call after a token refresh.
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.do] build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.do] "+method+" "+path)
	}
	defer resp.Body.Close()

	return DecodeResponse(resp, out)
}

// DecodeResponse reads an HTTP response carrying the Rentease envelope.
// Non-2xx statuses and envelopes with success=false both come back as *Error.
func DecodeResponse(resp *http.Response, out any) (*PaginationMeta, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "[DecodeResponse] read body")
	}

	var envelope Response
	if len(raw) > 0 {
		// A malformed body on an error status should still surface the
		// status, so decode failures are only fatal on success paths.
		if err := json.Unmarshal(raw, &envelope); err != nil && resp.StatusCode < 400 {
			return nil, errors.Wrap(err, "[DecodeResponse] decode envelope")
		}
	}

	if resp.StatusCode >= 400 || !envelope.Success {
		return nil, &Error{
			StatusCode:  resp.StatusCode,
			Message:     envelope.Message,
			FieldErrors: envelope.Errors,
		}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, errors.Wrap(err, "[DecodeResponse] decode data")
		}
	}
	return envelope.Meta, nil
}
