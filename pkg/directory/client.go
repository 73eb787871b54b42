package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"notary-profile/internal/model"

	"github.com/google/uuid"
)

// DefaultEndpoint is the public directory lookup endpoint.
const DefaultEndpoint = "https://api.thenotary.app/directory/getUserDetails"

// RequestIDHeader carries the fetch cycle id to the directory service.
const RequestIDHeader = "X-Request-ID"

// Client calls the directory lookup endpoint. One call is one attempt;
// retrying is left to the caller.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.HTTP = c }
}

func NewClient(endpoint string, opts ...Option) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{Endpoint: endpoint, HTTP: NewHTTPClient()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient builds a client with transport level dial/TLS/header
// timeouts only. The overall call is bounded by the caller's context.
func NewHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
	}
	return &http.Client{Transport: tr}
}

type lookupRequest struct {
	Username string `json:"username"`
}

// Fetch looks up one directory record by identifier and returns the decoded
// body as-is. Any non-2xx status, network failure or malformed body yields a
// *FetchError.
func (c *Client) Fetch(ctx context.Context, identifier string) (model.RawDirectoryResponse, error) {
	return c.FetchWithID(ctx, uuid.New(), identifier)
}

// FetchWithID is Fetch with an explicit fetch cycle id sent as X-Request-ID.
func (c *Client) FetchWithID(ctx context.Context, cycleID uuid.UUID, identifier string) (model.RawDirectoryResponse, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return model.RawDirectoryResponse{}, &FetchError{Kind: ErrEmptyIdentifier}
	}

	b, err := json.Marshal(lookupRequest{Username: identifier})
	if err != nil {
		return model.RawDirectoryResponse{}, &FetchError{Kind: ErrTransport, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(b))
	if err != nil {
		return model.RawDirectoryResponse{}, &FetchError{Kind: ErrTransport, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, cycleID.String())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return model.RawDirectoryResponse{}, &FetchError{Kind: ErrTransport, Err: err}
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.RawDirectoryResponse{}, &FetchError{Kind: ErrTransport, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.RawDirectoryResponse{}, &FetchError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
			Kind:       ErrStatus,
		}
	}

	raw, err := model.DecodeRaw(rb)
	if err != nil {
		return model.RawDirectoryResponse{}, &FetchError{Kind: ErrMalformedBody, Err: err}
	}
	return raw, nil
}

// statusText prefers the reason phrase the server sent.
func statusText(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
