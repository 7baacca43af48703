package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bhexpress/client-go/internal/apierrors"
	"github.com/bhexpress/client-go/internal/config"
)

// UserAgent is sent with every request unless the caller overrides it.
const UserAgent = "BHExpress: Cliente de API en Go."

// DefaultTimeout is the transport timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// Config holds the configuration for creating a new Client.
type Config struct {
	Token   string
	BaseURL string
	Version string

	// RaiseForStatus turns every response whose status is not exactly 200
	// into an error.
	RaiseForStatus bool

	// Transport overrides the default resty transport. When set, HTTPClient
	// and Timeout are ignored.
	Transport  Transport
	HTTPClient *http.Client
	Timeout    time.Duration

	Logger *zap.Logger
}

// Client is the HTTP API client. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	token          string
	baseURL        string
	version        string
	raiseForStatus bool
	headers        map[string]string
	transport      Transport
	logger         *zap.Logger
}

// NewClient creates a new API client. The token is trimmed and must not be
// empty. Empty BaseURL and Version fall back to their defaults.
func NewClient(cfg Config) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, apierrors.New(apierrors.KindMissingToken,
			fmt.Sprintf("The environment variable must be set: %s.", config.EnvToken))
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	version := cfg.Version
	if version == "" {
		version = config.DefaultVersion
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := cfg.Transport
	if transport == nil {
		timeout := cfg.Timeout
		if timeout == 0 && cfg.HTTPClient == nil {
			timeout = DefaultTimeout
		}
		transport = NewRestyTransport(cfg.HTTPClient, timeout, logger)
	}

	return &Client{
		token:          token,
		baseURL:        baseURL,
		version:        version,
		raiseForStatus: cfg.RaiseForStatus,
		headers:        defaultHeaders(token),
		transport:      transport,
		logger:         logger,
	}, nil
}

func defaultHeaders(token string) map[string]string {
	return map[string]string{
		"User-Agent":    UserAgent,
		"Accept":        "application/json",
		"Content-Type":  "application/json",
		"Authorization": "Token " + token,
	}
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Version returns the API version.
func (c *Client) Version() string { return c.version }

// RaiseForStatus reports whether non-200 responses are turned into errors.
func (c *Client) RaiseForStatus() bool { return c.raiseForStatus }

// Headers returns a copy of the default headers.
func (c *Client) Headers() map[string]string {
	h := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		h[k] = v
	}
	return h
}

// URL returns the full request URL for resource. The base URL and the API
// path are always separated by exactly one slash; version and resource are
// used verbatim.
func (c *Client) URL(resource string) string {
	apiPath := "/api/" + c.version + resource

	base := c.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimLeft(apiPath, "/")
}

// mergeHeaders overlays extra on top of the default headers. Keys are
// compared exactly.
func (c *Client) mergeHeaders(extra map[string]string) map[string]string {
	h := c.Headers()
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// encodeBody converts data into a request body. Strings and byte slices are
// sent unchanged, nil and "" send no body, and anything else is JSON encoded.
func encodeBody(data any) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	}

	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return b, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, resource string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, resource, nil, headers)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, resource string, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, resource, nil, headers)
}

// Post performs a POST request with an optional body.
func (c *Client) Post(ctx context.Context, resource string, data any, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPost, resource, data, headers)
}

// Put performs a PUT request with an optional body.
func (c *Client) Put(ctx context.Context, resource string, data any, headers map[string]string) (*Response, error) {
	return c.Do(ctx, http.MethodPut, resource, data, headers)
}

// Do assembles and sends a request, then validates the response.
func (c *Client) Do(ctx context.Context, method, resource string, data any, headers map[string]string) (*Response, error) {
	body, err := encodeBody(data)
	if err != nil {
		return nil, apierrors.Wrap(apierrors.KindRequest, "Request error: "+err.Error(), err)
	}

	req := &Request{
		Method: method,
		URL:    c.URL(resource),
		Header: c.mergeHeaders(headers),
		Body:   body,
	}

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		mapped := mapTransportError(err)
		c.logger.Warn("bhexpress request failed",
			zap.String("method", method),
			zap.String("url", req.URL),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, mapped
	}

	c.logger.Debug("bhexpress request",
		zap.String("method", method),
		zap.String("url", req.URL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	return c.checkResponse(resp)
}

func (c *Client) checkResponse(resp *Response) (*Response, error) {
	if !c.raiseForStatus || resp.StatusCode == http.StatusOK {
		return resp, nil
	}
	return nil, newHTTPError(resp)
}
