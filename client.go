package bhexpress

import (
	"context"

	"github.com/bhexpress/client-go/internal/api"
	"github.com/bhexpress/client-go/internal/config"
)

// Defaults applied when nothing else is configured.
const (
	DefaultBaseURL = config.DefaultBaseURL
	DefaultVersion = config.DefaultVersion
)

// Environment variables read when the matching option is not given.
const (
	EnvToken   = config.EnvToken
	EnvBaseURL = config.EnvBaseURL
)

// Response is the raw HTTP response of a request.
type Response = api.Response

// Request is an assembled request as seen by a Transport.
type Request = api.Request

// Transport performs the HTTP round trip for the client.
type Transport = api.Transport

// TransportError reports a categorized transport failure from a custom
// Transport.
type TransportError = api.TransportError

// Transport failure categories.
const (
	TransportRequest    = api.TransportRequest
	TransportConnection = api.TransportConnection
	TransportTimeout    = api.TransportTimeout
)

// Client is the BHExpress API client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a new client. Nothing is sent over the network.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		raiseForStatus: true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	settings, err := config.Resolve(config.Input{
		Token:       cfg.token,
		BaseURL:     cfg.baseURL,
		Version:     cfg.version,
		DotEnvFiles: cfg.dotEnvFiles,
		ConfigFile:  cfg.configFile,
	})
	if err != nil {
		return nil, err
	}

	apiClient, err := api.NewClient(api.Config{
		Token:          settings.Token,
		BaseURL:        settings.BaseURL,
		Version:        settings.Version,
		RaiseForStatus: cfg.raiseForStatus,
		Transport:      cfg.transport,
		HTTPClient:     cfg.httpClient,
		Timeout:        cfg.timeout,
		Logger:         cfg.logger,
	})
	if err != nil {
		return nil, err //coverage:ignore
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Version returns the API version.
func (c *Client) Version() string {
	return c.apiClient.Version()
}

// RaiseForStatus reports whether non-200 responses are returned as errors.
func (c *Client) RaiseForStatus() bool {
	return c.apiClient.RaiseForStatus()
}

// Headers returns a copy of the headers sent with every request.
func (c *Client) Headers() map[string]string {
	return c.apiClient.Headers()
}

// URL returns the full URL a request for resource is sent to.
func (c *Client) URL(resource string) string {
	return c.apiClient.URL(resource)
}

// Get sends a GET request for resource. headers may be nil.
func (c *Client) Get(ctx context.Context, resource string, headers map[string]string) (*Response, error) {
	return c.apiClient.Get(ctx, resource, headers)
}

// Delete sends a DELETE request for resource. headers may be nil.
func (c *Client) Delete(ctx context.Context, resource string, headers map[string]string) (*Response, error) {
	return c.apiClient.Delete(ctx, resource, headers)
}

// Post sends a POST request for resource. A string or []byte data is sent as
// is; any other non-nil value is encoded as JSON.
func (c *Client) Post(ctx context.Context, resource string, data any, headers map[string]string) (*Response, error) {
	return c.apiClient.Post(ctx, resource, data, headers)
}

// Put sends a PUT request for resource. data is handled as in Post.
func (c *Client) Put(ctx context.Context, resource string, data any, headers map[string]string) (*Response, error) {
	return c.apiClient.Put(ctx, resource, data, headers)
}
