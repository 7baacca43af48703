package bhexpress

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	token          string
	baseURL        string
	version        string
	raiseForStatus bool

	httpClient *http.Client
	timeout    time.Duration
	transport  Transport
	logger     *zap.Logger

	dotEnvFiles []string
	configFile  string
}

// Option configures the client.
type Option func(*clientConfig)

// WithToken sets the API token. A blank token falls back to the
// BHEXPRESS_API_TOKEN environment variable.
func WithToken(token string) Option {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithBaseURL sets the API base URL.
// Default: BHEXPRESS_API_URL, or https://bhexpress.cl
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithVersion sets the API version used in the request path.
// Default: v1
func WithVersion(version string) Option {
	return func(c *clientConfig) {
		c.version = version
	}
}

// WithRaiseForStatus controls whether responses with a status other than 200
// are returned as errors. When disabled every response is returned as is.
// Default: true
func WithRaiseForStatus(raise bool) Option {
	return func(c *clientConfig) {
		c.raiseForStatus = raise
	}
}

// WithHTTPClient sets a custom HTTP client for the default transport.
// The client is copied; timeouts and transport setup apply to the copy.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout of the default transport.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithTransport replaces the default resty transport.
func WithTransport(transport Transport) Option {
	return func(c *clientConfig) {
		c.transport = transport
	}
}

// WithLogger sets the logger. Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithDotEnv reads BHEXPRESS_API_TOKEN and BHEXPRESS_API_URL from the given
// .env files when they are not set in the environment. The process
// environment is not modified.
func WithDotEnv(files ...string) Option {
	return func(c *clientConfig) {
		c.dotEnvFiles = append(c.dotEnvFiles, files...)
	}
}

// WithConfigFile reads api_token, api_url and api_version from a config
// file (YAML, JSON, TOML, ...) as the lowest-priority source.
func WithConfigFile(path string) Option {
	return func(c *clientConfig) {
		c.configFile = path
	}
}
