// Package renamed is a Go client for the renamed.to document-processing
// API: AI file renaming, PDF splitting, and structured data extraction.
package renamed

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type client struct {
	restyClient     *resty.Client
	apiKey          string
	baseURL         string
	timeout         time.Duration
	maxRetries      int
	pollInterval    time.Duration
	maxPollAttempts int
	logger          Logger
}

var _ Client = (*client)(nil)

type Option func(*client)

func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries sets how many times a failed attempt is retried. The value
// counts retries, not attempts: 2 retries means up to 3 attempts.
func WithMaxRetries(retries int) Option {
	return func(c *client) {
		if retries >= 0 {
			c.maxRetries = retries
		}
	}
}

// WithPollInterval sets the default spacing between job status polls.
func WithPollInterval(interval time.Duration) Option {
	return func(c *client) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// WithMaxPollAttempts sets the default poll ceiling for async jobs.
func WithMaxPollAttempts(attempts int) Option {
	return func(c *client) {
		if attempts > 0 {
			c.maxPollAttempts = attempts
		}
	}
}

// WithLogger installs a debug logger. Logging is disabled when no logger is
// configured.
func WithLogger(logger Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

// WithDebug enables debug logging to stderr through zerolog.
func WithDebug() Option {
	return func(c *client) {
		c.logger = newDebugLogger()
	}
}

// WithZerolog installs the given zerolog logger as the debug logger.
func WithZerolog(log zerolog.Logger) Option {
	return func(c *client) {
		c.logger = NewZerologLogger(log)
	}
}

// WithRestyClient allows callers to provide a preconfigured API client.
// Base URL, timeout and auth header are still applied on top of it.
func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}

// NewClient creates a renamed.to API client.
//
// Example:
//
//	cli := renamed.NewClient("rt_your_api_key")
//	result, err := cli.Rename(ctx, renamed.File("invoice.pdf"), nil)
func NewClient(apiKey string, opts ...Option) Client {
	c := &client{
		apiKey:          apiKey,
		baseURL:         DefaultBaseURL,
		timeout:         DefaultTimeout,
		maxRetries:      DefaultMaxRetries,
		pollInterval:    DefaultPollInterval,
		maxPollAttempts: DefaultMaxPollAttempts,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.restyClient == nil {
		c.restyClient = resty.New()
	}

	c.restyClient.
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeader("Authorization", "Bearer "+c.apiKey)

	c.logf("Initialized client (key %s, base %s)", maskAPIKey(c.apiKey), c.baseURL)

	return c
}

// Name returns the service name.
func (c *client) Name() string {
	return ServiceName
}

// Version returns the API version.
func (c *client) Version() string {
	return APIVersion
}

// buildURL resolves a path against the base URL; absolute URLs pass through
// untouched (job status and artifact download URLs are absolute).
func (c *client) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}
