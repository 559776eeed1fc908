// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/plotpost/credentials"
	"github.com/tomtom215/plotpost/internal/logging"
)

// Client talks to the plot.ly v1 REST API on behalf of one account.
//
// A Client remembers the filename of the last successful call so that
// Style and Layout can target the same plot without the caller
// re-specifying it. That memo is mutated in place and is not
// synchronized: use one Client per goroutine or add external locking.
type Client struct {
	username string
	apiKey   string
	fileOpt  string
	filename string
	verbose  bool

	baseURL       string
	httpClient    *http.Client
	limiter       *rate.Limiter
	useBreaker    bool
	codec         *Codec
	logger        zerolog.Logger
	messageWriter io.Writer

	transport poster
}

// Option configures a Client during construction.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests against a
// local fake server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithVerbose controls whether informational server messages are printed.
// The default is true. Warnings are emitted regardless of this setting.
func WithVerbose(verbose bool) Option {
	return func(c *Client) { c.verbose = verbose }
}

// WithFilename sets the default plot filename used when a call does not
// pass one.
func WithFilename(filename string) Option {
	return func(c *Client) { c.filename = filename }
}

// WithFileOpt sets the default fileopt flag ("new", "overwrite",
// "append" or "extend") used when a call does not pass one.
func WithFileOpt(fileOpt string) Option {
	return func(c *Client) { c.fileOpt = fileOpt }
}

// WithLogger replaces the package-level logger for this client.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMessageWriter redirects informational server messages, which go to
// stdout by default.
func WithMessageWriter(w io.Writer) Option {
	return func(c *Client) { c.messageWriter = w }
}

// WithCodec replaces the JSON codec configuration.
func WithCodec(codec *Codec) Option {
	return func(c *Client) { c.codec = codec }
}

// WithRateLimit paces outgoing requests at rps requests per second with
// the given burst. Waits honor the call context.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithCircuitBreaker wraps the transport in a circuit breaker so a dead
// endpoint fails fast after sustained errors.
func WithCircuitBreaker() Option {
	return func(c *Client) { c.useBreaker = true }
}

// New creates a Client for the given account credentials.
func New(username, apiKey string, opts ...Option) (*Client, error) {
	if username == "" {
		return nil, fmt.Errorf("plotpost: username is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("plotpost: api key is required")
	}
	return newClient(username, apiKey, opts...), nil
}

// NewFromCredentials creates a Client from a loaded credentials file.
// Explicit opts are applied last and win over file values.
func NewFromCredentials(creds *credentials.Credentials, opts ...Option) (*Client, error) {
	if creds == nil {
		return nil, fmt.Errorf("plotpost: credentials are required")
	}
	base := []Option{WithVerbose(creds.Verbose)}
	if creds.BaseURL != "" {
		base = append(base, WithBaseURL(creds.BaseURL))
	}
	if creds.Filename != "" {
		base = append(base, WithFilename(creds.Filename))
	}
	if creds.FileOpt != "" {
		base = append(base, WithFileOpt(creds.FileOpt))
	}
	base = append(base, opts...)
	return New(creds.Username, creds.APIKey, base...)
}

// newClient builds a Client without credential validation; Signup uses it
// for accounts that do not exist yet.
func newClient(username, apiKey string, opts ...Option) *Client {
	c := &Client{
		username:      username,
		apiKey:        apiKey,
		verbose:       true,
		baseURL:       DefaultBaseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		codec:         DefaultCodec(),
		logger:        logging.Logger(),
		messageWriter: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	t := &transport{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		limiter:    c.limiter,
		logger:     c.logger,
	}
	if c.useBreaker {
		c.transport = newBreakerTransport(t, c.logger)
	} else {
		c.transport = t
	}
	return c
}

// Filename returns the plot filename memoized from the last successful
// call, or the configured default if no call has returned one yet.
func (c *Client) Filename() string {
	return c.filename
}

// Plot creates or updates a plot from the given data series and options.
// Arguments follow the data-then-keyword convention described in the
// package documentation.
func (c *Client) Plot(ctx context.Context, args ...any) (*Response, error) {
	return c.call(ctx, originPlot, args)
}

// Style restyles the traces of an existing plot. With no filename
// keyword it targets the plot of the previous call.
func (c *Client) Style(ctx context.Context, args ...any) (*Response, error) {
	return c.call(ctx, originStyle, args)
}

// Layout updates the layout of an existing plot. With no filename
// keyword it targets the plot of the previous call.
func (c *Client) Layout(ctx context.Context, args ...any) (*Response, error) {
	return c.call(ctx, originLayout, args)
}

func (c *Client) call(ctx context.Context, origin string, args []any) (*Response, error) {
	data, kwargs, err := splitArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}
	form, err := c.buildPayload(origin, data, kwargs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}
	raw, err := c.transport.postForm(ctx, clientRespPath, form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}
	return c.interpret(origin, raw)
}

// interpret applies the response contract to a decoded mapping: a truthy
// error aborts the call and leaves client state untouched; a warning is
// logged unconditionally; a message is printed only when verbose; a
// filename is memoized for subsequent calls.
func (c *Client) interpret(origin string, raw map[string]any) (*Response, error) {
	resp := newResponse(raw)

	if resp.Error != "" {
		return nil, &APIError{Origin: origin, Message: resp.Error}
	}
	if resp.Warning != "" {
		c.logger.Warn().Str("origin", origin).Msg(resp.Warning)
	}
	if resp.Message != "" && c.verbose {
		fmt.Fprintln(c.messageWriter, resp.Message)
	}
	if resp.Filename != "" {
		c.filename = resp.Filename
	}
	return resp, nil
}

// Signup creates a new account and returns the server response, which
// carries the generated API key and temporary password. It needs no
// existing credentials, only the desired username and an email address.
func Signup(ctx context.Context, username, email string, opts ...Option) (*Response, error) {
	if username == "" {
		return nil, fmt.Errorf("signup: username is required")
	}
	if email == "" {
		return nil, fmt.Errorf("signup: email is required")
	}

	c := newClient(username, "", opts...)

	form := url.Values{}
	form.Set("platform", Platform)
	form.Set("version", Version)
	form.Set("un", username)
	form.Set("email", email)

	raw, err := c.transport.postForm(ctx, signupPath, form)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return c.interpret(originSignup, raw)
}
