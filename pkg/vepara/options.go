package vepara

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	ProductionBaseURL = "https://app.vepara.com.tr/ccpayment"
	SandboxBaseURL    = "https://test.vepara.com.tr/ccpayment"

	// DefaultTimeout bounds a whole exchange when the caller does not supply an http.Client.
	DefaultTimeout = 30 * time.Second
)

// BaseURL returns the API base for the selected environment.
func BaseURL(sandbox bool) string {
	if sandbox {
		return SandboxBaseURL
	}
	return ProductionBaseURL
}

// Options is the resolved client configuration. It is read-only once built and is shared
// by every service hanging off a Client.
type Options struct {
	merchantKey string
	apiBase     string
	httpClient  *http.Client
	logger      zerolog.Logger
}

func (o *Options) MerchantKey() string      { return o.merchantKey }
func (o *Options) APIBase() string          { return o.apiBase }
func (o *Options) HTTPClient() *http.Client { return o.httpClient }
func (o *Options) Logger() zerolog.Logger   { return o.logger }

// OptionsBuilder collects settings for Options. The zero environment is production.
type OptionsBuilder struct {
	merchantKey string
	devMode     bool
	httpClient  *http.Client
	logger      *zerolog.Logger
}

func NewOptionsBuilder(merchantKey string) *OptionsBuilder {
	return &OptionsBuilder{merchantKey: merchantKey}
}

// EnableDevMode points the client at the sandbox environment.
func (b *OptionsBuilder) EnableDevMode() *OptionsBuilder {
	b.devMode = true
	return b
}

// WithHTTPClient replaces the default pooled client. The client must be safe for concurrent use.
func (b *OptionsBuilder) WithHTTPClient(hc *http.Client) *OptionsBuilder {
	b.httpClient = hc
	return b
}

func (b *OptionsBuilder) WithLogger(logger zerolog.Logger) *OptionsBuilder {
	b.logger = &logger
	return b
}

// Build resolves the options. It performs no I/O and cannot fail.
func (b *OptionsBuilder) Build() *Options {
	hc := b.httpClient
	if hc == nil {
		hc = newDefaultHTTPClient()
	}
	logger := zerolog.Nop()
	if b.logger != nil {
		logger = *b.logger
	}
	return &Options{
		merchantKey: b.merchantKey,
		apiBase:     BaseURL(b.devMode),
		httpClient:  hc,
		logger:      logger.With().Str("component", "vepara").Logger(),
	}
}

func newDefaultHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: transport,
	}
}
