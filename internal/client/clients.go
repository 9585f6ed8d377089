package client

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://bunpro.jp/api/user"
	DefaultTimeout   = 10 * time.Second
	defaultUserAgent = "gobunpro/0.1"
)

// HTTPDoer is the transport the client sends its requests through.
// *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// BunproAPI is a client for the Bunpro user API. It holds no per-call state,
// so it is safe for concurrent use when its HTTPDoer is.
type BunproAPI struct {
	baseURL   string
	apiKey    string
	http      HTTPDoer
	userAgent string
	log       *zap.Logger
}

type Option func(*BunproAPI)

func WithBaseURL(baseURL string) Option {
	return func(b *BunproAPI) {
		b.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(doer HTTPDoer) Option {
	return func(b *BunproAPI) {
		b.http = doer
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(b *BunproAPI) {
		b.log = log
	}
}

func WithUserAgent(userAgent string) Option {
	return func(b *BunproAPI) {
		b.userAgent = userAgent
	}
}

// NewBunproAPI builds a client. apiKey is the default key and may be empty
// when every call passes WithAPIKey.
func NewBunproAPI(apiKey string, opts ...Option) *BunproAPI {
	b := &BunproAPI{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: DefaultTimeout},
		userAgent: defaultUserAgent,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type callOptions struct {
	apiKey string
	limit  *int
}

// CallOption customizes a single request.
type CallOption func(*callOptions)

// WithAPIKey overrides the client's default API key for one call. An empty
// key keeps the default.
func WithAPIKey(apiKey string) CallOption {
	return func(o *callOptions) {
		o.apiKey = apiKey
	}
}

// WithLimit caps the number of recent items returned. Only RecentItems uses it.
func WithLimit(limit int) CallOption {
	return func(o *callOptions) {
		o.limit = &limit
	}
}

func (b *BunproAPI) callOptions(opts []CallOption) callOptions {
	o := callOptions{apiKey: b.apiKey}
	for _, opt := range opts {
		opt(&o)
	}
	if o.apiKey == "" {
		o.apiKey = b.apiKey
	}
	return o
}
