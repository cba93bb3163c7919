package paramstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheTTL  = 5 * time.Minute
	defaultCacheSize = 64
)

// ssmAPI is the minimal AWS SSM interface required by Client.
// *ssm.Client from aws-sdk-go-v2 satisfies this interface.
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Getter is the interface that wraps GetParameter.
type Getter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

var _ Getter = (*Client)(nil)

// Client reads decrypted SSM parameters and caches them for a bounded time,
// so rotated secrets are picked up without a cold start.
type Client struct {
	api   ssmAPI
	cache *expirable.LRU[string, string]
}

type Option func(*options)

type options struct {
	ttl  time.Duration
	size int
}

// WithCacheTTL sets how long a fetched value is served from memory. A
// non-positive ttl keeps the default.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

func New(api ssmAPI, opts ...Option) (*Client, error) {
	if api == nil {
		return nil, errors.New("paramstore: api must not be nil")
	}
	o := options{ttl: DefaultCacheTTL, size: defaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		api:   api,
		cache: expirable.NewLRU[string, string](o.size, nil, o.ttl),
	}, nil
}

func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	if c.api == nil || c.cache == nil {
		return "", errors.New("paramstore: client not initialized")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("paramstore: name is required")
	}
	if v, ok := c.cache.Get(name); ok {
		return v, nil
	}

	withDecryption := true
	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &withDecryption,
	})
	if err != nil {
		return "", fmt.Errorf("paramstore: get parameter %q: %w", name, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.New("paramstore: parameter missing value")
	}
	c.cache.Add(name, *out.Parameter.Value)
	return *out.Parameter.Value, nil
}
