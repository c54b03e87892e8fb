package db

import (
	"context"
	"errors"
	"sync"

	"folio/internal/logger"

	"github.com/go-redis/redis/v8"
	goerrors "github.com/goliatone/go-errors"
	"go.uber.org/zap"
)

// ErrUnavailable is returned when no live connection to the key-value store
// could be established.
var ErrUnavailable = goerrors.New("key-value store unavailable", goerrors.CategoryExternal)

// Cache is the key-value store client. The connection is opened on first
// use, reused while it answers PING, and replaced once it stops answering.
type Cache struct {
	url string

	mu     sync.Mutex
	client *redis.Client
}

func NewCache(url string) *Cache {
	return &Cache{url: url}
}

// Client returns a live connection, dialing a fresh one when the cached
// connection is missing or dead. A nil client means the store is unavailable.
func (c *Cache) Client(ctx context.Context) *redis.Client {
	c.mu.Lock()
	current := c.client
	c.mu.Unlock()

	if current != nil && current.Ping(ctx).Err() == nil {
		return current
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have reconnected while we were pinging
	if c.client != nil && c.client != current {
		return c.client
	}

	if c.client != nil {
		_ = c.client.Close()
		c.client = nil
	}

	opts, err := redis.ParseURL(c.url)
	if err != nil {
		logger.Lg.Error("kv_url_invalid", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Lg.Warn("kv_connect_failed", zap.String("addr", opts.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	c.client = client
	return client
}

// Connected reports whether a cached connection exists and answers PING. It
// never dials.
func (c *Cache) Connected(ctx context.Context) bool {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()

	return client != nil && client.Ping(ctx).Err() == nil
}

// Get returns the value stored under key and whether it exists.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	client := c.Client(ctx)
	if client == nil {
		return "", false, ErrUnavailable
	}

	value, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, goerrors.Wrap(err, goerrors.CategoryExternal, "kv get "+key)
	}

	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value string) error {
	client := c.Client(ctx)
	if client == nil {
		return ErrUnavailable
	}

	if err := client.Set(ctx, key, value, 0).Err(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "kv set "+key)
	}

	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	client := c.Client(ctx)
	if client == nil {
		return ErrUnavailable
	}

	if err := client.Del(ctx, key).Err(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "kv delete "+key)
	}

	return nil
}

// Close drops the cached connection. The next call dials again.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Close()
	c.client = nil
	return err
}
