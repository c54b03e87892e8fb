// Package revalidate provides the tag-keyed render cache that webhook
// deliveries and operators invalidate.
package revalidate

import (
	"context"
	"time"

	repositorycache "github.com/goliatone/go-repository-cache/cache"
)

// Cache tags shared by the site and the webhook pipeline.
const (
	TagBlogs = "github-blogs"

	blogPostTagPrefix = "github-blog-post-"
)

// BlogPostTag scopes a cache entry to a single content file.
func BlogPostTag(path string) string {
	return blogPostTagPrefix + path
}

// TagCache keeps one cached value per tag until its TTL expires or the tag
// is revalidated.
type TagCache struct {
	service repositorycache.CacheService
}

func NewTagCache(ttl time.Duration) (*TagCache, error) {
	config := repositorycache.DefaultConfig()
	if ttl > 0 {
		config.TTL = ttl
	}

	service, err := repositorycache.NewCacheService(config)
	if err != nil {
		return nil, err
	}

	return &TagCache{service: service}, nil
}

// Remember returns the value cached under tag, computing and storing it with
// fetch on a miss. Failed fetches are not cached.
func Remember[T any](ctx context.Context, tc *TagCache, tag string, fetch func(context.Context) (T, error)) (T, error) {
	return repositorycache.GetOrFetch(ctx, tc.service, tag, fetch)
}

// RevalidateTag drops the entry cached under tag so the next read recomputes it.
func (tc *TagCache) RevalidateTag(ctx context.Context, tag string) error {
	return tc.service.Delete(ctx, tag)
}
