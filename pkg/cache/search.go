// Package cache keeps job-search results in Redis so repeated searches do not
// hit the provider's rate limit.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/joblens/pkg/logging"
	"github.com/artem13815/joblens/pkg/search"
)

const keyPrefix = "joblens:search:"

// Store is the part of *redis.Client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Provider decorates a search.Provider with a read-through Redis cache.
// Redis errors are logged and the call falls through to the wrapped provider.
type Provider struct {
	next  search.Provider
	store Store
	ttl   time.Duration
	log   *logrus.Entry
}

func NewProvider(next search.Provider, store Store, ttl time.Duration, log *logrus.Entry) *Provider {
	return &Provider{next: next, store: store, ttl: ttl, log: logging.Component(log, "cache")}
}

// Key is the cache key for a query; equal normalized queries share it.
func Key(q search.Query) string {
	n := q.Normalized()
	return fmt.Sprintf("%s%d:%s|%s", keyPrefix, n.Page, n.What, n.Where)
}

func (p *Provider) Search(ctx context.Context, q search.Query) (search.Results, error) {
	key := Key(q)
	raw, err := p.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var res search.Results
		if jerr := json.Unmarshal(raw, &res); jerr == nil {
			p.log.WithField("key", key).Debug("search cache hit")
			return res, nil
		}
		p.log.WithField("key", key).Warn("dropping unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		p.log.WithError(err).Warn("search cache read failed")
	}

	res, err := p.next.Search(ctx, q)
	if err != nil {
		return search.Results{}, err
	}
	body, err := json.Marshal(res)
	if err != nil {
		return res, nil
	}
	if err := p.store.Set(ctx, key, body, p.ttl).Err(); err != nil {
		p.log.WithError(err).Warn("search cache write failed")
	}
	return res, nil
}
