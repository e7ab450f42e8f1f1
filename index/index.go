package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/toolmart/catalog/attrs"
)

const (
	facetsVersionKey = "catalog_facets_version"
	allCategoriesKey = "_all"
)

// Index is a read-through redis cache over the assembled facet lists. It is
// an optimization only; correctness lives in the attrs repository. Admin
// writes bump a version key, which orphans every cached list at once.
type Index struct {
	redis      *redis.Client
	repository *attrs.Repository
	ttl        time.Duration
}

func NewIndex(redisClient *redis.Client, repository *attrs.Repository, ttl time.Duration) *Index {
	return &Index{
		redis:      redisClient,
		repository: repository,
		ttl:        ttl,
	}
}

// Facets returns the cached facet list for a category name, assembling and
// storing it on a miss.
func (s *Index) Facets(ctx context.Context, categoryName string) ([]attrs.Facet, error) {
	key, err := s.cacheKey(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	item, err := s.redis.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	if err == nil {
		var facets []attrs.Facet

		err = json.Unmarshal([]byte(item), &facets)
		if err != nil {
			return nil, err
		}

		return facets, nil
	}

	facets, err := s.repository.Facets(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	cacheBytes, err := json.Marshal(facets)
	if err != nil {
		return nil, err
	}

	err = s.redis.Set(ctx, key, string(cacheBytes), s.ttl).Err()
	if err != nil {
		return nil, err
	}

	return facets, nil
}

// Reset invalidates every cached facet list. Called after catalog or binding
// writes.
func (s *Index) Reset(ctx context.Context) error {
	logrus.Info("facet cache reset")

	return s.redis.Incr(ctx, facetsVersionKey).Err()
}

func (s *Index) cacheKey(ctx context.Context, categoryName string) (string, error) {
	version, err := s.redis.Get(ctx, facetsVersionKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return "", err
		}

		version = "0"
	}

	if categoryName == "" {
		categoryName = allCategoriesKey
	}

	return fmt.Sprintf("catalog_facets_%s_%s", version, categoryName), nil
}
