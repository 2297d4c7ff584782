package listsource

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/upb/solid-lab/contracts"
	"go.uber.org/zap"
)

// Redis serves the sequence stored in a Redis list, in list order
// (LRANGE 0 -1).
type Redis struct {
	name   string
	client *redis.Client
	key    string
	logger *zap.Logger
}

var _ contracts.ListSource = (*Redis)(nil)

// NewRedis creates a Redis-backed list source reading from key.
func NewRedis(name string, client *redis.Client, key string, logger *zap.Logger) *Redis {
	return &Redis{
		name:   name,
		client: client,
		key:    key,
		logger: logger,
	}
}

// Name returns the provider name.
func (s *Redis) Name() string {
	return s.name
}

// Items returns the Redis list in list order. A missing key is an empty
// sequence, not an error.
func (s *Redis) Items(ctx context.Context) ([]string, error) {
	items, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read redis list %q: %w", s.key, err)
	}

	s.logger.Debug("loaded items from redis",
		zap.String("provider", s.name),
		zap.String("key", s.key),
		zap.Int("count", len(items)))

	return items, nil
}
