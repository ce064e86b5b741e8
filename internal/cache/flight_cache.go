package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/aerobook/internal/domain"
)

// FlightCache stores flight search results in Redis keyed by the search
// parameters. Offers are randomly generated, so caching also keeps repeat
// searches stable within the TTL window.
type FlightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFlightCache wraps an existing redis client.
func NewFlightCache(client *redis.Client, ttl time.Duration) *FlightCache {
	return &FlightCache{client: client, ttl: ttl}
}

// GetSearch returns cached results for the key, or nil on a miss.
func (c *FlightCache) GetSearch(ctx context.Context, key string) ([]domain.Flight, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, searchKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// SetSearch stores results for the key with the configured TTL.
func (c *FlightCache) SetSearch(ctx context.Context, key string, flights []domain.Flight) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(key), payload, c.ttl).Err()
}

func searchKey(key string) string {
	return fmt.Sprintf("cache:flights:search:%s", key)
}
