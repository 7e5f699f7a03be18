package cache

import (
	"context"
	"drone-delivery-service/internal/platform/obs"
	"drone-delivery-service/internal/ports"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultMenuKeyPrefix = "menu:item:"

// RedisMenuCache stores item -> (price, shop location) lookups in Redis
// hashes so menu scans survive process restarts.
type RedisMenuCache struct {
	Client *redis.Client
	Prefix string
	// TTL of each entry; zero keeps entries until evicted.
	TTL time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, Prefix: defaultMenuKeyPrefix, TTL: ttl}
}

func (c *RedisMenuCache) key(item string) string {
	return c.Prefix + strings.TrimSpace(item)
}

// Get returns the cached menu entry for item and whether it was present.
func (c *RedisMenuCache) Get(ctx context.Context, item string) (_ ports.MenuItem, _ bool, err error) {
	defer obs.Time(ctx, "menu.cache.Get")(&err)

	if c.Client == nil {
		return ports.MenuItem{}, false, errors.New("menu cache: redis client is nil")
	}

	fields, err := c.Client.HGetAll(ctx, c.key(item)).Result()
	if err != nil {
		return ports.MenuItem{}, false, fmt.Errorf("get menu cache item=%q: %w", item, err)
	}
	if len(fields) == 0 {
		return ports.MenuItem{}, false, nil
	}

	pence, err := strconv.Atoi(fields["pence"])
	if err != nil {
		return ports.MenuItem{}, false, fmt.Errorf("get menu cache item=%q: parse pence %q: %w", item, fields["pence"], err)
	}

	return ports.MenuItem{PricePence: pence, ShopLocation: fields["shop"]}, true, nil
}

// Put stores the menu entry for item.
func (c *RedisMenuCache) Put(ctx context.Context, item string, mi ports.MenuItem) error {
	if c.Client == nil {
		return errors.New("menu cache: redis client is nil")
	}

	key := c.key(item)
	if err := c.Client.HSet(ctx, key, "pence", mi.PricePence, "shop", mi.ShopLocation).Err(); err != nil {
		return fmt.Errorf("insert menu cache item=%q: %w", item, err)
	}
	if c.TTL > 0 {
		if err := c.Client.Expire(ctx, key, c.TTL).Err(); err != nil {
			return fmt.Errorf("insert menu cache item=%q: set ttl: %w", item, err)
		}
	}

	return nil
}
