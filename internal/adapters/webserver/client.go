package webserver

import (
	"context"
	"drone-delivery-service/internal/adapters/cache"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/platform/obs"
	"drone-delivery-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const memoSize = 1024

// Persistent store for resolved location codes.
type LocationCache interface {
	GetMany(ctx context.Context, codes []string) (map[string]domain.Position, error)
	PutMany(ctx context.Context, results map[string]domain.Position) error
}

// Persistent store for menu lookups.
type MenuCache interface {
	Get(ctx context.Context, item string) (ports.MenuItem, bool, error)
	Put(ctx context.Context, item string, mi ports.MenuItem) error
}

// Client implements MenuCatalog, LocationResolver and ZoneProvider against
// the static content web server.
//
// It coordinates:
//   - Location code normalization
//   - In-process memoization of every lookup
//   - Optional persistent location and menu caches
//   - HTTP calls with retry/backoff
//
// The client is safe for concurrent use.
type Client struct {
	session       *http.Client
	baseURL       string
	locationCache LocationCache
	menuCache     MenuCache
	locations     *cache.Memo[string, domain.Position]
	menuItems     *cache.Memo[string, ports.MenuItem]

	menusMu sync.Mutex
	menus   []shop
}

// NewClient builds a client for the web server at baseURL. Either cache
// may be nil.
func NewClient(baseURL string, locationCache LocationCache, menuCache MenuCache) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("web server base url is empty")
	}

	locations, err := cache.NewMemo[string, domain.Position](memoSize)
	if err != nil {
		return nil, fmt.Errorf("new web server client: %w", err)
	}
	menuItems, err := cache.NewMemo[string, ports.MenuItem](memoSize)
	if err != nil {
		return nil, fmt.Errorf("new web server client: %w", err)
	}

	return &Client{
		session:       &http.Client{Timeout: 10 * time.Second},
		baseURL:       baseURL,
		locationCache: locationCache,
		menuCache:     menuCache,
		locations:     locations,
		menuItems:     menuItems,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (c *Client) normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Resolve turns a three-word location code into coordinates.
func (c *Client) Resolve(ctx context.Context, code string) (domain.Position, error) {
	norm := c.normalize(code)
	if norm == "" {
		return domain.Position{}, errors.New("resolve location: code must be non-empty")
	}

	return c.locations.Get(ctx, norm, c.resolveUncached)
}

func (c *Client) resolveUncached(ctx context.Context, code string) (_ domain.Position, err error) {
	defer obs.Time(ctx, "webserver.Resolve")(&err)

	// Check the persistent cache before issuing a web server call.
	if c.locationCache != nil {
		hits, err := c.locationCache.GetMany(ctx, []string{code})
		if err != nil {
			return domain.Position{}, fmt.Errorf("resolve location: get location cache: %w", err)
		}
		if p, ok := hits[code]; ok {
			return p, nil
		}
	}

	p, err := c.fetchWords(ctx, code)
	if err != nil {
		return domain.Position{}, fmt.Errorf("resolve location %q: %w", code, err)
	}

	if c.locationCache != nil {
		if err := c.locationCache.PutMany(ctx, map[string]domain.Position{code: p}); err != nil {
			log.Printf("location cache write failed: %v", err)
		}
	}

	return p, nil
}

// LookupItem returns the price of an item and the location code of the
// shop selling it.
func (c *Client) LookupItem(ctx context.Context, item string) (ports.MenuItem, error) {
	name := strings.Join(strings.Fields(item), " ")
	if name == "" {
		return ports.MenuItem{}, errors.New("look up item: item must be non-empty")
	}

	return c.menuItems.Get(ctx, name, c.lookupUncached)
}

func (c *Client) lookupUncached(ctx context.Context, item string) (_ ports.MenuItem, err error) {
	defer obs.Time(ctx, "webserver.LookupItem")(&err)

	if c.menuCache != nil {
		mi, ok, err := c.menuCache.Get(ctx, item)
		if err != nil {
			return ports.MenuItem{}, fmt.Errorf("look up item: get menu cache: %w", err)
		}
		if ok {
			return mi, nil
		}
	}

	shops, err := c.loadMenus(ctx)
	if err != nil {
		return ports.MenuItem{}, fmt.Errorf("look up item %q: %w", item, err)
	}

	mi, ok := findItem(shops, item)
	if !ok {
		return ports.MenuItem{}, fmt.Errorf("look up item %q: not on any menu", item)
	}

	if c.menuCache != nil {
		if err := c.menuCache.Put(ctx, item, mi); err != nil {
			log.Printf("menu cache write failed: %v", err)
		}
	}

	return mi, nil
}
