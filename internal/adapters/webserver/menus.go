package webserver

import (
	"context"
	"drone-delivery-service/internal/ports"
)

type menuEntry struct {
	Item  string `json:"item"`
	Pence int    `json:"pence"`
}

type shop struct {
	Name     string      `json:"name"`
	Location string      `json:"location"`
	Menu     []menuEntry `json:"menu"`
}

// fetchMenus downloads every participating shop's menu.
func (c *Client) fetchMenus(ctx context.Context) ([]shop, error) {
	var shops []shop
	if err := c.getJSON(ctx, "/menus/menus.json", &shops); err != nil {
		return nil, err
	}
	return shops, nil
}

// loadMenus returns the menus, downloading them on first use. A failed
// download is not remembered.
func (c *Client) loadMenus(ctx context.Context) ([]shop, error) {
	c.menusMu.Lock()
	defer c.menusMu.Unlock()

	if c.menus != nil {
		return c.menus, nil
	}

	shops, err := c.fetchMenus(ctx)
	if err != nil {
		return nil, err
	}
	c.menus = shops
	return shops, nil
}

// findItem returns the first shop, in menu file order, that sells item.
func findItem(shops []shop, item string) (ports.MenuItem, bool) {
	for _, s := range shops {
		for _, m := range s.Menu {
			if m.Item == item {
				return ports.MenuItem{PricePence: m.Pence, ShopLocation: s.Location}, true
			}
		}
	}
	return ports.MenuItem{}, false
}
