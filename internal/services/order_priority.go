package services

import (
	"drone-delivery-service/internal/domain"
	"slices"
)

// SortOrdersByValue orders the day's line items by descending order value.
//
// Items are grouped by order number and the groups are sorted by the sum of
// their item prices, most valuable first, so a budget-terminated day still
// delivers the orders worth the most. Equal totals fall back to order number
// for deterministic output. Items keep their relative order within an order.
func SortOrdersByValue(items []domain.OrderItem) []domain.OrderItem {
	type group struct {
		orderNo string
		total   int
		items   []domain.OrderItem
	}

	index := make(map[string]int)
	groups := make([]*group, 0)
	for _, it := range items {
		gi, ok := index[it.OrderNo]
		if !ok {
			gi = len(groups)
			index[it.OrderNo] = gi
			groups = append(groups, &group{orderNo: it.OrderNo})
		}
		groups[gi].total += it.PricePence
		groups[gi].items = append(groups[gi].items, it)
	}

	slices.SortStableFunc(groups, func(a, b *group) int {
		if a.total > b.total {
			return -1
		}
		if a.total < b.total {
			return 1
		}
		if a.orderNo < b.orderNo {
			return -1
		}
		if a.orderNo > b.orderNo {
			return 1
		}
		return 0
	})

	out := make([]domain.OrderItem, 0, len(items))
	for _, g := range groups {
		out = append(out, g.items...)
	}
	return out
}
