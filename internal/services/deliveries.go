package services

import (
	"drone-delivery-service/internal/domain"
)

// AggregateDeliveries derives the completed deliveries from a leg log.
//
// An order is complete when its drop-off hover is the last leg it owns
// before the log moves on to another owner. Its cost is the sum of its
// items' prices plus one delivery fee. Deliveries are returned in the order
// they were completed. Orders cut off by an early return are not charged.
func AggregateDeliveries(legs []domain.FlightLeg, items []domain.OrderItem, feePence int) []domain.Delivery {
	type orderTotal struct {
		pence     int
		deliverTo string
	}

	totals := make(map[string]*orderTotal)
	for _, it := range items {
		t, ok := totals[it.OrderNo]
		if !ok {
			t = &orderTotal{}
			totals[it.OrderNo] = t
		}
		t.pence += it.PricePence
		t.deliverTo = it.DeliverTo
	}

	out := []domain.Delivery{}
	seen := make(map[string]struct{})

	for i, leg := range legs {
		// A pickup hover followed by a forced return is not a delivery, so
		// an order abandoned after pickup is never charged.
		if !leg.IsHover() || leg.OrderNo == domain.HomeTag || leg.Stop != domain.StopDropoff {
			continue
		}
		if i+1 < len(legs) && legs[i+1].OrderNo == leg.OrderNo {
			continue
		}
		if _, ok := seen[leg.OrderNo]; ok {
			continue
		}
		seen[leg.OrderNo] = struct{}{}

		t, ok := totals[leg.OrderNo]
		if !ok {
			continue
		}
		out = append(out, domain.Delivery{
			OrderNo:     leg.OrderNo,
			DeliveredTo: t.deliverTo,
			CostInPence: t.pence + feePence,
		})
	}

	return out
}
