package services

import (
	"drone-delivery-service/internal/domain"
	"testing"
)

func TestSortOrdersByValue(t *testing.T) {
	items := []domain.OrderItem{
		{OrderNo: "C", Item: "c1", PricePence: 100},
		{OrderNo: "A", Item: "a1", PricePence: 200},
		{OrderNo: "A", Item: "a2", PricePence: 300},
		{OrderNo: "B", Item: "b1", PricePence: 500},
		{OrderNo: "D", Item: "d1", PricePence: 100},
	}

	got := SortOrdersByValue(items)

	want := []string{"a1", "a2", "b1", "c1", "d1"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, it := range got {
		if it.Item != want[i] {
			t.Fatalf("item %d = %s, want %s (got %+v)", i, it.Item, want[i], got)
		}
	}

	if items[0].OrderNo != "C" {
		t.Fatalf("input was reordered: %+v", items)
	}
}
