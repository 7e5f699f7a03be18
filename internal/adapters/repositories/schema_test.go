package repositories

import (
	"testing"
)

func TestParseSeed(t *testing.T) {
	data := []byte(`[
	  {"order_no": " 1AD5F1FF ", "delivery_date": "2023-12-27", "customer": "s2838891",
	   "deliver_to": "pest.round.peanut", "items": ["Margherita", "Calzone"]}
	]`)

	rows, err := ParseSeed(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].OrderNo != "1AD5F1FF" {
		t.Errorf("OrderNo = %q, want 1AD5F1FF", rows[0].OrderNo)
	}
	if len(rows[0].Items) != 2 {
		t.Errorf("items = %v, want 2", rows[0].Items)
	}
}

func TestParseSeedRejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"missing order_no": `[{"order_no": "", "delivery_date": "2023-12-27", "deliver_to": "a.b.c", "items": ["x"]}]`,
		"bad date":         `[{"order_no": "A", "delivery_date": "27/12/2023", "deliver_to": "a.b.c", "items": ["x"]}]`,
		"no destination":   `[{"order_no": "A", "delivery_date": "2023-12-27", "deliver_to": " ", "items": ["x"]}]`,
		"no items":         `[{"order_no": "A", "delivery_date": "2023-12-27", "deliver_to": "a.b.c", "items": []}]`,
		"not json":         `{`,
	}

	for name, data := range cases {
		if _, err := ParseSeed([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
