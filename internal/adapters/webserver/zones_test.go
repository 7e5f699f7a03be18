package webserver

import (
	"drone-delivery-service/internal/domain"
	"errors"
	"testing"
)

func TestParseZonesMultiPolygon(t *testing.T) {
	data := []byte(`{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "properties": {},
	     "geometry": {"type": "MultiPolygon", "coordinates": [
	       [[[0, 0], [1, 0], [1, 1], [0, 0]]],
	       [[[2, 2], [3, 2], [3, 3], [2, 3], [2, 2]]]
	     ]}}
	  ]
	}`)

	zones, err := ParseZones(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("zones = %d, want 2", len(zones))
	}
	if len(zones[0].Vertices) != 3 || len(zones[1].Vertices) != 4 {
		t.Fatalf("vertex counts = %d/%d, want 3/4", len(zones[0].Vertices), len(zones[1].Vertices))
	}
}

func TestParseZonesRejectsDegenerateRing(t *testing.T) {
	data := []byte(`{
	  "type": "FeatureCollection",
	  "features": [
	    {"type": "Feature", "properties": {},
	     "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 1], [0, 0]]]}}
	  ]
	}`)

	_, err := ParseZones(data)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestParseZonesRejectsGarbage(t *testing.T) {
	if _, err := ParseZones([]byte("not json")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWordsPath(t *testing.T) {
	got, err := wordsPath("army.monks.grapes")
	if err != nil || got != "/words/army/monks/grapes/details.json" {
		t.Fatalf("wordsPath = %q, %v", got, err)
	}
	if _, err := wordsPath("army..grapes"); err == nil {
		t.Fatalf("expected error for empty word")
	}
}
