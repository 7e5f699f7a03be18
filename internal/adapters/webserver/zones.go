package webserver

import (
	"context"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/platform/obs"
	"fmt"
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// NoFlyZones downloads the no-fly zone polygons.
func (c *Client) NoFlyZones(ctx context.Context) (_ []domain.Zone, err error) {
	defer obs.Time(ctx, "webserver.NoFlyZones")(&err)

	b, err := c.getBody(ctx, "/buildings/no-fly-zones.geojson")
	if err != nil {
		return nil, fmt.Errorf("no-fly zones: %w", err)
	}

	zones, err := ParseZones(b)
	if err != nil {
		return nil, fmt.Errorf("no-fly zones: %w", err)
	}
	return zones, nil
}

// ParseZones reads the outer ring of every Polygon or MultiPolygon feature
// in a GeoJSON FeatureCollection. Other geometries are ignored.
func ParseZones(data []byte) ([]domain.Zone, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}

	zones := make([]domain.Zone, 0, len(fc.Features))
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case nil:
			continue
		case orb.Polygon:
			if len(g) > 0 {
				zones = append(zones, ringToZone(g[0]))
			}
		case orb.MultiPolygon:
			for _, poly := range g {
				if len(poly) > 0 {
					zones = append(zones, ringToZone(poly[0]))
				}
			}
		default:
			log.Printf("no-fly zones: skipping feature=%d geometry=%s", i, f.Geometry.GeoJSONType())
		}
	}

	if err := domain.ValidateZones(zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// ringToZone drops the closing point GeoJSON repeats at the end of a ring.
func ringToZone(ring orb.Ring) domain.Zone {
	pts := []orb.Point(ring)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	vertices := make([]domain.Position, 0, len(pts))
	for _, p := range pts {
		vertices = append(vertices, domain.NewPosition(p.Lon(), p.Lat()))
	}
	return domain.Zone{Vertices: vertices}
}
